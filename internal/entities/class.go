package entities

import (
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// ClassTag selects the rule set of a catalog
type ClassTag string

// Class tags
const (
	ClassGeneral   ClassTag = "general"
	ClassPaladin   ClassTag = "paladin"
	ClassPriest    ClassTag = "priest"
	ClassWarrior   ClassTag = "warrior"
	ClassDruid     ClassTag = "druid"
	ClassWitch     ClassTag = "witch"
	ClassRunesmith ClassTag = "runesmith"
	ClassWizard    ClassTag = "wizard"
	ClassAlchemist ClassTag = "alchemist"
	ClassShaman    ClassTag = "shaman"
)

// AllClasses lists every class tag except general, in menu order
var AllClasses = []ClassTag{
	ClassAlchemist,
	ClassPaladin,
	ClassPriest,
	ClassWizard,
	ClassShaman,
	ClassWitch,
	ClassDruid,
	ClassWarrior,
	ClassRunesmith,
}

// ParseClassTag parses a class tag, accepting a few aliases used in data files
func ParseClassTag(s string) (ClassTag, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general", "standard":
		return ClassGeneral, nil
	case "paladin":
		return ClassPaladin, nil
	case "priest":
		return ClassPriest, nil
	case "warrior":
		return ClassWarrior, nil
	case "druid":
		return ClassDruid, nil
	case "witch":
		return ClassWitch, nil
	case "runesmith":
		return ClassRunesmith, nil
	case "wizard":
		return ClassWizard, nil
	case "alchemist", "alkymi":
		return ClassAlchemist, nil
	case "shaman":
		return ClassShaman, nil
	default:
		return "", errors.InvalidArgumentf("unknown class tag %q", s)
	}
}

// Namespace is the id prefix shared by every ability of the class. General
// abilities have no namespace.
func (c ClassTag) Namespace() string {
	switch c {
	case ClassGeneral:
		return ""
	case ClassAlchemist:
		return "alkymi_"
	default:
		return string(c) + "_"
	}
}

// Owns reports whether an ability id lives in the class namespace
func (c ClassTag) Owns(abilityID string) bool {
	ns := c.Namespace()
	return ns != "" && strings.HasPrefix(abilityID, ns)
}

// NeedsGod reports whether the class must select a god before anything else
func (c ClassTag) NeedsGod() bool {
	return c == ClassPaladin || c == ClassPriest
}

// HasFreeGrant reports whether the class hands out free abilities on first access
func (c ClassTag) HasFreeGrant() bool {
	return c != ClassGeneral && c != ClassShaman
}

// SpellType is the record type of the class spells, e.g. "wizard_spell"
func (c ClassTag) SpellType() AbilityType {
	return AbilityType(string(c) + "_spell")
}

// AbilityType is the record type of the class abilities, e.g. "druid_ability"
func (c ClassTag) AbilityType() AbilityType {
	return AbilityType(string(c) + "_ability")
}

// ClassForID finds the class whose namespace contains the ability id
func ClassForID(abilityID string) (ClassTag, bool) {
	for _, c := range AllClasses {
		if c.Owns(abilityID) {
			return c, true
		}
	}
	return ClassGeneral, false
}
