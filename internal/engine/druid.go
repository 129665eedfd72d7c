package engine

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// druid abilities that close the tree and carry no spell requirement
var druidTerminal = map[string]bool{
	"druid_ability_grad_5": true,
	"druid_ability_grad_6": true,
}

// RunesmithInvestID is the runesmith ability gated on its required ability alone
const RunesmithInvestID = "runesmith_invester_kraft"

// minSpellsPerGrade is the number of spells of a grade needed for the ability of that grade
const minSpellsPerGrade = 2

func evaluateDruid(x *evalContext, r *entities.AbilityRecord) Decision {
	switch r.Type {
	case entities.ClassDruid.AbilityType():
		if d, ok := requireAbility(x, r); !ok {
			return d
		}
		if druidTerminal[r.ID] {
			return allow("prerequisites_met")
		}
		return requireSpellsOfGrade(x, entities.ClassDruid.SpellType(), r.FilterGrade())
	case entities.ClassDruid.SpellType():
		if d, ok := requireAbility(x, r); !ok {
			return d
		}
		return allow("prerequisites_met")
	default:
		return unsupportedType(r)
	}
}

func evaluateRunesmith(x *evalContext, r *entities.AbilityRecord) Decision {
	if r.ID == RunesmithInvestID {
		if d, ok := requireAbility(x, r); !ok {
			return d
		}
		return allow("prerequisites_met")
	}

	switch r.Type {
	case entities.ClassRunesmith.AbilityType():
		if d, ok := requireAbility(x, r); !ok {
			return d
		}
		if r.HasPrerequisiteGrade() {
			return requireSpellsOfGrade(x, entities.ClassRunesmith.SpellType(), *r.Prerequisite.Grade)
		}
		return allow("prerequisites_met")
	case entities.ClassRunesmith.SpellType():
		if d, ok := requireAbility(x, r); !ok {
			return d
		}
		return allow("prerequisites_met")
	default:
		return unsupportedType(r)
	}
}

func requireSpellsOfGrade(x *evalContext, spellType entities.AbilityType, grade int) Decision {
	n := x.countOwned(ofTypeAndGrade(spellType, grade))
	if n < minSpellsPerGrade {
		return deny("spell_count", "requires %d grade %d spells, has %d", minSpellsPerGrade, grade, n)
	}
	return allow("spell_count")
}

func unsupportedType(r *entities.AbilityRecord) Decision {
	return deny("unsupported_type", "type %q is not handled by this class", r.Type)
}
