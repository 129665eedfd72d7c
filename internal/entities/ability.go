// Package entities provides core data structures for the progression engine.
package entities

import "strings"

// SchoolCommon is the school shared by every spell college
const SchoolCommon = "almen"

// DisciplineGeneral is the warrior discipline open to every path
const DisciplineGeneral = "den_almen_disciplin"

// AbilityType is the raw type tag of a catalog record, e.g. "druid_spell"
type AbilityType string

// Kind classifies an AbilityType
type Kind int

// Record kinds
const (
	KindPlain Kind = iota
	KindGod
	KindCodex
	KindFree
	KindAbility
	KindSpell
	KindRitual
	KindSpecialAbility
)

func (k Kind) String() string {
	switch k {
	case KindGod:
		return "god"
	case KindCodex:
		return "codex"
	case KindFree:
		return "free"
	case KindAbility:
		return "ability"
	case KindSpell:
		return "spell"
	case KindRitual:
		return "ritual"
	case KindSpecialAbility:
		return "special_ability"
	default:
		return "plain"
	}
}

// Kind derives the record kind from the type tag
func (t AbilityType) Kind() Kind {
	s := string(t)
	switch {
	case s == "":
		return KindPlain
	case s == "god" || strings.HasSuffix(s, "_god"):
		return KindGod
	case strings.Contains(s, "codex"):
		return KindCodex
	case strings.HasSuffix(s, "_free"):
		return KindFree
	case strings.HasSuffix(s, "_special_ability"):
		return KindSpecialAbility
	case strings.HasSuffix(s, "_ability"):
		return KindAbility
	case strings.HasSuffix(s, "_spell"):
		return KindSpell
	case strings.HasSuffix(s, "_ritual"):
		return KindRitual
	default:
		return KindPlain
	}
}

// Class returns the class named by the type prefix ("wizard_spell" -> wizard).
// Types without a class prefix report false.
func (t AbilityType) Class() (ClassTag, bool) {
	s := string(t)
	idx := strings.Index(s, "_")
	if idx <= 0 {
		return ClassGeneral, false
	}
	tag, err := ParseClassTag(s[:idx])
	if err != nil || tag == ClassGeneral {
		return ClassGeneral, false
	}
	return tag, true
}

// AbilityRecord is one immutable entry of an ability catalog
type AbilityRecord struct {
	ID           string        `json:"id" yaml:"id"`
	Name         string        `json:"name" yaml:"name"`
	Cost         int           `json:"cost" yaml:"cost"`
	Type         AbilityType   `json:"type,omitempty" yaml:"type,omitempty"`
	Grade        int           `json:"grade,omitempty" yaml:"grade,omitempty"`
	School       string        `json:"school,omitempty" yaml:"school,omitempty"`
	Discipline   string        `json:"discipline,omitempty" yaml:"discipline,omitempty"`
	Prerequisite *Prerequisite `json:"prerequisite,omitempty" yaml:"prerequisite,omitempty"`
}

// GetID returns the ability id
func (r *AbilityRecord) GetID() string {
	return r.ID
}

// GetType returns the entity type for rpg-toolkit
func (r *AbilityRecord) GetType() string {
	return "ability"
}

// Kind is a shortcut for r.Type.Kind()
func (r *AbilityRecord) Kind() Kind {
	return r.Type.Kind()
}

// FilterGrade is the grade used by (type, grade) counting rules. The
// prerequisite grade wins when present, the record grade otherwise.
func (r *AbilityRecord) FilterGrade() int {
	if r.Prerequisite != nil && r.Prerequisite.Grade != nil {
		return *r.Prerequisite.Grade
	}
	return r.Grade
}

// HasPrerequisiteGrade reports whether the prerequisite names a grade
func (r *AbilityRecord) HasPrerequisiteGrade() bool {
	return r.Prerequisite != nil && r.Prerequisite.Grade != nil
}

// IsCommonSchool reports whether the record belongs to the common school
func (r *AbilityRecord) IsCommonSchool() bool {
	return r.School == SchoolCommon
}
