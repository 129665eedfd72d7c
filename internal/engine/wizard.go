package engine

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// school-choosing wizard abilities, at most two of which can be owned
var wizardSchools = []string{
	"wizard_level_1_elementalisme",
	"wizard_level_1_mentalisme",
	"wizard_level_1_morticisme",
}

// owning any of these allows a second school
var wizardMastery = []string{
	"wizard_level_3_elementalisme",
	"wizard_level_3_mentalisme",
	"wizard_level_3_morticisme",
}

// IsWizardSchoolChoice reports whether id chooses a wizard school
func IsWizardSchoolChoice(id string) bool {
	for _, s := range wizardSchools {
		if s == id {
			return true
		}
	}
	return false
}

func evaluateWizard(x *evalContext, r *entities.AbilityRecord) Decision {
	if IsWizardSchoolChoice(r.ID) {
		chosen := 0
		for _, s := range wizardSchools {
			if x.owns(s) {
				chosen++
			}
		}
		switch {
		case chosen == 0:
			return allow("school_choice")
		case chosen == 1 && x.ownsAny(wizardMastery...):
			return allow("school_choice")
		case chosen == 1:
			return deny("school_choice", "a second school requires a grade 3 school ability")
		default:
			return deny("school_choice", "two schools already chosen")
		}
	}

	spell := entities.ClassWizard.SpellType()
	ability := entities.ClassWizard.AbilityType()

	switch r.Type {
	case ability:
		if d, ok := requireAbility(x, r); !ok {
			return d
		}
		if r.Grade > 0 {
			school := x.countOwned(func(o *entities.AbilityRecord) bool {
				return o.Type == spell && o.School == r.School
			})
			common := x.countOwned(func(o *entities.AbilityRecord) bool {
				return o.Type == spell && o.IsCommonSchool()
			})
			if school < r.Grade || common < r.Grade {
				return deny("spell_count",
					"requires %d %s and %d %s spells, has %d and %d",
					r.Grade, r.School, r.Grade, entities.SchoolCommon, school, common)
			}
		}
		return allow("prerequisites_met")
	case spell:
		if r.IsCommonSchool() {
			if r.Grade > 0 && x.countOwned(ofTypeAndGrade(ability, r.Grade)) == 0 {
				return deny("requires_grade_ability", "requires a grade %d wizard ability", r.Grade)
			}
			return allow("prerequisites_met")
		}
		if d, ok := requireAbility(x, r); !ok {
			return d
		}
		return allow("prerequisites_met")
	case entities.AbilityType("wizard_special_ability"):
		if r.Prerequisite != nil && r.Prerequisite.RequiresSpell != "" && !x.owns(r.Prerequisite.RequiresSpell) {
			return deny("requires_spell", "requires %s", r.Prerequisite.RequiresSpell)
		}
		return allow("prerequisites_met")
	default:
		return unsupportedType(r)
	}
}
