package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

func evaluateAlchemist(x *evalContext, r *entities.AbilityRecord) Decision {
	p := r.Prerequisite
	if p != nil && p.LowerLevelRecipesRequired != nil && p.Grade != nil {
		grade := *p.Grade
		prev := x.countOwnedLocal(recipeOfGrade(grade - 1))
		cur := x.countOwnedLocal(recipeOfGrade(grade))

		if prev < *p.LowerLevelRecipesRequired {
			return deny("lower_level_recipes",
				"requires %d grade %d recipes, has %d", *p.LowerLevelRecipesRequired, grade-1, prev)
		}
		// a grade holds fewer recipes than the grade below it
		if grade != 1 && cur >= prev {
			return deny("grade_full", "grade %d already holds %d recipes", grade, cur)
		}
	}

	if p != nil {
		if missing := x.missing(p.RequiresAbilities...); len(missing) > 0 {
			return deny("requires_abilities", "requires %s", strings.Join(missing, ", "))
		}
	}

	return allow("prerequisites_met")
}

func recipeOfGrade(grade int) func(*entities.AbilityRecord) bool {
	return func(r *entities.AbilityRecord) bool {
		p := r.Prerequisite
		return p != nil && p.Grade != nil && *p.Grade == grade
	}
}

func evaluateShaman(x *evalContext, r *entities.AbilityRecord) Decision {
	if d, ok := requireAbility(x, r); !ok {
		return d
	}
	return allow("prerequisites_met")
}
