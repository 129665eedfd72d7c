package engine

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

func evaluateWitch(x *evalContext, r *entities.AbilityRecord) Decision {
	spell := entities.ClassWitch.SpellType()
	ritual := entities.AbilityType("witch_ritual")

	switch r.Type {
	case ritual:
		p := r.Prerequisite
		if p.IsEmpty() {
			return allow("no_prerequisite")
		}
		if p.RequiresSpellCount != nil {
			if n := x.countOwned(ofType(spell)); n < *p.RequiresSpellCount {
				return deny("requires_spells", "requires %d witch spells, has %d", *p.RequiresSpellCount, n)
			}
		}
		if p.RequiresSpell != "" && !x.owns(p.RequiresSpell) {
			return deny("requires_spell", "requires %s", p.RequiresSpell)
		}
		if p.RequiresBloodRituals != nil {
			if n := x.countOwned(ofType(ritual)); n < *p.RequiresBloodRituals {
				return deny("requires_blood_rituals", "requires %d rituals, has %d", *p.RequiresBloodRituals, n)
			}
		}
		return allow("prerequisites_met")
	case spell:
		if r.Grade > 1 {
			if d, ok := requireAbility(x, r); !ok {
				return d
			}
		}
		return allow("prerequisites_met")
	case entities.ClassWitch.AbilityType():
		if r.HasPrerequisiteGrade() {
			return requireSpellsOfGrade(x, spell, *r.Prerequisite.Grade)
		}
		return allow("no_prerequisite")
	default:
		return unsupportedType(r)
	}
}
