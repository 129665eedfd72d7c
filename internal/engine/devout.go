package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// PaladinCodexTrigger is the paladin milestone after which a codex must be chosen
const PaladinCodexTrigger = "paladin_level_4"

// evaluateDevout builds the rule shared by the god-gated classes
func evaluateDevout(class entities.ClassTag) strategy {
	return func(x *evalContext, r *entities.AbilityRecord) Decision {
		if r.Kind() == entities.KindGod {
			if !x.char.HasGod() {
				return allow("god_selection")
			}
			if r.ID == x.char.SelectedGod {
				return deny("god_selected", "%s is the selected god", r.ID)
			}
			return deny("god_locked", "god %s already selected", x.char.SelectedGod)
		}

		if !x.char.HasGod() {
			return deny("god_required", "select a god first")
		}

		if class == entities.ClassPaladin {
			pending := x.owns(PaladinCodexTrigger) && !ownsCodex(x)
			if r.Kind() == entities.KindCodex {
				if pending {
					return allow("codex_choice")
				}
				return deny("codex_unavailable", "a codex is chosen once after %s", PaladinCodexTrigger)
			}
			if pending {
				return deny("codex_pending", "choose a codex first")
			}
		}

		school := x.char.GodSchool()
		if r.School != "" && r.School != school && r.School != entities.SchoolCommon {
			return deny("school", "school %s does not belong to %s", r.School, x.char.SelectedGod)
		}

		if p := r.Prerequisite; p != nil && p.RequiresSpellLevels != nil {
			common := x.highestGrade(entities.SchoolCommon)
			god := x.highestGrade(school)
			if common < p.RequiresSpellLevels.Common || god < p.RequiresSpellLevels.GodSchool {
				return deny("requires_spells",
					"requires grade %d %s and grade %d %s spells, has %d and %d",
					p.RequiresSpellLevels.Common, entities.SchoolCommon,
					p.RequiresSpellLevels.GodSchool, school,
					common, god)
			}
		}

		if d, ok := requireAbility(x, r); !ok {
			return d
		}

		return allow("prerequisites_met")
	}
}

func ownsCodex(x *evalContext) bool {
	for _, o := range x.char.Owned {
		if strings.Contains(o.ID, "codex") {
			return true
		}
	}
	return false
}
