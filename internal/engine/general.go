package engine

import (
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CombatTrainingID is the general ability that opens the warrior catalog
const CombatTrainingID = "ability_kamptraening"

var languageAbilities = []string{
	"ability_laese_skrive_darconsk",
	"ability_laese_skrive_eislonsk",
	"ability_laese_skrive_emyriansk",
	"ability_laese_skrive_garkiharn",
	"ability_laese_skrive_garklin",
	"ability_laese_skrive_oldparavisk",
	"ability_laese_skrive_paravisk",
	"ability_laese_skrive_runeskrift",
	"ability_laese_skrive_taishen",
	"ability_laese_skrive_tharkinsk",
	"ability_laese_skrive_tziztisk",
	"ability_laese_skrive_zarabinsk",
}

// agilityGate: coordination and climbing plus ranged or dual weapons
func agilityGate(x *evalContext) bool {
	return x.ownsAll("ability_koordination_2", "ability_klatre") &&
		x.ownsAny("ability_afstandsvaaben", "ability_tovaabenbrug")
}

// strengthGate: extra life points and strength
func strengthGate(x *evalContext) bool {
	return x.ownsAll("ability_ekstra_livspoint_1", "ability_styrke")
}

// tacticsGate: shield use and vigilance plus one written language
func tacticsGate(x *evalContext) bool {
	return x.ownsAll("ability_skjoldbrug", "ability_overvaagenhed_1") &&
		x.ownsAny(languageAbilities...)
}

func evaluateGeneral(x *evalContext, r *entities.AbilityRecord) Decision {
	if r.ID == CombatTrainingID {
		if agilityGate(x) || strengthGate(x) || tacticsGate(x) {
			return allow("combat_training")
		}
		return deny("combat_training", "no combat training combination owned")
	}
	return checkGeneralPrerequisite(x, r)
}

func checkGeneralPrerequisite(x *evalContext, r *entities.AbilityRecord) Decision {
	p := r.Prerequisite
	if p.IsEmpty() {
		return allow("no_prerequisite")
	}

	if missing := x.missing(p.RequiresAbilities...); len(missing) > 0 {
		return deny("requires_abilities", "requires %s", strings.Join(missing, ", "))
	}
	if p.RequiresAbility != "" && !x.owns(p.RequiresAbility) {
		return deny("requires_ability", "requires %s", p.RequiresAbility)
	}
	if p.LPMaxNeeded != nil && *p.LPMaxNeeded > x.char.LPMax {
		return deny("lp_max_needed", "requires %d LP, character has %d", *p.LPMaxNeeded, x.char.LPMax)
	}
	if len(p.RequiresOneOf) > 0 && !x.ownsAny(p.RequiresOneOf...) {
		return deny("requires_one_of", "requires one of %s", strings.Join(p.RequiresOneOf, ", "))
	}

	return allow("prerequisites_met")
}
