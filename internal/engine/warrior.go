package engine

import (
	"fmt"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Warrior paths
const (
	PathStrength = "strength"
	PathAgility  = "agility"
	PathTactics  = "tactics"
)

var warriorPaths = []string{PathStrength, PathAgility, PathTactics}

// WarriorPathID is the id of a path record, e.g. warrior_ability_level_1_strength
func WarriorPathID(grade int, path string) string {
	return fmt.Sprintf("warrior_ability_level_%d_%s", grade, path)
}

var levelOneGates = map[string]func(*evalContext) bool{
	WarriorPathID(1, PathAgility):  agilityGate,
	WarriorPathID(1, PathStrength): strengthGate,
	WarriorPathID(1, PathTactics):  tacticsGate,
}

var advancedStyles = map[string]bool{
	"warrior_ability_level_1_ridderkamp":           true,
	"warrior_ability_level_1_ethaandetfaegtekunst": true,
	"warrior_ability_level_1_spydkamp":             true,
	"warrior_ability_level_1_bueskydning":          true,
	"warrior_ability_level_1_dobbeltvaebnetkamp":   true,
	"warrior_ability_level_1_tohaandsvaabenkamp":   true,
}

var immortalitySpells = []string{
	"warrior_spell_udoedelighed",
	"warrior_spell_anti_magisk_tilfoersel",
}

var styleSpells = []string{
	"warrior_spell_jernets_faestning",
	"warrior_spell_nyrestoed",
	"warrior_spell_beskidt_kamp",
	"warrior_spell_skyggernes_pil",
	"warrior_spell_ren_loyalitet",
	"warrior_spell_symbolets_magt",
}

// spellPair holds the grade-1 and grade-2 spell pairs of a path
type spellPair [2][]string

var generalSpells = spellPair{
	{"warrior_spell_overlevelsesinstinkt", "warrior_spell_det_glatte_sind"},
	{"warrior_spell_standhaftighed", "warrior_spell_kampberedskab"},
}

var pathSpells = map[string]spellPair{
	PathStrength: {
		{"warrior_spell_muskelbundt", "warrior_spell_tykpandet"},
		{"warrior_spell_bastion", "warrior_spell_troldeslag"},
	},
	PathAgility: {
		{"warrior_spell_camouflage", "warrior_spell_hvem_er_du"},
		{"warrior_spell_spejder", "warrior_spell_smidig_kamp"},
	},
	PathTactics: {
		{"warrior_spell_lederskab", "warrior_spell_rustningsspecialisering"},
		{"warrior_spell_faellesskab", "warrior_spell_bannerherre"},
	},
}

type pathStep struct {
	path  string
	grade int
}

var advancedPathSteps = func() map[string]pathStep {
	m := make(map[string]pathStep)
	for _, path := range warriorPaths {
		m[WarriorPathID(2, path)] = pathStep{path: path, grade: 2}
		m[WarriorPathID(3, path)] = pathStep{path: path, grade: 3}
	}
	return m
}()

func evaluateWarrior(x *evalContext, r *entities.AbilityRecord) Decision {
	if gate, ok := levelOneGates[r.ID]; ok {
		if gate(x) {
			return allow("path_gate")
		}
		return deny("path_gate", "general abilities for this path are missing")
	}

	if advancedStyles[r.ID] {
		if x.ownsAny(immortalitySpells...) && x.ownsAny(styleSpells...) {
			return allow("combat_style")
		}
		return deny("combat_style", "requires an immortality spell and a style spell")
	}

	if r.Prerequisite == nil || r.Prerequisite.RequiresAbility == "" {
		return defaultPathGate(x, r.Grade)
	}

	if step, ok := advancedPathSteps[r.ID]; ok {
		pair := pathSpells[step.path][step.grade-2]
		general := generalSpells[step.grade-2]
		if x.ownsAny(pair...) && x.ownsAny(general...) {
			return allow("path_spells")
		}
		return deny("path_spells", "requires a %s spell and a general spell of the previous grade", step.path)
	}

	if d, ok := requireAbility(x, r); !ok {
		return d
	}
	return allow("prerequisites_met")
}

// defaultPathGate opens a record once any path of its grade is owned
func defaultPathGate(x *evalContext, grade int) Decision {
	// anything other than grade 1 or 2 falls back to the grade 3 paths
	if grade != 1 && grade != 2 {
		grade = 3
	}

	ids := make([]string, 0, len(warriorPaths))
	for _, path := range warriorPaths {
		ids = append(ids, WarriorPathID(grade, path))
	}
	if x.ownsAny(ids...) {
		return allow("path_chosen")
	}
	return deny("path_chosen", "choose a grade %d path first", grade)
}
