package entities

import (
	"encoding/json"
	"math"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Data keys of a prerequisite object
const (
	keyRequiresAbilities         = "requires_abilities"
	keyRequiresOneOf             = "requires_one_of"
	keyRequiresAbility           = "requires_ability"
	keyRequiredAbility           = "required_ability"
	keyRequiresSpell             = "requires_spell"
	keyRequiresSpells            = "requires_spells"
	keyRequiresBloodRituals      = "requires_blood_rituals"
	keyGrade                     = "grade"
	keyLowerLevelRecipesRequired = "lower_level_recipes_required"
	keyLPMaxNeeded               = "lp_max_needed"
	keySpellLevelCommon          = "almen"
	keySpellLevelGodSchool       = "gudeskole"
)

// SpellLevels is the minimum spell grade a character must hold in the
// common school and in the school of its god
type SpellLevels struct {
	Common    int
	GodSchool int
}

// Prerequisite holds every condition a record may demand. All parts are
// optional and each class rule reads the ones it understands.
type Prerequisite struct {
	RequiresAbilities         []string
	RequiresOneOf             []string
	RequiresAbility           string
	RequiresSpell             string
	RequiresSpellCount        *int
	RequiresSpellLevels       *SpellLevels
	RequiresBloodRituals      *int
	Grade                     *int
	LowerLevelRecipesRequired *int
	LPMaxNeeded               *int
}

// IsEmpty reports whether the prerequisite demands nothing
func (p *Prerequisite) IsEmpty() bool {
	if p == nil {
		return true
	}
	return len(p.RequiresAbilities) == 0 &&
		len(p.RequiresOneOf) == 0 &&
		p.RequiresAbility == "" &&
		p.RequiresSpell == "" &&
		p.RequiresSpellCount == nil &&
		p.RequiresSpellLevels == nil &&
		p.RequiresBloodRituals == nil &&
		p.Grade == nil &&
		p.LowerLevelRecipesRequired == nil &&
		p.LPMaxNeeded == nil
}

// GradeOr returns the prerequisite grade or the fallback when unset
func (p *Prerequisite) GradeOr(fallback int) int {
	if p == nil || p.Grade == nil {
		return fallback
	}
	return *p.Grade
}

// UnmarshalJSON decodes the loosely typed prerequisite object
func (p *Prerequisite) UnmarshalJSON(data []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.WrapParseError(err, "prerequisite must be an object")
	}
	return p.fromMap(raw)
}

// UnmarshalYAML decodes the loosely typed prerequisite object
func (p *Prerequisite) UnmarshalYAML(node *yaml.Node) error {
	var raw map[string]interface{}
	if err := node.Decode(&raw); err != nil {
		return errors.WrapParseError(err, "prerequisite must be a mapping")
	}
	return p.fromMap(raw)
}

// MarshalJSON encodes the prerequisite with the data-file keys
func (p Prerequisite) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.toMap())
}

// MarshalYAML encodes the prerequisite with the data-file keys
func (p Prerequisite) MarshalYAML() (interface{}, error) {
	return p.toMap(), nil
}

func (p *Prerequisite) fromMap(raw map[string]interface{}) error {
	out := Prerequisite{}

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := raw[key]
		if value == nil {
			continue
		}

		var err error
		switch key {
		case keyRequiresAbilities:
			out.RequiresAbilities, err = stringList(key, value)
		case keyRequiresOneOf:
			out.RequiresOneOf, err = stringList(key, value)
		case keyRequiresAbility, keyRequiredAbility:
			out.RequiresAbility, err = stringValue(key, value)
		case keyRequiresSpell:
			out.RequiresSpell, err = stringValue(key, value)
		case keyRequiresSpells:
			err = out.setRequiresSpells(value)
		case keyRequiresBloodRituals:
			out.RequiresBloodRituals, err = intPointer(key, value)
		case keyGrade:
			out.Grade, err = intPointer(key, value)
		case keyLowerLevelRecipesRequired:
			out.LowerLevelRecipesRequired, err = intPointer(key, value)
		case keyLPMaxNeeded:
			out.LPMaxNeeded, err = intPointer(key, value)
		}
		if err != nil {
			return err
		}
	}

	*p = out
	return nil
}

// setRequiresSpells accepts a plain count or a {almen, gudeskole} object
func (p *Prerequisite) setRequiresSpells(value interface{}) error {
	if levels, ok := asMap(value); ok {
		sl := &SpellLevels{}
		if v, found := levels[keySpellLevelCommon]; found && v != nil {
			n, err := intValue(keyRequiresSpells+"."+keySpellLevelCommon, v)
			if err != nil {
				return err
			}
			sl.Common = n
		}
		if v, found := levels[keySpellLevelGodSchool]; found && v != nil {
			n, err := intValue(keyRequiresSpells+"."+keySpellLevelGodSchool, v)
			if err != nil {
				return err
			}
			sl.GodSchool = n
		}
		p.RequiresSpellLevels = sl
		return nil
	}

	n, err := intPointer(keyRequiresSpells, value)
	if err != nil {
		return err
	}
	p.RequiresSpellCount = n
	return nil
}

func (p Prerequisite) toMap() map[string]interface{} {
	m := make(map[string]interface{})
	if len(p.RequiresAbilities) > 0 {
		m[keyRequiresAbilities] = p.RequiresAbilities
	}
	if len(p.RequiresOneOf) > 0 {
		m[keyRequiresOneOf] = p.RequiresOneOf
	}
	if p.RequiresAbility != "" {
		m[keyRequiresAbility] = p.RequiresAbility
	}
	if p.RequiresSpell != "" {
		m[keyRequiresSpell] = p.RequiresSpell
	}
	if p.RequiresSpellLevels != nil {
		m[keyRequiresSpells] = map[string]int{
			keySpellLevelCommon:    p.RequiresSpellLevels.Common,
			keySpellLevelGodSchool: p.RequiresSpellLevels.GodSchool,
		}
	} else if p.RequiresSpellCount != nil {
		m[keyRequiresSpells] = *p.RequiresSpellCount
	}
	if p.RequiresBloodRituals != nil {
		m[keyRequiresBloodRituals] = *p.RequiresBloodRituals
	}
	if p.Grade != nil {
		m[keyGrade] = *p.Grade
	}
	if p.LowerLevelRecipesRequired != nil {
		m[keyLowerLevelRecipesRequired] = *p.LowerLevelRecipesRequired
	}
	if p.LPMaxNeeded != nil {
		m[keyLPMaxNeeded] = *p.LPMaxNeeded
	}
	return m
}

func asMap(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, val := range v {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	}
	return nil, false
}

func stringValue(key string, value interface{}) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", errors.ParseErrorf("%s must be a string, got %T", key, value)
	}
	return s, nil
}

// stringList accepts a single id or a list of ids
func stringList(key string, value interface{}) ([]string, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.ParseErrorf("%s must hold strings, got %T", key, item)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return v, nil
	}
	return nil, errors.ParseErrorf("%s must be a string or a list, got %T", key, value)
}

func intValue(key string, value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, errors.ParseErrorf("%s must be a whole number, got %v", key, v)
		}
		return int(v), nil
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, errors.WrapParseError(err, key+" must be a whole number")
		}
		return int(n), nil
	}
	return 0, errors.ParseErrorf("%s must be a number, got %T", key, value)
}

func intPointer(key string, value interface{}) (*int, error) {
	n, err := intValue(key, value)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// IntPtr returns a pointer to n, handy for building prerequisites in code
func IntPtr(n int) *int {
	return &n
}
