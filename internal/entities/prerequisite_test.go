package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type PrerequisiteTestSuite struct {
	suite.Suite
}

func TestPrerequisiteSuite(t *testing.T) {
	suite.Run(t, new(PrerequisiteTestSuite))
}

func (s *PrerequisiteTestSuite) TestDecodeJSON() {
	s.Run("string or list for requires_abilities", func() {
		var single entities.Prerequisite
		s.Require().NoError(json.Unmarshal([]byte(`{"requires_abilities": "ability_styrke"}`), &single))
		s.Equal([]string{"ability_styrke"}, single.RequiresAbilities)

		var list entities.Prerequisite
		s.Require().NoError(json.Unmarshal([]byte(`{"requires_abilities": ["a", "b"]}`), &list))
		s.Equal([]string{"a", "b"}, list.RequiresAbilities)
	})

	s.Run("required_ability alias", func() {
		var p entities.Prerequisite
		s.Require().NoError(json.Unmarshal([]byte(`{"required_ability": "druid_ability_grad_2"}`), &p))
		s.Equal("druid_ability_grad_2", p.RequiresAbility)
	})

	s.Run("requires_spells as count", func() {
		var p entities.Prerequisite
		s.Require().NoError(json.Unmarshal([]byte(`{"requires_spells": 3, "requires_blood_rituals": 1}`), &p))
		s.Require().NotNil(p.RequiresSpellCount)
		s.Equal(3, *p.RequiresSpellCount)
		s.Nil(p.RequiresSpellLevels)
		s.Require().NotNil(p.RequiresBloodRituals)
		s.Equal(1, *p.RequiresBloodRituals)
	})

	s.Run("requires_spells as school levels", func() {
		var p entities.Prerequisite
		s.Require().NoError(json.Unmarshal([]byte(`{"requires_spells": {"almen": 2, "gudeskole": 1}}`), &p))
		s.Nil(p.RequiresSpellCount)
		s.Require().NotNil(p.RequiresSpellLevels)
		s.Equal(2, p.RequiresSpellLevels.Common)
		s.Equal(1, p.RequiresSpellLevels.GodSchool)
	})

	s.Run("numeric fields", func() {
		var p entities.Prerequisite
		s.Require().NoError(json.Unmarshal(
			[]byte(`{"grade": 2, "lower_level_recipes_required": 1, "lp_max_needed": 12}`), &p))
		s.Equal(2, *p.Grade)
		s.Equal(1, *p.LowerLevelRecipesRequired)
		s.Equal(12, *p.LPMaxNeeded)
	})

	s.Run("malformed values", func() {
		testCases := []string{
			`{"grade": "two"}`,
			`{"grade": 1.5}`,
			`{"requires_abilities": [1, 2]}`,
			`{"requires_ability": 7}`,
			`"ability_styrke"`,
		}
		for _, data := range testCases {
			var p entities.Prerequisite
			err := json.Unmarshal([]byte(data), &p)
			s.Error(err, data)
			s.True(errors.IsParseError(err), data)
		}
	})

	s.Run("null prerequisite on a record", func() {
		var r entities.AbilityRecord
		s.Require().NoError(json.Unmarshal([]byte(`{"id": "a", "cost": 200, "prerequisite": null}`), &r))
		s.Nil(r.Prerequisite)
	})
}

func (s *PrerequisiteTestSuite) TestDecodeYAML() {
	data := `
id: wizard_ability_grad_2
name: Trolddom Grad 2
cost: 150
type: wizard_ability
school: elementalisme
prerequisite:
  requires_ability: wizard_ability_grad_1
  grade: 2
  requires_spells:
    almen: 1
    gudeskole: 2
`
	var r entities.AbilityRecord
	s.Require().NoError(yaml.Unmarshal([]byte(data), &r))
	s.Equal("wizard_ability_grad_2", r.ID)
	s.Equal(entities.KindAbility, r.Kind())
	s.Require().NotNil(r.Prerequisite)
	s.Equal("wizard_ability_grad_1", r.Prerequisite.RequiresAbility)
	s.Equal(2, r.FilterGrade())
	s.Equal(&entities.SpellLevels{Common: 1, GodSchool: 2}, r.Prerequisite.RequiresSpellLevels)
}

func (s *PrerequisiteTestSuite) TestEncodeRoundTrip() {
	p := entities.Prerequisite{
		RequiresOneOf:       []string{"x", "y"},
		RequiresSpellLevels: &entities.SpellLevels{Common: 1, GodSchool: 3},
		Grade:               entities.IntPtr(2),
	}

	data, err := json.Marshal(p)
	s.Require().NoError(err)
	s.JSONEq(`{"requires_one_of": ["x", "y"], "requires_spells": {"almen": 1, "gudeskole": 3}, "grade": 2}`, string(data))

	var back entities.Prerequisite
	s.Require().NoError(json.Unmarshal(data, &back))
	s.Equal(p, back)
}

func (s *PrerequisiteTestSuite) TestIsEmpty() {
	var nilPrereq *entities.Prerequisite
	s.True(nilPrereq.IsEmpty())
	s.True((&entities.Prerequisite{}).IsEmpty())
	s.False((&entities.Prerequisite{LPMaxNeeded: entities.IntPtr(10)}).IsEmpty())
	s.Equal(4, nilPrereq.GradeOr(4))
}
