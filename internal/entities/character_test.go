package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type CharacterStateTestSuite struct {
	suite.Suite
	char *entities.CharacterState
}

func TestCharacterStateSuite(t *testing.T) {
	suite.Run(t, new(CharacterStateTestSuite))
}

func (s *CharacterStateTestSuite) SetupTest() {
	s.char = entities.NewCharacterState("char_1", "Ragnhild", "menneske")
}

func (s *CharacterStateTestSuite) TestDefaults() {
	s.Equal(entities.DefaultTotalEP, s.char.TotalEP)
	s.Equal(1000, s.char.RemainingEP())
	s.True(s.char.IsUnlocked(entities.BaseCatalogID))
	s.Equal([]string{entities.BaseCatalogID}, s.char.UnlockedCatalogs())
	s.Equal("char_1", s.char.GetID())
	s.Equal("character", s.char.GetType())
}

func (s *CharacterStateTestSuite) TestAddAbility() {
	s.Run("debits the cost", func() {
		s.Require().NoError(s.char.AddAbility("a", 200))
		s.Equal(800, s.char.RemainingEP())
		s.True(s.char.Owns("a"))

		paid, ok := s.char.CostPaid("a")
		s.True(ok)
		s.Equal(200, paid)
	})

	s.Run("rejects a second purchase", func() {
		err := s.char.AddAbility("a", 0)
		s.True(errors.IsAlreadyOwned(err))
		s.Equal(800, s.char.RemainingEP())
		s.Len(s.char.Owned, 1)
	})

	s.Run("rejects a cost above the remaining EP", func() {
		err := s.char.AddAbility("b", 801)
		s.True(errors.IsInsufficientEP(err))
		s.False(s.char.Owns("b"))
		s.Equal(200, s.char.SpentEP)
	})

	s.Run("accepts the exact remaining EP", func() {
		s.Require().NoError(s.char.AddAbility("c", 800))
		s.Equal(0, s.char.RemainingEP())
		s.LessOrEqual(s.char.SpentEP, s.char.TotalEP)
	})
}

func (s *CharacterStateTestSuite) TestRemoveAbility() {
	s.Require().NoError(s.char.AddAbility("a", 200))
	s.Require().NoError(s.char.AddAbility("b", 100))

	s.Run("without refund keeps EP spent", func() {
		removed, err := s.char.RemoveAbility("a", false)
		s.Require().NoError(err)
		s.Equal(200, removed.CostPaid)
		s.False(s.char.Owns("a"))
		s.Equal(300, s.char.SpentEP)
	})

	s.Run("with refund returns the cost paid", func() {
		_, err := s.char.RemoveAbility("b", true)
		s.Require().NoError(err)
		s.Equal(200, s.char.SpentEP)
	})

	s.Run("missing ability", func() {
		_, err := s.char.RemoveAbility("zzz", true)
		s.True(errors.IsNotFound(err))
	})
}

func (s *CharacterStateTestSuite) TestSelectGodIsWriteOnce() {
	s.Require().NoError(s.char.SelectGod("god_sol"))
	s.Equal("sol", s.char.GodSchool())

	err := s.char.SelectGod("god_maane")
	s.True(errors.IsGodAlreadySelected(err))

	err = s.char.SelectGod("god_sol")
	s.True(errors.IsGodAlreadySelected(err))
	s.Equal("god_sol", s.char.SelectedGod)
}

func (s *CharacterStateTestSuite) TestFreeGrantGuards() {
	s.False(s.char.FreeGrantUsed(entities.ClassDruid))

	s.char.MarkFreeGrantUsed(entities.ClassDruid)
	s.True(s.char.FreeGrantUsed(entities.ClassDruid))

	s.Require().NoError(s.char.AddAbility("alkymi_bloedning", 0))
	s.True(s.char.FreeGrantUsed(entities.ClassAlchemist))
	s.False(s.char.FreeGrantUsed(entities.ClassWizard))
}

func (s *CharacterStateTestSuite) TestUnlockIsMonotonic() {
	s.True(s.char.Unlock("kriger"))
	s.False(s.char.Unlock("kriger"))
	s.True(s.char.IsUnlocked("kriger"))
	s.Equal([]string{entities.BaseCatalogID, "kriger"}, s.char.UnlockedCatalogs())
}

func (s *CharacterStateTestSuite) TestRebuildDerived() {
	s.char.Owned = []entities.OwnedAbility{
		{ID: "ability_kamptraening", CostPaid: 100},
		{ID: "warrior_spell_camouflage"},
		{ID: "ability_skyggepagt", CostPaid: 50},
	}
	s.char.FreeGrants = nil
	s.char.Unlocked = nil

	s.char.RebuildDerived()

	s.True(s.char.FreeGrants[entities.ClassWarrior])
	s.False(s.char.FreeGrants[entities.ClassWitch])
	s.True(s.char.IsUnlocked("kriger"))
	s.True(s.char.IsUnlocked("heks"))
	s.False(s.char.IsUnlocked("druide"))
}

func (s *CharacterStateTestSuite) TestCloneIsIndependent() {
	s.Require().NoError(s.char.AddAbility("a", 10))
	clone := s.char.Clone()

	s.Require().NoError(clone.AddAbility("b", 10))
	clone.Unlock("heks")
	clone.MarkFreeGrantUsed(entities.ClassWitch)

	s.False(s.char.Owns("b"))
	s.False(s.char.IsUnlocked("heks"))
	s.False(s.char.FreeGrants[entities.ClassWitch])

	s.char.CopyFrom(clone)
	s.True(s.char.Owns("b"))
	s.Equal(20, s.char.SpentEP)
}
