package progression_test

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	orchestrator "github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
	"github.com/KirkDiggler/rpg-progression/internal/testutils/builders"
)

func pickFirst(_ context.Context, req *progression.ChoiceRequest) (*entities.AbilityRecord, error) {
	if len(req.Candidates) == 0 {
		return nil, nil
	}
	return req.Candidates[0], nil
}

func candidateIDs(step *progression.GrantStep) []string {
	ids := make([]string, 0, len(step.Candidates))
	for _, c := range step.Candidates {
		ids = append(ids, c.ID)
	}
	return ids
}

// orchestratorFor builds an orchestrator over the given catalogs only
func (s *OrchestratorTestSuite) orchestratorFor(catalogs ...*catalog.Catalog) *orchestrator.Orchestrator {
	e, err := engine.New(nil)
	s.Require().NoError(err)

	o, err := orchestrator.New(&orchestrator.Config{
		Engine:   e,
		Registry: catalog.NewRegistry(catalogs...),
		Choices:  s.mockChoices,
		Metrics:  s.recorder,
		Clock:    s.mockClock,
	})
	s.Require().NoError(err)
	return o
}

func (s *OrchestratorTestSuite) warriorCharacter() *entities.CharacterState {
	return builders.NewCharacterBuilder().
		WithOwned("ability_kamptraening", "ability_ekstra_livspoint_1", "ability_styrke").
		Build()
}

func (s *OrchestratorTestSuite) TestRunGrant_Warrior() {
	char := s.warriorCharacter()
	spent := char.SpentEP

	var prompts [][]string
	s.mockChoices.EXPECT().
		Choose(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *progression.ChoiceRequest) (*entities.AbilityRecord, error) {
			var ids []string
			for _, c := range req.Candidates {
				ids = append(ids, c.ID)
			}
			prompts = append(prompts, ids)
			return pickFirst(ctx, req)
		}).
		Times(3)

	out, err := s.orchestrator.RunGrant(s.ctx, &progression.RunGrantInput{Character: char, Class: entities.ClassWarrior})
	s.Require().NoError(err)

	s.Equal([][]string{
		{"warrior_ability_level_1_strength"},
		{"warrior_spell_overlevelsesinstinkt"},
		{"warrior_spell_muskelbundt"},
	}, prompts)
	s.Equal([]string{
		"warrior_ability_level_1_strength",
		"warrior_spell_overlevelsesinstinkt",
		"warrior_spell_muskelbundt",
	}, out.Granted)
	s.Equal(spent, char.SpentEP)
	s.True(char.FreeGrantUsed(entities.ClassWarrior))
	for _, id := range out.Granted {
		paid, ok := char.CostPaid(id)
		s.True(ok)
		s.Equal(0, paid)
	}

	s.Run("second run is a no-op", func() {
		before := char.Clone()

		again, err := s.orchestrator.RunGrant(s.ctx, &progression.RunGrantInput{Character: char, Class: entities.ClassWarrior})
		s.Require().NoError(err)

		s.True(again.Skipped)
		s.Empty(again.Granted)
		s.Equal(before, char)
	})
}

func (s *OrchestratorTestSuite) TestRunGrant_Canceled() {
	char := s.warriorCharacter()
	before := char.Clone()

	gomock.InOrder(
		s.mockChoices.EXPECT().Choose(gomock.Any(), gomock.Any()).DoAndReturn(pickFirst),
		s.mockChoices.EXPECT().Choose(gomock.Any(), gomock.Any()).Return(nil, errors.ChoiceCanceled("closed")),
	)

	_, err := s.orchestrator.RunGrant(s.ctx, &progression.RunGrantInput{Character: char, Class: entities.ClassWarrior})

	s.Require().Error(err)
	s.True(errors.IsChoiceCanceled(err))
	s.True(errors.IsCanceled(err))
	s.Equal(before, char)
	s.False(char.FreeGrantUsed(entities.ClassWarrior))
}

func (s *OrchestratorTestSuite) TestRunGrant_RequiredChoiceSkipped() {
	char := s.warriorCharacter()
	before := char.Clone()

	s.mockChoices.EXPECT().Choose(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := s.orchestrator.RunGrant(s.ctx, &progression.RunGrantInput{Character: char, Class: entities.ClassWarrior})

	s.Require().Error(err)
	s.True(errors.IsChoiceCanceled(err))
	s.Equal(before, char)
}

func (s *OrchestratorTestSuite) TestBeginGrant() {
	s.Run("shaman has no grant", func() {
		out, err := s.orchestrator.BeginGrant(s.ctx, &progression.BeginGrantInput{
			Character: builders.NewCharacterBuilder().Build(),
			Class:     entities.ClassShaman,
		})
		s.Require().NoError(err)
		s.True(out.Skipped)
		s.Nil(out.Grant)
	})

	s.Run("owned namespace marks the grant used", func() {
		char := builders.NewCharacterBuilder().WithOwned("druid_spell_rod").Build()

		out, err := s.orchestrator.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassDruid})
		s.Require().NoError(err)
		s.True(out.Skipped)
	})

	s.Run("witch needs two grade one spells", func() {
		char := builders.NewCharacterBuilder().Build()
		before := char.Clone()

		_, err := s.orchestrator.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassWitch})

		s.Require().Error(err)
		s.True(errors.IsEmptyCandidateSet(err))
		s.Equal(before, char)
	})

	s.Run("priest needs a god", func() {
		_, err := s.orchestrator.BeginGrant(s.ctx, &progression.BeginGrantInput{
			Character: builders.NewCharacterBuilder().Build(),
			Class:     entities.ClassPriest,
		})

		s.Require().Error(err)
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("nothing mutates before completion", func() {
		char := builders.NewCharacterBuilder().Build()
		before := char.Clone()

		out, err := s.orchestrator.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassDruid})
		s.Require().NoError(err)
		s.Require().NoError(out.Grant.Choose("druid_spell_blad"))
		s.True(out.Grant.Done())

		s.Equal(before, char)

		_, err = s.orchestrator.CancelGrant(s.ctx, &progression.CancelGrantInput{Grant: out.Grant})
		s.Require().NoError(err)

		_, err = s.orchestrator.CompleteGrant(s.ctx, &progression.CompleteGrantInput{Character: char, Grant: out.Grant})
		s.Require().Error(err)
		s.Equal(before, char)
	})
}

func (s *OrchestratorTestSuite) TestWizardGrant() {
	char := builders.NewCharacterBuilder().Build()

	out, err := s.orchestrator.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassWizard})
	s.Require().NoError(err)

	grant := out.Grant
	s.Len(grant.Step().Candidates, 2)

	s.Run("a school without spells ends the grant", func() {
		other, err := s.orchestrator.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassWizard})
		s.Require().NoError(err)

		s.Require().NoError(other.Grant.Choose("wizard_level_1_mentalisme"))
		err = other.Grant.Choose("wizard_spell_lys")

		s.Require().Error(err)
		s.True(errors.IsEmptyCandidateSet(err))
		s.True(other.Grant.Canceled())
	})

	s.Require().NoError(grant.Choose("wizard_level_1_elementalisme"))
	s.Require().NoError(grant.Choose("wizard_spell_lys"))
	s.Require().NoError(grant.Choose("wizard_spell_ild"))
	s.True(grant.Done())

	done, err := s.orchestrator.CompleteGrant(s.ctx, &progression.CompleteGrantInput{Character: char, Grant: grant})
	s.Require().NoError(err)
	s.Equal([]string{"wizard_level_1_elementalisme", "wizard_spell_lys", "wizard_spell_ild"}, done.Granted)
	s.True(char.FreeGrantUsed(entities.ClassWizard))
}

func (s *OrchestratorTestSuite) TestOpenCatalog() {
	char := builders.NewCharacterBuilder().WithOwned("ability_vogter_af_naturens_sjael").Build()

	out, err := s.orchestrator.OpenCatalog(s.ctx, &progression.OpenCatalogInput{Character: char, CatalogID: "druide"})
	s.Require().NoError(err)

	s.Contains(out.AbilityIDs, "druid_spell_rod")
	s.Require().NotNil(out.Grant)
	s.Equal(entities.ClassDruid, out.Grant.Class)

	s.Require().NoError(out.Grant.Choose("druid_spell_rod"))
	_, err = s.orchestrator.CompleteGrant(s.ctx, &progression.CompleteGrantInput{Character: char, Grant: out.Grant})
	s.Require().NoError(err)

	s.Run("no grant the second time", func() {
		again, err := s.orchestrator.OpenCatalog(s.ctx, &progression.OpenCatalogInput{Character: char, CatalogID: "druide"})
		s.Require().NoError(err)
		s.Nil(again.Grant)
	})

	s.Run("priest catalog waits for a god", func() {
		priest := builders.NewCharacterBuilder().WithOwned("ability_hellig_ed").Build()

		out, err := s.orchestrator.OpenCatalog(s.ctx, &progression.OpenCatalogInput{Character: priest, CatalogID: "praest"})
		s.Require().NoError(err)
		s.Nil(out.Grant)
		s.Equal([]string{"god_sol", "god_maane"}, out.AbilityIDs)
	})
}

func (s *OrchestratorTestSuite) TestPurchase_FreeMarker() {
	char := builders.NewCharacterBuilder().WithOwned("ability_vogter_af_naturens_sjael").Build()
	before := char.Clone()

	out, err := s.orchestrator.Purchase(s.ctx, &progression.PurchaseInput{
		Character: char,
		CatalogID: "druide",
		AbilityID: "druid_free",
	})
	s.Require().NoError(err)

	s.Require().NotNil(out.Grant)
	s.Equal(before, char)
	s.False(char.Owns("druid_free"))
}

func (s *OrchestratorTestSuite) TestAlchemistGrant() {
	o := s.orchestratorFor(builders.NewCatalogBuilder("alkymi", entities.ClassAlchemist).
		With(
			builders.NewAbilityRecordBuilder("alkymi_bloedning").WithPrerequisiteGrade(1).WithCost(20),
			builders.NewAbilityRecordBuilder("alkymi_alkymisk_analyse").WithPrerequisiteGrade(1).WithCost(20),
			builders.NewAbilityRecordBuilder("alkymi_jernpulver").WithPrerequisiteGrade(1).WithCost(20),
			builders.NewAbilityRecordBuilder("alkymi_eliksir").WithPrerequisiteGrade(2).
				WithLowerLevelRecipes(1).WithCost(40),
			builders.NewAbilityRecordBuilder("alkymi_mester").WithCost(60),
		).
		Build())

	s.Run("starter then an optional grade 1 recipe", func() {
		char := builders.NewCharacterBuilder().Build()

		out, err := o.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassAlchemist})
		s.Require().NoError(err)

		first := out.Grant.Step()
		s.Require().NotNil(first)
		s.False(first.Optional)
		s.Equal([]string{"alkymi_bloedning", "alkymi_alkymisk_analyse"}, candidateIDs(first))

		s.Require().NoError(out.Grant.Choose("alkymi_alkymisk_analyse"))

		second := out.Grant.Step()
		s.Require().NotNil(second)
		s.True(second.Optional)
		s.Equal([]string{"alkymi_bloedning", "alkymi_jernpulver"}, candidateIDs(second))

		s.Require().NoError(out.Grant.Choose("alkymi_jernpulver"))
		s.True(out.Grant.Done())

		done, err := o.CompleteGrant(s.ctx, &progression.CompleteGrantInput{Character: char, Grant: out.Grant})
		s.Require().NoError(err)
		s.Equal([]string{"alkymi_alkymisk_analyse", "alkymi_jernpulver"}, done.Granted)
		s.Equal(0, char.SpentEP)
		s.True(char.FreeGrantUsed(entities.ClassAlchemist))
	})

	s.Run("second recipe can be skipped", func() {
		char := builders.NewCharacterBuilder().Build()

		out, err := o.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassAlchemist})
		s.Require().NoError(err)
		s.Require().NoError(out.Grant.Choose("alkymi_bloedning"))
		s.Require().NoError(out.Grant.Skip())
		s.True(out.Grant.Done())

		done, err := o.CompleteGrant(s.ctx, &progression.CompleteGrantInput{Character: char, Grant: out.Grant})
		s.Require().NoError(err)
		s.Equal([]string{"alkymi_bloedning"}, done.Granted)
		s.False(char.Owns("alkymi_jernpulver"))
	})

	s.Run("an owned recipe marks the grant used", func() {
		char := builders.NewCharacterBuilder().WithOwned("alkymi_bloedning").Build()

		out, err := o.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassAlchemist})
		s.Require().NoError(err)
		s.True(out.Skipped)
		s.Nil(out.Grant)
	})
}

func (s *OrchestratorTestSuite) TestPaladinGrant() {
	o := s.orchestratorFor(builders.NewCatalogBuilder("paladin", entities.ClassPaladin).
		With(
			builders.NewAbilityRecordBuilder("god_sol").WithType("paladin_god"),
			builders.NewAbilityRecordBuilder("god_maane").WithType("paladin_god"),
			builders.NewAbilityRecordBuilder("paladin_spell_lys").WithType("paladin_spell").
				WithSchool(entities.SchoolCommon).WithGrade(1).WithCost(30),
			builders.NewAbilityRecordBuilder("paladin_spell_solskjold").WithType("paladin_spell").
				WithSchool("sol").WithPrerequisiteGrade(1).WithCost(30),
			builders.NewAbilityRecordBuilder("paladin_spell_maaneskin").WithType("paladin_spell").
				WithSchool("maane").WithGrade(1).WithCost(30),
			builders.NewAbilityRecordBuilder("paladin_spell_solstorm").WithType("paladin_spell").
				WithSchool("sol").WithPrerequisiteGrade(2).WithCost(60),
			builders.NewAbilityRecordBuilder("paladin_ability_ed").WithType("paladin_ability").
				WithSchool(entities.SchoolCommon).WithCost(30),
		).
		Build())

	s.Run("common and god school spells", func() {
		char := builders.NewCharacterBuilder().WithGod("god_sol").Build()

		out, err := o.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassPaladin})
		s.Require().NoError(err)

		first := out.Grant.Step()
		s.Require().NotNil(first)
		s.False(first.Optional)
		s.Equal([]string{"paladin_spell_lys", "paladin_spell_solskjold"}, candidateIDs(first))

		s.Require().NoError(out.Grant.Choose("paladin_spell_lys"))

		second := out.Grant.Step()
		s.Require().NotNil(second)
		s.True(second.Optional)
		s.Equal([]string{"paladin_spell_solskjold"}, candidateIDs(second))

		s.Require().NoError(out.Grant.Skip())

		done, err := o.CompleteGrant(s.ctx, &progression.CompleteGrantInput{Character: char, Grant: out.Grant})
		s.Require().NoError(err)
		s.Equal([]string{"paladin_spell_lys"}, done.Granted)
		s.Equal(0, char.SpentEP)
		s.False(char.Owns("paladin_spell_maaneskin"))
		s.True(char.FreeGrantUsed(entities.ClassPaladin))
	})

	s.Run("other god school", func() {
		char := builders.NewCharacterBuilder().WithGod("god_maane").Build()

		out, err := o.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassPaladin})
		s.Require().NoError(err)
		s.Equal([]string{"paladin_spell_lys", "paladin_spell_maaneskin"}, candidateIDs(out.Grant.Step()))
	})

	s.Run("no god leaves the character untouched", func() {
		char := builders.NewCharacterBuilder().WithOwned("ability_guddommelig_vassal").Build()
		before := char.Clone()

		out, err := o.BeginGrant(s.ctx, &progression.BeginGrantInput{Character: char, Class: entities.ClassPaladin})

		s.Require().Error(err)
		s.Nil(out)
		s.True(errors.IsFailedPrecondition(err))
		s.Equal(before, char)
		s.False(char.FreeGrantUsed(entities.ClassPaladin))
	})
}

func (s *OrchestratorTestSuite) TestRunesmithGrant() {
	o := s.orchestratorFor(builders.NewCatalogBuilder("runesmed", entities.ClassRunesmith).
		With(
			builders.NewAbilityRecordBuilder("runesmith_spell_ild").WithType("runesmith_spell").WithGrade(1).WithCost(30),
			builders.NewAbilityRecordBuilder("runesmith_spell_flamme").WithType("runesmith_spell").WithGrade(2).
				RequiresAbility("runesmith_spell_ild").WithCost(50),
			builders.NewAbilityRecordBuilder("runesmith_spell_jord").WithType("runesmith_spell").WithGrade(1).WithCost(30),
			builders.NewAbilityRecordBuilder("runesmith_ability_smedje").WithType("runesmith_ability").WithCost(40),
		).
		Build())
	char := builders.NewCharacterBuilder().Build()

	var prompts [][]string
	s.mockChoices.EXPECT().
		Choose(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req *progression.ChoiceRequest) (*entities.AbilityRecord, error) {
			s.False(req.Optional)
			var ids []string
			for _, c := range req.Candidates {
				ids = append(ids, c.ID)
			}
			prompts = append(prompts, ids)
			return req.Candidates[1], nil
		})

	out, err := o.RunGrant(s.ctx, &progression.RunGrantInput{Character: char, Class: entities.ClassRunesmith})
	s.Require().NoError(err)

	s.Equal([][]string{{"runesmith_spell_ild", "runesmith_spell_jord"}}, prompts)
	s.Equal([]string{"runesmith_spell_jord"}, out.Granted)
	s.Equal(0, char.SpentEP)
	paid, ok := char.CostPaid("runesmith_spell_jord")
	s.True(ok)
	s.Equal(0, paid)
	s.True(char.FreeGrantUsed(entities.ClassRunesmith))
}
