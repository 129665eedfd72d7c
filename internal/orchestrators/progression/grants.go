package progression

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/metrics"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

// alchemist recipes offered as the first free pick
var alchemistStarters = []string{"alkymi_bloedning", "alkymi_alkymisk_analyse"}

// BeginGrant stages the free grant of a class. Nothing is applied to the
// character until CompleteGrant.
func (o *Orchestrator) BeginGrant(ctx context.Context, input *progression.BeginGrantInput) (*progression.BeginGrantOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	char := input.Character
	class := input.Class

	if !class.HasFreeGrant() || char.FreeGrantUsed(class) {
		o.metrics.Grant(string(class), metrics.GrantSkipped)
		slog.DebugContext(ctx, "free grant skipped",
			"character_id", char.ID,
			"class", string(class))
		return &progression.BeginGrantOutput{Skipped: true}, nil
	}

	c, ok := o.registry.ForClass(class)
	if !ok {
		return nil, errors.NotFoundf("no catalog loaded for class %s", class).
			WithMeta("class", string(class))
	}
	if class.NeedsGod() && !char.HasGod() {
		return nil, errors.FailedPreconditionf("%s free grant requires a god", class).
			WithMeta("class", string(class))
	}

	planner := o.plannerFor(ctx, class, char.Clone(), c)
	grant, err := progression.NewGrant(class, char.ID, c.ID(), planner)
	if err != nil {
		if errors.IsEmptyCandidateSet(err) {
			o.metrics.Grant(string(class), metrics.GrantEmpty)
			slog.WarnContext(ctx, "free grant has no candidates",
				"character_id", char.ID,
				"class", string(class))
		}
		return nil, err
	}

	return &progression.BeginGrantOutput{Grant: grant}, nil
}

// CompleteGrant applies the picks of a finished grant at no EP cost and marks the grant used
func (o *Orchestrator) CompleteGrant(ctx context.Context, input *progression.CompleteGrantInput) (*progression.CompleteGrantOutput, error) {
	if input == nil || input.Character == nil || input.Grant == nil {
		return nil, errors.InvalidArgument("character and grant are required")
	}
	char := input.Character
	grant := input.Grant

	if grant.Canceled() {
		return nil, errors.FailedPrecondition("grant was canceled")
	}
	if !grant.Done() {
		return nil, errors.FailedPrecondition("grant has unanswered steps")
	}
	if grant.CharacterID != char.ID {
		return nil, errors.InvalidArgumentf("grant belongs to character %s", grant.CharacterID)
	}
	if char.FreeGrantUsed(grant.Class) {
		return nil, errors.FailedPreconditionf("%s free grant already used", grant.Class).
			WithMeta("class", string(grant.Class))
	}

	staged := char.Clone()
	var granted []string
	for _, r := range grant.Picks() {
		if staged.Owns(r.ID) {
			continue
		}
		if err := staged.AddAbility(r.ID, 0); err != nil {
			return nil, err
		}
		granted = append(granted, r.ID)
	}
	staged.MarkFreeGrantUsed(grant.Class)
	unlocked := o.applyUnlocks(staged, granted...)
	staged.UpdatedAt = o.clock.Now()
	char.CopyFrom(staged)

	o.metrics.Grant(string(grant.Class), metrics.GrantCompleted)
	for _, r := range grant.Picks() {
		o.publish(ctx, EventGrantCompleted, char, r)
	}
	o.announceUnlocks(ctx, char, unlocked)

	slog.InfoContext(ctx, "free grant completed",
		"character_id", char.ID,
		"class", string(grant.Class),
		"granted", strings.Join(granted, ","))

	return &progression.CompleteGrantOutput{Granted: granted, Unlocked: unlocked}, nil
}

// CancelGrant drops a staged grant
func (o *Orchestrator) CancelGrant(ctx context.Context, input *progression.CancelGrantInput) (*progression.CancelGrantOutput, error) {
	if input == nil || input.Grant == nil {
		return nil, errors.InvalidArgument("grant is required")
	}

	input.Grant.Cancel()
	o.metrics.Grant(string(input.Grant.Class), metrics.GrantCanceled)
	slog.DebugContext(ctx, "free grant canceled",
		"character_id", input.Grant.CharacterID,
		"class", string(input.Grant.Class))

	return &progression.CancelGrantOutput{}, nil
}

// RunGrant runs a whole grant through the choice port
func (o *Orchestrator) RunGrant(ctx context.Context, input *progression.RunGrantInput) (*progression.RunGrantOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if o.choices == nil {
		return nil, errors.FailedPrecondition("no choice port configured")
	}

	begin, err := o.BeginGrant(ctx, &progression.BeginGrantInput{Character: input.Character, Class: input.Class})
	if err != nil {
		return nil, err
	}
	if begin.Skipped {
		return &progression.RunGrantOutput{Skipped: true}, nil
	}
	grant := begin.Grant

	for step := grant.Step(); step != nil; step = grant.Step() {
		picked, err := o.choices.Choose(ctx, &progression.ChoiceRequest{
			Prompt:     step.Prompt,
			Candidates: step.Candidates,
			Optional:   step.Optional,
		})
		if err == nil && picked == nil && !step.Optional {
			err = errors.ChoiceCanceled("required choice left empty")
		}
		if err != nil {
			_, _ = o.CancelGrant(ctx, &progression.CancelGrantInput{Grant: grant})
			return nil, err
		}

		if picked == nil {
			err = grant.Skip()
		} else {
			err = grant.Choose(picked.ID)
		}
		if err != nil {
			if !grant.Canceled() {
				_, _ = o.CancelGrant(ctx, &progression.CancelGrantInput{Grant: grant})
			}
			return nil, err
		}
	}

	done, err := o.CompleteGrant(ctx, &progression.CompleteGrantInput{Character: input.Character, Grant: grant})
	if err != nil {
		return nil, err
	}

	return &progression.RunGrantOutput{Granted: done.Granted}, nil
}

// Grant planners

type plannerFunc func(picks []*entities.AbilityRecord) (*progression.GrantStep, error)

func (f plannerFunc) Next(picks []*entities.AbilityRecord) (*progression.GrantStep, error) {
	return f(picks)
}

// grantContext is the snapshot a planner computes candidates from
type grantContext struct {
	ctx     context.Context
	engine  engine.Engine
	char    *entities.CharacterState
	catalog *catalog.Catalog
	aux     []*catalog.Catalog
}

// records returns the unowned, unpicked records matching keep
func (g *grantContext) records(picks []*entities.AbilityRecord, keep func(*entities.AbilityRecord) bool) []*entities.AbilityRecord {
	picked := make(map[string]bool, len(picks))
	for _, p := range picks {
		picked[p.ID] = true
	}
	return g.catalog.Filter(func(r *entities.AbilityRecord) bool {
		return !g.char.Owns(r.ID) && !picked[r.ID] && keep(r)
	})
}

// eligible returns the records the engine allows that match keep
func (g *grantContext) eligible(keep func(*entities.AbilityRecord) bool) ([]*entities.AbilityRecord, error) {
	res, err := g.engine.Purchasable(g.ctx, &engine.PurchasableInput{
		Character: g.char,
		Catalog:   g.catalog,
		Aux:       g.aux,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate grant candidates")
	}

	var out []*entities.AbilityRecord
	for _, r := range res.Records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

func step(prompt string, candidates []*entities.AbilityRecord, optional bool) *progression.GrantStep {
	return &progression.GrantStep{Prompt: prompt, Candidates: candidates, Optional: optional}
}

func anyRecord(*entities.AbilityRecord) bool { return true }

func ofType(t entities.AbilityType) func(*entities.AbilityRecord) bool {
	return func(r *entities.AbilityRecord) bool { return r.Type == t }
}

func firstGrade(r *entities.AbilityRecord) bool {
	return r.Prerequisite != nil && r.Prerequisite.Grade != nil && *r.Prerequisite.Grade == 1
}

func (o *Orchestrator) plannerFor(ctx context.Context, class entities.ClassTag, char *entities.CharacterState, c *catalog.Catalog) progression.GrantPlanner {
	g := &grantContext{
		ctx:     ctx,
		engine:  o.engine,
		char:    char,
		catalog: c,
		aux:     o.registry.Others(c.ID()),
	}

	switch class {
	case entities.ClassAlchemist:
		return alchemistPlanner(g)
	case entities.ClassPriest, entities.ClassPaladin:
		return devoutPlanner(g, class)
	case entities.ClassWarrior:
		return warriorPlanner(g)
	case entities.ClassWitch:
		return witchPlanner(g)
	case entities.ClassWizard:
		return wizardPlanner(g)
	default:
		// druid and runesmith pick one eligible spell
		return spellPlanner(g, class)
	}
}

func alchemistPlanner(g *grantContext) progression.GrantPlanner {
	return plannerFunc(func(picks []*entities.AbilityRecord) (*progression.GrantStep, error) {
		switch len(picks) {
		case 0:
			starters := g.records(picks, func(r *entities.AbilityRecord) bool {
				for _, id := range alchemistStarters {
					if r.ID == id {
						return true
					}
				}
				return false
			})
			return step("Choose a free alchemist recipe", starters, false), nil
		case 1:
			return step("Choose a free grade 1 recipe", g.records(picks, firstGrade), true), nil
		default:
			return nil, nil
		}
	})
}

func devoutPlanner(g *grantContext, class entities.ClassTag) progression.GrantPlanner {
	marker := string(class) + "_spell"
	school := g.char.GodSchool()
	keep := func(r *entities.AbilityRecord) bool {
		if !strings.Contains(r.ID, marker) {
			return false
		}
		if r.School != entities.SchoolCommon && r.School != school {
			return false
		}
		return r.Prerequisite.IsEmpty() || firstGrade(r)
	}

	return plannerFunc(func(picks []*entities.AbilityRecord) (*progression.GrantStep, error) {
		switch len(picks) {
		case 0:
			return step(fmt.Sprintf("Choose a free %s spell", class), g.records(picks, keep), false), nil
		case 1:
			return step(fmt.Sprintf("Choose a second free %s spell", class), g.records(picks, keep), true), nil
		default:
			return nil, nil
		}
	})
}

func warriorPlanner(g *grantContext) progression.GrantPlanner {
	return plannerFunc(func(picks []*entities.AbilityRecord) (*progression.GrantStep, error) {
		switch len(picks) {
		case 0:
			candidates, err := g.eligible(anyRecord)
			if err != nil {
				return nil, err
			}
			return step("Choose a free warrior ability", candidates, false), nil
		case 1:
			general := g.records(picks, func(r *entities.AbilityRecord) bool {
				return r.Grade == 1 && r.Discipline == entities.DisciplineGeneral
			})
			return step("Choose a free general discipline ability", general, false), nil
		case 2:
			discipline := picks[0].Discipline
			same := g.records(picks, func(r *entities.AbilityRecord) bool {
				return r.Grade == 1 && r.Discipline == discipline
			})
			return step("Choose a free ability of your discipline", same, false), nil
		default:
			return nil, nil
		}
	})
}

func witchPlanner(g *grantContext) progression.GrantPlanner {
	spell := entities.ClassWitch.SpellType()
	return plannerFunc(func(picks []*entities.AbilityRecord) (*progression.GrantStep, error) {
		if len(picks) > 0 {
			return nil, nil
		}
		candidates := g.records(picks, func(r *entities.AbilityRecord) bool {
			return r.Type == spell && r.Grade == 1
		})
		// the witch grant needs a real choice
		if len(candidates) < 2 {
			return nil, errors.EmptyCandidateSetf("witch free grant needs two grade 1 spells, found %d", len(candidates)).
				WithMeta("class", string(entities.ClassWitch))
		}
		return step("Choose a free witch spell", candidates, false), nil
	})
}

func wizardPlanner(g *grantContext) progression.GrantPlanner {
	spell := entities.ClassWizard.SpellType()
	return plannerFunc(func(picks []*entities.AbilityRecord) (*progression.GrantStep, error) {
		switch len(picks) {
		case 0:
			schools := g.records(picks, func(r *entities.AbilityRecord) bool {
				return engine.IsWizardSchoolChoice(r.ID)
			})
			return step("Choose a school", schools, false), nil
		case 1:
			common := g.records(picks, func(r *entities.AbilityRecord) bool {
				return r.Type == spell && r.Grade == 1 && r.IsCommonSchool()
			})
			return step("Choose a free common spell", common, false), nil
		case 2:
			school := wizardSchool(picks[0])
			own := g.records(picks, func(r *entities.AbilityRecord) bool {
				return r.Type == spell && r.Grade == 1 && r.School == school
			})
			return step(fmt.Sprintf("Choose a free %s spell", school), own, false), nil
		default:
			return nil, nil
		}
	})
}

// wizardSchool is the school a school-choice record opens
func wizardSchool(r *entities.AbilityRecord) string {
	if r.School != "" && r.School != entities.SchoolCommon {
		return r.School
	}
	return strings.TrimPrefix(r.ID, "wizard_level_1_")
}

func spellPlanner(g *grantContext, class entities.ClassTag) progression.GrantPlanner {
	return plannerFunc(func(picks []*entities.AbilityRecord) (*progression.GrantStep, error) {
		if len(picks) > 0 {
			return nil, nil
		}
		candidates, err := g.eligible(ofType(class.SpellType()))
		if err != nil {
			return nil, err
		}
		return step(fmt.Sprintf("Choose a free %s spell", class), candidates, false), nil
	})
}
