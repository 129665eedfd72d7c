// Package progression implements the progression orchestrator
package progression

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/metrics"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/services/progression"
)

// Event types published on the event bus
const (
	EventAbilityPurchased = "ability.purchased"
	EventAbilityRemoved   = "ability.removed"
	EventCatalogUnlocked  = "catalog.unlocked"
	EventGodSelected      = "god.selected"
	EventGrantCompleted   = "grant.completed"
)

// Config holds the dependencies for the progression orchestrator
type Config struct {
	Engine   engine.Engine
	Registry *catalog.Registry

	// Optional
	Choices  progression.ChoicePort
	EventBus events.EventBus
	Metrics  *metrics.Recorder
	Clock    clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.Registry == nil {
		vb.RequiredField("Registry")
	}

	return vb.Build()
}

// Orchestrator implements the progression.Service interface
type Orchestrator struct {
	engine   engine.Engine
	registry *catalog.Registry
	choices  progression.ChoicePort
	eventBus events.EventBus
	metrics  *metrics.Recorder
	clock    clock.Clock
}

// New creates a new progression orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &Orchestrator{
		engine:   cfg.Engine,
		registry: cfg.Registry,
		choices:  cfg.Choices,
		eventBus: cfg.EventBus,
		metrics:  cfg.Metrics,
		clock:    c,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ progression.Service = (*Orchestrator)(nil)

// Acquisition methods

// Purchase buys an ability from a catalog
func (o *Orchestrator) Purchase(ctx context.Context, input *progression.PurchaseInput) (*progression.PurchaseOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("catalogID", input.CatalogID, vb)
	errors.ValidateRequired("abilityID", input.AbilityID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.purchase(ctx, input)
	if err != nil {
		o.metrics.Rejection(err)
		slog.InfoContext(ctx, "purchase rejected",
			"character_id", input.Character.ID,
			"catalog_id", input.CatalogID,
			"ability_id", input.AbilityID,
			"reason", string(errors.GetReason(err)),
			"error", err.Error())
		return nil, err
	}
	return out, nil
}

func (o *Orchestrator) purchase(ctx context.Context, input *progression.PurchaseInput) (*progression.PurchaseOutput, error) {
	char := input.Character

	c, err := o.reachableCatalog(char, input.CatalogID)
	if err != nil {
		return nil, err
	}

	r, ok := c.Get(input.AbilityID)
	if !ok {
		return nil, errors.AbilityNotFoundf("ability %s not in catalog %s", input.AbilityID, c.ID()).
			WithMeta("ability_id", input.AbilityID).
			WithMeta("catalog_id", c.ID())
	}

	switch r.Kind() {
	case entities.KindGod:
		sel, err := o.SelectGod(ctx, &progression.SelectGodInput{
			Character: char,
			CatalogID: c.ID(),
			GodID:     r.ID,
		})
		if err != nil {
			return nil, err
		}
		return &progression.PurchaseOutput{
			Record:      r,
			RemainingEP: char.RemainingEP(),
			GodSelected: true,
			Grant:       sel.Grant,
		}, nil
	case entities.KindFree:
		class, ok := r.Type.Class()
		if !ok {
			class = c.Class()
		}
		begin, err := o.BeginGrant(ctx, &progression.BeginGrantInput{Character: char, Class: class})
		if err != nil {
			return nil, err
		}
		return &progression.PurchaseOutput{
			Record:      r,
			RemainingEP: char.RemainingEP(),
			Grant:       begin.Grant,
		}, nil
	}

	if char.Owns(r.ID) {
		return nil, errors.AlreadyOwnedf("ability %s already owned", r.ID).
			WithMeta("ability_id", r.ID)
	}

	eval, err := o.engine.Evaluate(ctx, &engine.EvaluateInput{
		Character: char,
		Catalog:   c,
		Aux:       o.registry.Others(c.ID()),
		AbilityID: r.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate ability")
	}
	if !eval.Decision.Eligible {
		return nil, errors.NotEligiblef("%s is not eligible: %s", r.ID, eval.Decision.Reason).
			WithMeta("ability_id", r.ID).
			WithMeta("rule", eval.Decision.Rule)
	}

	staged := char.Clone()
	if err := staged.AddAbility(r.ID, r.Cost); err != nil {
		return nil, err
	}
	unlocked := o.applyUnlocks(staged, r.ID)
	staged.UpdatedAt = o.clock.Now()
	char.CopyFrom(staged)

	o.metrics.Purchase(c.ID(), r.Cost)
	o.publish(ctx, EventAbilityPurchased, char, r)
	o.announceUnlocks(ctx, char, unlocked)

	slog.InfoContext(ctx, "ability purchased",
		"character_id", char.ID,
		"catalog_id", c.ID(),
		"ability_id", r.ID,
		"cost", r.Cost,
		"remaining_ep", char.RemainingEP())

	return &progression.PurchaseOutput{
		Record:      r,
		CostPaid:    r.Cost,
		RemainingEP: char.RemainingEP(),
		Unlocked:    unlocked,
	}, nil
}

// SelectGod selects the character's god once
func (o *Orchestrator) SelectGod(ctx context.Context, input *progression.SelectGodInput) (*progression.SelectGodOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	char := input.Character

	if char.HasGod() {
		return nil, errors.GodAlreadySelectedf("god %s already selected", char.SelectedGod).
			WithMeta("god_id", char.SelectedGod)
	}

	c, err := o.reachableCatalog(char, input.CatalogID)
	if err != nil {
		return nil, err
	}
	r, ok := c.Get(input.GodID)
	if !ok {
		return nil, errors.AbilityNotFoundf("god %s not in catalog %s", input.GodID, c.ID()).
			WithMeta("ability_id", input.GodID)
	}
	if r.Kind() != entities.KindGod {
		return nil, errors.InvalidArgumentf("%s is not a god", r.ID)
	}

	staged := char.Clone()
	if err := staged.SelectGod(r.ID); err != nil {
		return nil, err
	}
	staged.UpdatedAt = o.clock.Now()
	char.CopyFrom(staged)

	o.publish(ctx, EventGodSelected, char, r)
	slog.InfoContext(ctx, "god selected",
		"character_id", char.ID,
		"catalog_id", c.ID(),
		"god_id", r.ID)

	out := &progression.SelectGodOutput{GodID: r.ID}

	class := c.Class()
	if class.NeedsGod() && !char.FreeGrantUsed(class) {
		begin, err := o.BeginGrant(ctx, &progression.BeginGrantInput{Character: char, Class: class})
		switch {
		case errors.IsEmptyCandidateSet(err):
			slog.WarnContext(ctx, "no free grant candidates after god selection",
				"character_id", char.ID,
				"class", string(class))
		case err != nil:
			return nil, errors.Wrap(err, "failed to begin free grant")
		default:
			out.Grant = begin.Grant
		}
	}

	return out, nil
}

// RemoveAbility drops an owned ability, refunding EP when asked
func (o *Orchestrator) RemoveAbility(ctx context.Context, input *progression.RemoveAbilityInput) (*progression.RemoveAbilityOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	char := input.Character

	staged := char.Clone()
	removed, err := staged.RemoveAbility(input.AbilityID, input.Refund)
	if err != nil {
		return nil, err
	}
	staged.UpdatedAt = o.clock.Now()
	char.CopyFrom(staged)

	out := &progression.RemoveAbilityOutput{Removed: removed}
	if input.Refund {
		out.Refunded = removed.CostPaid
	}

	if r, _, ok := o.registry.Lookup(removed.ID); ok {
		o.publish(ctx, EventAbilityRemoved, char, r)
	}
	slog.InfoContext(ctx, "ability removed",
		"character_id", char.ID,
		"ability_id", removed.ID,
		"refunded", out.Refunded)

	return out, nil
}

// Catalog access methods

// Purchasable lists the abilities the character can buy from a reachable catalog
func (o *Orchestrator) Purchasable(ctx context.Context, input *progression.PurchasableInput) (*progression.PurchasableOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	c, err := o.reachableCatalog(input.Character, input.CatalogID)
	if err != nil {
		return nil, err
	}

	res, err := o.engine.Purchasable(ctx, &engine.PurchasableInput{
		Character: input.Character,
		Catalog:   c,
		Aux:       o.registry.Others(c.ID()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to evaluate catalog")
	}

	return &progression.PurchasableOutput{
		AbilityIDs: res.AbilityIDs,
		Records:    res.Records,
		Decisions:  res.Decisions,
	}, nil
}

// OpenCatalog lists a catalog and starts its free grant the first time a class is entered
func (o *Orchestrator) OpenCatalog(ctx context.Context, input *progression.OpenCatalogInput) (*progression.OpenCatalogOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	char := input.Character

	list, err := o.Purchasable(ctx, &progression.PurchasableInput{Character: char, CatalogID: input.CatalogID})
	if err != nil {
		return nil, err
	}

	out := &progression.OpenCatalogOutput{
		AbilityIDs: list.AbilityIDs,
		Records:    list.Records,
	}

	c, _ := o.registry.Get(input.CatalogID)
	class := c.Class()
	if !class.HasFreeGrant() || char.FreeGrantUsed(class) {
		return out, nil
	}
	if class.NeedsGod() && !char.HasGod() {
		return out, nil
	}

	begin, err := o.BeginGrant(ctx, &progression.BeginGrantInput{Character: char, Class: class})
	switch {
	case errors.IsEmptyCandidateSet(err):
		slog.WarnContext(ctx, "no free grant candidates",
			"character_id", char.ID,
			"catalog_id", c.ID(),
			"class", string(class))
	case err != nil:
		return nil, errors.Wrap(err, "failed to begin free grant")
	default:
		out.Grant = begin.Grant
	}

	return out, nil
}

// ReachableCatalogs lists the catalogs the character can enter, base catalog first
func (o *Orchestrator) ReachableCatalogs(_ context.Context, input *progression.ReachableCatalogsInput) (*progression.ReachableCatalogsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	return &progression.ReachableCatalogsOutput{CatalogIDs: input.Character.UnlockedCatalogs()}, nil
}

// Presentation methods

// Stats calculates the class stats of the reachable class catalogs
func (o *Orchestrator) Stats(ctx context.Context, input *progression.StatsInput) (*progression.StatsOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	var catalogs []*catalog.Catalog
	if input.Class != "" {
		c, ok := o.registry.ForClass(input.Class)
		if !ok {
			return nil, errors.NotFoundf("no catalog loaded for class %s", input.Class)
		}
		catalogs = append(catalogs, c)
	} else {
		catalogs = o.reachableClassCatalogs(input.Character)
	}

	res, err := o.engine.CalculateStats(ctx, &engine.CalculateStatsInput{
		Character: input.Character,
		Catalogs:  catalogs,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate stats")
	}

	return &progression.StatsOutput{Stats: res.Stats}, nil
}

// Summary builds the character sheet content
func (o *Orchestrator) Summary(ctx context.Context, input *progression.SummaryInput) (*progression.SummaryOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	base, _ := o.registry.Get(entities.BaseCatalogID)
	res, err := o.engine.Summarize(ctx, &engine.SummarizeInput{
		Character: input.Character,
		Base:      base,
		Classes:   o.reachableClassCatalogs(input.Character),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize character")
	}

	return &progression.SummaryOutput{General: res.General, Classes: res.Classes}, nil
}

// Helpers

// reachableCatalog resolves a registered catalog the character has unlocked
func (o *Orchestrator) reachableCatalog(char *entities.CharacterState, catalogID string) (*catalog.Catalog, error) {
	c, err := o.registry.MustGet(catalogID)
	if err != nil {
		return nil, err
	}
	if !char.IsUnlocked(catalogID) {
		return nil, errors.CatalogLockedf("catalog %s is not unlocked", catalogID).
			WithMeta("catalog_id", catalogID)
	}
	return c, nil
}

func (o *Orchestrator) reachableClassCatalogs(char *entities.CharacterState) []*catalog.Catalog {
	var out []*catalog.Catalog
	for _, id := range char.UnlockedCatalogs() {
		if id == entities.BaseCatalogID {
			continue
		}
		if c, ok := o.registry.Get(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// applyUnlocks opens the catalogs triggered by the new ids and returns the newly opened ones
func (o *Orchestrator) applyUnlocks(staged *entities.CharacterState, abilityIDs ...string) []string {
	var unlocked []string
	for _, id := range abilityIDs {
		if u, ok := entities.UnlockFor(id); ok && staged.Unlock(u.CatalogID) {
			unlocked = append(unlocked, u.CatalogID)
		}
	}
	return unlocked
}

func (o *Orchestrator) announceUnlocks(ctx context.Context, char *entities.CharacterState, unlocked []string) {
	for _, id := range unlocked {
		o.metrics.Unlock(id)
		slog.InfoContext(ctx, "catalog unlocked",
			"character_id", char.ID,
			"catalog_id", id)

		target := core.Entity(catalog.Empty(id, entities.ClassForCatalog(id)))
		if c, ok := o.registry.Get(id); ok {
			target = c
		}
		o.publish(ctx, EventCatalogUnlocked, char, target)
	}
}

func (o *Orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if o.eventBus == nil {
		return
	}
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.WarnContext(ctx, "failed to publish event",
			"event", eventType,
			"source_id", source.GetID(),
			"error", err.Error())
	}
}
