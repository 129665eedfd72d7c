package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// strategy is the eligibility rule of one class
type strategy func(x *evalContext, r *entities.AbilityRecord) Decision

type engine struct {
	strategies map[entities.ClassTag]strategy
}

// Config holds the engine options
type Config struct {
	// Overrides replaces the rule of specific classes, used by tests and variant rule sets
	Overrides map[entities.ClassTag]func(char *entities.CharacterState, r *entities.AbilityRecord) (bool, string)
}

// Validate validates the engine config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return nil
	}
	vb := errors.NewValidationBuilder()
	for class, fn := range cfg.Overrides {
		if fn == nil {
			vb.Fieldf("Overrides", "rule for %s cannot be nil", class)
		}
	}
	return vb.Build()
}

// New creates the eligibility engine
func New(cfg *Config) (Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	e := &engine{
		strategies: map[entities.ClassTag]strategy{
			entities.ClassGeneral:   evaluateGeneral,
			entities.ClassPaladin:   evaluateDevout(entities.ClassPaladin),
			entities.ClassPriest:    evaluateDevout(entities.ClassPriest),
			entities.ClassWarrior:   evaluateWarrior,
			entities.ClassDruid:     evaluateDruid,
			entities.ClassRunesmith: evaluateRunesmith,
			entities.ClassWitch:     evaluateWitch,
			entities.ClassWizard:    evaluateWizard,
			entities.ClassAlchemist: evaluateAlchemist,
			entities.ClassShaman:    evaluateShaman,
		},
	}

	if cfg != nil {
		for class, fn := range cfg.Overrides {
			rule := fn
			e.strategies[class] = func(x *evalContext, r *entities.AbilityRecord) Decision {
				ok, reason := rule(x.char, r)
				if ok {
					return allow("override")
				}
				return deny("override", "%s", reason)
			}
		}
	}

	return e, nil
}

func (e *engine) Purchasable(ctx context.Context, input *PurchasableInput) (*PurchasableOutput, error) {
	if input == nil || input.Character == nil || input.Catalog == nil {
		return nil, errors.InvalidArgument("character and catalog are required")
	}

	x := newEvalContext(input.Character, input.Catalog, input.Aux)
	rule := e.strategyFor(input.Catalog.Class())

	out := &PurchasableOutput{}
	for _, r := range input.Catalog.Records() {
		if x.owns(r.ID) {
			continue
		}

		d := rule(x, r)
		d.AbilityID = r.ID
		out.Decisions = append(out.Decisions, d)
		if d.Eligible {
			out.AbilityIDs = append(out.AbilityIDs, r.ID)
			out.Records = append(out.Records, r)
		}
	}

	slog.DebugContext(ctx, "evaluated catalog",
		"character_id", input.Character.ID,
		"catalog_id", input.Catalog.ID(),
		"class", string(input.Catalog.Class()),
		"purchasable", len(out.AbilityIDs),
		"evaluated", len(out.Decisions))

	return out, nil
}

func (e *engine) Evaluate(_ context.Context, input *EvaluateInput) (*EvaluateOutput, error) {
	if input == nil || input.Character == nil || input.Catalog == nil {
		return nil, errors.InvalidArgument("character and catalog are required")
	}

	r, ok := input.Catalog.Get(input.AbilityID)
	if !ok {
		return nil, errors.AbilityNotFoundf("ability %s not in catalog %s", input.AbilityID, input.Catalog.ID()).
			WithMeta("ability_id", input.AbilityID).
			WithMeta("catalog_id", input.Catalog.ID())
	}

	x := newEvalContext(input.Character, input.Catalog, input.Aux)

	var d Decision
	if x.owns(r.ID) {
		d = deny("owned", "already owned")
	} else {
		d = e.strategyFor(input.Catalog.Class())(x, r)
	}
	d.AbilityID = r.ID

	return &EvaluateOutput{Record: r, Decision: d}, nil
}

func (e *engine) strategyFor(class entities.ClassTag) strategy {
	if s, ok := e.strategies[class]; ok {
		return s
	}
	return evaluateGeneral
}

func allow(rule string) Decision {
	return Decision{Eligible: true, Rule: rule}
}

func deny(rule, format string, args ...interface{}) Decision {
	return Decision{Eligible: false, Rule: rule, Reason: fmt.Sprintf(format, args...)}
}

// evalContext is the read-only view one evaluation runs against
type evalContext struct {
	char    *entities.CharacterState
	catalog *catalog.Catalog
	aux     []*catalog.Catalog
	owned   map[string]bool
}

func newEvalContext(char *entities.CharacterState, c *catalog.Catalog, aux []*catalog.Catalog) *evalContext {
	owned := make(map[string]bool, len(char.Owned))
	for _, o := range char.Owned {
		owned[o.ID] = true
	}
	return &evalContext{char: char, catalog: c, aux: aux, owned: owned}
}

func (x *evalContext) owns(id string) bool {
	return x.owned[id]
}

func (x *evalContext) ownsAll(ids ...string) bool {
	for _, id := range ids {
		if !x.owned[id] {
			return false
		}
	}
	return true
}

func (x *evalContext) ownsAny(ids ...string) bool {
	for _, id := range ids {
		if x.owned[id] {
			return true
		}
	}
	return false
}

func (x *evalContext) missing(ids ...string) []string {
	var out []string
	for _, id := range ids {
		if !x.owned[id] {
			out = append(out, id)
		}
	}
	return out
}

// lookup resolves an id in the evaluated catalog first, then the aux catalogs
func (x *evalContext) lookup(id string) (*entities.AbilityRecord, bool) {
	if r, ok := x.catalog.Get(id); ok {
		return r, true
	}
	for _, c := range x.aux {
		if r, ok := c.Get(id); ok {
			return r, true
		}
	}
	return nil, false
}

// countOwned counts the owned records matching keep
func (x *evalContext) countOwned(keep func(*entities.AbilityRecord) bool) int {
	n := 0
	for _, o := range x.char.Owned {
		if r, ok := x.lookup(o.ID); ok && keep(r) {
			n++
		}
	}
	return n
}

// countOwnedLocal counts the owned records of the evaluated catalog matching keep
func (x *evalContext) countOwnedLocal(keep func(*entities.AbilityRecord) bool) int {
	n := 0
	for _, o := range x.char.Owned {
		if r, ok := x.catalog.Get(o.ID); ok && keep(r) {
			n++
		}
	}
	return n
}

// highestGrade is the highest grade among owned records of the school in
// the class catalog
func (x *evalContext) highestGrade(school string) int {
	best := 0
	for _, o := range x.char.Owned {
		if r, ok := x.catalog.Get(o.ID); ok && r.School == school && r.Grade > best {
			best = r.Grade
		}
	}
	return best
}

// requireAbility gates on the single required id of the prerequisite
func requireAbility(x *evalContext, r *entities.AbilityRecord) (Decision, bool) {
	if r.Prerequisite == nil || r.Prerequisite.RequiresAbility == "" {
		return Decision{}, true
	}
	if !x.owns(r.Prerequisite.RequiresAbility) {
		return deny("requires_ability", "requires %s", r.Prerequisite.RequiresAbility), false
	}
	return Decision{}, true
}

func ofTypeAndGrade(typ entities.AbilityType, grade int) func(*entities.AbilityRecord) bool {
	return func(r *entities.AbilityRecord) bool {
		return r.Type == typ && r.Grade == grade
	}
}

func ofType(typ entities.AbilityType) func(*entities.AbilityRecord) bool {
	return func(r *entities.AbilityRecord) bool {
		return r.Type == typ
	}
}
