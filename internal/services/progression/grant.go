package progression

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// GrantStep is one pick of a free grant
type GrantStep struct {
	Prompt     string
	Candidates []*entities.AbilityRecord
	Optional   bool
}

// GrantPlanner computes the next step of a grant from the picks so far.
// It returns nil when the grant has no further steps.
type GrantPlanner interface {
	Next(picks []*entities.AbilityRecord) (*GrantStep, error)
}

// Grant is a staged free grant. Picks are collected here and applied to the
// character only when the grant is completed.
type Grant struct {
	Class       entities.ClassTag
	CharacterID string
	CatalogID   string

	planner  GrantPlanner
	picks    []*entities.AbilityRecord
	step     *GrantStep
	canceled bool
}

// NewGrant starts a grant at its first step
func NewGrant(class entities.ClassTag, characterID, catalogID string, planner GrantPlanner) (*Grant, error) {
	if planner == nil {
		return nil, errors.InvalidArgument("planner is required")
	}

	g := &Grant{
		Class:       class,
		CharacterID: characterID,
		CatalogID:   catalogID,
		planner:     planner,
	}
	if err := g.advance(); err != nil {
		return nil, err
	}
	return g, nil
}

// Step returns the current step, nil once the grant is done
func (g *Grant) Step() *GrantStep {
	return g.step
}

// Done reports whether every step has been answered
func (g *Grant) Done() bool {
	return g.step == nil && !g.canceled
}

// Canceled reports whether the grant was dropped
func (g *Grant) Canceled() bool {
	return g.canceled
}

// Picks returns the chosen records in pick order
func (g *Grant) Picks() []*entities.AbilityRecord {
	out := make([]*entities.AbilityRecord, len(g.picks))
	copy(out, g.picks)
	return out
}

// PickIDs returns the ids of the chosen records
func (g *Grant) PickIDs() []string {
	out := make([]string, 0, len(g.picks))
	for _, p := range g.picks {
		out = append(out, p.ID)
	}
	return out
}

// Choose answers the current step with one of its candidates
func (g *Grant) Choose(abilityID string) error {
	if g.canceled {
		return errors.FailedPrecondition("grant was canceled")
	}
	if g.step == nil {
		return errors.FailedPrecondition("grant has no open step")
	}

	for _, c := range g.step.Candidates {
		if c.ID == abilityID {
			g.picks = append(g.picks, c)
			return g.advance()
		}
	}

	return errors.InvalidArgumentf("%s is not a candidate of this step", abilityID).
		WithMeta("ability_id", abilityID)
}

// Skip leaves an optional step unanswered and ends the grant
func (g *Grant) Skip() error {
	if g.step == nil || g.canceled {
		return errors.FailedPrecondition("grant has no open step")
	}
	if !g.step.Optional {
		return errors.FailedPrecondition("step is not optional")
	}
	g.step = nil
	return nil
}

// Cancel drops the grant
func (g *Grant) Cancel() {
	g.canceled = true
	g.step = nil
}

func (g *Grant) advance() error {
	next, err := g.planner.Next(g.picks)
	if err != nil {
		g.Cancel()
		return err
	}
	if next != nil && len(next.Candidates) == 0 {
		if !next.Optional {
			g.Cancel()
			return errors.EmptyCandidateSetf("no candidates for %s free grant", g.Class).
				WithMeta("class", string(g.Class))
		}
		next = nil
	}
	g.step = next
	return nil
}
