package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// DefaultTotalEP is the EP budget of a new character
const DefaultTotalEP = 1000

// OwnedAbility is an ability held by a character with the EP paid for it
type OwnedAbility struct {
	ID       string `json:"id"`
	CostPaid int    `json:"cost_paid"`
}

// CharacterState is the mutable progression state of one character.
// It has a single owner; callers serialize access.
type CharacterState struct {
	ID          string
	Name        string
	Race        string
	LPMax       int
	Owned       []OwnedAbility
	SpentEP     int
	TotalEP     int
	SelectedGod string

	// FreeGrants caches the classes whose free grant already ran. It is
	// rebuilt from ability namespaces on load.
	FreeGrants map[ClassTag]bool

	// Unlocked holds the reachable catalog ids. It only grows.
	Unlocked map[string]bool

	UpdatedAt time.Time
}

// NewCharacterState creates a character with the default EP budget and the
// base catalog reachable
func NewCharacterState(id, name, race string) *CharacterState {
	c := &CharacterState{
		ID:         id,
		Name:       name,
		Race:       race,
		TotalEP:    DefaultTotalEP,
		FreeGrants: make(map[ClassTag]bool),
		Unlocked:   make(map[string]bool),
	}
	c.Unlocked[BaseCatalogID] = true
	return c
}

// GetID returns the character's ID
func (c *CharacterState) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c *CharacterState) GetType() string {
	return "character"
}

// RemainingEP is the EP still available to spend
func (c *CharacterState) RemainingEP() int {
	return c.TotalEP - c.SpentEP
}

// Owns reports whether the character holds the ability
func (c *CharacterState) Owns(abilityID string) bool {
	return c.indexOf(abilityID) >= 0
}

// OwnsAny reports whether the character holds at least one of the abilities
func (c *CharacterState) OwnsAny(abilityIDs ...string) bool {
	for _, id := range abilityIDs {
		if c.Owns(id) {
			return true
		}
	}
	return false
}

// OwnsAll reports whether the character holds every one of the abilities
func (c *CharacterState) OwnsAll(abilityIDs ...string) bool {
	for _, id := range abilityIDs {
		if !c.Owns(id) {
			return false
		}
	}
	return true
}

// OwnedIDs returns the owned ability ids in acquisition order
func (c *CharacterState) OwnedIDs() []string {
	ids := make([]string, len(c.Owned))
	for i, o := range c.Owned {
		ids[i] = o.ID
	}
	return ids
}

// CostPaid returns what the character paid for an owned ability
func (c *CharacterState) CostPaid(abilityID string) (int, bool) {
	idx := c.indexOf(abilityID)
	if idx < 0 {
		return 0, false
	}
	return c.Owned[idx].CostPaid, true
}

// AddAbility adds an ability and debits its cost.
// Returns errors.AlreadyOwned when the id is held already
// Returns errors.InsufficientEP when the cost exceeds the remaining EP
func (c *CharacterState) AddAbility(abilityID string, cost int) error {
	if abilityID == "" {
		return errors.InvalidArgument("ability ID cannot be empty")
	}
	if c.Owns(abilityID) {
		return errors.AlreadyOwnedf("ability %s already purchased", abilityID).
			WithMeta("ability_id", abilityID)
	}
	if cost < 0 {
		return errors.InvalidArgumentf("ability %s has negative cost %d", abilityID, cost)
	}
	if cost > c.RemainingEP() {
		return errors.InsufficientEPf("ability %s costs %d EP, %d remaining", abilityID, cost, c.RemainingEP()).
			WithMeta("ability_id", abilityID)
	}

	c.Owned = append(c.Owned, OwnedAbility{ID: abilityID, CostPaid: cost})
	c.SpentEP += cost
	return nil
}

// RemoveAbility drops an owned ability. EP is returned only when refund is set.
// Returns errors.NotFound when the ability is not owned
func (c *CharacterState) RemoveAbility(abilityID string, refund bool) (OwnedAbility, error) {
	idx := c.indexOf(abilityID)
	if idx < 0 {
		return OwnedAbility{}, errors.AbilityNotFoundf("ability %s is not owned", abilityID).
			WithMeta("ability_id", abilityID)
	}

	removed := c.Owned[idx]
	c.Owned = append(c.Owned[:idx:idx], c.Owned[idx+1:]...)
	if refund {
		c.SpentEP -= removed.CostPaid
		if c.SpentEP < 0 {
			c.SpentEP = 0
		}
	}
	return removed, nil
}

// HasGod reports whether a god has been selected
func (c *CharacterState) HasGod() bool {
	return c.SelectedGod != ""
}

// SelectGod records the god once.
// Returns errors.GodAlreadySelected for any second selection, including the same god
func (c *CharacterState) SelectGod(godID string) error {
	if godID == "" {
		return errors.InvalidArgument("god ID cannot be empty")
	}
	if c.HasGod() {
		return errors.GodAlreadySelectedf("god %s already selected", c.SelectedGod).
			WithMeta("selected_god", c.SelectedGod)
	}
	c.SelectedGod = godID
	return nil
}

// GodSchool is the school of the selected god, "god_sol" -> "sol"
func (c *CharacterState) GodSchool() string {
	return GodSchool(c.SelectedGod)
}

// FreeGrantUsed reports whether the class grant already ran
func (c *CharacterState) FreeGrantUsed(class ClassTag) bool {
	if c.FreeGrants[class] {
		return true
	}
	for _, o := range c.Owned {
		if class.Owns(o.ID) {
			return true
		}
	}
	return false
}

// MarkFreeGrantUsed sets the class grant flag
func (c *CharacterState) MarkFreeGrantUsed(class ClassTag) {
	if c.FreeGrants == nil {
		c.FreeGrants = make(map[ClassTag]bool)
	}
	c.FreeGrants[class] = true
}

// IsUnlocked reports whether the catalog is reachable
func (c *CharacterState) IsUnlocked(catalogID string) bool {
	return catalogID == BaseCatalogID || c.Unlocked[catalogID]
}

// Unlock adds the catalog to the reachable set and reports whether it was new
func (c *CharacterState) Unlock(catalogID string) bool {
	if c.Unlocked == nil {
		c.Unlocked = make(map[string]bool)
	}
	if c.Unlocked[catalogID] {
		return false
	}
	c.Unlocked[catalogID] = true
	return true
}

// UnlockedCatalogs lists the reachable catalogs, base first then in unlock table order
func (c *CharacterState) UnlockedCatalogs() []string {
	out := []string{BaseCatalogID}
	for _, u := range CatalogUnlocks {
		if c.Unlocked[u.CatalogID] {
			out = append(out, u.CatalogID)
		}
	}
	return out
}

// RebuildDerived recomputes the session caches from the owned abilities.
// Used after loading a saved character.
func (c *CharacterState) RebuildDerived() {
	c.FreeGrants = make(map[ClassTag]bool)
	for _, class := range AllClasses {
		for _, o := range c.Owned {
			if class.Owns(o.ID) {
				c.FreeGrants[class] = true
				break
			}
		}
	}

	if c.Unlocked == nil {
		c.Unlocked = make(map[string]bool)
	}
	c.Unlocked[BaseCatalogID] = true
	for _, o := range c.Owned {
		if u, ok := UnlockFor(o.ID); ok {
			c.Unlocked[u.CatalogID] = true
		}
	}
}

// Clone returns a deep copy used to stage changes before committing them
func (c *CharacterState) Clone() *CharacterState {
	out := *c
	out.Owned = append([]OwnedAbility(nil), c.Owned...)
	out.FreeGrants = make(map[ClassTag]bool, len(c.FreeGrants))
	for k, v := range c.FreeGrants {
		out.FreeGrants[k] = v
	}
	out.Unlocked = make(map[string]bool, len(c.Unlocked))
	for k, v := range c.Unlocked {
		out.Unlocked[k] = v
	}
	return &out
}

// CopyFrom overwrites the character with a staged copy
func (c *CharacterState) CopyFrom(staged *CharacterState) {
	*c = *staged.Clone()
}

func (c *CharacterState) indexOf(abilityID string) int {
	for i, o := range c.Owned {
		if o.ID == abilityID {
			return i
		}
	}
	return -1
}
