package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CharacterBuilder provides a fluent interface for building test CharacterState instances
type CharacterBuilder struct {
	char *entities.CharacterState
}

// NewCharacterBuilder creates a new builder with minimal defaults
func NewCharacterBuilder() *CharacterBuilder {
	c := entities.NewCharacterState("char-test-123", "Test Character", "menneske")
	c.LPMax = 10
	c.UpdatedAt = time.Unix(1700000000, 0).UTC()
	return &CharacterBuilder{char: c}
}

// WithID sets the character ID
func (b *CharacterBuilder) WithID(id string) *CharacterBuilder {
	b.char.ID = id
	return b
}

// WithName sets the character name
func (b *CharacterBuilder) WithName(name string) *CharacterBuilder {
	b.char.Name = name
	return b
}

// WithLPMax sets the maximum life points
func (b *CharacterBuilder) WithLPMax(lp int) *CharacterBuilder {
	b.char.LPMax = lp
	return b
}

// WithTotalEP sets the EP budget
func (b *CharacterBuilder) WithTotalEP(ep int) *CharacterBuilder {
	b.char.TotalEP = ep
	return b
}

// WithSpentEP sets the spent EP without owning anything
func (b *CharacterBuilder) WithSpentEP(ep int) *CharacterBuilder {
	b.char.SpentEP = ep
	return b
}

// WithOwned adds abilities acquired for free
func (b *CharacterBuilder) WithOwned(ids ...string) *CharacterBuilder {
	for _, id := range ids {
		b.char.Owned = append(b.char.Owned, entities.OwnedAbility{ID: id})
	}
	return b
}

// WithPurchased adds an ability and charges its cost
func (b *CharacterBuilder) WithPurchased(id string, cost int) *CharacterBuilder {
	b.char.Owned = append(b.char.Owned, entities.OwnedAbility{ID: id, CostPaid: cost})
	b.char.SpentEP += cost
	return b
}

// WithGod selects a god without owning its record
func (b *CharacterBuilder) WithGod(godID string) *CharacterBuilder {
	b.char.SelectedGod = godID
	return b
}

// Build derives grant flags and unlocks from the owned abilities and returns the character
func (b *CharacterBuilder) Build() *entities.CharacterState {
	b.char.RebuildDerived()
	return b.char.Clone()
}
