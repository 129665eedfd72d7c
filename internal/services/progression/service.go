// Package progression defines the interface for character progression operations
package progression

//go:generate mockgen -destination=mock/mock_service.go -package=progressionmock github.com/KirkDiggler/rpg-progression/internal/services/progression Service
//go:generate mockgen -destination=mock/mock_choice_port.go -package=progressionmock github.com/KirkDiggler/rpg-progression/internal/services/progression ChoicePort

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Service defines the interface for progression operations. The caller owns
// the character and passes it in every call. Failed operations leave it unchanged.
type Service interface {
	// Acquisition
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)
	SelectGod(ctx context.Context, input *SelectGodInput) (*SelectGodOutput, error)
	RemoveAbility(ctx context.Context, input *RemoveAbilityInput) (*RemoveAbilityOutput, error)

	// Catalog access
	Purchasable(ctx context.Context, input *PurchasableInput) (*PurchasableOutput, error)
	OpenCatalog(ctx context.Context, input *OpenCatalogInput) (*OpenCatalogOutput, error)
	ReachableCatalogs(ctx context.Context, input *ReachableCatalogsInput) (*ReachableCatalogsOutput, error)

	// Free grants
	BeginGrant(ctx context.Context, input *BeginGrantInput) (*BeginGrantOutput, error)
	CompleteGrant(ctx context.Context, input *CompleteGrantInput) (*CompleteGrantOutput, error)
	CancelGrant(ctx context.Context, input *CancelGrantInput) (*CancelGrantOutput, error)
	RunGrant(ctx context.Context, input *RunGrantInput) (*RunGrantOutput, error)

	// Presentation
	Stats(ctx context.Context, input *StatsInput) (*StatsOutput, error)
	Summary(ctx context.Context, input *SummaryInput) (*SummaryOutput, error)
}

// ChoiceRequest asks a human to pick one candidate
type ChoiceRequest struct {
	Prompt     string
	Candidates []*entities.AbilityRecord
	// Optional allows answering with no pick
	Optional bool
}

// ChoicePort blocks until a candidate is chosen. It returns a nil record when
// an optional choice is skipped and a ChoiceCanceled error when the human cancels.
type ChoicePort interface {
	Choose(ctx context.Context, req *ChoiceRequest) (*entities.AbilityRecord, error)
}

// Acquisition types

// PurchaseInput defines the request for buying an ability
type PurchaseInput struct {
	Character *entities.CharacterState
	CatalogID string
	AbilityID string
}

// PurchaseOutput defines the response for buying an ability
type PurchaseOutput struct {
	Record      *entities.AbilityRecord
	CostPaid    int
	RemainingEP int
	// Unlocked lists the catalogs opened by the purchase
	Unlocked []string
	// GodSelected is set when the purchase selected a god
	GodSelected bool
	// Grant is the free grant started by the purchase, if any
	Grant *Grant
}

// SelectGodInput defines the request for selecting a god
type SelectGodInput struct {
	Character *entities.CharacterState
	CatalogID string
	GodID     string
}

// SelectGodOutput defines the response for selecting a god
type SelectGodOutput struct {
	GodID string
	// Grant is the pending Paladin/Priest grant, nil when already used
	Grant *Grant
}

// RemoveAbilityInput defines the request for removing an owned ability
type RemoveAbilityInput struct {
	Character *entities.CharacterState
	AbilityID string
	// Refund returns the EP paid for the ability
	Refund bool
}

// RemoveAbilityOutput defines the response for removing an ability
type RemoveAbilityOutput struct {
	Removed  entities.OwnedAbility
	Refunded int
}

// Catalog access types

// PurchasableInput defines the request for listing purchasable abilities
type PurchasableInput struct {
	Character *entities.CharacterState
	CatalogID string
}

// PurchasableOutput defines the response for listing purchasable abilities
type PurchasableOutput struct {
	AbilityIDs []string
	Records    []*entities.AbilityRecord
	Decisions  []engine.Decision
}

// OpenCatalogInput defines the request for entering a catalog
type OpenCatalogInput struct {
	Character *entities.CharacterState
	CatalogID string
}

// OpenCatalogOutput defines the response for entering a catalog
type OpenCatalogOutput struct {
	AbilityIDs []string
	Records    []*entities.AbilityRecord
	// Grant is the pending free grant of the class, if any
	Grant *Grant
}

// ReachableCatalogsInput defines the request for listing reachable catalogs
type ReachableCatalogsInput struct {
	Character *entities.CharacterState
}

// ReachableCatalogsOutput defines the response for listing reachable catalogs
type ReachableCatalogsOutput struct {
	CatalogIDs []string
}

// Free grant types

// BeginGrantInput defines the request for starting a free grant
type BeginGrantInput struct {
	Character *entities.CharacterState
	Class     entities.ClassTag
}

// BeginGrantOutput defines the response for starting a free grant
type BeginGrantOutput struct {
	// Grant is nil when Skipped
	Grant   *Grant
	Skipped bool
}

// CompleteGrantInput defines the request for committing a grant
type CompleteGrantInput struct {
	Character *entities.CharacterState
	Grant     *Grant
}

// CompleteGrantOutput defines the response for committing a grant
type CompleteGrantOutput struct {
	Granted  []string
	Unlocked []string
}

// CancelGrantInput defines the request for dropping a grant
type CancelGrantInput struct {
	Grant *Grant
}

// CancelGrantOutput defines the response for dropping a grant
type CancelGrantOutput struct{}

// RunGrantInput defines the request for running a grant through the ChoicePort
type RunGrantInput struct {
	Character *entities.CharacterState
	Class     entities.ClassTag
}

// RunGrantOutput defines the response for running a grant
type RunGrantOutput struct {
	Granted []string
	Skipped bool
}

// Presentation types

// StatsInput defines the request for class stats
type StatsInput struct {
	Character *entities.CharacterState
	// Class limits the result to one class, all reachable classes when empty
	Class entities.ClassTag
}

// StatsOutput defines the response for class stats
type StatsOutput struct {
	Stats []engine.ClassStat
}

// SummaryInput defines the request for the character sheet summary
type SummaryInput struct {
	Character *entities.CharacterState
}

// SummaryOutput defines the response for the character sheet summary
type SummaryOutput struct {
	General []engine.SheetEntry
	Classes []engine.ClassSection
}
