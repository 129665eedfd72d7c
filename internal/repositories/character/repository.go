// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-progression/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// Repository defines the interface for character persistence
type Repository interface {
	// Get loads a character by ID and rebuilds its derived state
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if character doesn't exist
	// Returns a ParseError (errors.IsParseError) for corrupt data
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete deletes a character by ID
	// Returns errors.InvalidArgument for empty/invalid IDs
	// Returns errors.NotFound if character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns every stored character ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.CharacterState
}

// SaveInput defines the input for saving a character
type SaveInput struct {
	Character *entities.CharacterState
}

// SaveOutput defines the output for saving a character
type SaveOutput struct {
	Character *entities.CharacterState
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// ListInput defines the input for listing characters
type ListInput struct{}

// ListOutput defines the output for listing characters
type ListOutput struct {
	Characters []*entities.CharacterState
}
