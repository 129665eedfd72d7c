package catalog

//go:generate mockgen -destination=mock/mock_source.go -package=catalogmock github.com/KirkDiggler/rpg-progression/internal/catalog Source

import (
	"context"
)

// Source loads catalogs by id
type Source interface {
	// Load returns the catalog with its records in data order
	// Returns errors.NotFound when no data exists for the id
	// Returns errors.ParseError for malformed data
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)
}

// LoadInput defines the input for loading a catalog
type LoadInput struct {
	CatalogID string
}

// LoadOutput defines the output for loading a catalog
type LoadOutput struct {
	Catalog *Catalog
}
