package catalog

import (
	"context"

	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type memorySource struct {
	catalogs map[string]*Catalog
}

// NewMemory creates a source serving prebuilt catalogs
func NewMemory(catalogs ...*Catalog) Source {
	m := &memorySource{catalogs: make(map[string]*Catalog, len(catalogs))}
	for _, c := range catalogs {
		m.catalogs[c.ID()] = c
	}
	return m
}

func (m *memorySource) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Canceled("load canceled")
	}
	if input.CatalogID == "" {
		return nil, errors.InvalidArgument("catalog ID cannot be empty")
	}

	c, ok := m.catalogs[input.CatalogID]
	if !ok {
		return nil, errors.NotFoundf("catalog %s not found", input.CatalogID)
	}
	return &LoadOutput{Catalog: c}, nil
}
