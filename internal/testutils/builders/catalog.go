package builders

import (
	"fmt"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
)

// CatalogBuilder provides a fluent interface for building test catalogs
type CatalogBuilder struct {
	cfg catalog.Config
}

// NewCatalogBuilder creates a builder for a catalog bound to class
func NewCatalogBuilder(id string, class entities.ClassTag) *CatalogBuilder {
	return &CatalogBuilder{cfg: catalog.Config{ID: id, Class: class}}
}

// WithName sets the display name
func (b *CatalogBuilder) WithName(name string) *CatalogBuilder {
	b.cfg.Name = name
	return b
}

// WithStat sets the class stat formula
func (b *CatalogBuilder) WithStat(f entities.StatFormula) *CatalogBuilder {
	b.cfg.Stat = &f
	return b
}

// With appends built records
func (b *CatalogBuilder) With(records ...*AbilityRecordBuilder) *CatalogBuilder {
	for _, r := range records {
		b.cfg.Records = append(b.cfg.Records, r.Build())
	}
	return b
}

// WithRecords appends plain records
func (b *CatalogBuilder) WithRecords(records ...entities.AbilityRecord) *CatalogBuilder {
	b.cfg.Records = append(b.cfg.Records, records...)
	return b
}

// Build creates the catalog. Builder input is static test data, so an
// invalid catalog panics.
func (b *CatalogBuilder) Build() *catalog.Catalog {
	c, err := catalog.New(&b.cfg)
	if err != nil {
		panic(fmt.Sprintf("builders: invalid test catalog %s: %v", b.cfg.ID, err))
	}
	return c
}
