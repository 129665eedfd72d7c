// Package catalog holds the immutable ability catalogs and the sources they load from
package catalog

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Catalog is an ordered, immutable set of ability records sharing one class tag.
// It is safe to share between goroutines.
type Catalog struct {
	id      string
	name    string
	class   entities.ClassTag
	records []*entities.AbilityRecord
	index   map[string]*entities.AbilityRecord
	stat    *entities.StatFormula
}

// Config describes a catalog to build
type Config struct {
	ID      string
	Name    string
	Class   entities.ClassTag
	Records []entities.AbilityRecord
	Stat    *entities.StatFormula
}

// Validate validates the catalog config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.ID == "" {
		vb.RequiredField("ID")
	}
	if c.Class == "" {
		vb.RequiredField("Class")
	}

	return vb.Build()
}

// New builds a catalog, rejecting duplicate or empty ids
func New(cfg *Config) (*Catalog, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Catalog{
		id:      cfg.ID,
		name:    cfg.Name,
		class:   cfg.Class,
		records: make([]*entities.AbilityRecord, 0, len(cfg.Records)),
		index:   make(map[string]*entities.AbilityRecord, len(cfg.Records)),
	}
	if c.name == "" {
		c.name = defaultName(cfg.ID)
	}
	if cfg.Stat != nil {
		stat := *cfg.Stat
		c.stat = &stat
	}

	for i := range cfg.Records {
		record := cfg.Records[i]
		if record.ID == "" {
			return nil, errors.ParseErrorf("catalog %s: record %d has no id", cfg.ID, i).
				WithMeta("catalog_id", cfg.ID)
		}
		if _, exists := c.index[record.ID]; exists {
			return nil, errors.ParseErrorf("catalog %s: duplicate ability id %s", cfg.ID, record.ID).
				WithMeta("catalog_id", cfg.ID).
				WithMeta("ability_id", record.ID)
		}
		if record.Cost < 0 {
			return nil, errors.ParseErrorf("catalog %s: ability %s has negative cost", cfg.ID, record.ID).
				WithMeta("catalog_id", cfg.ID)
		}
		c.records = append(c.records, &record)
		c.index[record.ID] = &record
	}

	return c, nil
}

// Empty returns a catalog without records, used when a source fails
func Empty(id string, class entities.ClassTag) *Catalog {
	return &Catalog{
		id:    id,
		name:  defaultName(id),
		class: class,
		index: make(map[string]*entities.AbilityRecord),
	}
}

// ID returns the catalog id
func (c *Catalog) ID() string { return c.id }

// GetID returns the catalog id for rpg-toolkit
func (c *Catalog) GetID() string { return c.id }

// GetType returns the entity type for rpg-toolkit
func (c *Catalog) GetType() string { return "catalog" }

// Name returns the display name
func (c *Catalog) Name() string { return c.name }

// Class returns the class tag that selects the rule set
func (c *Catalog) Class() entities.ClassTag { return c.class }

// Len returns the number of records
func (c *Catalog) Len() int { return len(c.records) }

// Records returns the records in file order. The records must not be modified.
func (c *Catalog) Records() []*entities.AbilityRecord {
	out := make([]*entities.AbilityRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Get looks up a record by id
func (c *Catalog) Get(abilityID string) (*entities.AbilityRecord, bool) {
	r, ok := c.index[abilityID]
	return r, ok
}

// Contains reports whether the catalog holds the id
func (c *Catalog) Contains(abilityID string) bool {
	_, ok := c.index[abilityID]
	return ok
}

// Filter returns the records matching keep, in file order
func (c *Catalog) Filter(keep func(*entities.AbilityRecord) bool) []*entities.AbilityRecord {
	var out []*entities.AbilityRecord
	for _, r := range c.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// StatFormula returns the class stat of the catalog, falling back to the
// default formula of its class
func (c *Catalog) StatFormula() (entities.StatFormula, bool) {
	if c.stat != nil {
		return *c.stat, true
	}
	f, ok := entities.DefaultStatFormulas[c.class]
	return f, ok
}

func defaultName(catalogID string) string {
	if catalogID == entities.BaseCatalogID {
		return entities.BaseCatalogName
	}
	if u, ok := entities.UnlockForCatalog(catalogID); ok {
		return u.Name
	}
	return catalogID
}
