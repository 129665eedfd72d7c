package catalog

import (
	"context"
	stderrors "errors"
	"log/slog"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Registry indexes the loaded catalogs by id
type Registry struct {
	catalogs map[string]*Catalog
	order    []string
}

// NewRegistry creates a registry holding the given catalogs
func NewRegistry(catalogs ...*Catalog) *Registry {
	r := &Registry{catalogs: make(map[string]*Catalog)}
	for _, c := range catalogs {
		r.Add(c)
	}
	return r
}

// Add registers or replaces a catalog
func (r *Registry) Add(c *Catalog) {
	if c == nil {
		return
	}
	if _, exists := r.catalogs[c.ID()]; !exists {
		r.order = append(r.order, c.ID())
	}
	r.catalogs[c.ID()] = c
}

// Get returns a catalog by id
func (r *Registry) Get(catalogID string) (*Catalog, bool) {
	c, ok := r.catalogs[catalogID]
	return c, ok
}

// MustGet returns a catalog by id.
// Returns errors.NotFound when it is not registered
func (r *Registry) MustGet(catalogID string) (*Catalog, error) {
	c, ok := r.catalogs[catalogID]
	if !ok {
		return nil, errors.NotFoundf("catalog %s not loaded", catalogID).
			WithMeta("catalog_id", catalogID)
	}
	return c, nil
}

// All returns the catalogs in registration order
func (r *Registry) All() []*Catalog {
	out := make([]*Catalog, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.catalogs[id])
	}
	return out
}

// ForClass returns the first catalog tagged with the class
func (r *Registry) ForClass(class entities.ClassTag) (*Catalog, bool) {
	for _, id := range r.order {
		if c := r.catalogs[id]; c.Class() == class {
			return c, true
		}
	}
	return nil, false
}

// Lookup finds an ability in any registered catalog
func (r *Registry) Lookup(abilityID string) (*entities.AbilityRecord, *Catalog, bool) {
	for _, id := range r.order {
		c := r.catalogs[id]
		if rec, ok := c.Get(abilityID); ok {
			return rec, c, true
		}
	}
	return nil, nil, false
}

// Others returns every catalog except the one named
func (r *Registry) Others(catalogID string) []*Catalog {
	out := make([]*Catalog, 0, len(r.order))
	for _, id := range r.order {
		if id != catalogID {
			out = append(out, r.catalogs[id])
		}
	}
	return out
}

// DefaultCatalogIDs is the base catalog followed by every class catalog
func DefaultCatalogIDs() []string {
	ids := []string{entities.BaseCatalogID}
	for _, u := range entities.CatalogUnlocks {
		ids = append(ids, u.CatalogID)
	}
	return ids
}

// LoadRegistryInput names the catalogs to load
type LoadRegistryInput struct {
	Source     Source
	CatalogIDs []string
}

// LoadRegistry loads every catalog from the source. A catalog that fails to
// load is registered empty and its failure is part of the returned error, so
// the registry is always usable.
func LoadRegistry(ctx context.Context, input *LoadRegistryInput) (*Registry, error) {
	if input == nil || input.Source == nil {
		return nil, errors.InvalidArgument("source is required")
	}

	ids := input.CatalogIDs
	if len(ids) == 0 {
		ids = DefaultCatalogIDs()
	}

	registry := NewRegistry()
	var failures []error
	for _, id := range ids {
		out, err := input.Source.Load(ctx, LoadInput{CatalogID: id})
		if err != nil {
			slog.WarnContext(ctx, "catalog failed to load, using empty catalog",
				"catalog_id", id,
				"error", err.Error())
			registry.Add(Empty(id, entities.ClassForCatalog(id)))
			failures = append(failures, errors.Wrapf(err, "failed to load catalog %s", id))
			continue
		}

		slog.DebugContext(ctx, "catalog loaded",
			"catalog_id", id,
			"class", string(out.Catalog.Class()),
			"records", out.Catalog.Len())
		registry.Add(out.Catalog)
	}

	return registry, stderrors.Join(failures...)
}
