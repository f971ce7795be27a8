package design

// Registry resolves a design identifier to its normalized spec.
// Implementations must be pure lookups.
type Registry interface {
	Resolve(designID string) (ShipDesignSpec, bool)
}

// CatalogRegistry serves a fixed set of specs
type CatalogRegistry struct {
	source Source
	specs  map[string]ShipDesignSpec
}

// NewCatalogRegistry builds a registry over specs, stamping each with source
func NewCatalogRegistry(source Source, specs map[string]ShipDesignSpec) *CatalogRegistry {
	copied := make(map[string]ShipDesignSpec, len(specs))
	for id, spec := range specs {
		spec.ID = id
		spec.Source = source
		copied[id] = spec
	}
	return &CatalogRegistry{source: source, specs: copied}
}

// Resolve implements Registry
func (r *CatalogRegistry) Resolve(designID string) (ShipDesignSpec, bool) {
	spec, ok := r.specs[designID]
	return spec, ok
}

// CompositeRegistry asks each backing registry in turn. Legacy designs come first
// so a user design cannot shadow a built-in identifier.
type CompositeRegistry struct {
	sources []Registry
}

// NewRegistry combines registries into one lookup
func NewRegistry(sources ...Registry) *CompositeRegistry {
	return &CompositeRegistry{sources: sources}
}

// Resolve implements Registry
func (r *CompositeRegistry) Resolve(designID string) (ShipDesignSpec, bool) {
	for _, source := range r.sources {
		if source == nil {
			continue
		}
		if spec, ok := source.Resolve(designID); ok {
			return spec, true
		}
	}
	return ShipDesignSpec{}, false
}

// ForUserDesigns is the usual registry for a game: legacy catalogue plus the
// game's compiled user designs.
func ForUserDesigns(userDesigns map[string]ShipDesignSpec) *CompositeRegistry {
	return NewRegistry(LegacyCatalog(), NewCatalogRegistry(SourceUser, userDesigns))
}
