package schema

import (
	"github.com/erraggy/jsonapikit/internal/maputil"
)

// Resources is the deduplicated resource store of a document. Every
// distinct identity is stored once and classified as either primary or
// included; primary always wins.
type Resources struct {
	single    bool
	resources map[string]map[string]*Resource
	primary   *keyIndex
	included  *keyIndex
}

// NewResources builds a store from primary data and the included array.
//
// All resources are constructed before any indexing takes place, so an
// identity failure anywhere in the input returns an error and no store.
// Primary resources are indexed first: a repeated primary identity keeps
// its first position and its last payload. Included resources are indexed
// next: an identity that is already primary is dropped, and a repeated
// included identity keeps its first payload.
func NewResources(primary PrimaryData, included []map[string]any) (*Resources, error) {
	primaries, err := buildResources(primary.records, "data", primary.IsSingle())
	if err != nil {
		return nil, err
	}
	includes, err := buildResources(included, "included", false)
	if err != nil {
		return nil, err
	}

	s := &Resources{
		single:    primary.IsSingle(),
		resources: make(map[string]map[string]*Resource),
		primary:   newKeyIndex(),
		included:  newKeyIndex(),
	}
	for _, r := range primaries {
		s.addPrimary(r)
	}
	for _, r := range includes {
		s.addIncluded(r)
	}
	return s, nil
}

func buildResources(records []map[string]any, section string, single bool) ([]*Resource, error) {
	out := make([]*Resource, 0, len(records))
	for i, record := range records {
		index := i
		if single {
			index = -1
		}
		r, err := newResource(record, section, index)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *Resources) addPrimary(r *Resource) {
	ident := r.Identifier()
	s.included.remove(ident)
	s.primary.add(ident)
	s.put(r)
}

func (s *Resources) addIncluded(r *Resource) {
	ident := r.Identifier()
	if s.primary.has(ident) || s.included.has(ident) {
		return
	}
	s.included.add(ident)
	s.put(r)
}

func (s *Resources) put(r *Resource) {
	byID, ok := s.resources[r.Type()]
	if !ok {
		byID = make(map[string]*Resource)
		s.resources[r.Type()] = byID
	}
	byID[r.ID()] = r
}

func (s *Resources) lookup(ident Identifier) *Resource {
	return s.resources[ident.Type][ident.ID]
}

func (s *Resources) collect(idents []Identifier) []*Resource {
	out := make([]*Resource, 0, len(idents))
	for _, ident := range idents {
		out = append(out, s.lookup(ident))
	}
	return out
}

func (s *Resources) serialize(idents []Identifier) []map[string]any {
	out := make([]map[string]any, 0, len(idents))
	for _, ident := range idents {
		out = append(out, s.lookup(ident).ToMap())
	}
	return out
}

// IsSinglePrimaryResource reports whether primary data was a single
// resource object rather than a collection.
func (s *Resources) IsSinglePrimaryResource() bool {
	return s.single
}

// HasPrimaryResources reports whether at least one resource is primary.
func (s *Resources) HasPrimaryResources() bool {
	return s.primary.len() > 0
}

// HasIncludedResources reports whether at least one resource is included.
func (s *Resources) HasIncludedResources() bool {
	return s.included.len() > 0
}

// HasPrimaryResource reports whether the identity is classified primary.
func (s *Resources) HasPrimaryResource(resourceType, id string) bool {
	return s.primary.has(Identifier{Type: resourceType, ID: id})
}

// HasIncludedResource reports whether the identity is classified included.
func (s *Resources) HasIncludedResource(resourceType, id string) bool {
	return s.included.has(Identifier{Type: resourceType, ID: id})
}

// Resource returns the resource with the given identity, whether primary
// or included.
func (s *Resources) Resource(resourceType, id string) (*Resource, bool) {
	r, ok := s.resources[resourceType][id]
	return r, ok
}

// PrimaryResource returns the primary resource of a single-resource
// document. It reports false when there is none and when primary data
// was a collection; use PrimaryResources for collections.
func (s *Resources) PrimaryResource() (*Resource, bool) {
	if !s.single {
		return nil, false
	}
	idents := s.primary.sorted()
	if len(idents) == 0 {
		return nil, false
	}
	return s.lookup(idents[0]), true
}

// PrimaryResources returns primary resources grouped by type in the order
// each type was first seen, ids in the order they were first seen.
func (s *Resources) PrimaryResources() []*Resource {
	return s.collect(s.primary.inOrder())
}

// IncludedResources returns included resources in the same order policy
// as PrimaryResources.
func (s *Resources) IncludedResources() []*Resource {
	return s.collect(s.included.inOrder())
}

// PrimaryDataToArray returns primary data in document form. A
// single-resource store yields a map[string]any, or nil when it holds no
// primary resource. A collection store yields a []map[string]any sorted by
// type and id, empty but never nil when there are no primary resources.
func (s *Resources) PrimaryDataToArray() any {
	if s.single {
		r, ok := s.PrimaryResource()
		if !ok {
			return nil
		}
		return r.ToMap()
	}
	return s.serialize(s.primary.sorted())
}

// IncludedToArray returns the included resources in document form, sorted
// by type and id. The result is never nil.
func (s *Resources) IncludedToArray() []map[string]any {
	return s.serialize(s.included.sorted())
}

// Len returns the number of distinct identities in the store.
func (s *Resources) Len() int {
	return s.primary.len() + s.included.len()
}

// Types returns every resource type in the store in ascending order.
func (s *Resources) Types() []string {
	return maputil.SortedKeys(s.resources)
}

// RelatedResources resolves the named relationship of r against the store.
// Identifiers whose target is not in the store are skipped.
func (s *Resources) RelatedResources(r *Resource, name string) []*Resource {
	rel, ok := r.Relationship(name)
	if !ok {
		return nil
	}
	var out []*Resource
	for _, ident := range rel.Identifiers() {
		if target := s.lookup(ident); target != nil {
			out = append(out, target)
		}
	}
	return out
}
