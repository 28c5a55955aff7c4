package schema

// Relationship is a named member of a resource's "relationships" object.
type Relationship struct {
	name string
	raw  map[string]any
}

// Name returns the relationship name.
func (r *Relationship) Name() string {
	return r.name
}

// IsToMany reports whether the linkage is an array.
func (r *Relationship) IsToMany() bool {
	switch r.raw["data"].(type) {
	case []any, []map[string]any:
		return true
	}
	return false
}

// HasData reports whether the relationship carries resource linkage.
// A null to-one linkage counts as present.
func (r *Relationship) HasData() bool {
	_, ok := r.raw["data"]
	return ok
}

// Identifiers returns the resource identifiers in the linkage, in order.
// Entries without a usable identity are skipped.
func (r *Relationship) Identifiers() []Identifier {
	switch data := r.raw["data"].(type) {
	case map[string]any:
		if ident, _, ok := identifierFromMap(data); ok {
			return []Identifier{ident}
		}
	case []any:
		idents := make([]Identifier, 0, len(data))
		for _, item := range data {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			if ident, _, ok := identifierFromMap(m); ok {
				idents = append(idents, ident)
			}
		}
		return idents
	case []map[string]any:
		idents := make([]Identifier, 0, len(data))
		for _, m := range data {
			if ident, _, ok := identifierFromMap(m); ok {
				idents = append(idents, ident)
			}
		}
		return idents
	}
	return nil
}

// Links returns the relationship links. The result is never nil.
func (r *Relationship) Links() *Links {
	return LinksFromMap(mapMember(r.raw, "links"))
}

// Meta returns the relationship meta object, or nil when absent.
func (r *Relationship) Meta() map[string]any {
	return mapMember(r.raw, "meta")
}

// ToMap returns a copy of the relationship object.
func (r *Relationship) ToMap() map[string]any {
	return deepCopyMap(r.raw)
}
