package schema

import (
	"github.com/erraggy/jsonapikit/internal/maputil"
	"github.com/erraggy/jsonapikit/jsonapierrors"
)

// Resource is a JSON:API resource object. Its identity is the (type, id)
// pair, fixed at construction. Attributes, relationships, meta and any
// unknown members are carried unchanged from the source record.
type Resource struct {
	identifier Identifier
	raw        map[string]any
}

// NewResource builds a Resource from a decoded resource object.
// It fails with an *jsonapierrors.IdentityError when type or id is missing,
// empty or neither a string nor an integer.
func NewResource(raw map[string]any) (*Resource, error) {
	return newResource(raw, "", -1)
}

func newResource(raw map[string]any, section string, index int) (*Resource, error) {
	if raw == nil {
		return nil, &jsonapierrors.IdentityError{
			Section: section,
			Index:   index,
			Message: "resource is not an object",
		}
	}
	ident, field, ok := identifierFromMap(raw)
	if !ok {
		return nil, &jsonapierrors.IdentityError{
			Section: section,
			Index:   index,
			Field:   field,
			Type:    ident.Type,
			Message: "missing or empty",
		}
	}
	return &Resource{identifier: ident, raw: deepCopyMap(raw)}, nil
}

// Type returns the resource type.
func (r *Resource) Type() string {
	return r.identifier.Type
}

// ID returns the resource id.
func (r *Resource) ID() string {
	return r.identifier.ID
}

// Identifier returns the (type, id) pair.
func (r *Resource) Identifier() Identifier {
	return r.identifier
}

// Equal reports whether r and other identify the same entity.
// Only type and id take part in the comparison.
func (r *Resource) Equal(other *Resource) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.identifier == other.identifier
}

// Attributes returns the attributes object, or nil when absent.
// The map is shared with the store and must not be modified.
func (r *Resource) Attributes() map[string]any {
	return mapMember(r.raw, "attributes")
}

// Attribute returns a single attribute value.
func (r *Resource) Attribute(name string) (any, bool) {
	v, ok := r.Attributes()[name]
	return v, ok
}

// HasAttribute reports whether the attribute is present, even if null.
func (r *Resource) HasAttribute(name string) bool {
	_, ok := r.Attribute(name)
	return ok
}

// Relationships returns the names of all relationships in ascending order.
func (r *Resource) Relationships() []string {
	return maputil.SortedKeys(mapMember(r.raw, "relationships"))
}

// Relationship returns the named relationship.
func (r *Resource) Relationship(name string) (*Relationship, bool) {
	rel, ok := mapMember(r.raw, "relationships")[name].(map[string]any)
	if !ok {
		return nil, false
	}
	return &Relationship{name: name, raw: rel}, true
}

// HasRelationship reports whether the named relationship is present.
func (r *Resource) HasRelationship(name string) bool {
	_, ok := r.Relationship(name)
	return ok
}

// Meta returns the meta object, or nil when absent.
func (r *Resource) Meta() map[string]any {
	return mapMember(r.raw, "meta")
}

// Links returns the resource-level links. The result is never nil.
func (r *Resource) Links() *Links {
	return LinksFromMap(mapMember(r.raw, "links"))
}

// ToMap returns a copy of the original resource object, including members
// this package does not interpret.
func (r *Resource) ToMap() map[string]any {
	return deepCopyMap(r.raw)
}
