package schema

import (
	"github.com/erraggy/jsonapikit/jsonapierrors"
)

// PrimaryShape describes how a document delivered its primary data.
type PrimaryShape int

const (
	// PrimaryNone means the document had no primary data (absent or null).
	PrimaryNone PrimaryShape = iota
	// PrimarySingle means primary data was a single resource object.
	PrimarySingle
	// PrimaryCollection means primary data was an array of resource objects.
	PrimaryCollection
)

// String returns a short name for the shape.
func (s PrimaryShape) String() string {
	switch s {
	case PrimarySingle:
		return "single"
	case PrimaryCollection:
		return "collection"
	default:
		return "none"
	}
}

// PrimaryData is the primary data input of a store: a single record, a
// sequence of records, or nothing. The shape is decided by whoever decoded
// the document and is never inferred from the records.
type PrimaryData struct {
	shape   PrimaryShape
	records []map[string]any
}

// SinglePrimary wraps a single resource object. An empty record carries no
// identity and is treated as an empty collection.
func SinglePrimary(record map[string]any) PrimaryData {
	if len(record) == 0 {
		return PrimaryData{shape: PrimaryCollection}
	}
	return PrimaryData{shape: PrimarySingle, records: []map[string]any{record}}
}

// CollectionPrimary wraps an array of resource objects. A nil entry stands
// for an array element that was not an object and fails store construction.
func CollectionPrimary(records []map[string]any) PrimaryData {
	return PrimaryData{shape: PrimaryCollection, records: records}
}

// NoPrimary represents a document without primary data.
func NoPrimary() PrimaryData {
	return PrimaryData{shape: PrimaryNone}
}

// PrimaryDataFromValue classifies a decoded "data" member: an object is a
// single resource, an array is a collection and nil is no primary data.
// Any other value fails with an *jsonapierrors.IdentityError.
func PrimaryDataFromValue(v any) (PrimaryData, error) {
	switch val := v.(type) {
	case nil:
		return NoPrimary(), nil
	case map[string]any:
		return SinglePrimary(val), nil
	case []map[string]any:
		return CollectionPrimary(val), nil
	case []any:
		records := make([]map[string]any, len(val))
		for i, item := range val {
			// non-object entries stay nil and are reported with their index
			records[i], _ = item.(map[string]any)
		}
		return CollectionPrimary(records), nil
	}
	return PrimaryData{}, &jsonapierrors.IdentityError{
		Section: "data",
		Index:   -1,
		Message: "primary data must be an object, an array or null",
	}
}

// Shape returns how the primary data was delivered.
func (p PrimaryData) Shape() PrimaryShape {
	return p.shape
}

// IsSingle reports whether the primary data is a single resource object.
func (p PrimaryData) IsSingle() bool {
	return p.shape == PrimarySingle
}

// Len returns the number of records.
func (p PrimaryData) Len() int {
	return len(p.records)
}
