// Package schema models the resource graph of a JSON:API document.
//
// Import path: github.com/erraggy/jsonapikit/schema
//
// The central type is [Resources], a store built once from a document's
// primary data and its "included" array. Every resource is indexed by its
// identity, the (type, id) pair, and classified as either primary or
// included. A resource present in both sets is primary and kept exactly once.
//
// # Building a store
//
// Primary data is passed as a [PrimaryData] value so the single-resource and
// collection shapes never have to be guessed from the records themselves:
//
//	primary := schema.CollectionPrimary([]map[string]any{
//	    {"type": "articles", "id": "1", "relationships": map[string]any{
//	        "author": map[string]any{"data": map[string]any{"type": "people", "id": "9"}},
//	    }},
//	})
//	store, err := schema.NewResources(primary, []map[string]any{
//	    {"type": "people", "id": "9", "attributes": map[string]any{"name": "Dan"}},
//	})
//
// Construction fails with a [jsonapierrors.IdentityError] if any record lacks
// a type or an id; no partially built store is returned.
//
// # Ordering
//
// [Resources.PrimaryResources] and [Resources.IncludedResources] return
// resources in the order they were first seen. [Resources.PrimaryDataToArray]
// and [Resources.IncludedToArray] serialize in (type, id) order so documents
// re-serialize deterministically.
//
// # Concurrency
//
// A store is read-only after construction and safe for concurrent readers.
package schema
