package schema

import (
	"maps"
	"slices"

	"github.com/erraggy/jsonapikit/internal/maputil"
)

// idSet is an insertion-ordered set of ids within one type.
type idSet struct {
	order   []string
	members map[string]struct{}
}

// keyIndex is an insertion-ordered two-level set: type -> id.
// Type buckets keep the position they were created in, even when emptied.
type keyIndex struct {
	types   []string
	buckets map[string]*idSet
	size    int
}

func newKeyIndex() *keyIndex {
	return &keyIndex{buckets: make(map[string]*idSet)}
}

// add inserts ident and reports whether it was new.
func (k *keyIndex) add(ident Identifier) bool {
	bucket, ok := k.buckets[ident.Type]
	if !ok {
		bucket = &idSet{members: make(map[string]struct{})}
		k.buckets[ident.Type] = bucket
		k.types = append(k.types, ident.Type)
	}
	if _, ok := bucket.members[ident.ID]; ok {
		return false
	}
	bucket.members[ident.ID] = struct{}{}
	bucket.order = append(bucket.order, ident.ID)
	k.size++
	return true
}

// remove deletes ident and reports whether it was present.
func (k *keyIndex) remove(ident Identifier) bool {
	bucket, ok := k.buckets[ident.Type]
	if !ok {
		return false
	}
	if _, ok := bucket.members[ident.ID]; !ok {
		return false
	}
	delete(bucket.members, ident.ID)
	bucket.order = slices.DeleteFunc(bucket.order, func(id string) bool { return id == ident.ID })
	k.size--
	return true
}

func (k *keyIndex) has(ident Identifier) bool {
	bucket, ok := k.buckets[ident.Type]
	if !ok {
		return false
	}
	_, ok = bucket.members[ident.ID]
	return ok
}

func (k *keyIndex) len() int {
	return k.size
}

// inOrder returns identifiers bucket by bucket in creation order, ids in
// first-seen order.
func (k *keyIndex) inOrder() []Identifier {
	out := make([]Identifier, 0, k.size)
	for _, t := range k.types {
		for _, id := range k.buckets[t].order {
			out = append(out, Identifier{Type: t, ID: id})
		}
	}
	return out
}

// sorted returns identifiers ordered by type, then id; see compareIDs.
func (k *keyIndex) sorted() []Identifier {
	out := make([]Identifier, 0, k.size)
	for _, t := range maputil.SortedKeys(k.buckets) {
		for _, id := range slices.SortedFunc(maps.Keys(k.buckets[t].members), compareIDs) {
			out = append(out, Identifier{Type: t, ID: id})
		}
	}
	return out
}
