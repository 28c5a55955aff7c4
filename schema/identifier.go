package schema

import (
	"cmp"
	"strconv"
	"strings"
)

// Identifier is the (type, id) pair that identifies a resource.
type Identifier struct {
	Type string
	ID   string
}

// String returns the identifier as "type/id".
func (i Identifier) String() string {
	return i.Type + "/" + i.ID
}

// identityString resolves a type or id member to a non-empty string.
// Integers are accepted because YAML decodes an unquoted id as a number.
func identityString(v any) (string, bool) {
	var s string
	switch val := v.(type) {
	case string:
		s = val
	case int:
		s = strconv.Itoa(val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case uint64:
		s = strconv.FormatUint(val, 10)
	default:
		return "", false
	}
	return s, s != ""
}

// identifierFromMap reads the identity of a resource or resource identifier
// object. The returned field names the first member that failed.
func identifierFromMap(m map[string]any) (Identifier, string, bool) {
	t, ok := identityString(m["type"])
	if !ok {
		return Identifier{}, "type", false
	}
	id, ok := identityString(m["id"])
	if !ok {
		return Identifier{Type: t}, "id", false
	}
	return Identifier{Type: t, ID: id}, "", true
}

// compareIDs orders ids for serialized output. Canonical base-10 integers
// compare by value and sort before all other ids, which compare as strings.
func compareIDs(a, b string) int {
	na, aNum := canonicalInt(a)
	nb, bNum := canonicalInt(b)
	switch {
	case aNum && bNum:
		return cmp.Compare(na, nb)
	case aNum:
		return -1
	case bNum:
		return 1
	}
	return strings.Compare(a, b)
}

// compareIdentifiers orders identifiers by type, then by compareIDs.
func compareIdentifiers(a, b Identifier) int {
	return cmp.Or(strings.Compare(a.Type, b.Type), compareIDs(a.ID, b.ID))
}

// canonicalInt parses s when it is written exactly as strconv would format
// the integer: no sign on zero, no leading zeros, no plus sign.
func canonicalInt(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(n, 10) != s {
		return 0, false
	}
	return n, true
}
