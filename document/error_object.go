package document

import (
	"maps"

	"github.com/erraggy/jsonapikit/schema"
)

// ErrorObject is an entry of a document's top-level "errors" array.
type ErrorObject struct {
	ID     string
	Status string
	Code   string
	Title  string
	Detail string
	Source map[string]any
	Meta   map[string]any
	Links  *schema.Links

	raw map[string]any
}

func errorObjectFromMap(m map[string]any) ErrorObject {
	str := func(key string) string {
		s, _ := m[key].(string)
		return s
	}
	obj := func(key string) map[string]any {
		v, _ := m[key].(map[string]any)
		return v
	}
	return ErrorObject{
		ID:     str("id"),
		Status: str("status"),
		Code:   str("code"),
		Title:  str("title"),
		Detail: str("detail"),
		Source: obj("source"),
		Meta:   obj("meta"),
		Links:  schema.LinksFromMap(obj("links")),
		raw:    m,
	}
}

// ToMap returns the error object as it appeared in the document.
func (e ErrorObject) ToMap() map[string]any {
	return maps.Clone(e.raw)
}
