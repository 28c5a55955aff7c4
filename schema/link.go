package schema

import (
	"github.com/erraggy/jsonapikit/internal/maputil"
	"github.com/erraggy/jsonapikit/jsonapierrors"
)

// Link is a single JSON:API link. It is serialized as a bare string when it
// has no meta.
type Link struct {
	Href string
	Meta map[string]any
}

// LinkFromValue decodes a link given either as a URL string or as an object
// with an "href" member.
func LinkFromValue(v any) (Link, bool) {
	switch val := v.(type) {
	case string:
		return Link{Href: val}, true
	case map[string]any:
		href, _ := val["href"].(string)
		return Link{Href: href, Meta: mapMember(val, "meta")}, true
	}
	return Link{}, false
}

// ToValue returns the link in its document form.
func (l Link) ToValue() any {
	if len(l.Meta) == 0 {
		return l.Href
	}
	return map[string]any{"href": l.Href, "meta": deepCopyMap(l.Meta)}
}

// Links is a links object keyed by relation name.
type Links struct {
	links map[string]Link
}

// NewLinks builds a Links from already decoded links.
func NewLinks(links map[string]Link) *Links {
	l := &Links{links: make(map[string]Link, len(links))}
	for name, link := range links {
		l.links[name] = link
	}
	return l
}

// LinksFromMap decodes a links object. Members that are neither strings
// nor objects are ignored.
func LinksFromMap(m map[string]any) *Links {
	l := &Links{links: make(map[string]Link, len(m))}
	for name, v := range m {
		if link, ok := LinkFromValue(v); ok {
			l.links[name] = link
		}
	}
	return l
}

// HasLink reports whether a link with the given relation name exists.
func (l *Links) HasLink(name string) bool {
	_, ok := l.links[name]
	return ok
}

// Link returns the link with the given relation name.
func (l *Links) Link(name string) (Link, error) {
	link, ok := l.links[name]
	if !ok {
		return Link{}, &jsonapierrors.LinkError{Rel: name}
	}
	return link, nil
}

// HasAnyLinks reports whether at least one link is present.
func (l *Links) HasAnyLinks() bool {
	return len(l.links) > 0
}

// Names returns the relation names in ascending order.
func (l *Links) Names() []string {
	return maputil.SortedKeys(l.links)
}

// ToMap returns the links object in its document form.
func (l *Links) ToMap() map[string]any {
	out := make(map[string]any, len(l.links))
	for name, link := range l.links {
		out[name] = link.ToValue()
	}
	return out
}

// DocumentLinks is the top-level links object of a document, with
// accessors for the relations JSON:API defines for documents and pagination.
type DocumentLinks struct {
	*Links
}

// DocumentLinksFromMap decodes a top-level links object.
func DocumentLinksFromMap(m map[string]any) *DocumentLinks {
	return &DocumentLinks{Links: LinksFromMap(m)}
}

// HasSelf reports whether a "self" link exists.
func (d *DocumentLinks) HasSelf() bool { return d.HasLink("self") }

// Self returns the "self" link.
func (d *DocumentLinks) Self() (Link, error) { return d.Link("self") }

// HasRelated reports whether a "related" link exists.
func (d *DocumentLinks) HasRelated() bool { return d.HasLink("related") }

// Related returns the "related" link.
func (d *DocumentLinks) Related() (Link, error) { return d.Link("related") }

// HasFirst reports whether a "first" link exists.
func (d *DocumentLinks) HasFirst() bool { return d.HasLink("first") }

// First returns the "first" pagination link.
func (d *DocumentLinks) First() (Link, error) { return d.Link("first") }

// HasLast reports whether a "last" link exists.
func (d *DocumentLinks) HasLast() bool { return d.HasLink("last") }

// Last returns the "last" pagination link.
func (d *DocumentLinks) Last() (Link, error) { return d.Link("last") }

// HasPrev reports whether a "prev" link exists.
func (d *DocumentLinks) HasPrev() bool { return d.HasLink("prev") }

// Prev returns the "prev" pagination link.
func (d *DocumentLinks) Prev() (Link, error) { return d.Link("prev") }

// HasNext reports whether a "next" link exists.
func (d *DocumentLinks) HasNext() bool { return d.HasLink("next") }

// Next returns the "next" pagination link.
func (d *DocumentLinks) Next() (Link, error) { return d.Link("next") }

// HasAbout reports whether an "about" link exists.
func (d *DocumentLinks) HasAbout() bool { return d.HasLink("about") }

// About returns the "about" link.
func (d *DocumentLinks) About() (Link, error) { return d.Link("about") }
