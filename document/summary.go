package document

// TypeCount is the number of resources of one type in each classification.
type TypeCount struct {
	Type     string `json:"type"`
	Primary  int    `json:"primary"`
	Included int    `json:"included"`
}

// Summary describes the shape and contents of a document.
type Summary struct {
	Source   string      `json:"source"`
	Format   string      `json:"format"`
	Size     int64       `json:"size"`
	Shape    string      `json:"shape"`
	Primary  int         `json:"primary"`
	Included int         `json:"included"`
	Errors   int         `json:"errors,omitempty"`
	Links    []string    `json:"links,omitempty"`
	Types    []TypeCount `json:"types,omitempty"`
}

// Summary counts the resources of the document by classification and type.
// Types are listed in ascending order.
func (d *Document) Summary() Summary {
	store := d.Resources
	s := Summary{
		Source:   d.SourcePath,
		Format:   string(d.SourceFormat),
		Size:     d.SourceSize,
		Shape:    d.shape.String(),
		Primary:  len(store.PrimaryResources()),
		Included: len(store.IncludedResources()),
		Errors:   len(d.Errors),
		Links:    d.Links.Names(),
	}

	types := store.Types()
	index := make(map[string]int, len(types))
	s.Types = make([]TypeCount, len(types))
	for i, t := range types {
		index[t] = i
		s.Types[i].Type = t
	}
	for _, r := range store.PrimaryResources() {
		s.Types[index[r.Type()]].Primary++
	}
	for _, r := range store.IncludedResources() {
		s.Types[index[r.Type()]].Included++
	}
	return s
}
