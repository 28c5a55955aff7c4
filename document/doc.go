// Package document decodes JSON:API documents into a [Document] backed by a
// [schema.Resources] store.
//
// Input may be JSON or YAML and comes from a file, a reader or a byte slice:
//
//	doc, err := document.ParseWithOptions(document.WithFilePath("articles.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if next, err := doc.Links.Next(); err == nil {
//	    fmt.Println("next page:", next.Href)
//	}
//
// Decoding is best effort: the document structure is not validated, and
// members of the wrong kind are ignored. The exception is resource identity.
// A resource without a type or id fails the whole decode with a
// [jsonapierrors.IdentityError], since the store cannot index it.
package document
