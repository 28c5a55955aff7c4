// Package jsonapikit provides client-side tools for working with JSON:API documents.
//
// The library turns the primary data and the "included" sidecar of a JSON:API
// response into a deduplicated, identity-indexed resource store that keeps
// track of which resources were requested and which were delivered as
// context, while preserving the order they arrived in.
//
// # Overview
//
// The library consists of three packages:
//
//   - schema: resources, relationships, links and the resource store
//   - document: decode JSON or YAML bytes into a Document backed by the store
//   - jsonapierrors: structured error types for errors.Is / errors.As
//
// # Quick Start
//
// Decode a document and look up resources by identity:
//
//	import "github.com/erraggy/jsonapikit/document"
//
//	doc, err := document.ParseWithOptions(document.WithFilePath("articles.json"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, article := range doc.Resources.PrimaryResources() {
//		for _, author := range doc.Resources.RelatedResources(article, "author") {
//			fmt.Println(article.ID(), author.Attributes()["name"])
//		}
//	}
//
// Build a store directly from already-decoded values:
//
//	import "github.com/erraggy/jsonapikit/schema"
//
//	primary, err := schema.PrimaryDataFromValue(raw["data"])
//	if err != nil {
//		log.Fatal(err)
//	}
//	store, err := schema.NewResources(primary, included)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out := store.PrimaryDataToArray()
//
// # Command Line
//
// The jsonapikit command normalizes and inspects documents:
//
//	jsonapikit normalize articles.json
//	jsonapikit inspect --format tree articles.json
//	jsonapikit mcp
package jsonapikit
