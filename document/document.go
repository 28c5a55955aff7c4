package document

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonapikit/jsonapierrors"
	"github.com/erraggy/jsonapikit/schema"
)

// DefaultMaxSize is the input size limit used when Parser.MaxSize is zero.
const DefaultMaxSize int64 = 10 * 1024 * 1024

// Document is a decoded JSON:API document.
type Document struct {
	// Resources holds the primary and included resources
	Resources *schema.Resources
	// Links is the top-level links object; never nil
	Links *schema.DocumentLinks
	// Meta is the top-level meta object
	Meta map[string]any
	// JSONAPI is the "jsonapi" object describing the server implementation
	JSONAPI map[string]any
	// Errors holds the top-level error objects
	Errors []ErrorObject

	// SourcePath is the file path, or a placeholder for in-memory input
	SourcePath string
	// SourceFormat is the detected input format
	SourceFormat SourceFormat
	// SourceSize is the input size in bytes
	SourceSize int64
	// LoadTime is the time spent reading the input
	LoadTime time.Duration

	hasData bool
	shape   schema.PrimaryShape
}

// HasData reports whether the document had a "data" member.
func (d *Document) HasData() bool {
	return d.hasData
}

// HasErrors reports whether the document carries error objects.
func (d *Document) HasErrors() bool {
	return len(d.Errors) > 0
}

// ToMap re-serializes the document. Primary data keeps its single or
// collection shape; primary and included resources are emitted in
// (type, id) order. "included" is omitted when empty.
func (d *Document) ToMap() map[string]any {
	out := make(map[string]any)
	if d.JSONAPI != nil {
		out["jsonapi"] = d.JSONAPI
	}
	if d.Meta != nil {
		out["meta"] = d.Meta
	}
	if d.Links != nil && d.Links.HasAnyLinks() {
		out["links"] = d.Links.ToMap()
	}
	if d.hasData {
		switch data := d.Resources.PrimaryDataToArray().(type) {
		case []map[string]any:
			out["data"] = toAnySlice(data)
		default:
			out["data"] = data
		}
	}
	if d.Resources.HasIncludedResources() {
		out["included"] = toAnySlice(d.Resources.IncludedToArray())
	}
	if d.HasErrors() {
		errs := make([]any, 0, len(d.Errors))
		for _, e := range d.Errors {
			errs = append(errs, e.ToMap())
		}
		out["errors"] = errs
	}
	return out
}

// toAnySlice converts records to the []any shape JSON decoders produce, so
// the output can be walked by generic tools such as JSONPath evaluators.
func toAnySlice(records []map[string]any) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = r
	}
	return out
}

// Parser decodes JSON:API documents.
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger Logger
	// MaxSize is the maximum input size in bytes.
	// Default: 10MB
	MaxSize int64
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{MaxSize: DefaultMaxSize}
}

func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxSize() int64 {
	if p.MaxSize > 0 {
		return p.MaxSize
	}
	return DefaultMaxSize
}

// Parse reads and decodes the document at path.
func (p *Parser) Parse(path string) (*Document, error) {
	loadStart := time.Now()
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read file: %w", err)
	}
	if info.Size() > p.maxSize() {
		return nil, &jsonapierrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        p.maxSize(),
			Actual:       info.Size(),
			Message:      path,
		}
	}
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read file: %w", err)
	}

	doc, err := p.decode(data, path)
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	if format := detectFormatFromPath(path); format != SourceFormatUnknown {
		doc.SourceFormat = format
	}
	return doc, nil
}

// ParseReader reads r to the end and decodes it.
// SourcePath is set to "ParseReader.json" or "ParseReader.yaml".
func (p *Parser) ParseReader(r io.Reader) (*Document, error) {
	loadStart := time.Now()
	limit := p.maxSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("document: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &jsonapierrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        limit,
		}
	}
	doc, err := p.decode(data, placeholderPath("ParseReader", data))
	if err != nil {
		return nil, err
	}
	doc.LoadTime = loadTime
	return doc, nil
}

// ParseBytes decodes an in-memory document.
// SourcePath is set to "ParseBytes.json" or "ParseBytes.yaml".
func (p *Parser) ParseBytes(data []byte) (*Document, error) {
	if int64(len(data)) > p.maxSize() {
		return nil, &jsonapierrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        p.maxSize(),
			Actual:       int64(len(data)),
		}
	}
	return p.decode(data, placeholderPath("ParseBytes", data))
}

func placeholderPath(prefix string, data []byte) string {
	if detectFormatFromContent(data) == SourceFormatJSON {
		return prefix + ".json"
	}
	return prefix + ".yaml"
}

func (p *Parser) decode(data []byte, source string) (*Document, error) {
	log := p.log().With("source", source)

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &jsonapierrors.ParseError{Path: source, Message: "invalid JSON or YAML", Cause: err}
	}
	top, ok := raw.(map[string]any)
	if !ok {
		return nil, &jsonapierrors.ParseError{Path: source, Message: "top-level value must be an object"}
	}

	dataValue, hasData := top["data"]
	primary, err := schema.PrimaryDataFromValue(dataValue)
	if err != nil {
		return nil, fmt.Errorf("document: %s: %w", source, err)
	}
	store, err := schema.NewResources(primary, p.includedRecords(log, top["included"]))
	if err != nil {
		return nil, fmt.Errorf("document: %s: %w", source, err)
	}

	doc := &Document{
		Resources:    store,
		Links:        schema.DocumentLinksFromMap(objectMember(top, "links")),
		Meta:         objectMember(top, "meta"),
		JSONAPI:      objectMember(top, "jsonapi"),
		Errors:       p.errorObjects(log, top["errors"]),
		SourcePath:   source,
		SourceFormat: detectFormatFromContent(data),
		SourceSize:   int64(len(data)),
		hasData:      hasData,
		shape:        primary.Shape(),
	}
	log.Debug("decoded document",
		"shape", primary.Shape().String(),
		"primary", len(store.PrimaryResources()),
		"included", len(store.IncludedResources()),
		"errors", len(doc.Errors),
	)
	return doc, nil
}

// includedRecords converts the "included" member. A member that is not an
// array is ignored; non-object entries are kept as nil so the store reports
// them with their index.
func (p *Parser) includedRecords(log Logger, v any) []map[string]any {
	if v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		log.Warn("ignoring non-array included member", "kind", fmt.Sprintf("%T", v))
		return nil
	}
	records := make([]map[string]any, len(list))
	for i, item := range list {
		records[i], _ = item.(map[string]any)
	}
	return records
}

func (p *Parser) errorObjects(log Logger, v any) []ErrorObject {
	list, ok := v.([]any)
	if !ok {
		if v != nil {
			log.Warn("ignoring non-array errors member", "kind", fmt.Sprintf("%T", v))
		}
		return nil
	}
	out := make([]ErrorObject, 0, len(list))
	for i, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			log.Warn("skipping error entry that is not an object", "index", i)
			continue
		}
		out = append(out, errorObjectFromMap(m))
	}
	return out
}

func objectMember(m map[string]any, key string) map[string]any {
	v, _ := m[key].(map[string]any)
	return v
}
