// Package commands provides CLI command handlers for jsonapikit.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/ohler55/ojg/jp"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/jsonapikit"
	"github.com/erraggy/jsonapikit/document"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTree = "tree"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat returns an error unless format is one of valid.
func ValidateOutputFormat(format string, valid ...string) error {
	if slices.Contains(valid, format) {
		return nil
	}
	return fmt.Errorf("invalid format '%s'. Valid formats: %s", format, strings.Join(valid, ", "))
}

// WriteStructured writes data to w as indented JSON or YAML.
func WriteStructured(w io.Writer, data any, format string) error {
	var out []byte
	var err error

	switch format {
	case FormatJSON:
		out, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		out, err = yaml.Marshal(data)
	default:
		return fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return fmt.Errorf("marshaling to %s: %w", format, err)
	}

	Writef(w, "%s", out)
	if len(out) == 0 || out[len(out)-1] != '\n' {
		Writef(w, "\n")
	}
	return nil
}

// LoadDocument decodes the document at path, or from stdin when path is
// StdinFilePath.
func LoadDocument(path string, stdin io.Reader) (*document.Document, error) {
	if path == StdinFilePath {
		doc, err := document.ParseWithOptions(document.WithReader(stdin), document.WithSourceName("<stdin>"))
		if err != nil {
			return nil, fmt.Errorf("parsing stdin: %w", err)
		}
		return doc, nil
	}
	doc, err := document.ParseWithOptions(document.WithFilePath(path))
	if err != nil {
		return nil, fmt.Errorf("parsing file: %w", err)
	}
	return doc, nil
}

// SelectJSONPath evaluates a JSONPath expression against decoded data and
// returns every match.
func SelectJSONPath(data any, expr string) ([]any, error) {
	path, err := jp.ParseString(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath '%s': %w", expr, err)
	}
	return path.Get(data), nil
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// OutputDocumentHeader writes the common diagnostic header for a document.
func OutputDocumentHeader(w io.Writer, doc *document.Document) {
	Writef(w, "jsonapikit version: %s\n", jsonapikit.Version())
	Writef(w, "Document: %s\n", doc.SourcePath)
	Writef(w, "Format: %s\n", doc.SourceFormat)
	Writef(w, "Source Size: %s\n", document.FormatBytes(doc.SourceSize))
	Writef(w, "Load Time: %v\n", doc.LoadTime)
}
