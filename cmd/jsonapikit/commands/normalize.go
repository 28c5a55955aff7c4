package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/erraggy/jsonapikit/internal/fileutil"
)

// NormalizeFlags contains flags for the normalize command
type NormalizeFlags struct {
	Format string
	Select string
	Output string
	Quiet  bool
}

// SetupNormalizeFlags creates and configures a FlagSet for the normalize command.
// Returns the FlagSet and a NormalizeFlags struct with bound flag variables.
func SetupNormalizeFlags() (*flag.FlagSet, *NormalizeFlags) {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	flags := &NormalizeFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.StringVar(&flags.Select, "select", "", "JSONPath expression applied to the normalized document")
	fs.StringVar(&flags.Output, "o", "", "write the document to this file instead of stdout")
	fs.StringVar(&flags.Output, "output", "", "write the document to this file instead of stdout")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: only output the document, no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: only output the document, no diagnostic messages")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonapikit normalize [flags] <file|->\n\n")
		Writef(output, "Deduplicate a JSON:API document and re-serialize it in a stable order.\n")
		Writef(output, "Resources present in both data and included are kept once, as primary.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonapikit normalize articles.json\n")
		Writef(output, "  jsonapikit normalize --format yaml articles.json\n")
		Writef(output, "  jsonapikit normalize -o normalized.json articles.json\n")
		Writef(output, "  jsonapikit normalize --select '$.included[*].id' articles.json\n")
		Writef(output, "  curl -s https://example.com/articles | jsonapikit normalize -q -\n")
		Writef(output, "\nExit Codes:\n")
		Writef(output, "  0    Document normalized\n")
		Writef(output, "  1    Document could not be decoded or a resource has no identity\n")
	}

	return fs, flags
}

// HandleNormalize executes the normalize command
func HandleNormalize(args []string) error {
	return RunNormalize(args, os.Stdin, os.Stdout, os.Stderr)
}

// RunNormalize executes the normalize command against explicit streams.
func RunNormalize(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupNormalizeFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format, FormatJSON, FormatYAML); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("normalize command requires exactly one file path or '-' for stdin")
	}

	doc, err := LoadDocument(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		OutputDocumentHeader(stderr, doc)
		Writef(stderr, "Primary Resources: %d\n", len(doc.Resources.PrimaryResources()))
		Writef(stderr, "Included Resources: %d\n\n", len(doc.Resources.IncludedResources()))
	}

	var out any = doc.ToMap()
	if flags.Select != "" {
		out, err = SelectJSONPath(out, flags.Select)
		if err != nil {
			return err
		}
	}
	if flags.Output == "" {
		return WriteStructured(stdout, out, flags.Format)
	}

	var buf bytes.Buffer
	if err := WriteStructured(&buf, out, flags.Format); err != nil {
		return err
	}
	if err := os.WriteFile(flags.Output, buf.Bytes(), fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	if !flags.Quiet {
		Writef(stderr, "Output written to: %s\n", flags.Output)
	}
	return nil
}
