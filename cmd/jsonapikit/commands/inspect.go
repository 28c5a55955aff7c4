package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/disiqueira/gotree/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/jsonapikit/document"
	"github.com/erraggy/jsonapikit/schema"
)

// InspectFlags contains flags for the inspect command
type InspectFlags struct {
	Format string
}

// SetupInspectFlags creates and configures a FlagSet for the inspect command.
func SetupInspectFlags() (*flag.FlagSet, *InspectFlags) {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	flags := &InspectFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, tree or json")

	fs.Usage = func() {
		output := fs.Output()
		Writef(output, "Usage: jsonapikit inspect [flags] <file|->\n\n")
		Writef(output, "Summarize the resources of a JSON:API document.\n\n")
		Writef(output, "Flags:\n")
		fs.PrintDefaults()
		Writef(output, "\nExamples:\n")
		Writef(output, "  jsonapikit inspect articles.json\n")
		Writef(output, "  jsonapikit inspect --format tree articles.json\n")
		Writef(output, "  jsonapikit inspect --format json - < articles.json\n")
	}

	return fs, flags
}

// HandleInspect executes the inspect command
func HandleInspect(args []string) error {
	return RunInspect(args, os.Stdin, os.Stdout, os.Stderr)
}

// RunInspect executes the inspect command against explicit streams.
func RunInspect(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs, flags := SetupInspectFlags()
	fs.SetOutput(stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := ValidateOutputFormat(flags.Format, FormatText, FormatTree, FormatJSON); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("inspect command requires exactly one file path or '-' for stdin")
	}

	doc, err := LoadDocument(fs.Arg(0), stdin)
	if err != nil {
		return err
	}

	switch flags.Format {
	case FormatJSON:
		return WriteStructured(stdout, doc.Summary(), FormatJSON)
	case FormatTree:
		Writef(stdout, "%s", RenderTree(doc))
	default:
		writeTextSummary(stdout, doc.Summary())
	}
	return nil
}

func writeTextSummary(w io.Writer, s document.Summary) {
	title := cases.Title(language.English)

	Writef(w, "Document: %s\n", s.Source)
	Writef(w, "Format: %s\n", s.Format)
	Writef(w, "Source Size: %s\n", document.FormatBytes(s.Size))
	Writef(w, "Primary Data: %s\n", s.Shape)
	Writef(w, "Primary Resources: %d\n", s.Primary)
	Writef(w, "Included Resources: %d\n", s.Included)
	if s.Errors > 0 {
		Writef(w, "Errors: %d\n", s.Errors)
	}
	if len(s.Links) > 0 {
		Writef(w, "Links: %s\n", strings.Join(s.Links, ", "))
	}
	if len(s.Types) > 0 {
		Writef(w, "\nTypes:\n")
		for _, tc := range s.Types {
			Writef(w, "  %s: %d primary, %d included\n", title.String(tc.Type), tc.Primary, tc.Included)
		}
	}
}

// RenderTree draws the resource index as a tree: classification, then type,
// then id, in the order resources appeared in the document.
func RenderTree(doc *document.Document) string {
	root := gotree.New(doc.SourcePath)
	addBranch(root, "primary", doc.Resources.PrimaryResources())
	addBranch(root, "included", doc.Resources.IncludedResources())
	return root.Print()
}

func addBranch(root gotree.Tree, label string, resources []*schema.Resource) {
	branch := root.Add(fmt.Sprintf("%s (%d)", label, len(resources)))
	types := make(map[string]gotree.Tree)
	for _, r := range resources {
		node, ok := types[r.Type()]
		if !ok {
			node = branch.Add(r.Type())
			types[r.Type()] = node
		}
		node.Add(r.ID())
	}
}
