package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/erraggy/jsonapikit"
	"github.com/erraggy/jsonapikit/cmd/jsonapikit/commands"
	"github.com/erraggy/jsonapikit/internal/mcpserver"
)

var knownCommands = []string{"normalize", "inspect", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		writeVersion(os.Stdout)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	case "normalize":
		err = commands.HandleNormalize(args)
	case "inspect":
		err = commands.HandleInspect(args)
	case "mcp":
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		err = mcpserver.Run(ctx)
		stop()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// writeVersion prints the banner and build metadata for the version command.
func writeVersion(w io.Writer) {
	commands.Writef(w, "jsonapikit %s\n%s\n", jsonapikit.Version(), jsonapikit.BuildInfo())
}

func printUsage() {
	fmt.Println(`jsonapikit - JSON:API document toolkit

Usage:
  jsonapikit <command> [flags] <file|->

Commands:
  normalize   Deduplicate a document and re-serialize it in a stable order
  inspect     Summarize primary and included resources by type
  mcp         Serve normalize and inspect as MCP tools over stdio
  version     Show version information
  help        Show this help message

Run 'jsonapikit <command> --help' for command flags.`)
}

// suggestCommand returns the known command closest to input, or "" when none
// is within an edit distance of 2.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, cmd := range knownCommands {
		if d := levenshtein(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
