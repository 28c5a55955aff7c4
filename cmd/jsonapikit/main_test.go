package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/erraggy/jsonapikit"
)

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"normalise", "normalize"},
		{"normalze", "normalize"},
		{"nromalize", "normalize"},
		{"inspct", "inspect"},
		{"insepct", "inspect"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"normalization", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"inspect", "inspect", 0},
		{"kitten", "sitting", 3},
	}
	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestWriteVersion(t *testing.T) {
	var buf bytes.Buffer
	writeVersion(&buf)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("writeVersion() wrote %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if want := "jsonapikit " + jsonapikit.Version(); lines[0] != want {
		t.Errorf("banner = %q, want %q", lines[0], want)
	}
	if got, want := strings.Join(lines[1:], "\n"), jsonapikit.BuildInfo(); got != want {
		t.Errorf("build info = %q, want %q", got, want)
	}
}
