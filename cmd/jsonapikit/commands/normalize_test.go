package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/jsonapikit/internal/fileutil"
	"github.com/erraggy/jsonapikit/jsonapierrors"
)

func TestSetupNormalizeFlags(t *testing.T) {
	fs, flags := SetupNormalizeFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, FormatJSON, flags.Format)
		assert.Empty(t, flags.Select)
		assert.Empty(t, flags.Output)
		assert.False(t, flags.Quiet)
	})

	t.Run("parse flags", func(t *testing.T) {
		args := []string{"--format", "yaml", "--select", "$.data", "-q", "doc.json"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, FormatYAML, flags.Format)
		assert.Equal(t, "$.data", flags.Select)
		assert.True(t, flags.Quiet)
		assert.Equal(t, "doc.json", fs.Arg(0))
	})
}

func TestHandleNormalize_NoArgs(t *testing.T) {
	err := HandleNormalize([]string{})
	assert.Error(t, err)
}

func TestHandleNormalize_Help(t *testing.T) {
	err := HandleNormalize([]string{"--help"})
	assert.NoError(t, err)
}

func TestRunNormalize(t *testing.T) {
	path := writeFixture(t, "articles.json", articlesFixture)

	t.Run("deduplicates and sorts", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, RunNormalize([]string{"-q", path}, nil, &stdout, &stderr))
		assert.Empty(t, stderr.String())

		var got map[string]any
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))

		data, ok := got["data"].([]any)
		require.True(t, ok, "data should be an array")
		require.Len(t, data, 2)
		assert.Equal(t, "1", data[0].(map[string]any)["id"])
		assert.Equal(t, "2", data[1].(map[string]any)["id"])

		included, ok := got["included"].([]any)
		require.True(t, ok, "included should be an array")
		require.Len(t, included, 1)
		assert.Equal(t, "people", included[0].(map[string]any)["type"])

		links := got["links"].(map[string]any)
		assert.Equal(t, "http://example.com/articles", links["self"])
	})

	t.Run("diagnostics on stderr", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, RunNormalize([]string{path}, nil, &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Primary Resources: 2")
		assert.Contains(t, stderr.String(), "Included Resources: 1")
		assert.NotContains(t, stdout.String(), "Primary Resources")
	})

	t.Run("yaml output", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, RunNormalize([]string{"-q", "--format", "yaml", path}, nil, &stdout, &stderr))
		assert.Contains(t, stdout.String(), "type: people")
		assert.NotContains(t, stdout.String(), "Stale")
	})

	t.Run("select", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		args := []string{"-q", "--select", "$.included[*].id", path}
		require.NoError(t, RunNormalize(args, nil, &stdout, &stderr))
		assert.JSONEq(t, `["9"]`, stdout.String())
	})

	t.Run("stdin", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		require.NoError(t, RunNormalize([]string{"-"}, strings.NewReader(articlesFixture), &stdout, &stderr))
		assert.Contains(t, stderr.String(), "Document: <stdin>")
		assert.Contains(t, stdout.String(), `"people"`)
	})

	t.Run("output file", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		outPath := filepath.Join(t.TempDir(), "normalized.json")
		require.NoError(t, RunNormalize([]string{"-o", outPath, path}, nil, &stdout, &stderr))
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "Output written to: "+outPath)

		info, err := os.Stat(outPath)
		require.NoError(t, err)
		assert.Equal(t, fileutil.OwnerReadWrite, info.Mode().Perm())

		written, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Contains(t, string(written), `"people"`)
	})

	t.Run("invalid format", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := RunNormalize([]string{"--format", "tree", path}, nil, &stdout, &stderr)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid format")
	})

	t.Run("invalid select", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		err := RunNormalize([]string{"-q", "--select", "$.data[", path}, nil, &stdout, &stderr)
		assert.Error(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("resource without identity", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		input := `{"data": [{"type": "articles"}]}`
		err := RunNormalize([]string{"-q", "-"}, strings.NewReader(input), &stdout, &stderr)
		require.Error(t, err)
		assert.ErrorIs(t, err, jsonapierrors.ErrIdentity)
		assert.Empty(t, stdout.String())
	})
}
