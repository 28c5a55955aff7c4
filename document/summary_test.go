package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocument_Summary(t *testing.T) {
	doc, err := New().ParseBytes([]byte(articlesJSON))
	require.NoError(t, err)

	s := doc.Summary()
	assert.Equal(t, "ParseBytes.json", s.Source)
	assert.Equal(t, "json", s.Format)
	assert.Equal(t, "collection", s.Shape)
	assert.Equal(t, 2, s.Primary)
	assert.Equal(t, 2, s.Included)
	assert.Zero(t, s.Errors)
	assert.Equal(t, []string{"next", "self"}, s.Links)
	assert.Equal(t, []TypeCount{
		{Type: "articles", Primary: 2},
		{Type: "comments", Included: 1},
		{Type: "people", Included: 1},
	}, s.Types)
}

func TestDocument_Summary_Shapes(t *testing.T) {
	tests := []struct {
		input string
		shape string
	}{
		{`{"data": {"type": "a", "id": "1"}}`, "single"},
		{`{"data": []}`, "collection"},
		{`{"data": {}}`, "collection"},
		{`{"data": null}`, "none"},
		{`{"meta": {}}`, "none"},
	}
	for _, tt := range tests {
		doc, err := New().ParseBytes([]byte(tt.input))
		require.NoError(t, err)
		assert.Equal(t, tt.shape, doc.Summary().Shape, tt.input)
	}
}
