package schema

import (
	"errors"
	"testing"

	"github.com/erraggy/jsonapikit/jsonapierrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func res(resourceType, id string) map[string]any {
	return map[string]any{"type": resourceType, "id": id}
}

func identities(resources []*Resource) []string {
	out := make([]string, 0, len(resources))
	for _, r := range resources {
		out = append(out, r.Identifier().String())
	}
	return out
}

func mapIdentities(records []map[string]any) []string {
	out := make([]string, 0, len(records))
	for _, m := range records {
		out = append(out, m["type"].(string)+"/"+m["id"].(string))
	}
	return out
}

func TestNewResources_SinglePrimary(t *testing.T) {
	store, err := NewResources(SinglePrimary(res("article", "1")), nil)
	require.NoError(t, err)

	assert.True(t, store.IsSinglePrimaryResource())
	assert.True(t, store.HasPrimaryResources())
	assert.False(t, store.HasIncludedResources())
	assert.Equal(t, map[string]any{"type": "article", "id": "1"}, store.PrimaryDataToArray())

	primary, ok := store.PrimaryResource()
	require.True(t, ok)
	assert.Equal(t, "article", primary.Type())
	assert.Equal(t, "1", primary.ID())
}

func TestNewResources_PrimaryWinsOverIncluded(t *testing.T) {
	store, err := NewResources(
		CollectionPrimary([]map[string]any{res("article", "1"), res("article", "2")}),
		[]map[string]any{res("article", "1"), res("person", "9")},
	)
	require.NoError(t, err)

	primary, ok := store.PrimaryDataToArray().([]map[string]any)
	require.True(t, ok, "collection primary data should serialize as a list")
	assert.Equal(t, []string{"article/1", "article/2"}, mapIdentities(primary))
	assert.Equal(t, []string{"person/9"}, mapIdentities(store.IncludedToArray()))

	assert.True(t, store.HasPrimaryResource("article", "1"))
	assert.False(t, store.HasIncludedResource("article", "1"))
	assert.True(t, store.HasIncludedResource("person", "9"))
	assert.Equal(t, 3, store.Len())
}

func TestNewResources_Empty(t *testing.T) {
	store, err := NewResources(CollectionPrimary([]map[string]any{}), []map[string]any{})
	require.NoError(t, err)

	assert.False(t, store.IsSinglePrimaryResource())
	assert.False(t, store.HasPrimaryResources())
	assert.False(t, store.HasIncludedResources())
	assert.Equal(t, []map[string]any{}, store.PrimaryDataToArray())
	assert.Equal(t, []map[string]any{}, store.IncludedToArray())
	assert.Empty(t, store.PrimaryResources())
	assert.Empty(t, store.IncludedResources())
	assert.Zero(t, store.Len())
}

func TestNewResources_InsertionVersusSortedOrder(t *testing.T) {
	store, err := NewResources(
		CollectionPrimary([]map[string]any{res("b", "2"), res("a", "1")}),
		nil,
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"b/2", "a/1"}, identities(store.PrimaryResources()))

	primary := store.PrimaryDataToArray().([]map[string]any)
	assert.Equal(t, []string{"a/1", "b/2"}, mapIdentities(primary))
}

func TestNewResources_IdentityErrors(t *testing.T) {
	tests := []struct {
		name     string
		primary  PrimaryData
		included []map[string]any
		section  string
		index    int
		field    string
	}{
		{
			name:    "single primary without id",
			primary: SinglePrimary(map[string]any{"type": "article"}),
			section: "data",
			index:   -1,
			field:   "id",
		},
		{
			name:    "collection primary without type",
			primary: CollectionPrimary([]map[string]any{res("article", "1"), {"id": "2"}}),
			section: "data",
			index:   1,
			field:   "type",
		},
		{
			name:     "included without id",
			primary:  CollectionPrimary([]map[string]any{res("article", "1")}),
			included: []map[string]any{res("person", "9"), {"type": "person"}},
			section:  "included",
			index:    1,
			field:    "id",
		},
		{
			name:     "included with empty id",
			primary:  NoPrimary(),
			included: []map[string]any{res("person", "")},
			section:  "included",
			index:    0,
			field:    "id",
		},
		{
			name:    "non-string type",
			primary: CollectionPrimary([]map[string]any{{"type": true, "id": "1"}}),
			section: "data",
			index:   0,
			field:   "type",
		},
		{
			name:    "array element that is not an object",
			primary: CollectionPrimary([]map[string]any{res("article", "1"), nil}),
			section: "data",
			index:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewResources(tt.primary, tt.included)
			require.Error(t, err)
			assert.Nil(t, store, "no partial store should be returned")
			assert.True(t, errors.Is(err, jsonapierrors.ErrIdentity))

			var idErr *jsonapierrors.IdentityError
			require.True(t, errors.As(err, &idErr))
			assert.Equal(t, tt.section, idErr.Section)
			assert.Equal(t, tt.index, idErr.Index)
			assert.Equal(t, tt.field, idErr.Field)
		})
	}
}

func TestNewResources_Duplicates(t *testing.T) {
	t.Run("primary duplicates keep first position and last payload", func(t *testing.T) {
		first := map[string]any{"type": "article", "id": "1", "attributes": map[string]any{"title": "old"}}
		last := map[string]any{"type": "article", "id": "1", "attributes": map[string]any{"title": "new"}}
		store, err := NewResources(
			CollectionPrimary([]map[string]any{first, res("article", "2"), last}),
			nil,
		)
		require.NoError(t, err)

		assert.Equal(t, []string{"article/1", "article/2"}, identities(store.PrimaryResources()))
		r, ok := store.Resource("article", "1")
		require.True(t, ok)
		title, _ := r.Attribute("title")
		assert.Equal(t, "new", title)
	})

	t.Run("included duplicates keep first payload", func(t *testing.T) {
		first := map[string]any{"type": "person", "id": "9", "attributes": map[string]any{"name": "first"}}
		second := map[string]any{"type": "person", "id": "9", "attributes": map[string]any{"name": "second"}}
		store, err := NewResources(NoPrimary(), []map[string]any{first, second})
		require.NoError(t, err)

		assert.Len(t, store.IncludedResources(), 1)
		r, ok := store.Resource("person", "9")
		require.True(t, ok)
		name, _ := r.Attribute("name")
		assert.Equal(t, "first", name)
	})

	t.Run("included copy of a primary resource is dropped", func(t *testing.T) {
		primary := map[string]any{"type": "article", "id": "1", "attributes": map[string]any{"title": "primary"}}
		included := map[string]any{"type": "article", "id": "1", "attributes": map[string]any{"title": "included"}}
		store, err := NewResources(SinglePrimary(primary), []map[string]any{included})
		require.NoError(t, err)

		assert.False(t, store.HasIncludedResources())
		r, _ := store.Resource("article", "1")
		title, _ := r.Attribute("title")
		assert.Equal(t, "primary", title)
	})
}

func TestNewResources_IdentityUniqueness(t *testing.T) {
	primary := []map[string]any{res("a", "1"), res("a", "1"), res("b", "1"), res("a", "2")}
	included := []map[string]any{res("b", "1"), res("c", "1"), res("a", "2"), res("c", "1"), res("a", "3")}
	store, err := NewResources(CollectionPrimary(primary), included)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, r := range append(store.PrimaryResources(), store.IncludedResources()...) {
		key := r.Identifier().String()
		assert.False(t, seen[key], "identity %s classified twice", key)
		seen[key] = true
	}
	assert.Len(t, seen, 5)
	assert.Equal(t, 5, store.Len())
	assert.Equal(t, []string{"a/1", "a/2", "b/1"}, identities(store.PrimaryResources()))
	assert.Equal(t, []string{"c/1", "a/3"}, identities(store.IncludedResources()))
	assert.Equal(t, []string{"a/3", "c/1"}, mapIdentities(store.IncludedToArray()))
}

func TestResources_ShapeFidelity(t *testing.T) {
	t.Run("single-element collection stays a list", func(t *testing.T) {
		store, err := NewResources(CollectionPrimary([]map[string]any{res("article", "1")}), nil)
		require.NoError(t, err)
		assert.False(t, store.IsSinglePrimaryResource())
		assert.IsType(t, []map[string]any{}, store.PrimaryDataToArray())
	})

	t.Run("no primary data serializes as an empty list", func(t *testing.T) {
		store, err := NewResources(NoPrimary(), nil)
		require.NoError(t, err)
		assert.Equal(t, []map[string]any{}, store.PrimaryDataToArray())
	})

	t.Run("empty single record is an empty collection", func(t *testing.T) {
		store, err := NewResources(SinglePrimary(map[string]any{}), nil)
		require.NoError(t, err)
		assert.False(t, store.IsSinglePrimaryResource())
		assert.False(t, store.HasPrimaryResources())
		assert.Equal(t, []map[string]any{}, store.PrimaryDataToArray())
	})
}

func TestResources_PrimaryResource(t *testing.T) {
	t.Run("collection store reports no single primary", func(t *testing.T) {
		store, err := NewResources(CollectionPrimary([]map[string]any{res("b", "1"), res("a", "1")}), nil)
		require.NoError(t, err)
		r, ok := store.PrimaryResource()
		assert.False(t, ok)
		assert.Nil(t, r)
	})

	t.Run("empty collection", func(t *testing.T) {
		store, err := NewResources(NoPrimary(), nil)
		require.NoError(t, err)
		_, ok := store.PrimaryResource()
		assert.False(t, ok)
	})
}

func TestResources_Lookups(t *testing.T) {
	store, err := NewResources(
		SinglePrimary(res("article", "1")),
		[]map[string]any{res("person", "9")},
	)
	require.NoError(t, err)

	r, ok := store.Resource("person", "9")
	require.True(t, ok)
	assert.Equal(t, "person", r.Type())

	r, ok = store.Resource("person", "10")
	assert.False(t, ok)
	assert.Nil(t, r)

	_, ok = store.Resource("comment", "1")
	assert.False(t, ok)

	assert.False(t, store.HasPrimaryResource("person", "9"))
	assert.False(t, store.HasIncludedResource("article", "1"))
	assert.False(t, store.HasIncludedResource("comment", "1"))
	assert.Equal(t, []string{"article", "person"}, store.Types())
}

func TestResources_RelatedResources(t *testing.T) {
	article := map[string]any{
		"type": "articles",
		"id":   "1",
		"relationships": map[string]any{
			"author": map[string]any{
				"data": map[string]any{"type": "people", "id": "9"},
			},
			"comments": map[string]any{
				"data": []any{
					map[string]any{"type": "comments", "id": "5"},
					map[string]any{"type": "comments", "id": "404"},
					map[string]any{"type": "comments", "id": "12"},
				},
			},
			"editor": map[string]any{"data": nil},
		},
	}
	store, err := NewResources(SinglePrimary(article), []map[string]any{
		res("comments", "12"), res("people", "9"), res("comments", "5"),
	})
	require.NoError(t, err)

	primary, ok := store.PrimaryResource()
	require.True(t, ok)

	assert.Equal(t, []string{"people/9"}, identities(store.RelatedResources(primary, "author")))
	assert.Equal(t, []string{"comments/5", "comments/12"}, identities(store.RelatedResources(primary, "comments")))
	assert.Empty(t, store.RelatedResources(primary, "editor"))
	assert.Nil(t, store.RelatedResources(primary, "unknown"))
}

func TestResources_SerializedViewsAreCopies(t *testing.T) {
	record := map[string]any{"type": "article", "id": "1", "attributes": map[string]any{"title": "a"}}
	store, err := NewResources(CollectionPrimary([]map[string]any{record}), nil)
	require.NoError(t, err)

	out := store.PrimaryDataToArray().([]map[string]any)
	out[0]["attributes"].(map[string]any)["title"] = "changed"

	again := store.PrimaryDataToArray().([]map[string]any)
	assert.Equal(t, "a", again[0]["attributes"].(map[string]any)["title"])
}

func TestResources_NumericIDOrder(t *testing.T) {
	store, err := NewResources(
		CollectionPrimary([]map[string]any{res("article", "10"), res("article", "9"), res("article", "2")}),
		[]map[string]any{res("person", "b"), res("person", "100"), res("person", "a"), res("person", "20")},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"article/2", "article/9", "article/10"},
		mapIdentities(store.PrimaryDataToArray().([]map[string]any)))
	assert.Equal(t, []string{"person/20", "person/100", "person/a", "person/b"},
		mapIdentities(store.IncludedToArray()))

	// getters keep document order
	assert.Equal(t, []string{"article/10", "article/9", "article/2"}, identities(store.PrimaryResources()))
}

func TestResources_PrimaryResource_NumericID(t *testing.T) {
	store, err := NewResources(SinglePrimary(res("article", "10")), nil)
	require.NoError(t, err)
	r, ok := store.PrimaryResource()
	require.True(t, ok)
	assert.Equal(t, "10", r.ID())
}

func TestResources_InputMutationAfterBuild(t *testing.T) {
	record := map[string]any{"type": "article", "id": "1", "attributes": map[string]any{"title": "a"}}
	included := []map[string]any{res("person", "9")}
	store, err := NewResources(SinglePrimary(record), included)
	require.NoError(t, err)

	record["id"] = "2"
	record["attributes"].(map[string]any)["title"] = "changed"
	included[0]["id"] = "10"

	primary, ok := store.PrimaryResource()
	require.True(t, ok)
	assert.Equal(t, "1", primary.ID())
	assert.True(t, store.HasPrimaryResource("article", "1"))
	assert.False(t, store.HasPrimaryResource("article", "2"))

	out := store.PrimaryDataToArray().(map[string]any)
	assert.Equal(t, "1", out["id"])
	assert.Equal(t, "a", out["attributes"].(map[string]any)["title"])
	assert.Equal(t, []string{"person/9"}, mapIdentities(store.IncludedToArray()))
}
