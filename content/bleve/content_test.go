package bleve

import (
	"os"
	"testing"

	"github.com/blevesearch/bleve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-MihirParmar/Enlighten/content"
)

func createIndex(t *testing.T) (*ContentIndex, func()) {
	dir, err := os.MkdirTemp("", "")
	if err != nil {
		t.Fatal("could not create tmp dir:", err)
	}

	index, err := bleve.New(dir, createMapping())
	if err != nil {
		os.RemoveAll(dir)
		t.Fatal("error creating index:", err)
	}

	return &ContentIndex{index: index}, func() {
		if err := index.Close(); err != nil {
			t.Log(err)
		}
		if err := os.RemoveAll(dir); err != nil {
			t.Log(err)
		}
	}
}

func TestContentIndex_Search(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	contents := []*content.Content{
		{ID: 1, Title: "Learning Go", Body: "Goroutines and channels", Tags: []string{"go", "programming"}, Category: "tech", Status: content.StatusPublished},
		{ID: 2, Title: "Sourdough basics", Body: "Flour, water, patience", Tags: []string{"baking"}, Category: "food", Status: content.StatusPublished},
		{ID: 3, Title: "Learning to bake", Body: "A journey", Tags: []string{"baking", "journal"}, Category: "food", Status: content.StatusPublished},
		{ID: 4, Title: "Go performance notes", Body: "Profiling with pprof", Tags: []string{"go"}, Category: "tech", Status: content.StatusDraft},
		{ID: 5, Title: "Machine learning", Body: "Gradient descent", Tags: []string{"machine learning"}, Category: "tech", Status: content.StatusPublished},
	}
	for _, c := range contents {
		require.NoError(t, index.Index(c), "error indexing %d", c.ID)
	}

	tts := map[string]struct {
		search   content.Search
		expected []int
	}{
		"match all": {
			search:   content.Search{Limit: 10},
			expected: []int{1, 2, 3, 4, 5},
		},
		"published only": {
			search:   content.Search{Status: content.StatusPublished, Limit: 10},
			expected: []int{1, 2, 3, 5},
		},
		"one word": {
			search:   content.Search{Q: "sourdough", Limit: 10},
			expected: []int{2},
		},
		"word in body": {
			search:   content.Search{Q: "profiling", Limit: 10},
			expected: []int{4},
		},
		"prefix": {
			search:   content.Search{Q: "learn", Status: content.StatusPublished, Limit: 10},
			expected: []int{1, 3, 5},
		},
		"prefix on a multi word tag": {
			search:   content.Search{Q: "mach", Limit: 10},
			expected: []int{5},
		},
		"by tag": {
			search:   content.Search{Tags: []string{"baking"}, Limit: 10},
			expected: []int{2, 3},
		},
		"by exact tag only": {
			search:   content.Search{Tags: []string{"machine"}, Limit: 10},
			expected: []int{},
		},
		"by category": {
			search:   content.Search{Category: "tech", Status: content.StatusPublished, Limit: 10},
			expected: []int{1, 5},
		},
		"no match": {
			search:   content.Search{Q: "quantum", Limit: 10},
			expected: []int{},
		},
		"with limit": {
			search:   content.Search{Limit: 2},
			expected: []int{1, 2},
		},
		"with offset": {
			search:   content.Search{Limit: 2, Offset: 2},
			expected: []int{3, 4},
		},
	}

	for name, tt := range tts {
		res, err := index.Search(tt.search)
		if assert.NoError(t, err, "%s - search should not fail", name) {
			assert.Equal(t, tt.expected, res.IDs, "%s - wrong ids", name)
		}
	}
}

func TestContentIndex_TagsFacet(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	contents := []*content.Content{
		{ID: 1, Title: "One", Tags: []string{"go"}, Status: content.StatusPublished},
		{ID: 2, Title: "Two", Tags: []string{"baking"}, Status: content.StatusPublished},
		{ID: 3, Title: "Three", Tags: []string{"baking", "journal"}, Status: content.StatusPublished},
	}
	for _, c := range contents {
		require.NoError(t, index.Index(c))
	}

	res, err := index.Search(content.Search{Limit: 10})
	require.NoError(t, err)

	counts := make(map[string]int)
	for _, tag := range res.Facets.Tags {
		counts[tag.Tag] = tag.Count
	}
	assert.Equal(t, 2, counts["baking"], "facet should count both tagged contents")
	assert.Equal(t, 1, counts["go"])
	assert.Equal(t, 1, counts["journal"])
}

func TestContentIndex_Delete(t *testing.T) {
	index, f := createIndex(t)
	defer f()

	c := &content.Content{ID: 1, Title: "Ephemeral", Status: content.StatusPublished}
	require.NoError(t, index.Index(c))

	res, err := index.Search(content.Search{Q: "ephemeral", Limit: 10})
	require.NoError(t, err)
	require.Equal(t, []int{1}, res.IDs)

	require.NoError(t, index.Delete(1))

	res, err = index.Search(content.Search{Q: "ephemeral", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, []int{}, res.IDs)
}
