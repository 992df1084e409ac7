package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepository runs the conformance suite every Repository implementation
// must pass.
func TestRepository(t *testing.T, repo Repository) {
	contents := []*Content{
		{
			Title:    "Learning Go",
			Body:     "Interfaces, goroutines, channels.",
			AuthorID: 1,
			Likes:    []int{},
			Tags:     []string{"go", "programming"},
			Category: "tech",
			Status:   StatusPublished,
		},
		{
			Title:    "Half-written thoughts",
			AuthorID: 2,
			Likes:    []int{},
			Status:   StatusDraft,
		},
	}

	// Upsert with no id inserts and assigns ids
	for _, c := range contents {
		err := repo.Upsert(c)
		require.NoError(t, err, "inserting %s should not fail", c.Title)
		require.NotEqual(t, 0, c.ID, "id should be set on insert")
	}
	require.NotEqual(t, contents[0].ID, contents[1].ID, "ids should be different")

	// Get by ids
	retrieved, err := repo.Get(contents[0].ID)
	require.NoError(t, err, "get should not fail")
	require.Len(t, retrieved, 1)
	assertContent(t, contents[0], retrieved[0], "get single")

	retrieved, err = repo.Get(contents[0].ID, contents[1].ID)
	require.NoError(t, err, "get several should not fail")
	assert.Len(t, retrieved, 2, "both contents should be retrieved")

	// Unknown ids are simply skipped
	retrieved, err = repo.Get(contents[0].ID, 1e6)
	require.NoError(t, err, "get with an unknown id should not fail")
	assert.Len(t, retrieved, 1, "only the known id should be retrieved")

	// Upsert with an id updates in place
	contents[0].Title = "Learning Go, revised"
	contents[0].Likes = []int{2, 3}
	err = repo.Upsert(contents[0])
	require.NoError(t, err, "update should not fail")
	retrieved, err = repo.Get(contents[0].ID)
	require.NoError(t, err)
	require.Len(t, retrieved, 1)
	assertContent(t, contents[0], retrieved[0], "get after update")

	// List returns everything
	all, err := repo.List()
	require.NoError(t, err, "list should not fail")
	assert.Len(t, all, 2, "list should return all the contents")

	// Delete
	err = repo.Delete(contents[1].ID)
	require.NoError(t, err, "delete should not fail")
	retrieved, err = repo.Get(contents[1].ID)
	require.NoError(t, err)
	assert.Len(t, retrieved, 0, "deleted content should not be retrieved")

	// Deleting an unknown id is not an error
	err = repo.Delete(1e6)
	assert.NoError(t, err, "deleting an unknown id should not fail")
}

func assertContent(t *testing.T, expected, actual *Content, name string) {
	assert.Equal(t, expected.ID, actual.ID, "%s - ids should be equal", name)
	assert.Equal(t, expected.Title, actual.Title, "%s - titles should be equal", name)
	assert.Equal(t, expected.Body, actual.Body, "%s - bodies should be equal", name)
	assert.Equal(t, expected.VideoURL, actual.VideoURL, "%s - video urls should be equal", name)
	assert.Equal(t, expected.AuthorID, actual.AuthorID, "%s - author ids should be equal", name)
	assert.Equal(t, expected.Likes, actual.Likes, "%s - likes should be equal", name)
	assert.Equal(t, expected.Tags, actual.Tags, "%s - tags should be equal", name)
	assert.Equal(t, expected.Category, actual.Category, "%s - categories should be equal", name)
	assert.Equal(t, expected.Status, actual.Status, "%s - statuses should be equal", name)
}
