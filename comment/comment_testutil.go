package comment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCommentRepository runs the conformance suite every Repository
// implementation must pass.
func TestCommentRepository(t *testing.T, repo Repository) {
	now := time.Now().Truncate(time.Second)
	comments := []*Comment{
		{ID: "c-2", ContentID: 1, UserID: 2, Text: "Second", CreatedAt: now.Add(1 * time.Minute)},
		{ID: "c-1", ContentID: 1, UserID: 1, Text: "First", CreatedAt: now},
		{ID: "c-3", ContentID: 2, UserID: 1, Text: "Elsewhere", CreatedAt: now},
	}

	for _, c := range comments {
		err := repo.Insert(c)
		require.NoError(t, err, "inserting %s should not fail", c.ID)
	}

	// Comments come back per content, oldest first
	retrieved, err := repo.ListByContent(1)
	require.NoError(t, err, "list should not fail")
	require.Len(t, retrieved, 2, "both comments of content 1 should be retrieved")
	assert.Equal(t, "c-1", retrieved[0].ID, "comments should be ordered oldest first")
	assert.Equal(t, "c-2", retrieved[1].ID)
	assert.Equal(t, "First", retrieved[0].Text)
	assert.Equal(t, 1, retrieved[0].UserID)

	retrieved, err = repo.ListByContent(2)
	require.NoError(t, err)
	require.Len(t, retrieved, 1)
	assert.Equal(t, "c-3", retrieved[0].ID)

	// Unknown content simply has no comments
	retrieved, err = repo.ListByContent(1e6)
	require.NoError(t, err, "listing an unknown content should not fail")
	assert.Len(t, retrieved, 0)

	// Delete
	err = repo.Delete(1, "c-2")
	require.NoError(t, err, "delete should not fail")
	retrieved, err = repo.ListByContent(1)
	require.NoError(t, err)
	require.Len(t, retrieved, 1)
	assert.Equal(t, "c-1", retrieved[0].ID)

	// Deleting an unknown comment is not an error
	err = repo.Delete(1, "nope")
	assert.NoError(t, err, "deleting an unknown comment should not fail")
}
