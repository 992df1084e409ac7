package services

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-MihirParmar/Enlighten/content"
	"github.com/Dev-MihirParmar/Enlighten/content/inmem"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

// stubIndex keeps the status of everything indexed, enough to answer the
// status filter the service always sets.
type stubIndex struct {
	statuses map[int]string
}

func newStubIndex() *stubIndex {
	return &stubIndex{statuses: make(map[int]string)}
}

func (s *stubIndex) Index(c *content.Content) error {
	s.statuses[c.ID] = c.Status
	return nil
}

func (s *stubIndex) Delete(id int) error {
	delete(s.statuses, id)
	return nil
}

func (s *stubIndex) Search(search content.Search) (content.SearchResults, error) {
	var ids []int
	for id, status := range s.statuses {
		if search.Status == "" || search.Status == status {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	return content.SearchResults{
		IDs: ids,
		Pagination: content.Pagination{
			Total:  uint64(len(ids)),
			Limit:  search.Limit,
			Offset: search.Offset,
		},
	}, nil
}

func createService() (*ContentService, *stubIndex) {
	index := newStubIndex()
	return NewContentService(inmem.NewContentRepository(), index), index
}

func TestContentService_Create(t *testing.T) {
	service, index := createService()

	c, err := service.Create(1, content.Content{Title: "Hello", Body: "World"})
	require.NoError(t, err, "create should not fail")

	assert.NotEqual(t, 0, c.ID, "id should be set")
	assert.Equal(t, 1, c.AuthorID, "the caller should be the author")
	assert.Equal(t, content.StatusDraft, c.Status, "status should default to draft")
	assert.Equal(t, []int{}, c.Likes, "likes should start empty")
	assert.False(t, c.CreatedAt.IsZero(), "creation time should be set")
	assert.Contains(t, index.statuses, c.ID, "content should be indexed")

	_, err = service.Create(1, content.Content{Body: "no title"})
	if assert.Error(t, err, "create without a title should fail") {
		errors.AssertCode(t, err, 400)
	}

	_, err = service.Create(1, content.Content{Title: "Hello", Status: "archived"})
	if assert.Error(t, err, "create with an unknown status should fail") {
		errors.AssertCode(t, err, 400)
	}
}

func TestContentService_Get_DraftVisibility(t *testing.T) {
	service, _ := createService()

	draft, err := service.Create(1, content.Content{Title: "Secret"})
	require.NoError(t, err)

	_, err = service.Get(1, draft.ID)
	assert.NoError(t, err, "the author should see their draft")

	_, err = service.Get(2, draft.ID)
	if assert.Error(t, err, "a draft should be hidden from other users") {
		errors.AssertCode(t, err, 404)
	}

	_, err = service.Get(2, 1e6)
	if assert.Error(t, err, "an unknown id should not be found") {
		errors.AssertCode(t, err, 404)
	}
}

func TestContentService_Update(t *testing.T) {
	service, index := createService()

	c, err := service.Create(1, content.Content{Title: "Before", Status: content.StatusDraft})
	require.NoError(t, err)

	updated, err := service.Update(1, c.ID, content.Content{
		Title:  "After",
		Body:   "now with a body",
		Status: content.StatusPublished,
	})
	require.NoError(t, err, "the author should be able to update")
	assert.Equal(t, "After", updated.Title)
	assert.Equal(t, content.StatusPublished, updated.Status)
	assert.Equal(t, c.ID, updated.ID, "id should not change")
	assert.Equal(t, 1, updated.AuthorID, "author should not change")
	assert.Equal(t, content.StatusPublished, index.statuses[c.ID], "index should be refreshed")

	_, err = service.Update(2, c.ID, content.Content{Title: "Hijack"})
	if assert.Error(t, err, "only the author can update") {
		errors.AssertCode(t, err, 403)
	}

	_, err = service.Update(1, c.ID, content.Content{})
	if assert.Error(t, err, "update without a title should fail") {
		errors.AssertCode(t, err, 400)
	}

	_, err = service.Update(1, 1e6, content.Content{Title: "Nope"})
	if assert.Error(t, err, "updating unknown content should fail") {
		errors.AssertCode(t, err, 404)
	}
}

func TestContentService_Delete(t *testing.T) {
	service, index := createService()

	c, err := service.Create(1, content.Content{Title: "Doomed", Status: content.StatusPublished})
	require.NoError(t, err)

	err = service.Delete(2, c.ID)
	if assert.Error(t, err, "only the author can delete") {
		errors.AssertCode(t, err, 403)
	}

	err = service.Delete(1, c.ID)
	require.NoError(t, err, "the author should be able to delete")
	assert.NotContains(t, index.statuses, c.ID, "content should be removed from the index")

	_, err = service.Get(1, c.ID)
	if assert.Error(t, err, "deleted content should not be found") {
		errors.AssertCode(t, err, 404)
	}
}

func TestContentService_Likes(t *testing.T) {
	service, _ := createService()

	c, err := service.Create(1, content.Content{Title: "Popular", Status: content.StatusPublished})
	require.NoError(t, err)

	liked, err := service.Like(2, c.ID)
	require.NoError(t, err, "liking should not fail")
	assert.Equal(t, []int{2}, liked.Likes)

	_, err = service.Like(2, c.ID)
	if assert.Error(t, err, "liking twice should fail") {
		errors.AssertCode(t, err, 400)
	}

	liked, err = service.Like(3, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, liked.Likes)

	unliked, err := service.Unlike(2, c.ID)
	require.NoError(t, err, "unliking should not fail")
	assert.Equal(t, []int{3}, unliked.Likes)

	_, err = service.Unlike(2, c.ID)
	if assert.Error(t, err, "unliking content that is not liked should fail") {
		errors.AssertCode(t, err, 400)
	}
}

func TestContentService_Search(t *testing.T) {
	service, _ := createService()

	published, err := service.Create(1, content.Content{Title: "Public", Status: content.StatusPublished})
	require.NoError(t, err)
	_, err = service.Create(1, content.Content{Title: "Hidden", Status: content.StatusDraft})
	require.NoError(t, err)

	res, err := service.Search(content.Search{})
	require.NoError(t, err, "search should not fail")
	require.Len(t, res.Contents, 1, "only published content should be listed")
	assert.Equal(t, published.ID, res.Contents[0].ID)
	assert.Equal(t, uint64(1), res.Pagination.Total)

	// Even an explicit draft filter is overridden.
	res, err = service.Search(content.Search{Status: content.StatusDraft})
	require.NoError(t, err)
	require.Len(t, res.Contents, 1, "the status filter cannot expose drafts")
	assert.Equal(t, published.ID, res.Contents[0].ID)
}

func TestContentService_Exists(t *testing.T) {
	service, _ := createService()

	c, err := service.Create(1, content.Content{Title: "Here"})
	require.NoError(t, err)

	ok, err := service.Exists(c.ID)
	require.NoError(t, err)
	assert.True(t, ok, "created content should exist")

	ok, err = service.Exists(1e6)
	require.NoError(t, err)
	assert.False(t, ok, "unknown content should not exist")
}
