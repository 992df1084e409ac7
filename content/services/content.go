package services

import (
	"time"

	"github.com/Dev-MihirParmar/Enlighten/content"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

type ContentService struct {
	repository content.Repository
	index      content.Index
}

func NewContentService(repo content.Repository, index content.Index) *ContentService {
	return &ContentService{
		repository: repo,
		index:      index,
	}
}

// Create saves a new piece of content owned by the caller. Missing status
// defaults to draft.
func (s *ContentService) Create(callerID int, c content.Content) (content.Content, error) {
	if c.Title == "" {
		return content.Content{}, errors.New("content needs a title", errors.BadRequest())
	}

	if c.Status == "" {
		c.Status = content.StatusDraft
	}
	if err := checkStatus(c.Status); err != nil {
		return content.Content{}, err
	}

	now := time.Now()
	c.ID = 0
	c.AuthorID = callerID
	c.Likes = []int{}
	c.CreatedAt = now
	c.UpdatedAt = now

	if err := s.repository.Upsert(&c); err != nil {
		return content.Content{}, err
	}

	if err := s.index.Index(&c); err != nil {
		return content.Content{}, err
	}

	return c, nil
}

// Get returns a piece of content if the caller is allowed to see it. Drafts
// are only visible to their author, other callers get the same not-found
// error as for a missing id.
func (s *ContentService) Get(callerID, id int) (content.Content, error) {
	c, err := s.get(id)
	if err != nil {
		return content.Content{}, err
	}

	if c.Status == content.StatusDraft && c.AuthorID != callerID {
		return content.Content{}, errContentNotFound(id)
	}

	return c, nil
}

// Update replaces the editable fields of a piece of content. Only the author
// can update it.
func (s *ContentService) Update(callerID, id int, c content.Content) (content.Content, error) {
	current, err := s.get(id)
	if err != nil {
		return content.Content{}, err
	}

	if current.AuthorID != callerID {
		return content.Content{}, errNotAuthor()
	}

	if c.Title == "" {
		return content.Content{}, errors.New("content needs a title", errors.BadRequest())
	}
	if c.Status == "" {
		c.Status = current.Status
	}
	if err := checkStatus(c.Status); err != nil {
		return content.Content{}, err
	}

	current.Title = c.Title
	current.Body = c.Body
	current.VideoURL = c.VideoURL
	current.Tags = c.Tags
	current.Category = c.Category
	current.Status = c.Status
	current.UpdatedAt = time.Now()

	if err := s.repository.Upsert(&current); err != nil {
		return content.Content{}, err
	}

	if err := s.index.Index(&current); err != nil {
		return content.Content{}, err
	}

	return current, nil
}

// Delete removes a piece of content. Only the author can delete it.
func (s *ContentService) Delete(callerID, id int) error {
	current, err := s.get(id)
	if err != nil {
		return err
	}

	if current.AuthorID != callerID {
		return errNotAuthor()
	}

	if err := s.repository.Delete(id); err != nil {
		return err
	}

	return s.index.Delete(id)
}

// Like records that the caller likes a piece of content. Liking twice is an
// error.
func (s *ContentService) Like(callerID, id int) (content.Content, error) {
	c, err := s.Get(callerID, id)
	if err != nil {
		return content.Content{}, err
	}

	for _, userID := range c.Likes {
		if userID == callerID {
			return content.Content{}, errors.New("content already liked", errors.BadRequest())
		}
	}

	c.Likes = append(c.Likes, callerID)
	if err := s.repository.Upsert(&c); err != nil {
		return content.Content{}, err
	}

	return c, nil
}

// Unlike removes the caller's like from a piece of content.
func (s *ContentService) Unlike(callerID, id int) (content.Content, error) {
	c, err := s.Get(callerID, id)
	if err != nil {
		return content.Content{}, err
	}

	likes := make([]int, 0, len(c.Likes))
	for _, userID := range c.Likes {
		if userID != callerID {
			likes = append(likes, userID)
		}
	}

	if len(likes) == len(c.Likes) {
		return content.Content{}, errors.New("content not liked", errors.BadRequest())
	}

	c.Likes = likes
	if err := s.repository.Upsert(&c); err != nil {
		return content.Content{}, err
	}

	return c, nil
}

type SearchResults struct {
	Contents   []*content.Content `json:"data"`
	Facets     content.Facets     `json:"facets"`
	Pagination content.Pagination `json:"pagination"`
}

// Search returns published content matching the search parameters.
func (s *ContentService) Search(params content.Search) (SearchResults, error) {
	// Drafts never appear in listings, whoever asks.
	params.Status = content.StatusPublished

	if params.Limit == 0 {
		params.Limit = 20
	}

	results, err := s.index.Search(params)
	if err != nil {
		return SearchResults{}, err
	}

	contents, err := s.repository.Get(results.IDs...)
	if err != nil {
		return SearchResults{}, err
	}

	return SearchResults{
		Contents:   contents,
		Facets:     results.Facets,
		Pagination: results.Pagination,
	}, nil
}

// Exists reports whether a piece of content exists, regardless of its
// status. It is meant for other services attaching data to content.
func (s *ContentService) Exists(id int) (bool, error) {
	contents, err := s.repository.Get(id)
	if err != nil {
		return false, err
	}
	return len(contents) == 1, nil
}

func (s *ContentService) get(id int) (content.Content, error) {
	contents, err := s.repository.Get(id)
	if err != nil {
		return content.Content{}, err
	}

	if len(contents) == 0 {
		return content.Content{}, errContentNotFound(id)
	}

	return *contents[0], nil
}
