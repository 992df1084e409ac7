package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Dev-MihirParmar/Enlighten/comment"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

// ContentChecker tells whether a piece of content exists, so comments cannot
// be attached to nothing.
type ContentChecker interface {
	Exists(id int) (bool, error)
}

type CommentService struct {
	repository comment.Repository
	contents   ContentChecker
}

func NewCommentService(repo comment.Repository, contents ContentChecker) *CommentService {
	return &CommentService{
		repository: repo,
		contents:   contents,
	}
}

// Add attaches a comment from the caller to a piece of content.
func (s *CommentService) Add(callerID, contentID int, text string) (comment.Comment, error) {
	if text == "" {
		return comment.Comment{}, errors.New("comment needs a text", errors.BadRequest())
	}

	if err := s.checkContent(contentID); err != nil {
		return comment.Comment{}, err
	}

	c := comment.Comment{
		ID:        uuid.NewString(),
		ContentID: contentID,
		UserID:    callerID,
		Text:      text,
		CreatedAt: time.Now(),
	}

	if err := s.repository.Insert(&c); err != nil {
		return comment.Comment{}, err
	}

	return c, nil
}

// ListByContent returns the comments of a piece of content, oldest first.
func (s *CommentService) ListByContent(contentID int) ([]comment.Comment, error) {
	if err := s.checkContent(contentID); err != nil {
		return nil, err
	}

	return s.repository.ListByContent(contentID)
}

func (s *CommentService) checkContent(contentID int) error {
	ok, err := s.contents.Exists(contentID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New(fmt.Sprintf("no content for id %d", contentID), errors.NotFound())
	}
	return nil
}
