package inmem

import (
	"sort"
	"sync"

	"github.com/Dev-MihirParmar/Enlighten/comment"
)

type CommentRepository struct {
	mu       sync.Locker
	comments []comment.Comment
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		mu:       &sync.Mutex{},
		comments: make([]comment.Comment, 0),
	}
}

func (r *CommentRepository) Insert(c *comment.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.comments = append(r.comments, *c)
	return nil
}

func (r *CommentRepository) ListByContent(contentID int) ([]comment.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	comments := make([]comment.Comment, 0)
	for _, c := range r.comments {
		if c.ContentID == contentID {
			comments = append(comments, c)
		}
	}

	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *CommentRepository) Delete(contentID int, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.comments {
		if c.ContentID == contentID && c.ID == id {
			r.comments = append(r.comments[:i], r.comments[i+1:]...)
			return nil
		}
	}
	return nil
}
