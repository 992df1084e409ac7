package comment

import (
	"time"
)

type Comment struct {
	ID        string    `json:"id"`
	ContentID int       `json:"contentID"`
	UserID    int       `json:"userID"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

type Repository interface {
	Insert(*Comment) error
	// ListByContent returns the comments of a piece of content, oldest
	// first.
	ListByContent(contentID int) ([]Comment, error)
	Delete(contentID int, id string) error
}
