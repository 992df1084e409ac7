package content

import (
	"time"
)

// Content statuses. Drafts are only visible to their author.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
)

type Content struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Body     string `json:"body,omitempty"`
	VideoURL string `json:"videoUrl,omitempty"`

	AuthorID int   `json:"authorID"`
	Likes    []int `json:"likes"`

	Tags     []string `json:"tags"`
	Category string   `json:"category,omitempty"`
	Status   string   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Pagination struct {
	Total  uint64 `json:"total"`
	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type Search struct {
	Q        string   `json:"q"`
	Tags     []string `json:"tags"`
	Category string   `json:"category"`
	Status   string   `json:"status"`

	Limit  uint64 `json:"limit"`
	Offset uint64 `json:"offset"`
}

type TagsFacet []struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type Facets struct {
	Tags TagsFacet `json:"tags,omitempty"`
}

type SearchResults struct {
	IDs        []int
	Facets     Facets
	Pagination Pagination
}

type Repository interface {
	Get(...int) ([]*Content, error)
	List() ([]*Content, error)
	Upsert(*Content) error
	Delete(int) error
}

type Index interface {
	Index(*Content) error
	Search(Search) (SearchResults, error)
	Delete(int) error
}
