package inmem

import (
	"sync"

	"github.com/Dev-MihirParmar/Enlighten/content"
)

type ContentRepository struct {
	mu       sync.Locker
	contents map[int]content.Content
	maxID    int
}

func NewContentRepository() *ContentRepository {
	return &ContentRepository{
		mu:       &sync.Mutex{},
		contents: make(map[int]content.Content),
		maxID:    0,
	}
}

func (r *ContentRepository) Get(ids ...int) ([]*content.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents := make([]*content.Content, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.contents[id]; ok {
			c := c
			contents = append(contents, &c)
		}
	}
	return contents, nil
}

func (r *ContentRepository) List() ([]*content.Content, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	contents := make([]*content.Content, 0, len(r.contents))
	for _, c := range r.contents {
		c := c
		contents = append(contents, &c)
	}
	return contents, nil
}

func (r *ContentRepository) Upsert(c *content.Content) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID == 0 {
		r.maxID++
		c.ID = r.maxID
	}

	r.contents[c.ID] = *c
	return nil
}

func (r *ContentRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.contents, id)
	return nil
}
