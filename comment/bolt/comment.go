package bolt

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"sort"

	"github.com/boltdb/bolt"

	"github.com/Dev-MihirParmar/Enlighten/comment"
)

var commentBucket = []byte("comments")

type CommentRepository struct {
	driver *Driver
}

func NewCommentRepository(driver *Driver) *CommentRepository {
	return &CommentRepository{
		driver: driver,
	}
}

func (r *CommentRepository) Insert(c *comment.Comment) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(c)
		if err != nil {
			return err
		}

		return tx.Bucket(commentBucket).Put(key(c.ContentID, c.ID), data)
	})
}

func (r *CommentRepository) ListByContent(contentID int) ([]comment.Comment, error) {
	comments := make([]comment.Comment, 0)
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		prefix := contentPrefix(contentID)
		cursor := tx.Bucket(commentBucket).Cursor()
		for k, data := cursor.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, data = cursor.Next() {
			var c comment.Comment
			if err := json.Unmarshal(data, &c); err != nil {
				return err
			}
			comments = append(comments, c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Comment ids are not ordered, the dates are.
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.Before(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *CommentRepository) Delete(contentID int, id string) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(commentBucket).Delete(key(contentID, id))
	})
}

// key scopes comments under their content so a single prefix scan retrieves
// all the comments of a piece of content.
func key(contentID int, id string) []byte {
	return append(contentPrefix(contentID), []byte(id)...)
}

func contentPrefix(contentID int) []byte {
	b := make([]byte, 8, 9)
	binary.BigEndian.PutUint64(b, uint64(contentID))
	return append(b, '/')
}
