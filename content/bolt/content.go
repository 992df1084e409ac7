package bolt

import (
	"encoding/binary"
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/Dev-MihirParmar/Enlighten/content"
)

var contentBucket = []byte("contents")

type ContentRepository struct {
	driver *Driver
}

func NewContentRepository(driver *Driver) *ContentRepository {
	return &ContentRepository{
		driver: driver,
	}
}

// Get retrieves the contents for the given ids. Unknown ids are skipped.
func (r *ContentRepository) Get(ids ...int) ([]*content.Content, error) {
	contents := make([]*content.Content, 0, len(ids))
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(contentBucket)
		for _, id := range ids {
			data := bucket.Get(itob(id))
			if data == nil {
				continue
			}

			var c content.Content
			if err := json.Unmarshal(data, &c); err != nil {
				return err
			}
			contents = append(contents, &c)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return contents, nil
}

func (r *ContentRepository) List() ([]*content.Content, error) {
	var contents []*content.Content
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		return tx.Bucket(contentBucket).ForEach(func(_, data []byte) error {
			var c content.Content
			if err := json.Unmarshal(data, &c); err != nil {
				return err
			}
			contents = append(contents, &c)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return contents, nil
}

// Upsert saves the content. An id of 0 means insert, and the id is assigned
// from the bucket sequence.
func (r *ContentRepository) Upsert(c *content.Content) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(contentBucket)

		if c.ID == 0 {
			seq, err := bucket.NextSequence()
			if err != nil {
				return err
			}
			c.ID = int(seq)
		}

		data, err := json.Marshal(c)
		if err != nil {
			return err
		}

		return bucket.Put(itob(c.ID), data)
	})
}

func (r *ContentRepository) Delete(id int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(contentBucket).Delete(itob(id))
	})
}

func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}
