package bolt

import (
	"encoding/binary"
	"encoding/json"

	"github.com/boltdb/bolt"

	"github.com/Dev-MihirParmar/Enlighten/auth"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

var (
	userBucket  = []byte("users")
	emailBucket = []byte("user_emails")

	// One index bucket per provider, mapping external id -> user id.
	googleBucket = []byte("user_google")
	githubBucket = []byte("user_github")
)

type UserRepository struct {
	driver *Driver
}

func NewUserRepository(driver *Driver) *UserRepository {
	return &UserRepository{
		driver: driver,
	}
}

func (r *UserRepository) Get(id int) (auth.User, error) {
	var user auth.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(userBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		var derr error
		user, derr = decodeUser(data)
		return derr
	})
	if err != nil {
		return auth.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetByEmail(email string) (auth.User, error) {
	var user auth.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(emailBucket).Get([]byte(email))
		if data == nil {
			return nil
		}

		userData := tx.Bucket(userBucket).Get(data)
		if userData == nil {
			return nil
		}

		var derr error
		user, derr = decodeUser(userData)
		return derr
	})
	if err != nil {
		return auth.User{}, err
	}

	return user, nil
}

func (r *UserRepository) GetByProviderID(provider, providerID string) (auth.User, error) {
	bucket, err := providerBucket(provider)
	if err != nil {
		return auth.User{}, err
	}

	if providerID == "" {
		return auth.User{}, nil
	}

	var user auth.User
	err = r.driver.store.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(bucket).Get([]byte(providerID))
		if data == nil {
			return nil
		}

		userData := tx.Bucket(userBucket).Get(data)
		if userData == nil {
			return nil
		}

		var derr error
		user, derr = decodeUser(userData)
		return derr
	})
	if err != nil {
		return auth.User{}, err
	}

	return user, nil
}

// Insert writes the user and its index entries in a single transaction. The
// email uniqueness check lives in the same transaction, so concurrent inserts
// racing on one email cannot both pass it.
func (r *UserRepository) Insert(user *auth.User) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		emails := tx.Bucket(emailBucket)
		if emails.Get([]byte(user.Email)) != nil {
			return errors.New("email already exists", errors.BadRequest())
		}

		bucket := tx.Bucket(userBucket)
		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		user.ID = int(seq)

		if err := putUser(tx, *user); err != nil {
			return err
		}

		return indexUser(tx, auth.User{}, *user)
	})
}

func (r *UserRepository) Update(user *auth.User) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(userBucket).Get(itob(user.ID))
		if data == nil {
			return errors.New("cannot update unknown user", errors.NotFound())
		}

		old, err := decodeUser(data)
		if err != nil {
			return err
		}

		if old.Email != user.Email {
			if tx.Bucket(emailBucket).Get([]byte(user.Email)) != nil {
				return errors.New("email already exists", errors.BadRequest())
			}
		}

		if err := putUser(tx, *user); err != nil {
			return err
		}

		return indexUser(tx, old, *user)
	})
}

func (r *UserRepository) Delete(id int) error {
	return r.driver.store.Update(func(tx *bolt.Tx) error {
		data := tx.Bucket(userBucket).Get(itob(id))
		if data == nil {
			return nil
		}

		user, err := decodeUser(data)
		if err != nil {
			return err
		}

		if err := indexUser(tx, user, auth.User{}); err != nil {
			return err
		}

		return tx.Bucket(userBucket).Delete(itob(id))
	})
}

func (r *UserRepository) List() ([]auth.User, error) {
	var users []auth.User
	err := r.driver.store.View(func(tx *bolt.Tx) error {
		return tx.Bucket(userBucket).ForEach(func(_, data []byte) error {
			user, err := decodeUser(data)
			if err != nil {
				return err
			}
			users = append(users, user)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	return users, nil
}

func putUser(tx *bolt.Tx, user auth.User) error {
	data, err := json.Marshal(userRecord(user))
	if err != nil {
		return err
	}

	return tx.Bucket(userBucket).Put(itob(user.ID), data)
}

// indexUser reconciles the email and provider index buckets between the old
// and the new version of a user. A zero old means insert, a zero new means
// delete.
func indexUser(tx *bolt.Tx, old, new auth.User) error {
	type entry struct {
		bucket   []byte
		old, new string
	}

	entries := []entry{
		{emailBucket, old.Email, new.Email},
		{googleBucket, old.GoogleID, new.GoogleID},
		{githubBucket, old.GithubID, new.GithubID},
	}

	id := new.ID
	if id == 0 {
		id = old.ID
	}

	for _, e := range entries {
		if e.old == e.new {
			continue
		}

		bucket := tx.Bucket(e.bucket)
		if e.old != "" {
			if err := bucket.Delete([]byte(e.old)); err != nil {
				return err
			}
		}
		if e.new != "" {
			if err := bucket.Put([]byte(e.new), itob(id)); err != nil {
				return err
			}
		}
	}

	return nil
}

// record is the stored form of a user. The password hash is excluded from
// the public JSON representation of auth.User, so it gets its own field here.
type record struct {
	auth.User
	PasswordHash string `json:"passwordHash,omitempty"`
}

func userRecord(user auth.User) record {
	return record{User: user, PasswordHash: user.PasswordHash}
}

func decodeUser(data []byte) (auth.User, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return auth.User{}, err
	}

	user := rec.User
	user.PasswordHash = rec.PasswordHash
	return user, nil
}

func itob(v int) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, uint64(v))
	return b
}

func providerBucket(provider string) ([]byte, error) {
	switch provider {
	case auth.ProviderGoogle:
		return googleBucket, nil
	case auth.ProviderGithub:
		return githubBucket, nil
	}
	return nil, errors.New("unknown provider "+provider, errors.NotFound())
}
