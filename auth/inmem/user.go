package inmem

import (
	"sync"

	"github.com/Dev-MihirParmar/Enlighten/auth"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

type UserRepository struct {
	mu    sync.Locker
	users []auth.User
	maxID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		mu:    &sync.Mutex{},
		users: make([]auth.User, 0),
		maxID: 0,
	}
}

func (r *UserRepository) Get(userID int) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.get(userID), nil
}

func (r *UserRepository) GetByEmail(email string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}

	return auth.User{}, nil
}

func (r *UserRepository) GetByProviderID(provider, providerID string) (auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if providerID == "" {
		return auth.User{}, nil
	}

	for _, user := range r.users {
		if user.ProviderID(provider) == providerID {
			return user, nil
		}
	}

	return auth.User{}, nil
}

func (r *UserRepository) Insert(user *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return errors.New("email already exists", errors.BadRequest())
		}
	}

	r.maxID++
	user.ID = r.maxID
	r.users = append(r.users, *user)
	return nil
}

func (r *UserRepository) Update(user *auth.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = *user
			return nil
		}
	}

	return errors.New("cannot update unknown user", errors.NotFound())
}

func (r *UserRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, user := range r.users {
		if user.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}

	return nil
}

func (r *UserRepository) List() ([]auth.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users := make([]auth.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

func (r *UserRepository) get(userID int) auth.User {
	for _, u := range r.users {
		if u.ID == userID {
			return u
		}
	}
	return auth.User{}
}
