package auth

import (
	"time"
)

// Provider names for external identities.
const (
	ProviderGoogle = "google"
	ProviderGithub = "github"
)

type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// PasswordHash is empty for users created through an external provider.
	// It never leaves the server.
	PasswordHash string `json:"-"`

	GoogleID string `json:"googleID,omitempty"`
	GithubID string `json:"githubID,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// ExternalProfile is the normalized result of an OAuth code exchange, as
// returned by a provider adapter.
type ExternalProfile struct {
	Provider string
	ID       string
	Name     string
	Email    string
}

// ProviderID returns the external identifier stored for the given provider.
func (u User) ProviderID(provider string) string {
	switch provider {
	case ProviderGoogle:
		return u.GoogleID
	case ProviderGithub:
		return u.GithubID
	}
	return ""
}

type UserRepository interface {
	Get(int) (User, error)
	GetByEmail(string) (User, error)
	GetByProviderID(provider, providerID string) (User, error)

	// Insert persists a new user and assigns its id. The email uniqueness
	// check and the write happen in the same store transaction, so two
	// concurrent inserts racing on the same email cannot both succeed.
	Insert(*User) error
	Update(*User) error
	Delete(int) error

	List() ([]User, error)
}
