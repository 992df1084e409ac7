package oauth

import (
	"context"

	"github.com/Dev-MihirParmar/Enlighten/auth"
)

// Provider is an external identity service. Implementations are plain values
// handed to the login service at wiring time and selected by name per
// request, there is no process-wide registration.
type Provider interface {
	Name() string

	// AuthCodeURL returns the URL the client should be redirected to in
	// order to authenticate with the provider.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code received on the callback for a
	// normalized profile.
	Exchange(ctx context.Context, code string) (auth.ExternalProfile, error)
}

// UserService is the part of the auth user service the login flow needs:
// turning a profile into a local user, and a user into a token.
type UserService interface {
	ResolveExternal(auth.ExternalProfile) (auth.User, error)
	Token(int) (string, error)
}

type credentials struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
	RedirectURL  string `json:"redirect_url"`
}
