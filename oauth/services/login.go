package services

import (
	"context"
	"net/url"
	"sort"
	"sync"

	"github.com/Dev-MihirParmar/Enlighten/errors"
	"github.com/Dev-MihirParmar/Enlighten/oauth"
)

// LoginService drives the OAuth login flow for every configured provider:
// state nonce generation, code exchange and user resolution.
type LoginService struct {
	providers map[string]oauth.Provider
	users     oauth.UserService

	frontendURL string

	stateMutex sync.Locker
	state      map[string]struct{}
}

func NewLoginService(users oauth.UserService, frontendURL string, providers ...oauth.Provider) *LoginService {
	m := make(map[string]oauth.Provider, len(providers))
	for _, provider := range providers {
		m[provider.Name()] = provider
	}

	return &LoginService{
		providers:   m,
		users:       users,
		frontendURL: frontendURL,

		stateMutex: &sync.Mutex{},
		state:      make(map[string]struct{}),
	}
}

// Providers returns the names of the configured providers, sorted.
func (s *LoginService) Providers() []string {
	names := make([]string, 0, len(s.providers))
	for name := range s.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoginURL returns the provider URL the client should be redirected to.
func (s *LoginService) LoginURL(provider string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", errUnknownProvider(provider)
	}

	state := randToken(32)
	s.stateMutex.Lock()
	s.state[state] = struct{}{}
	s.stateMutex.Unlock()

	return p.AuthCodeURL(state), nil
}

// Callback handles the provider redirect: it verifies the state nonce,
// exchanges the code for a profile, resolves the profile to a local user and
// returns the front-end URL to redirect to, carrying the bearer token.
func (s *LoginService) Callback(ctx context.Context, provider, state, code string) (string, error) {
	p, ok := s.providers[provider]
	if !ok {
		return "", errUnknownProvider(provider)
	}

	s.stateMutex.Lock()
	_, ok = s.state[state]
	delete(s.state, state)
	s.stateMutex.Unlock()

	if !ok {
		return "", errors.New("invalid state", errors.BadRequest())
	}

	profile, err := p.Exchange(ctx, code)
	if err != nil {
		return "", err
	}

	user, err := s.users.ResolveExternal(profile)
	if err != nil {
		return "", err
	}

	token, err := s.users.Token(user.ID)
	if err != nil {
		return "", err
	}

	return s.frontendURL + "/auth/success?token=" + url.QueryEscape(token), nil
}
