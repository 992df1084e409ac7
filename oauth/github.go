package oauth

import (
	"context"
	"encoding/json"
	"os"
	"strconv"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"

	"github.com/Dev-MihirParmar/Enlighten/auth"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

var githubScopes = []string{"read:user", "user:email"}

type GithubProvider struct {
	config oauth2.Config

	userURL   string
	emailsURL string
}

func NewGithubProvider(configPath string) (*GithubProvider, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &GithubProvider{
		config: oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       githubScopes,
			Endpoint:     github.Endpoint,
		},

		userURL:   "https://api.github.com/user",
		emailsURL: "https://api.github.com/user/emails",
	}, nil
}

func (p *GithubProvider) Name() string { return auth.ProviderGithub }

func (p *GithubProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *GithubProvider) Exchange(ctx context.Context, code string) (auth.ExternalProfile, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return auth.ExternalProfile{}, errors.New("could not exchange github code", errors.BadRequest(), errors.WithCause(err))
	}

	client := p.config.Client(ctx, tok)
	res, err := client.Get(p.userURL)
	if err != nil {
		return auth.ExternalProfile{}, err
	}
	defer res.Body.Close()

	var user struct {
		ID    int64  `json:"id"`
		Login string `json:"login"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return auth.ExternalProfile{}, err
	}

	// The public profile email is often unset, the emails endpoint then
	// gives the primary address.
	if user.Email == "" {
		user.Email, err = p.primaryEmail(ctx, tok)
		if err != nil {
			return auth.ExternalProfile{}, err
		}
	}

	name := user.Name
	if name == "" {
		name = user.Login
	}

	return auth.ExternalProfile{
		Provider: auth.ProviderGithub,
		ID:       strconv.FormatInt(user.ID, 10),
		Name:     name,
		Email:    user.Email,
	}, nil
}

func (p *GithubProvider) primaryEmail(ctx context.Context, tok *oauth2.Token) (string, error) {
	client := p.config.Client(ctx, tok)
	res, err := client.Get(p.emailsURL)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var emails []struct {
		Email    string `json:"email"`
		Primary  bool   `json:"primary"`
		Verified bool   `json:"verified"`
	}
	if err := json.NewDecoder(res.Body).Decode(&emails); err != nil {
		return "", err
	}

	for _, email := range emails {
		if email.Primary && email.Verified {
			return email.Email, nil
		}
	}

	return "", nil
}
