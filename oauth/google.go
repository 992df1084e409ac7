package oauth

import (
	"context"
	"encoding/json"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/Dev-MihirParmar/Enlighten/auth"
	"github.com/Dev-MihirParmar/Enlighten/errors"
)

var googleScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
}

type GoogleProvider struct {
	config oauth2.Config

	userInfoURL string
}

func NewGoogleProvider(configPath string) (*GoogleProvider, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, err
	}

	return &GoogleProvider{
		config: oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			RedirectURL:  creds.RedirectURL,
			Scopes:       googleScopes,
			Endpoint:     google.Endpoint,
		},

		userInfoURL: "https://www.googleapis.com/oauth2/v3/userinfo",
	}, nil
}

func (p *GoogleProvider) Name() string { return auth.ProviderGoogle }

func (p *GoogleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (auth.ExternalProfile, error) {
	tok, err := p.config.Exchange(ctx, code)
	if err != nil {
		return auth.ExternalProfile{}, errors.New("could not exchange google code", errors.BadRequest(), errors.WithCause(err))
	}

	client := p.config.Client(ctx, tok)
	res, err := client.Get(p.userInfoURL)
	if err != nil {
		return auth.ExternalProfile{}, err
	}
	defer res.Body.Close()

	var user struct {
		Sub   string `json:"sub"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return auth.ExternalProfile{}, err
	}

	return auth.ExternalProfile{
		Provider: auth.ProviderGoogle,
		ID:       user.Sub,
		Name:     user.Name,
		Email:    user.Email,
	}, nil
}
