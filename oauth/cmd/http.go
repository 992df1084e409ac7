package oauth

import (
	"github.com/Dev-MihirParmar/Enlighten/log"
	"github.com/Dev-MihirParmar/Enlighten/oauth"
	"github.com/Dev-MihirParmar/Enlighten/oauth/http"
	"github.com/Dev-MihirParmar/Enlighten/oauth/services"
)

type ProviderConfiguration struct {
	Enabled bool   `toml:"enabled"`
	File    string `toml:"file"`
}

type Configuration struct {
	FrontendURL string                `toml:"frontend_url"`
	Google      ProviderConfiguration `toml:"google"`
	Github      ProviderConfiguration `toml:"github"`
}

// Start builds the configured provider adapters and registers the OAuth
// login routes.
func Start(srv http.Server, cfg Configuration, logger log.Logger, users oauth.UserService) {
	var providers []oauth.Provider

	if cfg.Google.Enabled {
		provider, err := oauth.NewGoogleProvider(cfg.Google.File)
		if err != nil {
			logger.Fatal("could not instantiate google provider:", err)
		}
		providers = append(providers, provider)
	}

	if cfg.Github.Enabled {
		provider, err := oauth.NewGithubProvider(cfg.Github.File)
		if err != nil {
			logger.Fatal("could not instantiate github provider:", err)
		}
		providers = append(providers, provider)
	}

	service := services.NewLoginService(users, cfg.FrontendURL, providers...)
	http.RegisterLoginRoutes(srv, service)
}
