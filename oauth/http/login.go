package http

import (
	"context"
	"net/http"

	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Dev-MihirParmar/Enlighten/oauth/services"
)

// RegisterLoginRoutes defines, for every configured provider, the route
// initiating the OAuth redirect and the provider callback route, plus the
// provider listing.
func RegisterLoginRoutes(srv Server, service *services.LoginService) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
	}

	for _, provider := range service.Providers() {
		loginHandler := kithttp.NewServer(
			makeLoginURLEndpoint(service, provider),
			decodeNothing,
			encodeRedirectResponse,
			opts...,
		)

		callbackHandler := kithttp.NewServer(
			makeCallbackEndpoint(service, provider),
			decodeCallbackRequest,
			encodeRedirectResponse,
			opts...,
		)

		srv.RegisterHandler("/api/auth/"+provider, "GET", loginHandler)
		srv.RegisterHandler("/api/auth/"+provider+"/callback", "GET", callbackHandler)
	}

	providersHandler := kithttp.NewServer(
		makeProvidersEndpoint(service),
		decodeNothing,
		kithttp.EncodeJSONResponse,
		opts...,
	)
	srv.RegisterHandler("/api/auth/providers", "GET", providersHandler)
}

func makeLoginURLEndpoint(s *services.LoginService, provider string) endpoint.Endpoint {
	return func(_ context.Context, _ interface{}) (interface{}, error) {
		return s.LoginURL(provider)
	}
}

type callbackRequest struct {
	State string
	Code  string
}

func makeCallbackEndpoint(s *services.LoginService, provider string) endpoint.Endpoint {
	return func(ctx context.Context, r interface{}) (interface{}, error) {
		req, ok := r.(callbackRequest)
		if !ok {
			return nil, errInvalidRequest
		}

		return s.Callback(ctx, provider, req.State, req.Code)
	}
}

func makeProvidersEndpoint(s *services.LoginService) endpoint.Endpoint {
	return func(_ context.Context, _ interface{}) (interface{}, error) {
		return map[string]interface{}{"providers": s.Providers()}, nil
	}
}

func decodeNothing(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}

func decodeCallbackRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	query := r.URL.Query()
	return callbackRequest{
		State: query.Get("state"),
		Code:  query.Get("code"),
	}, nil
}

// encodeRedirectResponse sends the client to the URL returned by the
// endpoint instead of rendering it as JSON.
func encodeRedirectResponse(_ context.Context, w http.ResponseWriter, response interface{}) error {
	url, ok := response.(string)
	if !ok {
		return errInvalidRequest
	}

	w.Header().Set("Location", url)
	w.WriteHeader(http.StatusFound)
	return nil
}
