package http

import (
	"context"
	"encoding/json"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Dev-MihirParmar/Enlighten/auth/endpoints"
	"github.com/Dev-MihirParmar/Enlighten/auth/services"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
)

// RegisterUserEndpoints defines the local authentication routes: sign-up,
// sign-in and the authenticated "who am I" lookup.
func RegisterUserEndpoints(srv Server, service *services.UserService, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)

	ep := endpoints.NewUserEndpoint(service)

	signUpHandler := kithttp.NewServer(
		ep.SignUp,
		decodeSignUpRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	signInHandler := kithttp.NewServer(
		ep.Login,
		decodeLoginRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	meHandler := kithttp.NewServer(
		jwtMiddleware(ep.Me),
		decodeMeRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/api/auth/signup", "POST", signUpHandler)
	srv.RegisterHandler("/api/auth/signin", "POST", signInHandler)
	srv.RegisterHandler("/api/auth/user", "GET", meHandler)
}

func decodeSignUpRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errInvalidRequest
	}

	return req, nil
}

func decodeLoginRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errInvalidRequest
	}

	return req, nil
}

func decodeMeRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()
	return nil, nil
}
