package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Dev-MihirParmar/Enlighten/comment/endpoints"
	"github.com/Dev-MihirParmar/Enlighten/comment/services"
	"github.com/Dev-MihirParmar/Enlighten/errors"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
)

// RegisterCommentEndpoints defines the comment routes. Posting needs a valid
// token, reading is open to everybody.
func RegisterCommentEndpoints(srv Server, service *services.CommentService, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)

	ep := endpoints.NewCommentEndpoint(service)

	addHandler := kithttp.NewServer(
		jwtMiddleware(ep.Add),
		decodeAddRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	listHandler := kithttp.NewServer(
		ep.List,
		decodeListRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/api/comment", "POST", addHandler)
	srv.RegisterHandler("/api/comment/:id", "GET", listHandler)
}

func decodeAddRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var req endpoints.AddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, errInvalidRequest
	}

	return req, nil
}

func decodeListRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	contentID, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid id", errors.BadRequest(), errors.WithCause(err))
	}

	return contentID, nil
}
