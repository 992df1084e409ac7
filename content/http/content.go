package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Dev-MihirParmar/Enlighten/content"
	"github.com/Dev-MihirParmar/Enlighten/content/endpoints"
	"github.com/Dev-MihirParmar/Enlighten/content/services"
	"github.com/Dev-MihirParmar/Enlighten/errors"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
)

// RegisterContentEndpoints defines the content routes. Reading is open to
// everybody, writing needs a valid token.
func RegisterContentEndpoints(srv Server, service *services.ContentService, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)
	optionalJWTMiddleware := jwt.OptionalMiddleware(jwtKey)

	ep := endpoints.NewContentEndpoint(service)

	searchHandler := kithttp.NewServer(
		ep.Search,
		decodeSearchRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	createHandler := kithttp.NewServer(
		jwtMiddleware(ep.Create),
		decodeCreateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	// The token is optional on get: authors can fetch their drafts with it.
	getHandler := kithttp.NewServer(
		optionalJWTMiddleware(ep.Get),
		decodeIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	updateHandler := kithttp.NewServer(
		jwtMiddleware(ep.Update),
		decodeUpdateRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	deleteHandler := kithttp.NewServer(
		jwtMiddleware(ep.Delete),
		decodeIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	likeHandler := kithttp.NewServer(
		jwtMiddleware(ep.Like),
		decodeIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	unlikeHandler := kithttp.NewServer(
		jwtMiddleware(ep.Unlike),
		decodeIDRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/api/content", "GET", searchHandler)
	srv.RegisterHandler("/api/content", "POST", createHandler)
	srv.RegisterHandler("/api/content/:id", "GET", getHandler)
	srv.RegisterHandler("/api/content/:id", "PUT", updateHandler)
	srv.RegisterHandler("/api/content/:id", "DELETE", deleteHandler)
	srv.RegisterHandler("/api/content/:id/like", "POST", likeHandler)
	srv.RegisterHandler("/api/content/:id/like", "DELETE", unlikeHandler)
}

func decodeIDRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid id", errors.BadRequest(), errors.WithCause(err))
	}

	return id, nil
}

func decodeCreateRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	var c content.Content
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		return nil, errInvalidRequest
	}

	return c, nil
}

func decodeUpdateRequest(ctx context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	params := ctx.Value("params").(map[string]string)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		return nil, errors.New("invalid id", errors.BadRequest(), errors.WithCause(err))
	}

	var c content.Content
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		return nil, errInvalidRequest
	}

	if c.ID != 0 && c.ID != id {
		return nil, errors.New("ids do not match between url and body", errors.BadRequest())
	}

	return endpoints.UpdateRequest{ID: id, Content: c}, nil
}

func decodeSearchRequest(_ context.Context, r *http.Request) (interface{}, error) {
	defer r.Body.Close()

	search := content.Search{}
	search.Q = r.URL.Query().Get("q")
	search.Tags = r.URL.Query()["tags"]
	search.Category = r.URL.Query().Get("category")

	limit := r.URL.Query().Get("limit")
	if limit != "" {
		var err error
		search.Limit, err = strconv.ParseUint(limit, 10, 64)
		if err != nil {
			return nil, errors.New("invalid parameter: limit", errors.BadRequest(), errors.WithCause(err))
		}
	}

	offset := r.URL.Query().Get("offset")
	if offset != "" {
		var err error
		search.Offset, err = strconv.ParseUint(offset, 10, 64)
		if err != nil {
			return nil, errors.New("invalid parameter: offset", errors.BadRequest(), errors.WithCause(err))
		}
	}

	return search, nil
}
