package http

import (
	"context"
	"mime/multipart"
	"net/http"

	kitjwt "github.com/go-kit/kit/auth/jwt"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"

	"github.com/Dev-MihirParmar/Enlighten/errors"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
	"github.com/Dev-MihirParmar/Enlighten/upload"
)

// Uploaded bodies are capped at 100MB.
const maxUploadSize = 100 << 20

// RegisterUploadEndpoints defines the video upload route and serves the
// uploaded files back.
func RegisterUploadEndpoints(srv Server, store *upload.DiskStore, jwtKey []byte) {
	opts := []kithttp.ServerOption{
		kithttp.ServerErrorEncoder(encodeError),
		kithttp.ServerBefore(kitjwt.HTTPToContext()),
	}

	jwtMiddleware := jwt.Middleware(jwtKey)

	uploadHandler := kithttp.NewServer(
		jwtMiddleware(uploadEndpoint(store)),
		decodeUploadRequest,
		kithttp.EncodeJSONResponse,
		opts...,
	)

	srv.RegisterHandler("/api/content/upload-video", "POST", uploadHandler)
	srv.RegisterHandler(
		"/uploads/videos/:file", "GET",
		http.StripPrefix("/uploads/videos/", http.FileServer(http.Dir(store.Dir()))),
	)
}

type uploadRequest struct {
	filename string
	file     multipart.File
}

func uploadEndpoint(store *upload.DiskStore) endpoint.Endpoint {
	return func(_ context.Context, r interface{}) (interface{}, error) {
		req, ok := r.(uploadRequest)
		if !ok {
			return nil, errors.New("invalid request", errors.BadRequest())
		}
		defer req.file.Close()

		url, err := store.Save(req.filename, req.file)
		if err != nil {
			return nil, err
		}

		return map[string]string{"videoUrl": url}, nil
	}
}

func decodeUploadRequest(_ context.Context, r *http.Request) (interface{}, error) {
	r.Body = http.MaxBytesReader(nil, r.Body, maxUploadSize)

	file, header, err := r.FormFile("video")
	if err != nil {
		return nil, errors.New("could not read video file", errors.BadRequest(), errors.WithCause(err))
	}

	return uploadRequest{
		filename: header.Filename,
		file:     file,
	}, nil
}
