package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Dev-MihirParmar/Enlighten/errors"
)

var (
	errInvalidRequest = errors.New("invalid request", errors.BadRequest())
)

// Server defines the interface to register the http handlers.
type Server interface {
	RegisterHandler(path, method string, f http.Handler)
}

func encodeError(_ context.Context, err error, w http.ResponseWriter) {
	statusCode := http.StatusInternalServerError
	if err, ok := err.(errors.Error); ok {
		statusCode = err.Code()
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": err.Error(),
	})
}
