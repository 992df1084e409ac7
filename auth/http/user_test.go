package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-MihirParmar/Enlighten/auth/inmem"
	"github.com/Dev-MihirParmar/Enlighten/auth/services"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
	"github.com/Dev-MihirParmar/Enlighten/log"
	"github.com/Dev-MihirParmar/Enlighten/web"
)

func createTestServer() http.Handler {
	key := []byte("test key")
	service := services.NewUserService(inmem.NewUserRepository(), jwt.NewEncodeDecoder(key))

	srv := web.NewServer("test", log.New("test"))
	RegisterUserEndpoints(srv, service, key)
	return srv.Handler()
}

func TestUserRoutes(t *testing.T) {
	handler := createTestServer()

	// Sign up
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/auth/signup", strings.NewReader(
		`{"name": "Pizza", "email": "pizza@enlighten.dev", "password": "yolo"}`,
	))
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "signup should succeed: %s", w.Body.String())

	var signUpResponse map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &signUpResponse))
	token := signUpResponse["token"]
	require.NotEqual(t, "", token, "signup should return a token")

	// Sign in with the same credentials
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/auth/signin", strings.NewReader(
		`{"email": "pizza@enlighten.dev", "password": "yolo"}`,
	))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "signin should succeed: %s", w.Body.String())

	// Wrong password
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/auth/signin", strings.NewReader(
		`{"email": "pizza@enlighten.dev", "password": "nope"}`,
	))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a wrong password should be rejected")

	// Who am I, without a token
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/auth/user", nil)
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "the route should need a token")

	// With a mangled token
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "a mangled token should be rejected")

	// With the token from the signup
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "the token should be accepted: %s", w.Body.String())

	var user map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "Pizza", user["name"])
	assert.Equal(t, "pizza@enlighten.dev", user["email"])
	assert.NotContains(t, w.Body.String(), "password", "the password hash must never be serialized")
}
