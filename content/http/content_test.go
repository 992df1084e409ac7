package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dev-MihirParmar/Enlighten/content"
	"github.com/Dev-MihirParmar/Enlighten/content/inmem"
	"github.com/Dev-MihirParmar/Enlighten/content/services"
	"github.com/Dev-MihirParmar/Enlighten/jwt"
	"github.com/Dev-MihirParmar/Enlighten/log"
	"github.com/Dev-MihirParmar/Enlighten/web"
)

type noopIndex struct{}

func (noopIndex) Index(*content.Content) error { return nil }
func (noopIndex) Delete(int) error             { return nil }
func (noopIndex) Search(search content.Search) (content.SearchResults, error) {
	return content.SearchResults{IDs: []int{}}, nil
}

func createTestServer(t *testing.T) (http.Handler, func(userID int) string) {
	key := []byte("test key")
	service := services.NewContentService(inmem.NewContentRepository(), noopIndex{})

	srv := web.NewServer("test", log.New("test"))
	RegisterContentEndpoints(srv, service, key)

	encoder := jwt.NewEncodeDecoder(key)
	return srv.Handler(), func(userID int) string {
		token, err := encoder.Encode(userID)
		require.NoError(t, err)
		return token
	}
}

func TestContentRoutes(t *testing.T) {
	handler, tokenFor := createTestServer(t)

	// Creating needs a token
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/content", strings.NewReader(`{"title": "Hello"}`))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "creating without a token should fail")

	// Create a draft as user 1
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", "/api/content", strings.NewReader(`{"title": "Hello"}`))
	req.Header.Set("Authorization", "Bearer "+tokenFor(1))
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "creating should succeed: %s", w.Body.String())

	var created content.Content
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEqual(t, 0, created.ID)
	assert.Equal(t, content.StatusDraft, created.Status)
	path := fmt.Sprintf("/api/content/%d", created.ID)

	// The draft is hidden from anonymous readers
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", path, nil)
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code, "a draft should be hidden without a token")

	// And from other users
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(2))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code, "a draft should be hidden from other users")

	// But not from its author
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", path, nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(1))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "the author should see their draft: %s", w.Body.String())

	// Publish it
	w = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", path, strings.NewReader(`{"title": "Hello", "status": "published"}`))
	req.Header.Set("Authorization", "Bearer "+tokenFor(1))
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "publishing should succeed: %s", w.Body.String())

	// Now anonymous readers see it
	w = httptest.NewRecorder()
	req = httptest.NewRequest("GET", path, nil)
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "published content should be public")

	// Only the author can update
	w = httptest.NewRecorder()
	req = httptest.NewRequest("PUT", path, strings.NewReader(`{"title": "Hijack"}`))
	req.Header.Set("Authorization", "Bearer "+tokenFor(2))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "only the author can update")

	// Like it as user 2
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", path+"/like", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(2))
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "liking should succeed: %s", w.Body.String())

	var liked content.Content
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Equal(t, []int{2}, liked.Likes)

	// Liking twice fails
	w = httptest.NewRecorder()
	req = httptest.NewRequest("POST", path+"/like", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(2))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code, "liking twice should fail")

	// Unlike
	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", path+"/like", nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(2))
	handler.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "unliking should succeed: %s", w.Body.String())

	// Only the author can delete
	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", path, nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(2))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "only the author can delete")

	w = httptest.NewRecorder()
	req = httptest.NewRequest("DELETE", path, nil)
	req.Header.Set("Authorization", "Bearer "+tokenFor(1))
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code, "the author should be able to delete: %s", w.Body.String())
}
