package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"user_id":"a"},{"user_id":"b"}]`))
	})
	mux.HandleFunc("/api/memories/a", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"key":"m1","content":"hello","createdAt":"2025-03-01T10:00:00Z","updatedAt":"2025-03-01T11:00:00Z"}]`))
	})
	mux.HandleFunc("/api/memories/down", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal Server Error","code":500,"message":"internal server error"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_ListUsers(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(srv.URL)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].UserID)
}

func TestClient_ListMemories(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(srv.URL)

	views, err := c.ListMemories(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "m1", views[0].Key)
	assert.Equal(t, "hello", views[0].Content)
}

func TestClient_ListMemories_ServerError(t *testing.T) {
	srv := newFixtureServer(t)
	c := New(srv.URL)

	_, err := c.ListMemories(context.Background(), "down")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_ListMemories_EmptyUserID(t *testing.T) {
	c := New("http://localhost:0")

	_, err := c.ListMemories(context.Background(), "")
	require.Error(t, err)
}
