package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCountingServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/usr_1/skills", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			hits.Add(1)
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    []map[string]any{{"id": "skl_1", "name": "Go"}},
				"total":   1,
				"limit":   10,
				"offset":  0,
			})
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"success": true,
				"data":    map[string]any{"id": "skl_2", "name": "Postgres"},
			})
		default:
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestGetCachesResponses(t *testing.T) {
	srv, hits := newCountingServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	var first, second []struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", nil, &first))
	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", nil, &second))

	assert.Equal(t, int64(1), hits.Load(), "second read should come from cache")
	assert.Equal(t, first, second)
}

func TestGetDecodesFromCachedBytes(t *testing.T) {
	srv, hits := newCountingServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	var first []struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", nil, &first))
	require.Equal(t, int64(1), hits.Load())

	// With the server gone the only possible source is the cache.
	srv.Close()

	var second []struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", nil, &second))
	assert.Equal(t, first, second)
}

func TestGetPageReportsWindow(t *testing.T) {
	srv, _ := newCountingServer(t)
	c := New(srv.URL)

	var rows []struct {
		ID string `json:"id"`
	}
	total, limit, offset, err := c.GetPage(context.Background(), "/api/users/usr_1/skills", nil, &rows)
	require.NoError(t, err)

	assert.Equal(t, 1, total)
	assert.Equal(t, 10, limit)
	assert.Equal(t, 0, offset)
	require.Len(t, rows, 1)
	assert.Equal(t, "skl_1", rows[0].ID)
}

func TestPostInvalidatesCollection(t *testing.T) {
	srv, hits := newCountingServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	var rows []struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", nil, &rows))
	require.Equal(t, int64(1), hits.Load())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Post(ctx, "/api/users/usr_1/skills", map[string]any{"name": "Postgres"}, &created))
	assert.Equal(t, "skl_2", created.ID)

	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", nil, &rows))
	assert.Equal(t, int64(2), hits.Load(), "mutation should drop the cached listing")
}

func TestGetDistinguishesParams(t *testing.T) {
	srv, hits := newCountingServer(t)
	c := New(srv.URL)
	ctx := context.Background()

	var rows []struct {
		ID string `json:"id"`
	}
	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", nil, &rows))
	require.NoError(t, c.Get(ctx, "/api/users/usr_1/skills", url.Values{"category": {"backend"}}, &rows))

	assert.Equal(t, int64(2), hits.Load(), "different params are different cache keys")
}

func TestAPIErrorDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{
			"success":    false,
			"message":    "Skill not found",
			"error_code": "SKILL_NOT_FOUND",
		})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	err := c.Get(context.Background(), "/api/users/usr_1/skills/skl_x", nil, &struct{}{})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "SKILL_NOT_FOUND", apiErr.Code)
	assert.Equal(t, "Skill not found", apiErr.Message)
}

func TestBearerTokenHeader(t *testing.T) {
	var seen string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"success": true, "data": map[string]any{}})
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL, WithToken("abc123"))
	require.NoError(t, c.Get(context.Background(), "/api/users/usr_1/profile", nil, &struct{}{}))

	assert.Equal(t, "Bearer abc123", seen)
}

func TestCollectionOf(t *testing.T) {
	assert.Equal(t, "/api/users/usr_1/skills", collectionOf("/api/users/usr_1/skills/skl_abc"))
	assert.Equal(t, "/api/users/usr_1/skills", collectionOf("/api/users/usr_1/skills"))
	assert.Equal(t, "/api/auth/login", collectionOf("/api/auth/login"))
}
