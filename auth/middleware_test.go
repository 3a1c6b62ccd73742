package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
	"portfolio-backend/repository"
)

type fakeUserLoader struct {
	users map[string]*models.AuthUser
}

func (f *fakeUserLoader) GetAuthUser(_ context.Context, id string) (*models.AuthUser, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}

func newMiddlewareRouter(t *testing.T) (*gin.Engine, *TokenManager, *fakeUserLoader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := NewTokenManager("test-secret", time.Hour)
	loader := &fakeUserLoader{users: map[string]*models.AuthUser{}}

	r := gin.New()
	r.GET("/protected", Middleware(tokens, loader), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"user_id": user.ID})
	})
	return r, tokens, loader
}

func TestMiddlewareMissingHeader(t *testing.T) {
	r, _, _ := newMiddlewareRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_TOKEN_MISSING")
}

func TestMiddlewareNonBearerHeader(t *testing.T) {
	r, _, _ := newMiddlewareRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_TOKEN_INVALID")
}

func TestMiddlewareInvalidToken(t *testing.T) {
	r, _, _ := newMiddlewareRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "AUTH_TOKEN_INVALID")
}

func TestMiddlewareUnknownSubject(t *testing.T) {
	r, tokens, _ := newMiddlewareRouter(t)

	token, err := tokens.Issue(&models.User{ID: "usr_gone", Email: "gone@example.com"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "USER_NOT_FOUND")
}

func TestMiddlewareAttachesUser(t *testing.T) {
	r, tokens, loader := newMiddlewareRouter(t)
	loader.users["usr_1"] = &models.AuthUser{ID: "usr_1", Email: "owner@example.com"}

	token, err := tokens.Issue(&models.User{ID: "usr_1", Email: "owner@example.com"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "usr_1")
}
