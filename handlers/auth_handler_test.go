package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
	"portfolio-backend/service"
)

type fakeAuthenticator struct {
	users map[string]string // email -> password
}

func newFakeAuthenticator() *fakeAuthenticator {
	return &fakeAuthenticator{users: map[string]string{}}
}

func (f *fakeAuthenticator) Register(_ context.Context, req service.RegisterRequest) (*service.AuthResult, error) {
	if len(req.Password) < service.MinPasswordLength {
		return nil, service.ErrPasswordTooShort
	}
	if _, ok := f.users[req.Email]; ok {
		return nil, service.ErrEmailTaken
	}
	f.users[req.Email] = req.Password
	return &service.AuthResult{
		User:  &models.User{ID: models.NewID(models.PrefixUser), Email: req.Email, Name: req.Name},
		Token: "token-" + req.Email,
	}, nil
}

func (f *fakeAuthenticator) Login(_ context.Context, email, password string) (*service.AuthResult, error) {
	stored, ok := f.users[email]
	if !ok || stored != password {
		return nil, service.ErrInvalidCredentials
	}
	return &service.AuthResult{
		User:  &models.User{ID: "usr_1", Email: email},
		Token: "token-" + email,
	}, nil
}

func newAuthRouter(auth Authenticator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(auth)

	r := gin.New()
	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	return r
}

func TestRegisterIssuesToken(t *testing.T) {
	r := newAuthRouter(newFakeAuthenticator())

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "owner@example.com",
		"password": "testpassword123",
		"name":     "Portfolio Owner",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			User  models.User `json:"user"`
			Token string      `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Data.User.ID)
	assert.NotEmpty(t, resp.Data.Token)
}

func TestRegisterAcceptsLegacyPasswordKey(t *testing.T) {
	r := newAuthRouter(newFakeAuthenticator())

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":         "owner@example.com",
		"password_hash": "testpassword123",
		"name":          "Portfolio Owner",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRegisterDuplicate(t *testing.T) {
	auth := newFakeAuthenticator()
	r := newAuthRouter(auth)

	body := gin.H{
		"email":    "owner@example.com",
		"password": "testpassword123",
		"name":     "Portfolio Owner",
	}
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/auth/register", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "USER_ALREADY_EXISTS")
}

func TestRegisterShortPassword(t *testing.T) {
	r := newAuthRouter(newFakeAuthenticator())

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "owner@example.com",
		"password": "short",
		"name":     "Owner",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "PASSWORD_TOO_SHORT")
}

func TestRegisterInvalidEmail(t *testing.T) {
	r := newAuthRouter(newFakeAuthenticator())

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "not-an-email",
		"password": "testpassword123",
		"name":     "Owner",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestLoginSuccessAndFailure(t *testing.T) {
	auth := newFakeAuthenticator()
	auth.users["owner@example.com"] = "testpassword123"
	r := newAuthRouter(auth)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "owner@example.com",
		"password": "testpassword123",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token-owner@example.com")

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "owner@example.com",
		"password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_CREDENTIALS")
}
