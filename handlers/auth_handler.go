package handlers

import (
	"context"
	"errors"
	"net/http"

	"portfolio-backend/service"

	"github.com/gin-gonic/gin"
)

// Authenticator is the service surface the auth handler needs.
type Authenticator interface {
	Register(ctx context.Context, req service.RegisterRequest) (*service.AuthResult, error)
	Login(ctx context.Context, email, password string) (*service.AuthResult, error)
}

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	auth Authenticator
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterRequest represents the request body for registration. The password
// travels as either "password" or the legacy "password_hash" key; both carry
// the raw password and the server hashes it.
type RegisterRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password"`
	PasswordHash string `json:"password_hash"`
	Name         string `json:"name" binding:"required,max=200"`
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	password := req.Password
	if password == "" {
		password = req.PasswordHash
	}

	result, err := h.auth.Register(c.Request.Context(), service.RegisterRequest{
		Email:    req.Email,
		Password: password,
		Name:     req.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			respondError(c, http.StatusBadRequest, "PASSWORD_TOO_SHORT", "Password must be at least 8 characters")
		case errors.Is(err, service.ErrEmailTaken):
			respondError(c, http.StatusConflict, "USER_ALREADY_EXISTS", "A user with this email already exists")
		default:
			respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		}
		return
	}

	respondData(c, http.StatusCreated, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, gin.H{
		"user":  result.User,
		"token": result.Token,
	})
}
