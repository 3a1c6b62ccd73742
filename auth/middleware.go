package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/models"
)

const userContextKey = "auth.user"

// UserLoader loads the minimal user projection referenced by a token subject.
type UserLoader interface {
	GetAuthUser(ctx context.Context, id string) (*models.AuthUser, error)
}

// Middleware verifies the bearer token and attaches the referenced user to
// the request context. There is no role or scope distinction: a request is
// either authenticated or it is not.
func Middleware(tokens *TokenManager, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abort(c, http.StatusUnauthorized, "AUTH_TOKEN_MISSING", "Authorization header is required")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			abort(c, http.StatusForbidden, "AUTH_TOKEN_INVALID", "Authorization header must be a bearer token")
			return
		}

		userID, err := tokens.Verify(parts[1])
		if err != nil {
			abort(c, http.StatusForbidden, "AUTH_TOKEN_INVALID", "Bearer token is invalid or expired")
			return
		}

		user, err := users.GetAuthUser(c.Request.Context(), userID)
		if err != nil {
			abort(c, http.StatusUnauthorized, "USER_NOT_FOUND", "Token subject no longer exists")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"success":    false,
		"message":    message,
		"error_code": code,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// CurrentUser returns the user attached by Middleware, if any.
func CurrentUser(c *gin.Context) (*models.AuthUser, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.AuthUser)
	return u, ok
}
