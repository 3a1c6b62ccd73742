package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Every response uses one of two envelopes. Success carries the row (or the
// page plus its window), errors carry a message, a stable machine code and a
// timestamp. Handlers never leak raw SQL or driver errors to the client.

func respondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

func respondList(c *gin.Context, data any, total, limit, offset int) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{
		"success":    false,
		"message":    message,
		"error_code": code,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
	})
}

// respondBindError converts a gin binding failure into a 400 with per-field
// details when the failure came from validator tags.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fe.Field()] = "failed on the '" + fe.Tag() + "' rule"
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success":    false,
			"message":    "Request validation failed",
			"error_code": "VALIDATION_ERROR",
			"details":    details,
			"timestamp":  time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
}

// respondStoreError maps repository errors to the envelope. notFoundCode and
// notFoundMessage name the missing resource; everything unexpected becomes a
// 500 without the underlying error text.
func respondStoreError(c *gin.Context, err error, notFoundCode, notFoundMessage string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		respondError(c, http.StatusNotFound, notFoundCode, notFoundMessage)
	case errors.Is(err, repository.ErrInvalidSort):
		respondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
	}
}

// searchOptions reads the shared pagination and sorting query parameters.
// Filters are appended per resource by the caller.
func searchOptions(c *gin.Context) repository.SearchOptions {
	opts := repository.SearchOptions{
		Limit:     repository.DefaultLimit,
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		opts.Limit = v
	}
	if opts.Limit > repository.MaxLimit {
		opts.Limit = repository.MaxLimit
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v > 0 {
		opts.Offset = v
	}
	return opts
}
