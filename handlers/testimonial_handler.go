package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// TestimonialStore is the persistence surface the testimonial handler needs.
type TestimonialStore interface {
	Create(ctx context.Context, t *models.Testimonial) error
	GetByID(ctx context.Context, userID, id string) (*models.Testimonial, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.Testimonial, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.Testimonial, error)
	Delete(ctx context.Context, userID, id string) error
}

// TestimonialHandler handles HTTP requests for testimonials
type TestimonialHandler struct {
	testimonials TestimonialStore
}

// NewTestimonialHandler creates a new testimonial handler
func NewTestimonialHandler(testimonials TestimonialStore) *TestimonialHandler {
	return &TestimonialHandler{testimonials: testimonials}
}

// CreateTestimonialRequest represents the request body for creating a testimonial
type CreateTestimonialRequest struct {
	AuthorName   string  `json:"author_name" binding:"required,max=200"`
	AuthorTitle  *string `json:"author_title" binding:"omitempty,max=200"`
	Quote        string  `json:"quote" binding:"required,max=2000"`
	Rating       int     `json:"rating" binding:"required,min=1,max=5"`
	DisplayOrder int     `json:"display_order" binding:"min=0"`
}

// CreateTestimonial handles POST /api/users/:user_id/testimonials
func (h *TestimonialHandler) CreateTestimonial(c *gin.Context) {
	var req CreateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	t := &models.Testimonial{
		UserID:       c.Param("user_id"),
		AuthorName:   req.AuthorName,
		AuthorTitle:  req.AuthorTitle,
		Quote:        req.Quote,
		Rating:       req.Rating,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.testimonials.Create(c.Request.Context(), t); err != nil {
		respondStoreError(c, err, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
		return
	}
	respondData(c, http.StatusCreated, t)
}

// ListTestimonials handles GET /api/users/:user_id/testimonials
func (h *TestimonialHandler) ListTestimonials(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "author_name", Value: v, Fuzzy: true})
	}

	testimonials, total, err := h.testimonials.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
		return
	}
	respondList(c, testimonials, total, opts.Limit, opts.Offset)
}

// GetTestimonial handles GET /api/users/:user_id/testimonials/:id
func (h *TestimonialHandler) GetTestimonial(c *gin.Context) {
	t, err := h.testimonials.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
		return
	}
	respondData(c, http.StatusOK, t)
}

// UpdateTestimonialRequest represents the request body for a partial update
type UpdateTestimonialRequest struct {
	AuthorName   *string `json:"author_name" binding:"omitempty,max=200"`
	AuthorTitle  *string `json:"author_title" binding:"omitempty,max=200"`
	Quote        *string `json:"quote" binding:"omitempty,max=2000"`
	Rating       *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateTestimonial handles PATCH /api/users/:user_id/testimonials/:id
func (h *TestimonialHandler) UpdateTestimonial(c *gin.Context) {
	var req UpdateTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.AuthorName != nil {
		patch.Set("author_name", *req.AuthorName)
	}
	if req.AuthorTitle != nil {
		patch.Set("author_title", *req.AuthorTitle)
	}
	if req.Quote != nil {
		patch.Set("quote", *req.Quote)
	}
	if req.Rating != nil {
		patch.Set("rating", *req.Rating)
	}
	if req.DisplayOrder != nil {
		patch.Set("display_order", *req.DisplayOrder)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	t, err := h.testimonials.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
		return
	}
	respondData(c, http.StatusOK, t)
}

// DeleteTestimonial handles DELETE /api/users/:user_id/testimonials/:id
func (h *TestimonialHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.testimonials.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "TESTIMONIAL_NOT_FOUND", "Testimonial not found")
		return
	}
	c.Status(http.StatusNoContent)
}
