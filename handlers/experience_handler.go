package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// ExperienceStore is the persistence surface the experience handler needs.
type ExperienceStore interface {
	Create(ctx context.Context, e *models.Experience) error
	GetByID(ctx context.Context, userID, id string) (*models.Experience, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.Experience, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.Experience, error)
	Delete(ctx context.Context, userID, id string) error
}

// ExperienceHandler handles HTTP requests for work experience entries
type ExperienceHandler struct {
	experiences ExperienceStore
}

// NewExperienceHandler creates a new experience handler
func NewExperienceHandler(experiences ExperienceStore) *ExperienceHandler {
	return &ExperienceHandler{experiences: experiences}
}

// CreateExperienceRequest represents the request body for creating an entry.
// Dates are year-month strings ("2023-01"); end_date stays empty while the
// role is current.
type CreateExperienceRequest struct {
	CompanyName string  `json:"company_name" binding:"required,max=200"`
	RoleTitle   string  `json:"role_title" binding:"required,max=200"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	StartDate   string  `json:"start_date" binding:"required,max=10"`
	EndDate     *string `json:"end_date" binding:"omitempty,max=10"`
	IsCurrent   bool    `json:"is_current"`
}

// CreateExperience handles POST /api/users/:user_id/experiences
func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req CreateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	exp := &models.Experience{
		UserID:      c.Param("user_id"),
		CompanyName: req.CompanyName,
		RoleTitle:   req.RoleTitle,
		Location:    req.Location,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		IsCurrent:   req.IsCurrent,
	}
	if err := h.experiences.Create(c.Request.Context(), exp); err != nil {
		respondStoreError(c, err, "EXPERIENCE_NOT_FOUND", "Experience not found")
		return
	}
	respondData(c, http.StatusCreated, exp)
}

// ListExperiences handles GET /api/users/:user_id/experiences
func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("current"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "is_current", Value: v == "true"})
	}
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "company_name", Value: v, Fuzzy: true})
	}

	experiences, total, err := h.experiences.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "EXPERIENCE_NOT_FOUND", "Experience not found")
		return
	}
	respondList(c, experiences, total, opts.Limit, opts.Offset)
}

// GetExperience handles GET /api/users/:user_id/experiences/:id
func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	exp, err := h.experiences.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "EXPERIENCE_NOT_FOUND", "Experience not found")
		return
	}
	respondData(c, http.StatusOK, exp)
}

// UpdateExperienceRequest represents the request body for a partial update
type UpdateExperienceRequest struct {
	CompanyName *string `json:"company_name" binding:"omitempty,max=200"`
	RoleTitle   *string `json:"role_title" binding:"omitempty,max=200"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	Description *string `json:"description"`
	StartDate   *string `json:"start_date" binding:"omitempty,max=10"`
	EndDate     *string `json:"end_date" binding:"omitempty,max=10"`
	IsCurrent   *bool   `json:"is_current"`
}

// UpdateExperience handles PATCH /api/users/:user_id/experiences/:id
func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	var req UpdateExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.CompanyName != nil {
		patch.Set("company_name", *req.CompanyName)
	}
	if req.RoleTitle != nil {
		patch.Set("role_title", *req.RoleTitle)
	}
	if req.Location != nil {
		patch.Set("location", *req.Location)
	}
	if req.Description != nil {
		patch.Set("description", *req.Description)
	}
	if req.StartDate != nil {
		patch.Set("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		patch.Set("end_date", *req.EndDate)
	}
	if req.IsCurrent != nil {
		patch.Set("is_current", *req.IsCurrent)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	exp, err := h.experiences.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "EXPERIENCE_NOT_FOUND", "Experience not found")
		return
	}
	respondData(c, http.StatusOK, exp)
}

// DeleteExperience handles DELETE /api/users/:user_id/experiences/:id
func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	if err := h.experiences.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "EXPERIENCE_NOT_FOUND", "Experience not found")
		return
	}
	c.Status(http.StatusNoContent)
}
