package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// EducationStore is the persistence surface the education handler needs.
type EducationStore interface {
	Create(ctx context.Context, e *models.Education) error
	GetByID(ctx context.Context, userID, id string) (*models.Education, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.Education, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.Education, error)
	Delete(ctx context.Context, userID, id string) error
}

// EducationHandler handles HTTP requests for education entries
type EducationHandler struct {
	education EducationStore
}

// NewEducationHandler creates a new education handler
func NewEducationHandler(education EducationStore) *EducationHandler {
	return &EducationHandler{education: education}
}

// CreateEducationRequest represents the request body for creating an entry
type CreateEducationRequest struct {
	InstitutionName string  `json:"institution_name" binding:"required,max=200"`
	Degree          string  `json:"degree" binding:"required,max=200"`
	FieldOfStudy    *string `json:"field_of_study" binding:"omitempty,max=200"`
	StartDate       string  `json:"start_date" binding:"required,max=10"`
	EndDate         *string `json:"end_date" binding:"omitempty,max=10"`
	Description     *string `json:"description"`
}

// CreateEducation handles POST /api/users/:user_id/education
func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var req CreateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	edu := &models.Education{
		UserID:          c.Param("user_id"),
		InstitutionName: req.InstitutionName,
		Degree:          req.Degree,
		FieldOfStudy:    req.FieldOfStudy,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Description:     req.Description,
	}
	if err := h.education.Create(c.Request.Context(), edu); err != nil {
		respondStoreError(c, err, "EDUCATION_NOT_FOUND", "Education entry not found")
		return
	}
	respondData(c, http.StatusCreated, edu)
}

// ListEducation handles GET /api/users/:user_id/education
func (h *EducationHandler) ListEducation(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "institution_name", Value: v, Fuzzy: true})
	}

	entries, total, err := h.education.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "EDUCATION_NOT_FOUND", "Education entry not found")
		return
	}
	respondList(c, entries, total, opts.Limit, opts.Offset)
}

// GetEducation handles GET /api/users/:user_id/education/:id
func (h *EducationHandler) GetEducation(c *gin.Context) {
	edu, err := h.education.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "EDUCATION_NOT_FOUND", "Education entry not found")
		return
	}
	respondData(c, http.StatusOK, edu)
}

// UpdateEducationRequest represents the request body for a partial update
type UpdateEducationRequest struct {
	InstitutionName *string `json:"institution_name" binding:"omitempty,max=200"`
	Degree          *string `json:"degree" binding:"omitempty,max=200"`
	FieldOfStudy    *string `json:"field_of_study" binding:"omitempty,max=200"`
	StartDate       *string `json:"start_date" binding:"omitempty,max=10"`
	EndDate         *string `json:"end_date" binding:"omitempty,max=10"`
	Description     *string `json:"description"`
}

// UpdateEducation handles PATCH /api/users/:user_id/education/:id
func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	var req UpdateEducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.InstitutionName != nil {
		patch.Set("institution_name", *req.InstitutionName)
	}
	if req.Degree != nil {
		patch.Set("degree", *req.Degree)
	}
	if req.FieldOfStudy != nil {
		patch.Set("field_of_study", *req.FieldOfStudy)
	}
	if req.StartDate != nil {
		patch.Set("start_date", *req.StartDate)
	}
	if req.EndDate != nil {
		patch.Set("end_date", *req.EndDate)
	}
	if req.Description != nil {
		patch.Set("description", *req.Description)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	edu, err := h.education.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "EDUCATION_NOT_FOUND", "Education entry not found")
		return
	}
	respondData(c, http.StatusOK, edu)
}

// DeleteEducation handles DELETE /api/users/:user_id/education/:id
func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	if err := h.education.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "EDUCATION_NOT_FOUND", "Education entry not found")
		return
	}
	c.Status(http.StatusNoContent)
}
