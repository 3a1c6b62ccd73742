package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// SkillStore is the persistence surface the skill handler needs.
type SkillStore interface {
	Create(ctx context.Context, s *models.Skill) error
	GetByID(ctx context.Context, userID, id string) (*models.Skill, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.Skill, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.Skill, error)
	Delete(ctx context.Context, userID, id string) error
}

// SkillHandler handles HTTP requests for skills
type SkillHandler struct {
	skills SkillStore
}

// NewSkillHandler creates a new skill handler
func NewSkillHandler(skills SkillStore) *SkillHandler {
	return &SkillHandler{skills: skills}
}

// CreateSkillRequest represents the request body for creating a skill
type CreateSkillRequest struct {
	Category         string `json:"category" binding:"required,max=100"`
	Name             string `json:"name" binding:"required,max=200"`
	ProficiencyLevel int    `json:"proficiency_level" binding:"min=0,max=100"`
	DisplayOrder     int    `json:"display_order" binding:"min=0"`
}

// CreateSkill handles POST /api/users/:user_id/skills
func (h *SkillHandler) CreateSkill(c *gin.Context) {
	var req CreateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	skill := &models.Skill{
		UserID:           c.Param("user_id"),
		Category:         req.Category,
		Name:             req.Name,
		ProficiencyLevel: req.ProficiencyLevel,
		DisplayOrder:     req.DisplayOrder,
	}
	if err := h.skills.Create(c.Request.Context(), skill); err != nil {
		respondStoreError(c, err, "SKILL_NOT_FOUND", "Skill not found")
		return
	}
	respondData(c, http.StatusCreated, skill)
}

// ListSkills handles GET /api/users/:user_id/skills
func (h *SkillHandler) ListSkills(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("category"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "category", Value: v})
	}
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "name", Value: v, Fuzzy: true})
	}

	skills, total, err := h.skills.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "SKILL_NOT_FOUND", "Skill not found")
		return
	}
	respondList(c, skills, total, opts.Limit, opts.Offset)
}

// GetSkill handles GET /api/users/:user_id/skills/:id
func (h *SkillHandler) GetSkill(c *gin.Context) {
	skill, err := h.skills.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "SKILL_NOT_FOUND", "Skill not found")
		return
	}
	respondData(c, http.StatusOK, skill)
}

// UpdateSkillRequest represents the request body for a partial skill update
type UpdateSkillRequest struct {
	Category         *string `json:"category" binding:"omitempty,max=100"`
	Name             *string `json:"name" binding:"omitempty,max=200"`
	ProficiencyLevel *int    `json:"proficiency_level" binding:"omitempty,min=0,max=100"`
	DisplayOrder     *int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateSkill handles PATCH /api/users/:user_id/skills/:id
func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	var req UpdateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Category != nil {
		patch.Set("category", *req.Category)
	}
	if req.Name != nil {
		patch.Set("name", *req.Name)
	}
	if req.ProficiencyLevel != nil {
		patch.Set("proficiency_level", *req.ProficiencyLevel)
	}
	if req.DisplayOrder != nil {
		patch.Set("display_order", *req.DisplayOrder)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	skill, err := h.skills.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "SKILL_NOT_FOUND", "Skill not found")
		return
	}
	respondData(c, http.StatusOK, skill)
}

// DeleteSkill handles DELETE /api/users/:user_id/skills/:id
func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	if err := h.skills.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "SKILL_NOT_FOUND", "Skill not found")
		return
	}
	c.Status(http.StatusNoContent)
}
