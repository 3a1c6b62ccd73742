package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// KeyFactStore is the persistence surface the key fact handler needs.
type KeyFactStore interface {
	Create(ctx context.Context, f *models.KeyFact) error
	GetByID(ctx context.Context, userID, id string) (*models.KeyFact, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.KeyFact, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.KeyFact, error)
	Delete(ctx context.Context, userID, id string) error
}

// KeyFactHandler handles HTTP requests for key facts
type KeyFactHandler struct {
	facts KeyFactStore
}

// NewKeyFactHandler creates a new key fact handler
func NewKeyFactHandler(facts KeyFactStore) *KeyFactHandler {
	return &KeyFactHandler{facts: facts}
}

// CreateKeyFactRequest represents the request body for creating a key fact
type CreateKeyFactRequest struct {
	Label        string `json:"label" binding:"required,max=200"`
	Value        string `json:"value" binding:"required,max=200"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

// CreateKeyFact handles POST /api/users/:user_id/key-facts
func (h *KeyFactHandler) CreateKeyFact(c *gin.Context) {
	var req CreateKeyFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	fact := &models.KeyFact{
		UserID:       c.Param("user_id"),
		Label:        req.Label,
		Value:        req.Value,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.facts.Create(c.Request.Context(), fact); err != nil {
		respondStoreError(c, err, "KEY_FACT_NOT_FOUND", "Key fact not found")
		return
	}
	respondData(c, http.StatusCreated, fact)
}

// ListKeyFacts handles GET /api/users/:user_id/key-facts
func (h *KeyFactHandler) ListKeyFacts(c *gin.Context) {
	opts := searchOptions(c)
	facts, total, err := h.facts.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "KEY_FACT_NOT_FOUND", "Key fact not found")
		return
	}
	respondList(c, facts, total, opts.Limit, opts.Offset)
}

// GetKeyFact handles GET /api/users/:user_id/key-facts/:id
func (h *KeyFactHandler) GetKeyFact(c *gin.Context) {
	fact, err := h.facts.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "KEY_FACT_NOT_FOUND", "Key fact not found")
		return
	}
	respondData(c, http.StatusOK, fact)
}

// UpdateKeyFactRequest represents the request body for a partial update
type UpdateKeyFactRequest struct {
	Label        *string `json:"label" binding:"omitempty,max=200"`
	Value        *string `json:"value" binding:"omitempty,max=200"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateKeyFact handles PATCH /api/users/:user_id/key-facts/:id
func (h *KeyFactHandler) UpdateKeyFact(c *gin.Context) {
	var req UpdateKeyFactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Label != nil {
		patch.Set("label", *req.Label)
	}
	if req.Value != nil {
		patch.Set("value", *req.Value)
	}
	if req.DisplayOrder != nil {
		patch.Set("display_order", *req.DisplayOrder)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	fact, err := h.facts.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "KEY_FACT_NOT_FOUND", "Key fact not found")
		return
	}
	respondData(c, http.StatusOK, fact)
}

// DeleteKeyFact handles DELETE /api/users/:user_id/key-facts/:id
func (h *KeyFactHandler) DeleteKeyFact(c *gin.Context) {
	if err := h.facts.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "KEY_FACT_NOT_FOUND", "Key fact not found")
		return
	}
	c.Status(http.StatusNoContent)
}
