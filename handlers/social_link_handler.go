package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// SocialLinkStore is the persistence surface the social link handler needs.
type SocialLinkStore interface {
	Create(ctx context.Context, l *models.SocialMediaLink) error
	GetByID(ctx context.Context, userID, id string) (*models.SocialMediaLink, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.SocialMediaLink, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.SocialMediaLink, error)
	Delete(ctx context.Context, userID, id string) error
}

// SocialLinkHandler handles HTTP requests for social media links
type SocialLinkHandler struct {
	links SocialLinkStore
}

// NewSocialLinkHandler creates a new social link handler
func NewSocialLinkHandler(links SocialLinkStore) *SocialLinkHandler {
	return &SocialLinkHandler{links: links}
}

// CreateSocialLinkRequest represents the request body for creating a link
type CreateSocialLinkRequest struct {
	Platform     string `json:"platform" binding:"required,max=100"`
	URL          string `json:"url" binding:"required,url"`
	DisplayOrder int    `json:"display_order" binding:"min=0"`
}

// CreateSocialLink handles POST /api/users/:user_id/social-media-links
func (h *SocialLinkHandler) CreateSocialLink(c *gin.Context) {
	var req CreateSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	link := &models.SocialMediaLink{
		UserID:       c.Param("user_id"),
		Platform:     req.Platform,
		URL:          req.URL,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.links.Create(c.Request.Context(), link); err != nil {
		respondStoreError(c, err, "SOCIAL_LINK_NOT_FOUND", "Social media link not found")
		return
	}
	respondData(c, http.StatusCreated, link)
}

// ListSocialLinks handles GET /api/users/:user_id/social-media-links
func (h *SocialLinkHandler) ListSocialLinks(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("platform"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "platform", Value: v})
	}

	links, total, err := h.links.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "SOCIAL_LINK_NOT_FOUND", "Social media link not found")
		return
	}
	respondList(c, links, total, opts.Limit, opts.Offset)
}

// GetSocialLink handles GET /api/users/:user_id/social-media-links/:id
func (h *SocialLinkHandler) GetSocialLink(c *gin.Context) {
	link, err := h.links.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "SOCIAL_LINK_NOT_FOUND", "Social media link not found")
		return
	}
	respondData(c, http.StatusOK, link)
}

// UpdateSocialLinkRequest represents the request body for a partial update
type UpdateSocialLinkRequest struct {
	Platform     *string `json:"platform" binding:"omitempty,max=100"`
	URL          *string `json:"url" binding:"omitempty,url"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateSocialLink handles PATCH /api/users/:user_id/social-media-links/:id
func (h *SocialLinkHandler) UpdateSocialLink(c *gin.Context) {
	var req UpdateSocialLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Platform != nil {
		patch.Set("platform", *req.Platform)
	}
	if req.URL != nil {
		patch.Set("url", *req.URL)
	}
	if req.DisplayOrder != nil {
		patch.Set("display_order", *req.DisplayOrder)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	link, err := h.links.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "SOCIAL_LINK_NOT_FOUND", "Social media link not found")
		return
	}
	respondData(c, http.StatusOK, link)
}

// DeleteSocialLink handles DELETE /api/users/:user_id/social-media-links/:id
func (h *SocialLinkHandler) DeleteSocialLink(c *gin.Context) {
	if err := h.links.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "SOCIAL_LINK_NOT_FOUND", "Social media link not found")
		return
	}
	c.Status(http.StatusNoContent)
}
