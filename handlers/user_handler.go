package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// UserStore is the persistence surface the user handler needs.
type UserStore interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch *repository.Patch) (*models.User, error)
}

// ProfileSources lists the per-collection readers the profile endpoint fans
// out to. Each is satisfied by the matching repository.
type ProfileSources struct {
	Skills         interface{ ListByUserID(ctx context.Context, userID string) ([]*models.Skill, error) }
	Projects       interface{ ListByUserID(ctx context.Context, userID string) ([]*models.Project, error) }
	Experiences    interface{ ListByUserID(ctx context.Context, userID string) ([]*models.Experience, error) }
	Education      interface{ ListByUserID(ctx context.Context, userID string) ([]*models.Education, error) }
	Certifications interface{ ListByUserID(ctx context.Context, userID string) ([]*models.Certification, error) }
	KeyFacts       interface{ ListByUserID(ctx context.Context, userID string) ([]*models.KeyFact, error) }
	SocialLinks    interface{ ListByUserID(ctx context.Context, userID string) ([]*models.SocialMediaLink, error) }
	Testimonials   interface{ ListByUserID(ctx context.Context, userID string) ([]*models.Testimonial, error) }
}

// UserHandler handles HTTP requests for the profile owner
type UserHandler struct {
	users   UserStore
	sources ProfileSources
}

// NewUserHandler creates a new user handler
func NewUserHandler(users UserStore, sources ProfileSources) *UserHandler {
	return &UserHandler{users: users, sources: sources}
}

// GetProfile handles GET /api/users/:user_id. It returns the user row plus
// every collection the portfolio page renders, projects with their
// screenshots nested.
func (h *UserHandler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("user_id")

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}

	profile := &models.Profile{User: user}
	if profile.Skills, err = h.sources.Skills.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	if profile.Projects, err = h.sources.Projects.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	if profile.Experiences, err = h.sources.Experiences.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	if profile.Education, err = h.sources.Education.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	if profile.Certifications, err = h.sources.Certifications.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	if profile.KeyFacts, err = h.sources.KeyFacts.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	if profile.SocialLinks, err = h.sources.SocialLinks.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	if profile.Testimonials, err = h.sources.Testimonials.ListByUserID(ctx, userID); err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}

	respondData(c, http.StatusOK, profile)
}

// UpdateUserRequest represents the request body for a partial profile update.
// Absent fields are left untouched.
type UpdateUserRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Tagline     *string `json:"tagline" binding:"omitempty,max=300"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatar_url" binding:"omitempty,url"`
	Location    *string `json:"location" binding:"omitempty,max=200"`
	GithubURL   *string `json:"github_url" binding:"omitempty,url"`
	LinkedinURL *string `json:"linkedin_url" binding:"omitempty,url"`
	WebsiteURL  *string `json:"website_url" binding:"omitempty,url"`
}

// UpdateUser handles PATCH /api/users/:user_id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Name != nil {
		patch.Set("name", *req.Name)
	}
	if req.Tagline != nil {
		patch.Set("tagline", *req.Tagline)
	}
	if req.Bio != nil {
		patch.Set("bio", *req.Bio)
	}
	if req.AvatarURL != nil {
		patch.Set("avatar_url", *req.AvatarURL)
	}
	if req.Location != nil {
		patch.Set("location", *req.Location)
	}
	if req.GithubURL != nil {
		patch.Set("github_url", *req.GithubURL)
	}
	if req.LinkedinURL != nil {
		patch.Set("linkedin_url", *req.LinkedinURL)
	}
	if req.WebsiteURL != nil {
		patch.Set("website_url", *req.WebsiteURL)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	user, err := h.users.Update(c.Request.Context(), c.Param("user_id"), patch)
	if err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	respondData(c, http.StatusOK, user)
}
