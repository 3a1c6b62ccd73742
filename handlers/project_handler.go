package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// ProjectStore is the persistence surface the project handler needs.
type ProjectStore interface {
	Create(ctx context.Context, p *models.Project) error
	GetByID(ctx context.Context, userID, id string) (*models.Project, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.Project, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.Project, error)
	Delete(ctx context.Context, userID, id string) error
}

// ScreenshotStore is the persistence surface for project screenshots.
type ScreenshotStore interface {
	Create(ctx context.Context, s *models.ProjectScreenshot) error
	GetByID(ctx context.Context, projectID, id string) (*models.ProjectScreenshot, error)
	Search(ctx context.Context, projectID string, opts repository.SearchOptions) ([]*models.ProjectScreenshot, int, error)
	Update(ctx context.Context, projectID, id string, patch *repository.Patch) (*models.ProjectScreenshot, error)
	Delete(ctx context.Context, projectID, id string) error
}

// ProjectHandler handles HTTP requests for projects and their screenshots
type ProjectHandler struct {
	projects    ProjectStore
	screenshots ScreenshotStore
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projects ProjectStore, screenshots ScreenshotStore) *ProjectHandler {
	return &ProjectHandler{projects: projects, screenshots: screenshots}
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Title        string  `json:"title" binding:"required,max=200"`
	Description  *string `json:"description"`
	LiveURL      *string `json:"live_url" binding:"omitempty,url"`
	RepoURL      *string `json:"repo_url" binding:"omitempty,url"`
	DemoURL      *string `json:"demo_url" binding:"omitempty,url"`
	IsFeatured   bool    `json:"is_featured"`
	Status       string  `json:"status" binding:"omitempty,oneof=active archived in_progress"`
	DisplayOrder int     `json:"display_order" binding:"min=0"`
}

// CreateProject handles POST /api/users/:user_id/projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	project := &models.Project{
		UserID:       c.Param("user_id"),
		Title:        req.Title,
		Description:  req.Description,
		LiveURL:      req.LiveURL,
		RepoURL:      req.RepoURL,
		DemoURL:      req.DemoURL,
		IsFeatured:   req.IsFeatured,
		Status:       models.ProjectStatus(req.Status),
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.projects.Create(c.Request.Context(), project); err != nil {
		respondStoreError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	respondData(c, http.StatusCreated, project)
}

// ListProjects handles GET /api/users/:user_id/projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("status"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "status", Value: v})
	}
	if v := c.Query("featured"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "is_featured", Value: v == "true"})
	}
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "title", Value: v, Fuzzy: true})
	}

	projects, total, err := h.projects.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	respondList(c, projects, total, opts.Limit, opts.Offset)
}

// GetProject handles GET /api/users/:user_id/projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	project, err := h.projects.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	respondData(c, http.StatusOK, project)
}

// UpdateProjectRequest represents the request body for a partial project update
type UpdateProjectRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=200"`
	Description  *string `json:"description"`
	LiveURL      *string `json:"live_url" binding:"omitempty,url"`
	RepoURL      *string `json:"repo_url" binding:"omitempty,url"`
	DemoURL      *string `json:"demo_url" binding:"omitempty,url"`
	IsFeatured   *bool   `json:"is_featured"`
	Status       *string `json:"status" binding:"omitempty,oneof=active archived in_progress"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateProject handles PATCH /api/users/:user_id/projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Title != nil {
		patch.Set("title", *req.Title)
	}
	if req.Description != nil {
		patch.Set("description", *req.Description)
	}
	if req.LiveURL != nil {
		patch.Set("live_url", *req.LiveURL)
	}
	if req.RepoURL != nil {
		patch.Set("repo_url", *req.RepoURL)
	}
	if req.DemoURL != nil {
		patch.Set("demo_url", *req.DemoURL)
	}
	if req.IsFeatured != nil {
		patch.Set("is_featured", *req.IsFeatured)
	}
	if req.Status != nil {
		patch.Set("status", *req.Status)
	}
	if req.DisplayOrder != nil {
		patch.Set("display_order", *req.DisplayOrder)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	project, err := h.projects.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	respondData(c, http.StatusOK, project)
}

// DeleteProject handles DELETE /api/users/:user_id/projects/:id. Screenshots
// go with the project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projects.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateScreenshotRequest represents the request body for adding a screenshot
type CreateScreenshotRequest struct {
	ImageURL     string  `json:"image_url" binding:"required,url"`
	Caption      *string `json:"caption" binding:"omitempty,max=300"`
	DisplayOrder int     `json:"display_order" binding:"min=0"`
}

// CreateScreenshot handles POST /api/users/:user_id/projects/:id/screenshots
func (h *ProjectHandler) CreateScreenshot(c *gin.Context) {
	var req CreateScreenshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	// The parent must exist and belong to the path owner.
	if _, err := h.projects.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "PROJECT_NOT_FOUND", "Project not found")
		return
	}

	shot := &models.ProjectScreenshot{
		ProjectID:    c.Param("id"),
		ImageURL:     req.ImageURL,
		Caption:      req.Caption,
		DisplayOrder: req.DisplayOrder,
	}
	if err := h.screenshots.Create(c.Request.Context(), shot); err != nil {
		respondStoreError(c, err, "SCREENSHOT_NOT_FOUND", "Screenshot not found")
		return
	}
	respondData(c, http.StatusCreated, shot)
}

// ListScreenshots handles GET /api/users/:user_id/projects/:id/screenshots
func (h *ProjectHandler) ListScreenshots(c *gin.Context) {
	opts := searchOptions(c)
	shots, total, err := h.screenshots.Search(c.Request.Context(), c.Param("id"), opts)
	if err != nil {
		respondStoreError(c, err, "SCREENSHOT_NOT_FOUND", "Screenshot not found")
		return
	}
	respondList(c, shots, total, opts.Limit, opts.Offset)
}

// GetScreenshot handles GET /api/users/:user_id/projects/:id/screenshots/:screenshot_id
func (h *ProjectHandler) GetScreenshot(c *gin.Context) {
	shot, err := h.screenshots.GetByID(c.Request.Context(), c.Param("id"), c.Param("screenshot_id"))
	if err != nil {
		respondStoreError(c, err, "SCREENSHOT_NOT_FOUND", "Screenshot not found")
		return
	}
	respondData(c, http.StatusOK, shot)
}

// UpdateScreenshotRequest represents the request body for a partial update
type UpdateScreenshotRequest struct {
	ImageURL     *string `json:"image_url" binding:"omitempty,url"`
	Caption      *string `json:"caption" binding:"omitempty,max=300"`
	DisplayOrder *int    `json:"display_order" binding:"omitempty,min=0"`
}

// UpdateScreenshot handles PATCH /api/users/:user_id/projects/:id/screenshots/:screenshot_id
func (h *ProjectHandler) UpdateScreenshot(c *gin.Context) {
	var req UpdateScreenshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.ImageURL != nil {
		patch.Set("image_url", *req.ImageURL)
	}
	if req.Caption != nil {
		patch.Set("caption", *req.Caption)
	}
	if req.DisplayOrder != nil {
		patch.Set("display_order", *req.DisplayOrder)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	shot, err := h.screenshots.Update(c.Request.Context(), c.Param("id"), c.Param("screenshot_id"), patch)
	if err != nil {
		respondStoreError(c, err, "SCREENSHOT_NOT_FOUND", "Screenshot not found")
		return
	}
	respondData(c, http.StatusOK, shot)
}

// DeleteScreenshot handles DELETE /api/users/:user_id/projects/:id/screenshots/:screenshot_id
func (h *ProjectHandler) DeleteScreenshot(c *gin.Context) {
	if err := h.screenshots.Delete(c.Request.Context(), c.Param("id"), c.Param("screenshot_id")); err != nil {
		respondStoreError(c, err, "SCREENSHOT_NOT_FOUND", "Screenshot not found")
		return
	}
	c.Status(http.StatusNoContent)
}
