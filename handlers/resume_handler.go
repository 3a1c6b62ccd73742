package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"
	"portfolio-backend/service"

	"github.com/gin-gonic/gin"
)

// ResumeGenerator produces a resume file and logs the download.
type ResumeGenerator interface {
	Generate(ctx context.Context, req service.GenerateResumeRequest) (*models.ResumeDownload, error)
}

// ResumeDownloadStore is the read surface over the download log.
type ResumeDownloadStore interface {
	GetByID(ctx context.Context, userID, id string) (*models.ResumeDownload, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.ResumeDownload, int, error)
}

// ResumeHandler handles HTTP requests for resume generation and the
// download log
type ResumeHandler struct {
	generator ResumeGenerator
	downloads ResumeDownloadStore
}

// NewResumeHandler creates a new resume handler
func NewResumeHandler(generator ResumeGenerator, downloads ResumeDownloadStore) *ResumeHandler {
	return &ResumeHandler{generator: generator, downloads: downloads}
}

// GenerateResumeRequest represents the request body for generating a resume
type GenerateResumeRequest struct {
	Format string `json:"format" binding:"omitempty,oneof=pdf docx"`
}

// GenerateResume handles POST /api/users/:user_id/resume-downloads
func (h *ResumeHandler) GenerateResume(c *gin.Context) {
	var req GenerateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		respondBindError(c, err)
		return
	}

	download, err := h.generator.Generate(c.Request.Context(), service.GenerateResumeRequest{
		UserID: c.Param("user_id"),
		Format: models.ResumeFormat(req.Format),
	})
	if err != nil {
		respondStoreError(c, err, "USER_NOT_FOUND", "User not found")
		return
	}
	respondData(c, http.StatusCreated, download)
}

// ListResumeDownloads handles GET /api/users/:user_id/resume-downloads
func (h *ResumeHandler) ListResumeDownloads(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("format"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "file_format", Value: v})
	}

	downloads, total, err := h.downloads.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "RESUME_DOWNLOAD_NOT_FOUND", "Resume download not found")
		return
	}
	respondList(c, downloads, total, opts.Limit, opts.Offset)
}

// GetResumeDownload handles GET /api/users/:user_id/resume-downloads/:id
func (h *ResumeHandler) GetResumeDownload(c *gin.Context) {
	download, err := h.downloads.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "RESUME_DOWNLOAD_NOT_FOUND", "Resume download not found")
		return
	}
	respondData(c, http.StatusOK, download)
}
