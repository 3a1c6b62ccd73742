package handlers

import (
	"context"
	"net/http"
	"time"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// AnalyticsStore is the persistence surface the analytics handler needs.
type AnalyticsStore interface {
	CreatePageVisit(ctx context.Context, v *models.PageVisit) error
	CreateSectionVisit(ctx context.Context, v *models.SectionVisit) error
	SearchPageVisits(ctx context.Context, opts repository.SearchOptions) ([]*models.PageVisit, int, error)
	SearchSectionVisits(ctx context.Context, opts repository.SearchOptions) ([]*models.SectionVisit, int, error)
	PageVisitStats(ctx context.Context) ([]*models.VisitStats, error)
	SectionVisitStats(ctx context.Context) ([]*models.VisitStats, error)
}

// AnalyticsHandler handles HTTP requests for visit tracking. Writes are
// public (the page fires them), reads are owner-only.
type AnalyticsHandler struct {
	analytics AnalyticsStore
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics AnalyticsStore) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// CreatePageVisitRequest represents one page view event
type CreatePageVisitRequest struct {
	Path        string     `json:"path" binding:"required,max=500"`
	Referrer    *string    `json:"referrer" binding:"omitempty,max=500"`
	VisitorHash *string    `json:"visitor_hash" binding:"omitempty,max=128"`
	VisitedAt   *time.Time `json:"visited_at"`
}

// CreatePageVisit handles POST /api/page-visits
func (h *AnalyticsHandler) CreatePageVisit(c *gin.Context) {
	var req CreatePageVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	visit := &models.PageVisit{
		Path:        req.Path,
		Referrer:    req.Referrer,
		VisitorHash: req.VisitorHash,
	}
	if req.VisitedAt != nil {
		visit.VisitedAt = req.VisitedAt.UTC()
	}
	if err := h.analytics.CreatePageVisit(c.Request.Context(), visit); err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		return
	}
	respondData(c, http.StatusCreated, visit)
}

// CreateSectionVisitRequest represents one section dwell event
type CreateSectionVisitRequest struct {
	Section    string     `json:"section" binding:"required,max=100"`
	DurationMs int        `json:"duration_ms" binding:"min=0"`
	VisitedAt  *time.Time `json:"visited_at"`
}

// CreateSectionVisit handles POST /api/section-visits
func (h *AnalyticsHandler) CreateSectionVisit(c *gin.Context) {
	var req CreateSectionVisitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	visit := &models.SectionVisit{
		Section:    req.Section,
		DurationMs: req.DurationMs,
	}
	if req.VisitedAt != nil {
		visit.VisitedAt = req.VisitedAt.UTC()
	}
	if err := h.analytics.CreateSectionVisit(c.Request.Context(), visit); err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		return
	}
	respondData(c, http.StatusCreated, visit)
}

// ListPageVisits handles GET /api/page-visits
func (h *AnalyticsHandler) ListPageVisits(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("path"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "path", Value: v})
	}

	visits, total, err := h.analytics.SearchPageVisits(c.Request.Context(), opts)
	if err != nil {
		respondStoreError(c, err, "PAGE_VISIT_NOT_FOUND", "Page visit not found")
		return
	}
	respondList(c, visits, total, opts.Limit, opts.Offset)
}

// ListSectionVisits handles GET /api/section-visits
func (h *AnalyticsHandler) ListSectionVisits(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("section"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "section", Value: v})
	}

	visits, total, err := h.analytics.SearchSectionVisits(c.Request.Context(), opts)
	if err != nil {
		respondStoreError(c, err, "SECTION_VISIT_NOT_FOUND", "Section visit not found")
		return
	}
	respondList(c, visits, total, opts.Limit, opts.Offset)
}

// GetPageVisitStats handles GET /api/page-visits/stats
func (h *AnalyticsHandler) GetPageVisitStats(c *gin.Context) {
	stats, err := h.analytics.PageVisitStats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		return
	}
	respondData(c, http.StatusOK, stats)
}

// GetSectionVisitStats handles GET /api/section-visits/stats
func (h *AnalyticsHandler) GetSectionVisitStats(c *gin.Context) {
	stats, err := h.analytics.SectionVisitStats(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		return
	}
	respondData(c, http.StatusOK, stats)
}
