package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// CertificationStore is the persistence surface the certification handler needs.
type CertificationStore interface {
	Create(ctx context.Context, cert *models.Certification) error
	GetByID(ctx context.Context, userID, id string) (*models.Certification, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.Certification, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.Certification, error)
	Delete(ctx context.Context, userID, id string) error
}

// CertificationHandler handles HTTP requests for certifications
type CertificationHandler struct {
	certs CertificationStore
}

// NewCertificationHandler creates a new certification handler
func NewCertificationHandler(certs CertificationStore) *CertificationHandler {
	return &CertificationHandler{certs: certs}
}

// CreateCertificationRequest represents the request body for creating a certification
type CreateCertificationRequest struct {
	Name                string  `json:"name" binding:"required,max=200"`
	IssuingOrganization string  `json:"issuing_organization" binding:"required,max=200"`
	IssueDate           string  `json:"issue_date" binding:"required,max=10"`
	ExpirationDate      *string `json:"expiration_date" binding:"omitempty,max=10"`
	CredentialURL       *string `json:"credential_url" binding:"omitempty,url"`
}

// CreateCertification handles POST /api/users/:user_id/certifications
func (h *CertificationHandler) CreateCertification(c *gin.Context) {
	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	cert := &models.Certification{
		UserID:              c.Param("user_id"),
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		IssueDate:           req.IssueDate,
		ExpirationDate:      req.ExpirationDate,
		CredentialURL:       req.CredentialURL,
	}
	if err := h.certs.Create(c.Request.Context(), cert); err != nil {
		respondStoreError(c, err, "CERTIFICATION_NOT_FOUND", "Certification not found")
		return
	}
	respondData(c, http.StatusCreated, cert)
}

// ListCertifications handles GET /api/users/:user_id/certifications
func (h *CertificationHandler) ListCertifications(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "name", Value: v, Fuzzy: true})
	}

	certs, total, err := h.certs.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "CERTIFICATION_NOT_FOUND", "Certification not found")
		return
	}
	respondList(c, certs, total, opts.Limit, opts.Offset)
}

// GetCertification handles GET /api/users/:user_id/certifications/:id
func (h *CertificationHandler) GetCertification(c *gin.Context) {
	cert, err := h.certs.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "CERTIFICATION_NOT_FOUND", "Certification not found")
		return
	}
	respondData(c, http.StatusOK, cert)
}

// UpdateCertificationRequest represents the request body for a partial update
type UpdateCertificationRequest struct {
	Name                *string `json:"name" binding:"omitempty,max=200"`
	IssuingOrganization *string `json:"issuing_organization" binding:"omitempty,max=200"`
	IssueDate           *string `json:"issue_date" binding:"omitempty,max=10"`
	ExpirationDate      *string `json:"expiration_date" binding:"omitempty,max=10"`
	CredentialURL       *string `json:"credential_url" binding:"omitempty,url"`
}

// UpdateCertification handles PATCH /api/users/:user_id/certifications/:id
func (h *CertificationHandler) UpdateCertification(c *gin.Context) {
	var req UpdateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Name != nil {
		patch.Set("name", *req.Name)
	}
	if req.IssuingOrganization != nil {
		patch.Set("issuing_organization", *req.IssuingOrganization)
	}
	if req.IssueDate != nil {
		patch.Set("issue_date", *req.IssueDate)
	}
	if req.ExpirationDate != nil {
		patch.Set("expiration_date", *req.ExpirationDate)
	}
	if req.CredentialURL != nil {
		patch.Set("credential_url", *req.CredentialURL)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	cert, err := h.certs.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "CERTIFICATION_NOT_FOUND", "Certification not found")
		return
	}
	respondData(c, http.StatusOK, cert)
}

// DeleteCertification handles DELETE /api/users/:user_id/certifications/:id
func (h *CertificationHandler) DeleteCertification(c *gin.Context) {
	if err := h.certs.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "CERTIFICATION_NOT_FOUND", "Certification not found")
		return
	}
	c.Status(http.StatusNoContent)
}
