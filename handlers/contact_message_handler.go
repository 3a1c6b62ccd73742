package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// ContactMessageStore is the persistence surface the contact handler needs.
type ContactMessageStore interface {
	Create(ctx context.Context, m *models.ContactMessage) error
	GetByID(ctx context.Context, userID, id string) (*models.ContactMessage, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.ContactMessage, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.ContactMessage, error)
	Delete(ctx context.Context, userID, id string) error
}

// ContactMessageHandler handles HTTP requests for contact messages. Creation
// is public (the contact form), everything else is owner-only.
type ContactMessageHandler struct {
	messages ContactMessageStore
}

// NewContactMessageHandler creates a new contact message handler
func NewContactMessageHandler(messages ContactMessageStore) *ContactMessageHandler {
	return &ContactMessageHandler{messages: messages}
}

// CreateContactMessageRequest represents the public contact form payload
type CreateContactMessageRequest struct {
	SenderName     string `json:"sender_name" binding:"required,max=200"`
	SenderEmail    string `json:"sender_email" binding:"required,email"`
	MessageContent string `json:"message_content" binding:"required,max=5000"`
}

// CreateContactMessage handles POST /api/users/:user_id/contact-messages.
// No auth: anonymous visitors submit through this route.
func (h *ContactMessageHandler) CreateContactMessage(c *gin.Context) {
	var req CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	userID := c.Param("user_id")
	msg := &models.ContactMessage{
		UserID:         &userID,
		SenderName:     req.SenderName,
		SenderEmail:    req.SenderEmail,
		MessageContent: req.MessageContent,
	}
	if err := h.messages.Create(c.Request.Context(), msg); err != nil {
		respondStoreError(c, err, "CONTACT_MESSAGE_NOT_FOUND", "Contact message not found")
		return
	}
	respondData(c, http.StatusCreated, msg)
}

// ListContactMessages handles GET /api/users/:user_id/contact-messages
func (h *ContactMessageHandler) ListContactMessages(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("status"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "status", Value: v})
	}
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "sender_name", Value: v, Fuzzy: true})
	}

	messages, total, err := h.messages.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "CONTACT_MESSAGE_NOT_FOUND", "Contact message not found")
		return
	}
	respondList(c, messages, total, opts.Limit, opts.Offset)
}

// GetContactMessage handles GET /api/users/:user_id/contact-messages/:id
func (h *ContactMessageHandler) GetContactMessage(c *gin.Context) {
	msg, err := h.messages.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "CONTACT_MESSAGE_NOT_FOUND", "Contact message not found")
		return
	}
	respondData(c, http.StatusOK, msg)
}

// UpdateContactMessageRequest represents the request body for a status change
type UpdateContactMessageRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=new read archived"`
}

// UpdateContactMessage handles PATCH /api/users/:user_id/contact-messages/:id
func (h *ContactMessageHandler) UpdateContactMessage(c *gin.Context) {
	var req UpdateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Status != nil {
		patch.Set("status", *req.Status)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	msg, err := h.messages.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "CONTACT_MESSAGE_NOT_FOUND", "Contact message not found")
		return
	}
	respondData(c, http.StatusOK, msg)
}

// DeleteContactMessage handles DELETE /api/users/:user_id/contact-messages/:id
func (h *ContactMessageHandler) DeleteContactMessage(c *gin.Context) {
	if err := h.messages.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "CONTACT_MESSAGE_NOT_FOUND", "Contact message not found")
		return
	}
	c.Status(http.StatusNoContent)
}
