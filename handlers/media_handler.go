package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"portfolio-backend/models"
	"portfolio-backend/repository"
	"portfolio-backend/storage"

	"github.com/gin-gonic/gin"
)

// MediaAssetStore is the persistence surface for media asset records.
type MediaAssetStore interface {
	Create(ctx context.Context, a *models.MediaAsset) error
	GetByID(ctx context.Context, userID, id string) (*models.MediaAsset, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.MediaAsset, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.MediaAsset, error)
	Delete(ctx context.Context, userID, id string) error
}

// MediaHandler handles HTTP requests for media assets. Records live in the
// database, bytes in the storage backend.
type MediaHandler struct {
	assets           MediaAssetStore
	storage          storage.Storage
	maxFileSize      int64
	allowedMimeTypes map[string]bool
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(assets MediaAssetStore, store storage.Storage) *MediaHandler {
	return &MediaHandler{
		assets:      assets,
		storage:     store,
		maxFileSize: 10 * 1024 * 1024, // 10MB
		allowedMimeTypes: map[string]bool{
			"image/png":       true,
			"image/jpeg":      true,
			"image/gif":       true,
			"image/webp":      true,
			"image/svg+xml":   true,
			"application/pdf": true,
		},
	}
}

// UploadMediaAsset handles POST /api/users/:user_id/media-assets (multipart)
func (h *MediaHandler) UploadMediaAsset(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "MISSING_FILE", "File is required")
		return
	}

	if fileHeader.Size > h.maxFileSize {
		respondError(c, http.StatusBadRequest, "FILE_TOO_LARGE",
			fmt.Sprintf("File size exceeds maximum of %d bytes", h.maxFileSize))
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = storage.ContentTypeForFilename(fileHeader.Filename)
	}
	if !h.allowedMimeTypes[mimeType] && !strings.HasPrefix(mimeType, "image/") {
		respondError(c, http.StatusBadRequest, "INVALID_FILE_TYPE",
			"File type not allowed. Allowed types: images and PDF")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		return
	}
	defer file.Close()

	asset := &models.MediaAsset{
		ID:       models.NewID(models.PrefixMediaAsset),
		UserID:   c.Param("user_id"),
		Filename: fileHeader.Filename,
		MimeType: mimeType,
		Size:     fileHeader.Size,
	}
	if caption := c.PostForm("caption"); caption != "" {
		asset.Caption = &caption
	}

	storagePath, err := h.storage.Upload(c.Request.Context(), asset.ID, fileHeader.Filename, file)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "UPLOAD_FAILED", "Failed to store file")
		return
	}
	asset.StoragePath = storagePath

	if err := h.assets.Create(c.Request.Context(), asset); err != nil {
		// Keep storage and the database consistent.
		h.storage.Delete(c.Request.Context(), storagePath)
		respondError(c, http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Something went wrong")
		return
	}
	respondData(c, http.StatusCreated, asset)
}

// ListMediaAssets handles GET /api/users/:user_id/media-assets
func (h *MediaHandler) ListMediaAssets(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("mime_type"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "mime_type", Value: v})
	}
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "filename", Value: v, Fuzzy: true})
	}

	assets, total, err := h.assets.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "MEDIA_ASSET_NOT_FOUND", "Media asset not found")
		return
	}
	respondList(c, assets, total, opts.Limit, opts.Offset)
}

// GetMediaAsset handles GET /api/users/:user_id/media-assets/:id
func (h *MediaHandler) GetMediaAsset(c *gin.Context) {
	asset, err := h.assets.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "MEDIA_ASSET_NOT_FOUND", "Media asset not found")
		return
	}
	respondData(c, http.StatusOK, asset)
}

// DownloadMediaAsset handles GET /api/users/:user_id/media-assets/:id/content
func (h *MediaHandler) DownloadMediaAsset(c *gin.Context) {
	asset, err := h.assets.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "MEDIA_ASSET_NOT_FOUND", "Media asset not found")
		return
	}

	reader, err := h.storage.Download(c.Request.Context(), asset.StoragePath)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "DOWNLOAD_FAILED", "Failed to read file")
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.Filename))
	c.DataFromReader(http.StatusOK, asset.Size, asset.MimeType, reader, nil)
}

// UpdateMediaAssetRequest represents the request body for a partial update
type UpdateMediaAssetRequest struct {
	Filename *string `json:"filename" binding:"omitempty,max=300"`
	Caption  *string `json:"caption" binding:"omitempty,max=300"`
}

// UpdateMediaAsset handles PATCH /api/users/:user_id/media-assets/:id
func (h *MediaHandler) UpdateMediaAsset(c *gin.Context) {
	var req UpdateMediaAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Filename != nil {
		patch.Set("filename", *req.Filename)
	}
	if req.Caption != nil {
		patch.Set("caption", *req.Caption)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	asset, err := h.assets.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		respondStoreError(c, err, "MEDIA_ASSET_NOT_FOUND", "Media asset not found")
		return
	}
	respondData(c, http.StatusOK, asset)
}

// DeleteMediaAsset handles DELETE /api/users/:user_id/media-assets/:id. The
// stored bytes go with the record.
func (h *MediaHandler) DeleteMediaAsset(c *gin.Context) {
	asset, err := h.assets.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "MEDIA_ASSET_NOT_FOUND", "Media asset not found")
		return
	}

	if err := h.assets.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "MEDIA_ASSET_NOT_FOUND", "Media asset not found")
		return
	}
	// Best effort: the record is gone, a stale blob is harmless.
	h.storage.Delete(c.Request.Context(), asset.StoragePath)

	c.Status(http.StatusNoContent)
}
