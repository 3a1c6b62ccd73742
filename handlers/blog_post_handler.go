package handlers

import (
	"context"
	"net/http"
	"time"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// BlogPostStore is the persistence surface the blog post handler needs.
type BlogPostStore interface {
	Create(ctx context.Context, p *models.BlogPost) error
	GetByID(ctx context.Context, userID, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, userID, slug string) (*models.BlogPost, error)
	Search(ctx context.Context, userID string, opts repository.SearchOptions) ([]*models.BlogPost, int, error)
	Update(ctx context.Context, userID, id string, patch *repository.Patch) (*models.BlogPost, error)
	Delete(ctx context.Context, userID, id string) error
}

// BlogPostHandler handles HTTP requests for blog posts
type BlogPostHandler struct {
	posts BlogPostStore
}

// NewBlogPostHandler creates a new blog post handler
func NewBlogPostHandler(posts BlogPostStore) *BlogPostHandler {
	return &BlogPostHandler{posts: posts}
}

// CreateBlogPostRequest represents the request body for creating a post
type CreateBlogPostRequest struct {
	Title       string  `json:"title" binding:"required,max=300"`
	Slug        string  `json:"slug" binding:"required,max=300"`
	Content     string  `json:"content" binding:"required"`
	Excerpt     *string `json:"excerpt" binding:"omitempty,max=500"`
	IsPublished bool    `json:"is_published"`
}

// CreateBlogPost handles POST /api/users/:user_id/blog-posts
func (h *BlogPostHandler) CreateBlogPost(c *gin.Context) {
	var req CreateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post := &models.BlogPost{
		UserID:      c.Param("user_id"),
		Title:       req.Title,
		Slug:        req.Slug,
		Content:     req.Content,
		Excerpt:     req.Excerpt,
		IsPublished: req.IsPublished,
	}
	if err := h.posts.Create(c.Request.Context(), post); err != nil {
		if repository.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "SLUG_TAKEN", "A post with this slug already exists")
			return
		}
		respondStoreError(c, err, "BLOG_POST_NOT_FOUND", "Blog post not found")
		return
	}
	respondData(c, http.StatusCreated, post)
}

// ListBlogPosts handles GET /api/users/:user_id/blog-posts
func (h *BlogPostHandler) ListBlogPosts(c *gin.Context) {
	opts := searchOptions(c)
	if v := c.Query("published"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "is_published", Value: v == "true"})
	}
	if v := c.Query("q"); v != "" {
		opts.Filters = append(opts.Filters, repository.Filter{Column: "title", Value: v, Fuzzy: true})
	}

	posts, total, err := h.posts.Search(c.Request.Context(), c.Param("user_id"), opts)
	if err != nil {
		respondStoreError(c, err, "BLOG_POST_NOT_FOUND", "Blog post not found")
		return
	}
	respondList(c, posts, total, opts.Limit, opts.Offset)
}

// GetBlogPost handles GET /api/users/:user_id/blog-posts/:id
func (h *BlogPostHandler) GetBlogPost(c *gin.Context) {
	post, err := h.posts.GetByID(c.Request.Context(), c.Param("user_id"), c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "BLOG_POST_NOT_FOUND", "Blog post not found")
		return
	}
	respondData(c, http.StatusOK, post)
}

// GetBlogPostBySlug handles GET /api/users/:user_id/blog-posts/slug/:slug
func (h *BlogPostHandler) GetBlogPostBySlug(c *gin.Context) {
	post, err := h.posts.GetBySlug(c.Request.Context(), c.Param("user_id"), c.Param("slug"))
	if err != nil {
		respondStoreError(c, err, "BLOG_POST_NOT_FOUND", "Blog post not found")
		return
	}
	respondData(c, http.StatusOK, post)
}

// UpdateBlogPostRequest represents the request body for a partial update
type UpdateBlogPostRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=300"`
	Slug        *string `json:"slug" binding:"omitempty,max=300"`
	Content     *string `json:"content"`
	Excerpt     *string `json:"excerpt" binding:"omitempty,max=500"`
	IsPublished *bool   `json:"is_published"`
}

// UpdateBlogPost handles PATCH /api/users/:user_id/blog-posts/:id
func (h *BlogPostHandler) UpdateBlogPost(c *gin.Context) {
	var req UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.Title != nil {
		patch.Set("title", *req.Title)
	}
	if req.Slug != nil {
		patch.Set("slug", *req.Slug)
	}
	if req.Content != nil {
		patch.Set("content", *req.Content)
	}
	if req.Excerpt != nil {
		patch.Set("excerpt", *req.Excerpt)
	}
	if req.IsPublished != nil {
		patch.Set("is_published", *req.IsPublished)
		if *req.IsPublished {
			patch.Set("published_at", time.Now().UTC())
		}
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	post, err := h.posts.Update(c.Request.Context(), c.Param("user_id"), c.Param("id"), patch)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "SLUG_TAKEN", "A post with this slug already exists")
			return
		}
		respondStoreError(c, err, "BLOG_POST_NOT_FOUND", "Blog post not found")
		return
	}
	respondData(c, http.StatusOK, post)
}

// DeleteBlogPost handles DELETE /api/users/:user_id/blog-posts/:id
func (h *BlogPostHandler) DeleteBlogPost(c *gin.Context) {
	if err := h.posts.Delete(c.Request.Context(), c.Param("user_id"), c.Param("id")); err != nil {
		respondStoreError(c, err, "BLOG_POST_NOT_FOUND", "Blog post not found")
		return
	}
	c.Status(http.StatusNoContent)
}
