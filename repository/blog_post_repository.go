package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const blogPostColumns = "id, user_id, title, slug, content, excerpt, is_published, published_at, created_at, updated_at"

var blogPostSortable = map[string]bool{
	"title":        true,
	"slug":         true,
	"published_at": true,
	"created_at":   true,
	"updated_at":   true,
}

// BlogPostRepository handles database operations for blog posts
type BlogPostRepository struct {
	db *pgxpool.Pool
}

// NewBlogPostRepository creates a new blog post repository
func NewBlogPostRepository(db *pgxpool.Pool) *BlogPostRepository {
	return &BlogPostRepository{db: db}
}

func scanBlogPost(row rowScanner) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Slug,
		&p.Content,
		&p.Excerpt,
		&p.IsPublished,
		&p.PublishedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new blog post. Slug uniqueness per user is enforced by the
// database; callers map the unique violation to a conflict response.
func (r *BlogPostRepository) Create(ctx context.Context, p *models.BlogPost) error {
	if p.ID == "" {
		p.ID = models.NewID(models.PrefixBlogPost)
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.IsPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}

	query := `
		INSERT INTO blog_posts (` + blogPostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(
		ctx, query,
		p.ID,
		p.UserID,
		p.Title,
		p.Slug,
		p.Content,
		p.Excerpt,
		p.IsPublished,
		p.PublishedAt,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a blog post scoped to its owner.
func (r *BlogPostRepository) GetByID(ctx context.Context, userID, id string) (*models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1 AND user_id = $2`
	p, err := scanBlogPost(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// GetBySlug retrieves a blog post by its per-user slug.
func (r *BlogPostRepository) GetBySlug(ctx context.Context, userID, slug string) (*models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = $1 AND user_id = $2`
	p, err := scanBlogPost(r.db.QueryRow(ctx, query, slug, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Search lists blog posts with pagination, sorting and filters.
func (r *BlogPostRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.BlogPost, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		blogPostColumns, "blog_posts",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, blogPostSortable, "created_at", "desc",
	)
	if err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db.QueryRow(ctx, count, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sel, selArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var posts []*models.BlogPost
	for rows.Next() {
		p, err := scanBlogPost(rows)
		if err != nil {
			return nil, 0, err
		}
		posts = append(posts, p)
	}
	return posts, total, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *BlogPostRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.BlogPost, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("blog_posts",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + blogPostColumns

	p, err := scanBlogPost(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Delete removes a blog post scoped to its owner.
func (r *BlogPostRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
