package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const testimonialColumns = "id, user_id, author_name, author_title, quote, rating, display_order, created_at, updated_at"

var testimonialSortable = map[string]bool{
	"author_name":   true,
	"rating":        true,
	"display_order": true,
	"created_at":    true,
}

// TestimonialRepository handles database operations for testimonials
type TestimonialRepository struct {
	db *pgxpool.Pool
}

// NewTestimonialRepository creates a new testimonial repository
func NewTestimonialRepository(db *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

func scanTestimonial(row rowScanner) (*models.Testimonial, error) {
	t := &models.Testimonial{}
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.AuthorName,
		&t.AuthorTitle,
		&t.Quote,
		&t.Rating,
		&t.DisplayOrder,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Create inserts a new testimonial. ID and timestamps are filled in when absent.
func (r *TestimonialRepository) Create(ctx context.Context, t *models.Testimonial) error {
	if t.ID == "" {
		t.ID = models.NewID(models.PrefixTestimonial)
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `
		INSERT INTO testimonials (` + testimonialColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(
		ctx, query,
		t.ID,
		t.UserID,
		t.AuthorName,
		t.AuthorTitle,
		t.Quote,
		t.Rating,
		t.DisplayOrder,
		t.CreatedAt,
		t.UpdatedAt,
	)
	return err
}

// GetByID retrieves a testimonial scoped to its owner.
func (r *TestimonialRepository) GetByID(ctx context.Context, userID, id string) (*models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1 AND user_id = $2`
	t, err := scanTestimonial(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// Search lists testimonials with pagination, sorting and filters.
func (r *TestimonialRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.Testimonial, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		testimonialColumns, "testimonials",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, testimonialSortable, "display_order", "asc",
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

	var testimonials []*models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, 0, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, total, rows.Err()
}

// ListByUserID retrieves the full ordered testimonial list for profile reads.
func (r *TestimonialRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE user_id = $1 ORDER BY display_order ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var testimonials []*models.Testimonial
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, err
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *TestimonialRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.Testimonial, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("testimonials",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + testimonialColumns

	t, err := scanTestimonial(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return t, nil
}

// Delete removes a testimonial scoped to its owner.
func (r *TestimonialRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM testimonials WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
