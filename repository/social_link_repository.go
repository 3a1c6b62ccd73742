package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const socialLinkColumns = "id, user_id, platform, url, display_order, created_at, updated_at"

var socialLinkSortable = map[string]bool{
	"platform":      true,
	"display_order": true,
	"created_at":    true,
}

// SocialLinkRepository handles database operations for social media links
type SocialLinkRepository struct {
	db *pgxpool.Pool
}

// NewSocialLinkRepository creates a new social link repository
func NewSocialLinkRepository(db *pgxpool.Pool) *SocialLinkRepository {
	return &SocialLinkRepository{db: db}
}

func scanSocialLink(row rowScanner) (*models.SocialMediaLink, error) {
	l := &models.SocialMediaLink{}
	err := row.Scan(
		&l.ID,
		&l.UserID,
		&l.Platform,
		&l.URL,
		&l.DisplayOrder,
		&l.CreatedAt,
		&l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// Create inserts a new social link. ID and timestamps are filled in when absent.
func (r *SocialLinkRepository) Create(ctx context.Context, l *models.SocialMediaLink) error {
	if l.ID == "" {
		l.ID = models.NewID(models.PrefixSocialLink)
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	query := `
		INSERT INTO social_media_links (` + socialLinkColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(
		ctx, query,
		l.ID,
		l.UserID,
		l.Platform,
		l.URL,
		l.DisplayOrder,
		l.CreatedAt,
		l.UpdatedAt,
	)
	return err
}

// GetByID retrieves a social link scoped to its owner.
func (r *SocialLinkRepository) GetByID(ctx context.Context, userID, id string) (*models.SocialMediaLink, error) {
	query := `SELECT ` + socialLinkColumns + ` FROM social_media_links WHERE id = $1 AND user_id = $2`
	l, err := scanSocialLink(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return l, nil
}

// Search lists social links with pagination, sorting and filters.
func (r *SocialLinkRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.SocialMediaLink, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		socialLinkColumns, "social_media_links",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, socialLinkSortable, "display_order", "asc",
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

	var links []*models.SocialMediaLink
	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, 0, err
		}
		links = append(links, l)
	}
	return links, total, rows.Err()
}

// ListByUserID retrieves the full ordered link list for profile reads.
func (r *SocialLinkRepository) ListByUserID(ctx context.Context, userID string) ([]*models.SocialMediaLink, error) {
	query := `SELECT ` + socialLinkColumns + ` FROM social_media_links WHERE user_id = $1 ORDER BY display_order ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []*models.SocialMediaLink
	for rows.Next() {
		l, err := scanSocialLink(rows)
		if err != nil {
			return nil, err
		}
		links = append(links, l)
	}
	return links, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *SocialLinkRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.SocialMediaLink, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("social_media_links",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + socialLinkColumns

	l, err := scanSocialLink(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return l, nil
}

// Delete removes a social link scoped to its owner.
func (r *SocialLinkRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM social_media_links WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
