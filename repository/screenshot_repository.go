package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const screenshotColumns = "id, project_id, image_url, caption, display_order, created_at, updated_at"

var screenshotSortable = map[string]bool{
	"display_order": true,
	"created_at":    true,
}

// ScreenshotRepository handles database operations for project screenshots
type ScreenshotRepository struct {
	db *pgxpool.Pool
}

// NewScreenshotRepository creates a new screenshot repository
func NewScreenshotRepository(db *pgxpool.Pool) *ScreenshotRepository {
	return &ScreenshotRepository{db: db}
}

func scanScreenshot(row rowScanner) (*models.ProjectScreenshot, error) {
	s := &models.ProjectScreenshot{}
	err := row.Scan(
		&s.ID,
		&s.ProjectID,
		&s.ImageURL,
		&s.Caption,
		&s.DisplayOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func listScreenshots(ctx context.Context, db *pgxpool.Pool, projectID string) ([]*models.ProjectScreenshot, error) {
	query := `SELECT ` + screenshotColumns + ` FROM project_screenshots WHERE project_id = $1 ORDER BY display_order ASC, created_at ASC`
	rows, err := db.Query(ctx, query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shots []*models.ProjectScreenshot
	for rows.Next() {
		s, err := scanScreenshot(rows)
		if err != nil {
			return nil, err
		}
		shots = append(shots, s)
	}
	return shots, rows.Err()
}

// Create inserts a new screenshot. ID and timestamps are filled in when absent.
func (r *ScreenshotRepository) Create(ctx context.Context, s *models.ProjectScreenshot) error {
	if s.ID == "" {
		s.ID = models.NewID(models.PrefixScreenshot)
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO project_screenshots (` + screenshotColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(
		ctx, query,
		s.ID,
		s.ProjectID,
		s.ImageURL,
		s.Caption,
		s.DisplayOrder,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

// GetByID retrieves a screenshot scoped to its parent project.
func (r *ScreenshotRepository) GetByID(ctx context.Context, projectID, id string) (*models.ProjectScreenshot, error) {
	query := `SELECT ` + screenshotColumns + ` FROM project_screenshots WHERE id = $1 AND project_id = $2`
	s, err := scanScreenshot(r.db.QueryRow(ctx, query, id, projectID))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Search lists screenshots for a project with pagination and sorting.
func (r *ScreenshotRepository) Search(ctx context.Context, projectID string, opts SearchOptions) ([]*models.ProjectScreenshot, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		screenshotColumns, "project_screenshots",
		[]Cond{{Column: "project_id", Value: projectID}},
		opts, screenshotSortable, "display_order", "asc",
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

	var shots []*models.ProjectScreenshot
	for rows.Next() {
		s, err := scanScreenshot(rows)
		if err != nil {
			return nil, 0, err
		}
		shots = append(shots, s)
	}
	return shots, total, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *ScreenshotRepository) Update(ctx context.Context, projectID, id string, patch *Patch) (*models.ProjectScreenshot, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("project_screenshots",
		Cond{Column: "id", Value: id},
		Cond{Column: "project_id", Value: projectID},
	)
	query += " RETURNING " + screenshotColumns

	s, err := scanScreenshot(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Delete removes a screenshot scoped to its parent project.
func (r *ScreenshotRepository) Delete(ctx context.Context, projectID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM project_screenshots WHERE id = $1 AND project_id = $2`, id, projectID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
