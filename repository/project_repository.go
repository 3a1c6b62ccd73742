package repository

import (
	"context"
	"fmt"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const projectColumns = "id, user_id, title, description, live_url, repo_url, demo_url, is_featured, status, display_order, created_at, updated_at"

var projectSortable = map[string]bool{
	"title":         true,
	"status":        true,
	"is_featured":   true,
	"display_order": true,
	"created_at":    true,
	"updated_at":    true,
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func scanProject(row rowScanner) (*models.Project, error) {
	p := &models.Project{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.Title,
		&p.Description,
		&p.LiveURL,
		&p.RepoURL,
		&p.DemoURL,
		&p.IsFeatured,
		&p.Status,
		&p.DisplayOrder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts a new project. ID and timestamps are filled in when absent.
func (r *ProjectRepository) Create(ctx context.Context, p *models.Project) error {
	if p.ID == "" {
		p.ID = models.NewID(models.PrefixProject)
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.Exec(
		ctx, query,
		p.ID,
		p.UserID,
		p.Title,
		p.Description,
		p.LiveURL,
		p.RepoURL,
		p.DemoURL,
		p.IsFeatured,
		p.Status,
		p.DisplayOrder,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a project scoped to its owner.
func (r *ProjectRepository) GetByID(ctx context.Context, userID, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1 AND user_id = $2`
	p, err := scanProject(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Search lists projects for a user with pagination, sorting and filters.
func (r *ProjectRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.Project, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		projectColumns, "projects",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, projectSortable, "display_order", "asc",
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

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, 0, err
		}
		projects = append(projects, p)
	}
	return projects, total, rows.Err()
}

// ListByUserID retrieves all projects for profile reads, screenshots included.
func (r *ProjectRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE user_id = $1 ORDER BY display_order ASC, created_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range projects {
		shots, err := listScreenshots(ctx, r.db, p.ID)
		if err != nil {
			return nil, err
		}
		p.Screenshots = shots
	}
	return projects, nil
}

// Update applies a partial update and returns the updated row.
func (r *ProjectRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.Project, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("projects",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + projectColumns

	p, err := scanProject(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// txBeginner is the slice of pgxpool.Pool the cascade needs.
type txBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Delete removes a project and its screenshots in one transaction so a
// failure between the two statements cannot leave orphaned child rows.
func (r *ProjectRepository) Delete(ctx context.Context, userID, id string) error {
	return deleteProjectCascade(ctx, r.db, userID, id)
}

func deleteProjectCascade(ctx context.Context, db txBeginner, userID, id string) error {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM project_screenshots WHERE project_id = $1`, id); err != nil {
		return fmt.Errorf("delete screenshots: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}
