package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const experienceColumns = "id, user_id, company_name, role_title, location, description, start_date, end_date, is_current, created_at, updated_at"

var experienceSortable = map[string]bool{
	"company_name": true,
	"role_title":   true,
	"start_date":   true,
	"created_at":   true,
}

// ExperienceRepository handles database operations for experiences
type ExperienceRepository struct {
	db *pgxpool.Pool
}

// NewExperienceRepository creates a new experience repository
func NewExperienceRepository(db *pgxpool.Pool) *ExperienceRepository {
	return &ExperienceRepository{db: db}
}

func scanExperience(row rowScanner) (*models.Experience, error) {
	e := &models.Experience{}
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.CompanyName,
		&e.RoleTitle,
		&e.Location,
		&e.Description,
		&e.StartDate,
		&e.EndDate,
		&e.IsCurrent,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new experience. ID and timestamps are filled in when absent.
func (r *ExperienceRepository) Create(ctx context.Context, e *models.Experience) error {
	if e.ID == "" {
		e.ID = models.NewID(models.PrefixExperience)
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO experiences (` + experienceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(
		ctx, query,
		e.ID,
		e.UserID,
		e.CompanyName,
		e.RoleTitle,
		e.Location,
		e.Description,
		e.StartDate,
		e.EndDate,
		e.IsCurrent,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

// GetByID retrieves an experience scoped to its owner.
func (r *ExperienceRepository) GetByID(ctx context.Context, userID, id string) (*models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE id = $1 AND user_id = $2`
	e, err := scanExperience(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

// Search lists experiences for a user with pagination, sorting and filters.
func (r *ExperienceRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.Experience, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		experienceColumns, "experiences",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, experienceSortable, "start_date", "desc",
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

	var experiences []*models.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, 0, err
		}
		experiences = append(experiences, e)
	}
	return experiences, total, rows.Err()
}

// ListByUserID retrieves the full work history, most recent first.
func (r *ExperienceRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE user_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var experiences []*models.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		experiences = append(experiences, e)
	}
	return experiences, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *ExperienceRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.Experience, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("experiences",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + experienceColumns

	e, err := scanExperience(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

// Delete removes an experience scoped to its owner.
func (r *ExperienceRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
