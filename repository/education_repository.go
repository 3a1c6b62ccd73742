package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const educationColumns = "id, user_id, institution_name, degree, field_of_study, start_date, end_date, description, created_at, updated_at"

var educationSortable = map[string]bool{
	"institution_name": true,
	"degree":           true,
	"start_date":       true,
	"created_at":       true,
}

// EducationRepository handles database operations for education entries
type EducationRepository struct {
	db *pgxpool.Pool
}

// NewEducationRepository creates a new education repository
func NewEducationRepository(db *pgxpool.Pool) *EducationRepository {
	return &EducationRepository{db: db}
}

func scanEducation(row rowScanner) (*models.Education, error) {
	e := &models.Education{}
	err := row.Scan(
		&e.ID,
		&e.UserID,
		&e.InstitutionName,
		&e.Degree,
		&e.FieldOfStudy,
		&e.StartDate,
		&e.EndDate,
		&e.Description,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Create inserts a new education entry. ID and timestamps are filled in when absent.
func (r *EducationRepository) Create(ctx context.Context, e *models.Education) error {
	if e.ID == "" {
		e.ID = models.NewID(models.PrefixEducation)
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	query := `
		INSERT INTO education (` + educationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(
		ctx, query,
		e.ID,
		e.UserID,
		e.InstitutionName,
		e.Degree,
		e.FieldOfStudy,
		e.StartDate,
		e.EndDate,
		e.Description,
		e.CreatedAt,
		e.UpdatedAt,
	)
	return err
}

// GetByID retrieves an education entry scoped to its owner.
func (r *EducationRepository) GetByID(ctx context.Context, userID, id string) (*models.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE id = $1 AND user_id = $2`
	e, err := scanEducation(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

// Search lists education entries with pagination, sorting and filters.
func (r *EducationRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.Education, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		educationColumns, "education",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, educationSortable, "start_date", "desc",
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

	var entries []*models.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, 0, err
		}
		entries = append(entries, e)
	}
	return entries, total, rows.Err()
}

// ListByUserID retrieves the full study history, most recent first.
func (r *EducationRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Education, error) {
	query := `SELECT ` + educationColumns + ` FROM education WHERE user_id = $1 ORDER BY start_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*models.Education
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *EducationRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.Education, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("education",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + educationColumns

	e, err := scanEducation(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return e, nil
}

// Delete removes an education entry scoped to its owner.
func (r *EducationRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
