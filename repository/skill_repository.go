package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const skillColumns = "id, user_id, category, name, proficiency_level, display_order, created_at, updated_at"

var skillSortable = map[string]bool{
	"name":              true,
	"category":          true,
	"proficiency_level": true,
	"display_order":     true,
	"created_at":        true,
}

// SkillRepository handles database operations for skills
type SkillRepository struct {
	db *pgxpool.Pool
}

// NewSkillRepository creates a new skill repository
func NewSkillRepository(db *pgxpool.Pool) *SkillRepository {
	return &SkillRepository{db: db}
}

func scanSkill(row rowScanner) (*models.Skill, error) {
	s := &models.Skill{}
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Category,
		&s.Name,
		&s.ProficiencyLevel,
		&s.DisplayOrder,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts a new skill. ID and timestamps are filled in when absent.
func (r *SkillRepository) Create(ctx context.Context, s *models.Skill) error {
	if s.ID == "" {
		s.ID = models.NewID(models.PrefixSkill)
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO skills (` + skillColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(
		ctx, query,
		s.ID,
		s.UserID,
		s.Category,
		s.Name,
		s.ProficiencyLevel,
		s.DisplayOrder,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

// GetByID retrieves a skill scoped to its owner.
func (r *SkillRepository) GetByID(ctx context.Context, userID, id string) (*models.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE id = $1 AND user_id = $2`
	s, err := scanSkill(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Search lists skills for a user with pagination, sorting and filters,
// returning the rows and the filtered total.
func (r *SkillRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.Skill, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		skillColumns, "skills",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, skillSortable, "display_order", "asc",
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

	var skills []*models.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, 0, err
		}
		skills = append(skills, s)
	}
	return skills, total, rows.Err()
}

// ListByUserID retrieves the full ordered skill list for profile reads.
func (r *SkillRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE user_id = $1 ORDER BY display_order ASC, name ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var skills []*models.Skill
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *SkillRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.Skill, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("skills",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + skillColumns

	s, err := scanSkill(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Delete removes a skill scoped to its owner.
func (r *SkillRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
