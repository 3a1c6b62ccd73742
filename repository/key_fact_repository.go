package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const keyFactColumns = "id, user_id, label, value, display_order, created_at, updated_at"

var keyFactSortable = map[string]bool{
	"label":         true,
	"display_order": true,
	"created_at":    true,
}

// KeyFactRepository handles database operations for key facts
type KeyFactRepository struct {
	db *pgxpool.Pool
}

// NewKeyFactRepository creates a new key fact repository
func NewKeyFactRepository(db *pgxpool.Pool) *KeyFactRepository {
	return &KeyFactRepository{db: db}
}

func scanKeyFact(row rowScanner) (*models.KeyFact, error) {
	f := &models.KeyFact{}
	err := row.Scan(
		&f.ID,
		&f.UserID,
		&f.Label,
		&f.Value,
		&f.DisplayOrder,
		&f.CreatedAt,
		&f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Create inserts a new key fact. ID and timestamps are filled in when absent.
func (r *KeyFactRepository) Create(ctx context.Context, f *models.KeyFact) error {
	if f.ID == "" {
		f.ID = models.NewID(models.PrefixKeyFact)
	}
	now := time.Now().UTC()
	f.CreatedAt = now
	f.UpdatedAt = now

	query := `
		INSERT INTO key_facts (` + keyFactColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(
		ctx, query,
		f.ID,
		f.UserID,
		f.Label,
		f.Value,
		f.DisplayOrder,
		f.CreatedAt,
		f.UpdatedAt,
	)
	return err
}

// GetByID retrieves a key fact scoped to its owner.
func (r *KeyFactRepository) GetByID(ctx context.Context, userID, id string) (*models.KeyFact, error) {
	query := `SELECT ` + keyFactColumns + ` FROM key_facts WHERE id = $1 AND user_id = $2`
	f, err := scanKeyFact(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

// Search lists key facts with pagination, sorting and filters.
func (r *KeyFactRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.KeyFact, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		keyFactColumns, "key_facts",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, keyFactSortable, "display_order", "asc",
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

	var facts []*models.KeyFact
	for rows.Next() {
		f, err := scanKeyFact(rows)
		if err != nil {
			return nil, 0, err
		}
		facts = append(facts, f)
	}
	return facts, total, rows.Err()
}

// ListByUserID retrieves the full ordered fact list for profile reads.
func (r *KeyFactRepository) ListByUserID(ctx context.Context, userID string) ([]*models.KeyFact, error) {
	query := `SELECT ` + keyFactColumns + ` FROM key_facts WHERE user_id = $1 ORDER BY display_order ASC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facts []*models.KeyFact
	for rows.Next() {
		f, err := scanKeyFact(rows)
		if err != nil {
			return nil, err
		}
		facts = append(facts, f)
	}
	return facts, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *KeyFactRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.KeyFact, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("key_facts",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + keyFactColumns

	f, err := scanKeyFact(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return f, nil
}

// Delete removes a key fact scoped to its owner.
func (r *KeyFactRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM key_facts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
