package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const mediaAssetColumns = "id, user_id, filename, mime_type, size, storage_path, caption, created_at, updated_at"

var mediaAssetSortable = map[string]bool{
	"filename":   true,
	"mime_type":  true,
	"size":       true,
	"created_at": true,
}

// MediaAssetRepository handles database operations for media asset records.
// The file bytes themselves live in the storage backend.
type MediaAssetRepository struct {
	db *pgxpool.Pool
}

// NewMediaAssetRepository creates a new media asset repository
func NewMediaAssetRepository(db *pgxpool.Pool) *MediaAssetRepository {
	return &MediaAssetRepository{db: db}
}

func scanMediaAsset(row rowScanner) (*models.MediaAsset, error) {
	a := &models.MediaAsset{}
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Filename,
		&a.MimeType,
		&a.Size,
		&a.StoragePath,
		&a.Caption,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts a new media asset record.
func (r *MediaAssetRepository) Create(ctx context.Context, a *models.MediaAsset) error {
	if a.ID == "" {
		a.ID = models.NewID(models.PrefixMediaAsset)
	}
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	query := `
		INSERT INTO media_assets (` + mediaAssetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(
		ctx, query,
		a.ID,
		a.UserID,
		a.Filename,
		a.MimeType,
		a.Size,
		a.StoragePath,
		a.Caption,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

// GetByID retrieves a media asset record scoped to its owner.
func (r *MediaAssetRepository) GetByID(ctx context.Context, userID, id string) (*models.MediaAsset, error) {
	query := `SELECT ` + mediaAssetColumns + ` FROM media_assets WHERE id = $1 AND user_id = $2`
	a, err := scanMediaAsset(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Search lists media assets with pagination, sorting and filters.
func (r *MediaAssetRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.MediaAsset, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		mediaAssetColumns, "media_assets",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, mediaAssetSortable, "created_at", "desc",
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

	var assets []*models.MediaAsset
	for rows.Next() {
		a, err := scanMediaAsset(rows)
		if err != nil {
			return nil, 0, err
		}
		assets = append(assets, a)
	}
	return assets, total, rows.Err()
}

// Update applies a partial update (caption, filename) and returns the
// updated row.
func (r *MediaAssetRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.MediaAsset, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("media_assets",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + mediaAssetColumns

	a, err := scanMediaAsset(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return a, nil
}

// Delete removes a media asset record scoped to its owner.
func (r *MediaAssetRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM media_assets WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
