package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const resumeDownloadColumns = "id, user_id, download_url, file_format, file_size, created_at, updated_at"

var resumeDownloadSortable = map[string]bool{
	"file_format": true,
	"file_size":   true,
	"created_at":  true,
}

// ResumeDownloadRepository handles database operations for resume download
// log rows. Rows are write-once: there is no update path.
type ResumeDownloadRepository struct {
	db *pgxpool.Pool
}

// NewResumeDownloadRepository creates a new resume download repository
func NewResumeDownloadRepository(db *pgxpool.Pool) *ResumeDownloadRepository {
	return &ResumeDownloadRepository{db: db}
}

func scanResumeDownload(row rowScanner) (*models.ResumeDownload, error) {
	d := &models.ResumeDownload{}
	err := row.Scan(
		&d.ID,
		&d.UserID,
		&d.DownloadURL,
		&d.FileFormat,
		&d.FileSize,
		&d.CreatedAt,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// Create records one download event.
func (r *ResumeDownloadRepository) Create(ctx context.Context, d *models.ResumeDownload) error {
	if d.ID == "" {
		d.ID = models.NewID(models.PrefixResumeDownload)
	}
	now := time.Now().UTC()
	d.CreatedAt = now
	d.UpdatedAt = now

	query := `
		INSERT INTO resume_downloads (` + resumeDownloadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(
		ctx, query,
		d.ID,
		d.UserID,
		d.DownloadURL,
		d.FileFormat,
		d.FileSize,
		d.CreatedAt,
		d.UpdatedAt,
	)
	return err
}

// GetByID retrieves a download log row scoped to its owner.
func (r *ResumeDownloadRepository) GetByID(ctx context.Context, userID, id string) (*models.ResumeDownload, error) {
	query := `SELECT ` + resumeDownloadColumns + ` FROM resume_downloads WHERE id = $1 AND user_id = $2`
	d, err := scanResumeDownload(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return d, nil
}

// Search lists download events with pagination, sorting and filters.
func (r *ResumeDownloadRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.ResumeDownload, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		resumeDownloadColumns, "resume_downloads",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, resumeDownloadSortable, "created_at", "desc",
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

	var downloads []*models.ResumeDownload
	for rows.Next() {
		d, err := scanResumeDownload(rows)
		if err != nil {
			return nil, 0, err
		}
		downloads = append(downloads, d)
	}
	return downloads, total, rows.Err()
}
