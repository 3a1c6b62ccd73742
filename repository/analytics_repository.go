package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const pageVisitColumns = "id, path, referrer, visitor_hash, visited_at, created_at, updated_at"
const sectionVisitColumns = "id, section, duration_ms, visited_at, created_at, updated_at"

var pageVisitSortable = map[string]bool{
	"path":       true,
	"visited_at": true,
	"created_at": true,
}

var sectionVisitSortable = map[string]bool{
	"section":     true,
	"duration_ms": true,
	"visited_at":  true,
	"created_at":  true,
}

// AnalyticsRepository handles database operations for page and section
// visit rows. Visits are global; they carry no owner.
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

func scanPageVisit(row rowScanner) (*models.PageVisit, error) {
	v := &models.PageVisit{}
	err := row.Scan(
		&v.ID,
		&v.Path,
		&v.Referrer,
		&v.VisitorHash,
		&v.VisitedAt,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func scanSectionVisit(row rowScanner) (*models.SectionVisit, error) {
	v := &models.SectionVisit{}
	err := row.Scan(
		&v.ID,
		&v.Section,
		&v.DurationMs,
		&v.VisitedAt,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// CreatePageVisit records one page view. Anonymous writes, so identifiers
// are always generated server-side.
func (r *AnalyticsRepository) CreatePageVisit(ctx context.Context, v *models.PageVisit) error {
	v.ID = models.NewID(models.PrefixPageVisit)
	now := time.Now().UTC()
	if v.VisitedAt.IsZero() {
		v.VisitedAt = now
	}
	v.CreatedAt = now
	v.UpdatedAt = now

	query := `
		INSERT INTO page_visits (` + pageVisitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(
		ctx, query,
		v.ID,
		v.Path,
		v.Referrer,
		v.VisitorHash,
		v.VisitedAt,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

// CreateSectionVisit records one section dwell event.
func (r *AnalyticsRepository) CreateSectionVisit(ctx context.Context, v *models.SectionVisit) error {
	v.ID = models.NewID(models.PrefixSectionVisit)
	now := time.Now().UTC()
	if v.VisitedAt.IsZero() {
		v.VisitedAt = now
	}
	v.CreatedAt = now
	v.UpdatedAt = now

	query := `
		INSERT INTO section_visits (` + sectionVisitColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(
		ctx, query,
		v.ID,
		v.Section,
		v.DurationMs,
		v.VisitedAt,
		v.CreatedAt,
		v.UpdatedAt,
	)
	return err
}

// SearchPageVisits lists page visits with pagination, sorting and filters.
func (r *AnalyticsRepository) SearchPageVisits(ctx context.Context, opts SearchOptions) ([]*models.PageVisit, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		pageVisitColumns, "page_visits", nil,
		opts, pageVisitSortable, "visited_at", "desc",
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

	var visits []*models.PageVisit
	for rows.Next() {
		v, err := scanPageVisit(rows)
		if err != nil {
			return nil, 0, err
		}
		visits = append(visits, v)
	}
	return visits, total, rows.Err()
}

// SearchSectionVisits lists section visits with pagination, sorting and filters.
func (r *AnalyticsRepository) SearchSectionVisits(ctx context.Context, opts SearchOptions) ([]*models.SectionVisit, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		sectionVisitColumns, "section_visits", nil,
		opts, sectionVisitSortable, "visited_at", "desc",
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

	var visits []*models.SectionVisit
	for rows.Next() {
		v, err := scanSectionVisit(rows)
		if err != nil {
			return nil, 0, err
		}
		visits = append(visits, v)
	}
	return visits, total, rows.Err()
}

// PageVisitStats aggregates visit counts per path.
func (r *AnalyticsRepository) PageVisitStats(ctx context.Context) ([]*models.VisitStats, error) {
	query := `SELECT path, COUNT(*) FROM page_visits GROUP BY path ORDER BY COUNT(*) DESC`
	return r.visitStats(ctx, query)
}

// SectionVisitStats aggregates visit counts per section.
func (r *AnalyticsRepository) SectionVisitStats(ctx context.Context) ([]*models.VisitStats, error) {
	query := `SELECT section, COUNT(*) FROM section_visits GROUP BY section ORDER BY COUNT(*) DESC`
	return r.visitStats(ctx, query)
}

func (r *AnalyticsRepository) visitStats(ctx context.Context, query string) ([]*models.VisitStats, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []*models.VisitStats
	for rows.Next() {
		s := &models.VisitStats{}
		if err := rows.Scan(&s.Key, &s.Count); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
