package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const certificationColumns = "id, user_id, name, issuing_organization, issue_date, expiration_date, credential_url, created_at, updated_at"

var certificationSortable = map[string]bool{
	"name":                 true,
	"issuing_organization": true,
	"issue_date":           true,
	"created_at":           true,
}

// CertificationRepository handles database operations for certifications
type CertificationRepository struct {
	db *pgxpool.Pool
}

// NewCertificationRepository creates a new certification repository
func NewCertificationRepository(db *pgxpool.Pool) *CertificationRepository {
	return &CertificationRepository{db: db}
}

func scanCertification(row rowScanner) (*models.Certification, error) {
	c := &models.Certification{}
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.IssuingOrganization,
		&c.IssueDate,
		&c.ExpirationDate,
		&c.CredentialURL,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Create inserts a new certification. ID and timestamps are filled in when absent.
func (r *CertificationRepository) Create(ctx context.Context, c *models.Certification) error {
	if c.ID == "" {
		c.ID = models.NewID(models.PrefixCertification)
	}
	now := time.Now().UTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO certifications (` + certificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(
		ctx, query,
		c.ID,
		c.UserID,
		c.Name,
		c.IssuingOrganization,
		c.IssueDate,
		c.ExpirationDate,
		c.CredentialURL,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return err
}

// GetByID retrieves a certification scoped to its owner.
func (r *CertificationRepository) GetByID(ctx context.Context, userID, id string) (*models.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE id = $1 AND user_id = $2`
	c, err := scanCertification(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Search lists certifications with pagination, sorting and filters.
func (r *CertificationRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.Certification, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		certificationColumns, "certifications",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, certificationSortable, "issue_date", "desc",
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

	var certs []*models.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, 0, err
		}
		certs = append(certs, c)
	}
	return certs, total, rows.Err()
}

// ListByUserID retrieves all certifications, most recent first.
func (r *CertificationRepository) ListByUserID(ctx context.Context, userID string) ([]*models.Certification, error) {
	query := `SELECT ` + certificationColumns + ` FROM certifications WHERE user_id = $1 ORDER BY issue_date DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certs []*models.Certification
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	return certs, rows.Err()
}

// Update applies a partial update and returns the updated row.
func (r *CertificationRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.Certification, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("certifications",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + certificationColumns

	c, err := scanCertification(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return c, nil
}

// Delete removes a certification scoped to its owner.
func (r *CertificationRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
