package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = "id, email, password_hash, name, tagline, bio, avatar_url, location, github_url, linkedin_url, website_url, created_at, updated_at"

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (*models.User, error) {
	u := &models.User{}
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&u.Tagline,
		&u.Bio,
		&u.AvatarURL,
		&u.Location,
		&u.GithubURL,
		&u.LinkedinURL,
		&u.WebsiteURL,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. ID and timestamps are filled in when absent.
func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	if u.ID == "" {
		u.ID = models.NewID(models.PrefixUser)
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.Exec(
		ctx, query,
		u.ID,
		u.Email,
		u.PasswordHash,
		u.Name,
		u.Tagline,
		u.Bio,
		u.AvatarURL,
		u.Location,
		u.GithubURL,
		u.LinkedinURL,
		u.WebsiteURL,
		u.CreatedAt,
		u.UpdatedAt,
	)
	return err
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// GetAuthUser retrieves the minimal projection attached to requests by the
// auth middleware.
func (r *UserRepository) GetAuthUser(ctx context.Context, id string) (*models.AuthUser, error) {
	u := &models.AuthUser{}
	query := `SELECT id, email, name, created_at FROM users WHERE id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// Update applies a partial update and returns the updated row.
func (r *UserRepository) Update(ctx context.Context, id string, patch *Patch) (*models.User, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("users", Cond{Column: "id", Value: id})
	query += " RETURNING " + userColumns

	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return u, nil
}

// Delete removes a user row.
func (r *UserRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
