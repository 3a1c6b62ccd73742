package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const contactMessageColumns = "id, user_id, sender_name, sender_email, message_content, status, created_at, updated_at"

var contactMessageSortable = map[string]bool{
	"sender_name":  true,
	"sender_email": true,
	"status":       true,
	"created_at":   true,
}

// ContactMessageRepository handles database operations for contact messages
type ContactMessageRepository struct {
	db *pgxpool.Pool
}

// NewContactMessageRepository creates a new contact message repository
func NewContactMessageRepository(db *pgxpool.Pool) *ContactMessageRepository {
	return &ContactMessageRepository{db: db}
}

func scanContactMessage(row rowScanner) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := row.Scan(
		&m.ID,
		&m.UserID,
		&m.SenderName,
		&m.SenderEmail,
		&m.MessageContent,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Create inserts a new contact message. Anonymous visitors create these, so
// ID and timestamps are always generated server-side.
func (r *ContactMessageRepository) Create(ctx context.Context, m *models.ContactMessage) error {
	m.ID = models.NewID(models.PrefixContactMessage)
	if m.Status == "" {
		m.Status = models.MessageStatusNew
	}
	now := time.Now().UTC()
	m.CreatedAt = now
	m.UpdatedAt = now

	query := `
		INSERT INTO contact_messages (` + contactMessageColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(
		ctx, query,
		m.ID,
		m.UserID,
		m.SenderName,
		m.SenderEmail,
		m.MessageContent,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	return err
}

// GetByID retrieves a contact message scoped to the receiving user.
func (r *ContactMessageRepository) GetByID(ctx context.Context, userID, id string) (*models.ContactMessage, error) {
	query := `SELECT ` + contactMessageColumns + ` FROM contact_messages WHERE id = $1 AND user_id = $2`
	m, err := scanContactMessage(r.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

// Search lists contact messages with pagination, sorting and filters.
func (r *ContactMessageRepository) Search(ctx context.Context, userID string, opts SearchOptions) ([]*models.ContactMessage, int, error) {
	sel, count, selArgs, countArgs, err := buildSearch(
		contactMessageColumns, "contact_messages",
		[]Cond{{Column: "user_id", Value: userID}},
		opts, contactMessageSortable, "created_at", "desc",
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

	var messages []*models.ContactMessage
	for rows.Next() {
		m, err := scanContactMessage(rows)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}
	return messages, total, rows.Err()
}

// Update applies a partial update (typically a status change) and returns the
// updated row.
func (r *ContactMessageRepository) Update(ctx context.Context, userID, id string, patch *Patch) (*models.ContactMessage, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("contact_messages",
		Cond{Column: "id", Value: id},
		Cond{Column: "user_id", Value: userID},
	)
	query += " RETURNING " + contactMessageColumns

	m, err := scanContactMessage(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

// Delete removes a contact message scoped to the receiving user.
func (r *ContactMessageRepository) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM contact_messages WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
