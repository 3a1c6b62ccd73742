package models

import "time"

// ContactMessageStatus represents the read state of a contact message.
type ContactMessageStatus string

const (
	MessageStatusNew      ContactMessageStatus = "new"
	MessageStatusRead     ContactMessageStatus = "read"
	MessageStatusArchived ContactMessageStatus = "archived"
)

// ContactMessage is created by anonymous visitors and read by the owner.
// UserID is nil for messages sent through the global contact form.
type ContactMessage struct {
	ID             string               `json:"id"`
	UserID         *string              `json:"user_id,omitempty"`
	SenderName     string               `json:"sender_name"`
	SenderEmail    string               `json:"sender_email"`
	MessageContent string               `json:"message_content"`
	Status         ContactMessageStatus `json:"status"`
	CreatedAt      time.Time            `json:"created_at"`
	UpdatedAt      time.Time            `json:"updated_at"`
}
