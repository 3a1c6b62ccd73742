package models

import "time"

// Testimonial represents a quote displayed on the portfolio page.
type Testimonial struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	AuthorName   string    `json:"author_name"`
	AuthorTitle  *string   `json:"author_title,omitempty"`
	Quote        string    `json:"quote"`
	Rating       int       `json:"rating"` // 1-5
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
