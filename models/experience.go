package models

import "time"

// Experience represents a work history entry, ordered by start date.
type Experience struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	CompanyName string    `json:"company_name"`
	RoleTitle   string    `json:"role_title"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	StartDate   string    `json:"start_date"`         // "2023-01"
	EndDate     *string   `json:"end_date,omitempty"` // nil while current
	IsCurrent   bool      `json:"is_current"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
