package models

import "time"

// Skill represents a single entry in the ordered skills list.
type Skill struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Category         string    `json:"category"`
	Name             string    `json:"name"`
	ProficiencyLevel int       `json:"proficiency_level"` // 0-100
	DisplayOrder     int       `json:"display_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
