package models

import "time"

// ProjectStatus represents the lifecycle status of a project.
type ProjectStatus string

const (
	ProjectStatusActive     ProjectStatus = "active"
	ProjectStatusInProgress ProjectStatus = "in_progress"
	ProjectStatusArchived   ProjectStatus = "archived"
)

// Project represents a portfolio project entry.
type Project struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Title        string        `json:"title"`
	Description  *string       `json:"description,omitempty"`
	LiveURL      *string       `json:"live_url,omitempty"`
	RepoURL      *string       `json:"repo_url,omitempty"`
	DemoURL      *string       `json:"demo_url,omitempty"`
	IsFeatured   bool          `json:"is_featured"`
	Status       ProjectStatus `json:"status"`
	DisplayOrder int           `json:"display_order"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`

	// Screenshots are populated on nested profile reads only.
	Screenshots []*ProjectScreenshot `json:"screenshots,omitempty"`
}

// ProjectScreenshot is a child image of a project. Deleting the project
// removes its screenshots in the same transaction.
type ProjectScreenshot struct {
	ID           string    `json:"id"`
	ProjectID    string    `json:"project_id"`
	ImageURL     string    `json:"image_url"`
	Caption      *string   `json:"caption,omitempty"`
	DisplayOrder int       `json:"display_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
