package models

import "time"

// Education represents a study history entry. Same temporal shape as Experience.
type Education struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	InstitutionName string    `json:"institution_name"`
	Degree          string    `json:"degree"`
	FieldOfStudy    *string   `json:"field_of_study,omitempty"`
	StartDate       string    `json:"start_date"`
	EndDate         *string   `json:"end_date,omitempty"`
	Description     *string   `json:"description,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Certification represents a professional certification.
type Certification struct {
	ID                  string    `json:"id"`
	UserID              string    `json:"user_id"`
	Name                string    `json:"name"`
	IssuingOrganization string    `json:"issuing_organization"`
	IssueDate           string    `json:"issue_date"`
	ExpirationDate      *string   `json:"expiration_date,omitempty"`
	CredentialURL       *string   `json:"credential_url,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}
