package models

import "time"

// User represents the profile owner. Every owned entity references its ID.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password hash
	Name         string    `json:"name"`
	Tagline      *string   `json:"tagline,omitempty"`
	Bio          *string   `json:"bio,omitempty"`
	AvatarURL    *string   `json:"avatar_url,omitempty"`
	Location     *string   `json:"location,omitempty"`
	GithubURL    *string   `json:"github_url,omitempty"`
	LinkedinURL  *string   `json:"linkedin_url,omitempty"`
	WebsiteURL   *string   `json:"website_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// AuthUser is the minimal projection attached to authenticated requests.
type AuthUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile bundles a user with the collections the portfolio page renders.
type Profile struct {
	User           *User              `json:"user"`
	Skills         []*Skill           `json:"skills"`
	Projects       []*Project         `json:"projects"`
	Experiences    []*Experience      `json:"experiences"`
	Education      []*Education       `json:"education"`
	Certifications []*Certification   `json:"certifications"`
	KeyFacts       []*KeyFact         `json:"key_facts"`
	SocialLinks    []*SocialMediaLink `json:"social_media_links"`
	Testimonials   []*Testimonial     `json:"testimonials"`
}
