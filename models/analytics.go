package models

import "time"

// PageVisit is a global (not user-owned) analytics row recorded per page view.
type PageVisit struct {
	ID          string    `json:"id"`
	Path        string    `json:"path"`
	Referrer    *string   `json:"referrer,omitempty"`
	VisitorHash *string   `json:"visitor_hash,omitempty"`
	VisitedAt   time.Time `json:"visited_at"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// SectionVisit records how long a visitor stayed on one page section.
type SectionVisit struct {
	ID         string    `json:"id"`
	Section    string    `json:"section"`
	DurationMs int       `json:"duration_ms"`
	VisitedAt  time.Time `json:"visited_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// VisitStats is the aggregate returned by the analytics stats endpoints.
type VisitStats struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
