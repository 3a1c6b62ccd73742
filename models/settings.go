package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"
)

// SiteSetting holds the public site configuration for one user.
type SiteSetting struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	SiteTitle        string    `json:"site_title"`
	MetaDescription  *string   `json:"meta_description,omitempty"`
	AccentColor      *string   `json:"accent_color,omitempty"`
	ShowBlog         bool      `json:"show_blog"`
	ShowTestimonials bool      `json:"show_testimonials"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ThemeMode represents the UI color scheme preference.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// AppSetting holds per-user UI preferences persisted across sessions.
type AppSetting struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ThemeMode    ThemeMode `json:"theme_mode"`
	FontScale    float64   `json:"font_scale"` // 0.8-1.5
	Language     string    `json:"language"`
	ReduceMotion bool      `json:"reduce_motion"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TabOrder is the ordered list of navigation tabs, stored as JSONB.
type TabOrder []string

// Value implements driver.Valuer for JSONB
func (t TabOrder) Value() (driver.Value, error) {
	return json.Marshal(t)
}

// Scan implements sql.Scanner for JSONB
func (t *TabOrder) Scan(value interface{}) error {
	if value == nil {
		*t = make(TabOrder, 0)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*t = make(TabOrder, 0)
		return nil
	}

	if len(bytes) == 0 {
		*t = make(TabOrder, 0)
		return nil
	}

	return json.Unmarshal(bytes, t)
}

// NavigationPreference holds per-user navigation state.
type NavigationPreference struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	ActiveTab        string    `json:"active_tab"`
	TabOrder         TabOrder  `json:"tab_order"`
	SidebarCollapsed bool      `json:"sidebar_collapsed"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
