package repository

import (
	"context"
	"time"

	"portfolio-backend/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// The three settings entities are one-row-per-user: reads are keyed by the
// owner, not by row ID.

const siteSettingColumns = "id, user_id, site_title, meta_description, accent_color, show_blog, show_testimonials, created_at, updated_at"

// SiteSettingRepository handles database operations for site settings
type SiteSettingRepository struct {
	db *pgxpool.Pool
}

// NewSiteSettingRepository creates a new site setting repository
func NewSiteSettingRepository(db *pgxpool.Pool) *SiteSettingRepository {
	return &SiteSettingRepository{db: db}
}

func scanSiteSetting(row rowScanner) (*models.SiteSetting, error) {
	s := &models.SiteSetting{}
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.SiteTitle,
		&s.MetaDescription,
		&s.AccentColor,
		&s.ShowBlog,
		&s.ShowTestimonials,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts the settings row for a user. The user_id unique constraint
// rejects a second row.
func (r *SiteSettingRepository) Create(ctx context.Context, s *models.SiteSetting) error {
	if s.ID == "" {
		s.ID = models.NewID(models.PrefixSiteSetting)
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO site_settings (` + siteSettingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(
		ctx, query,
		s.ID,
		s.UserID,
		s.SiteTitle,
		s.MetaDescription,
		s.AccentColor,
		s.ShowBlog,
		s.ShowTestimonials,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

// GetByUserID retrieves the settings row for a user.
func (r *SiteSettingRepository) GetByUserID(ctx context.Context, userID string) (*models.SiteSetting, error) {
	query := `SELECT ` + siteSettingColumns + ` FROM site_settings WHERE user_id = $1`
	s, err := scanSiteSetting(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Update applies a partial update and returns the updated row.
func (r *SiteSettingRepository) Update(ctx context.Context, userID string, patch *Patch) (*models.SiteSetting, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("site_settings", Cond{Column: "user_id", Value: userID})
	query += " RETURNING " + siteSettingColumns

	s, err := scanSiteSetting(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Delete removes a user's settings row.
func (r *SiteSettingRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM site_settings WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const appSettingColumns = "id, user_id, theme_mode, font_scale, language, reduce_motion, created_at, updated_at"

// AppSettingRepository handles database operations for app settings
type AppSettingRepository struct {
	db *pgxpool.Pool
}

// NewAppSettingRepository creates a new app setting repository
func NewAppSettingRepository(db *pgxpool.Pool) *AppSettingRepository {
	return &AppSettingRepository{db: db}
}

func scanAppSetting(row rowScanner) (*models.AppSetting, error) {
	s := &models.AppSetting{}
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.ThemeMode,
		&s.FontScale,
		&s.Language,
		&s.ReduceMotion,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Create inserts the app settings row for a user.
func (r *AppSettingRepository) Create(ctx context.Context, s *models.AppSetting) error {
	if s.ID == "" {
		s.ID = models.NewID(models.PrefixAppSetting)
	}
	if s.ThemeMode == "" {
		s.ThemeMode = models.ThemeSystem
	}
	if s.FontScale == 0 {
		s.FontScale = 1.0
	}
	if s.Language == "" {
		s.Language = "en"
	}
	now := time.Now().UTC()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO app_settings (` + appSettingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(
		ctx, query,
		s.ID,
		s.UserID,
		s.ThemeMode,
		s.FontScale,
		s.Language,
		s.ReduceMotion,
		s.CreatedAt,
		s.UpdatedAt,
	)
	return err
}

// GetByUserID retrieves the app settings row for a user.
func (r *AppSettingRepository) GetByUserID(ctx context.Context, userID string) (*models.AppSetting, error) {
	query := `SELECT ` + appSettingColumns + ` FROM app_settings WHERE user_id = $1`
	s, err := scanAppSetting(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Update applies a partial update and returns the updated row.
func (r *AppSettingRepository) Update(ctx context.Context, userID string, patch *Patch) (*models.AppSetting, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("app_settings", Cond{Column: "user_id", Value: userID})
	query += " RETURNING " + appSettingColumns

	s, err := scanAppSetting(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return s, nil
}

// Delete removes a user's app settings row.
func (r *AppSettingRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM app_settings WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

const navigationPrefColumns = "id, user_id, active_tab, tab_order, sidebar_collapsed, created_at, updated_at"

// NavigationPrefRepository handles database operations for navigation preferences
type NavigationPrefRepository struct {
	db *pgxpool.Pool
}

// NewNavigationPrefRepository creates a new navigation preference repository
func NewNavigationPrefRepository(db *pgxpool.Pool) *NavigationPrefRepository {
	return &NavigationPrefRepository{db: db}
}

func scanNavigationPref(row rowScanner) (*models.NavigationPreference, error) {
	p := &models.NavigationPreference{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.ActiveTab,
		&p.TabOrder,
		&p.SidebarCollapsed,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Create inserts the navigation preference row for a user.
func (r *NavigationPrefRepository) Create(ctx context.Context, p *models.NavigationPreference) error {
	if p.ID == "" {
		p.ID = models.NewID(models.PrefixNavigationPrefs)
	}
	if p.ActiveTab == "" {
		p.ActiveTab = "home"
	}
	if p.TabOrder == nil {
		p.TabOrder = models.TabOrder{}
	}
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	query := `
		INSERT INTO navigation_preferences (` + navigationPrefColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(
		ctx, query,
		p.ID,
		p.UserID,
		p.ActiveTab,
		p.TabOrder,
		p.SidebarCollapsed,
		p.CreatedAt,
		p.UpdatedAt,
	)
	return err
}

// GetByUserID retrieves the navigation preference row for a user.
func (r *NavigationPrefRepository) GetByUserID(ctx context.Context, userID string) (*models.NavigationPreference, error) {
	query := `SELECT ` + navigationPrefColumns + ` FROM navigation_preferences WHERE user_id = $1`
	p, err := scanNavigationPref(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Update applies a partial update and returns the updated row.
func (r *NavigationPrefRepository) Update(ctx context.Context, userID string, patch *Patch) (*models.NavigationPreference, error) {
	patch.Set("updated_at", time.Now().UTC())
	query, args := patch.BuildUpdate("navigation_preferences", Cond{Column: "user_id", Value: userID})
	query += " RETURNING " + navigationPrefColumns

	p, err := scanNavigationPref(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Delete removes a user's navigation preference row.
func (r *NavigationPrefRepository) Delete(ctx context.Context, userID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM navigation_preferences WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
