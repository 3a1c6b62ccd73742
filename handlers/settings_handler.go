package handlers

import (
	"context"
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
)

// The three settings resources are one row per user, so their routes carry no
// row ID: the owner in the path is the key.

// SiteSettingStore is the persistence surface for site settings.
type SiteSettingStore interface {
	Create(ctx context.Context, s *models.SiteSetting) error
	GetByUserID(ctx context.Context, userID string) (*models.SiteSetting, error)
	Update(ctx context.Context, userID string, patch *repository.Patch) (*models.SiteSetting, error)
	Delete(ctx context.Context, userID string) error
}

// AppSettingStore is the persistence surface for app settings.
type AppSettingStore interface {
	Create(ctx context.Context, s *models.AppSetting) error
	GetByUserID(ctx context.Context, userID string) (*models.AppSetting, error)
	Update(ctx context.Context, userID string, patch *repository.Patch) (*models.AppSetting, error)
	Delete(ctx context.Context, userID string) error
}

// NavigationPrefStore is the persistence surface for navigation preferences.
type NavigationPrefStore interface {
	Create(ctx context.Context, p *models.NavigationPreference) error
	GetByUserID(ctx context.Context, userID string) (*models.NavigationPreference, error)
	Update(ctx context.Context, userID string, patch *repository.Patch) (*models.NavigationPreference, error)
	Delete(ctx context.Context, userID string) error
}

// SettingsHandler handles HTTP requests for the three settings resources
type SettingsHandler struct {
	site SiteSettingStore
	app  AppSettingStore
	nav  NavigationPrefStore
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(site SiteSettingStore, app AppSettingStore, nav NavigationPrefStore) *SettingsHandler {
	return &SettingsHandler{site: site, app: app, nav: nav}
}

// CreateSiteSettingRequest represents the request body for creating site settings
type CreateSiteSettingRequest struct {
	SiteTitle        string  `json:"site_title" binding:"required,max=200"`
	MetaDescription  *string `json:"meta_description" binding:"omitempty,max=500"`
	AccentColor      *string `json:"accent_color" binding:"omitempty,max=20"`
	ShowBlog         bool    `json:"show_blog"`
	ShowTestimonials bool    `json:"show_testimonials"`
}

// CreateSiteSetting handles POST /api/users/:user_id/site-settings
func (h *SettingsHandler) CreateSiteSetting(c *gin.Context) {
	var req CreateSiteSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	setting := &models.SiteSetting{
		UserID:           c.Param("user_id"),
		SiteTitle:        req.SiteTitle,
		MetaDescription:  req.MetaDescription,
		AccentColor:      req.AccentColor,
		ShowBlog:         req.ShowBlog,
		ShowTestimonials: req.ShowTestimonials,
	}
	if err := h.site.Create(c.Request.Context(), setting); err != nil {
		if repository.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "SETTINGS_EXIST", "Site settings already exist for this user")
			return
		}
		respondStoreError(c, err, "SITE_SETTING_NOT_FOUND", "Site settings not found")
		return
	}
	respondData(c, http.StatusCreated, setting)
}

// GetSiteSetting handles GET /api/users/:user_id/site-settings
func (h *SettingsHandler) GetSiteSetting(c *gin.Context) {
	setting, err := h.site.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondStoreError(c, err, "SITE_SETTING_NOT_FOUND", "Site settings not found")
		return
	}
	respondData(c, http.StatusOK, setting)
}

// UpdateSiteSettingRequest represents the request body for a partial update
type UpdateSiteSettingRequest struct {
	SiteTitle        *string `json:"site_title" binding:"omitempty,max=200"`
	MetaDescription  *string `json:"meta_description" binding:"omitempty,max=500"`
	AccentColor      *string `json:"accent_color" binding:"omitempty,max=20"`
	ShowBlog         *bool   `json:"show_blog"`
	ShowTestimonials *bool   `json:"show_testimonials"`
}

// UpdateSiteSetting handles PATCH /api/users/:user_id/site-settings
func (h *SettingsHandler) UpdateSiteSetting(c *gin.Context) {
	var req UpdateSiteSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.SiteTitle != nil {
		patch.Set("site_title", *req.SiteTitle)
	}
	if req.MetaDescription != nil {
		patch.Set("meta_description", *req.MetaDescription)
	}
	if req.AccentColor != nil {
		patch.Set("accent_color", *req.AccentColor)
	}
	if req.ShowBlog != nil {
		patch.Set("show_blog", *req.ShowBlog)
	}
	if req.ShowTestimonials != nil {
		patch.Set("show_testimonials", *req.ShowTestimonials)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	setting, err := h.site.Update(c.Request.Context(), c.Param("user_id"), patch)
	if err != nil {
		respondStoreError(c, err, "SITE_SETTING_NOT_FOUND", "Site settings not found")
		return
	}
	respondData(c, http.StatusOK, setting)
}

// DeleteSiteSetting handles DELETE /api/users/:user_id/site-settings
func (h *SettingsHandler) DeleteSiteSetting(c *gin.Context) {
	if err := h.site.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		respondStoreError(c, err, "SITE_SETTING_NOT_FOUND", "Site settings not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateAppSettingRequest represents the request body for creating app settings
type CreateAppSettingRequest struct {
	ThemeMode    string  `json:"theme_mode" binding:"omitempty,oneof=light dark system"`
	FontScale    float64 `json:"font_scale" binding:"omitempty,min=0.8,max=1.5"`
	Language     string  `json:"language" binding:"omitempty,max=10"`
	ReduceMotion bool    `json:"reduce_motion"`
}

// CreateAppSetting handles POST /api/users/:user_id/app-settings
func (h *SettingsHandler) CreateAppSetting(c *gin.Context) {
	var req CreateAppSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	setting := &models.AppSetting{
		UserID:       c.Param("user_id"),
		ThemeMode:    models.ThemeMode(req.ThemeMode),
		FontScale:    req.FontScale,
		Language:     req.Language,
		ReduceMotion: req.ReduceMotion,
	}
	if err := h.app.Create(c.Request.Context(), setting); err != nil {
		if repository.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "SETTINGS_EXIST", "App settings already exist for this user")
			return
		}
		respondStoreError(c, err, "APP_SETTING_NOT_FOUND", "App settings not found")
		return
	}
	respondData(c, http.StatusCreated, setting)
}

// GetAppSetting handles GET /api/users/:user_id/app-settings
func (h *SettingsHandler) GetAppSetting(c *gin.Context) {
	setting, err := h.app.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondStoreError(c, err, "APP_SETTING_NOT_FOUND", "App settings not found")
		return
	}
	respondData(c, http.StatusOK, setting)
}

// UpdateAppSettingRequest represents the request body for a partial update
type UpdateAppSettingRequest struct {
	ThemeMode    *string  `json:"theme_mode" binding:"omitempty,oneof=light dark system"`
	FontScale    *float64 `json:"font_scale" binding:"omitempty,min=0.8,max=1.5"`
	Language     *string  `json:"language" binding:"omitempty,max=10"`
	ReduceMotion *bool    `json:"reduce_motion"`
}

// UpdateAppSetting handles PATCH /api/users/:user_id/app-settings
func (h *SettingsHandler) UpdateAppSetting(c *gin.Context) {
	var req UpdateAppSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.ThemeMode != nil {
		patch.Set("theme_mode", *req.ThemeMode)
	}
	if req.FontScale != nil {
		patch.Set("font_scale", *req.FontScale)
	}
	if req.Language != nil {
		patch.Set("language", *req.Language)
	}
	if req.ReduceMotion != nil {
		patch.Set("reduce_motion", *req.ReduceMotion)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	setting, err := h.app.Update(c.Request.Context(), c.Param("user_id"), patch)
	if err != nil {
		respondStoreError(c, err, "APP_SETTING_NOT_FOUND", "App settings not found")
		return
	}
	respondData(c, http.StatusOK, setting)
}

// DeleteAppSetting handles DELETE /api/users/:user_id/app-settings
func (h *SettingsHandler) DeleteAppSetting(c *gin.Context) {
	if err := h.app.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		respondStoreError(c, err, "APP_SETTING_NOT_FOUND", "App settings not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateNavigationPrefRequest represents the request body for creating
// navigation preferences
type CreateNavigationPrefRequest struct {
	ActiveTab        string   `json:"active_tab" binding:"omitempty,max=50"`
	TabOrder         []string `json:"tab_order"`
	SidebarCollapsed bool     `json:"sidebar_collapsed"`
}

// CreateNavigationPref handles POST /api/users/:user_id/navigation-preferences
func (h *SettingsHandler) CreateNavigationPref(c *gin.Context) {
	var req CreateNavigationPrefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pref := &models.NavigationPreference{
		UserID:           c.Param("user_id"),
		ActiveTab:        req.ActiveTab,
		TabOrder:         models.TabOrder(req.TabOrder),
		SidebarCollapsed: req.SidebarCollapsed,
	}
	if err := h.nav.Create(c.Request.Context(), pref); err != nil {
		if repository.IsUniqueViolation(err) {
			respondError(c, http.StatusConflict, "SETTINGS_EXIST", "Navigation preferences already exist for this user")
			return
		}
		respondStoreError(c, err, "NAVIGATION_PREF_NOT_FOUND", "Navigation preferences not found")
		return
	}
	respondData(c, http.StatusCreated, pref)
}

// GetNavigationPref handles GET /api/users/:user_id/navigation-preferences
func (h *SettingsHandler) GetNavigationPref(c *gin.Context) {
	pref, err := h.nav.GetByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		respondStoreError(c, err, "NAVIGATION_PREF_NOT_FOUND", "Navigation preferences not found")
		return
	}
	respondData(c, http.StatusOK, pref)
}

// UpdateNavigationPrefRequest represents the request body for a partial update
type UpdateNavigationPrefRequest struct {
	ActiveTab        *string  `json:"active_tab" binding:"omitempty,max=50"`
	TabOrder         []string `json:"tab_order"`
	SidebarCollapsed *bool    `json:"sidebar_collapsed"`
}

// UpdateNavigationPref handles PATCH /api/users/:user_id/navigation-preferences
func (h *SettingsHandler) UpdateNavigationPref(c *gin.Context) {
	var req UpdateNavigationPrefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	patch := &repository.Patch{}
	if req.ActiveTab != nil {
		patch.Set("active_tab", *req.ActiveTab)
	}
	if req.TabOrder != nil {
		patch.Set("tab_order", models.TabOrder(req.TabOrder))
	}
	if req.SidebarCollapsed != nil {
		patch.Set("sidebar_collapsed", *req.SidebarCollapsed)
	}
	if patch.IsEmpty() {
		respondError(c, http.StatusBadRequest, "NO_UPDATE_FIELDS", "Request body contains no updatable fields")
		return
	}

	pref, err := h.nav.Update(c.Request.Context(), c.Param("user_id"), patch)
	if err != nil {
		respondStoreError(c, err, "NAVIGATION_PREF_NOT_FOUND", "Navigation preferences not found")
		return
	}
	respondData(c, http.StatusOK, pref)
}

// DeleteNavigationPref handles DELETE /api/users/:user_id/navigation-preferences
func (h *SettingsHandler) DeleteNavigationPref(c *gin.Context) {
	if err := h.nav.Delete(c.Request.Context(), c.Param("user_id")); err != nil {
		respondStoreError(c, err, "NAVIGATION_PREF_NOT_FOUND", "Navigation preferences not found")
		return
	}
	c.Status(http.StatusNoContent)
}
