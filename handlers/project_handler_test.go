package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
	"portfolio-backend/repository"
)

type fakeProjectStore struct {
	projects    map[string]*models.Project
	screenshots *fakeScreenshotStore
}

func newFakeProjectStore() *fakeProjectStore {
	return &fakeProjectStore{
		projects:    map[string]*models.Project{},
		screenshots: newFakeScreenshotStore(),
	}
}

func (s *fakeProjectStore) Create(_ context.Context, p *models.Project) error {
	p.ID = models.NewID(models.PrefixProject)
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}
	s.projects[p.ID] = p
	return nil
}

func (s *fakeProjectStore) GetByID(_ context.Context, userID, id string) (*models.Project, error) {
	p, ok := s.projects[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return p, nil
}

func (s *fakeProjectStore) Search(_ context.Context, userID string, _ repository.SearchOptions) ([]*models.Project, int, error) {
	var out []*models.Project
	for _, p := range s.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}

func (s *fakeProjectStore) Update(_ context.Context, userID, id string, _ *repository.Patch) (*models.Project, error) {
	return s.GetByID(context.Background(), userID, id)
}

func (s *fakeProjectStore) Delete(_ context.Context, userID, id string) error {
	if _, err := s.GetByID(context.Background(), userID, id); err != nil {
		return err
	}
	delete(s.projects, id)
	for sid, shot := range s.screenshots.shots {
		if shot.ProjectID == id {
			delete(s.screenshots.shots, sid)
		}
	}
	return nil
}

type fakeScreenshotStore struct {
	shots map[string]*models.ProjectScreenshot
}

func newFakeScreenshotStore() *fakeScreenshotStore {
	return &fakeScreenshotStore{shots: map[string]*models.ProjectScreenshot{}}
}

func (s *fakeScreenshotStore) Create(_ context.Context, shot *models.ProjectScreenshot) error {
	shot.ID = models.NewID(models.PrefixScreenshot)
	s.shots[shot.ID] = shot
	return nil
}

func (s *fakeScreenshotStore) GetByID(_ context.Context, projectID, id string) (*models.ProjectScreenshot, error) {
	shot, ok := s.shots[id]
	if !ok || shot.ProjectID != projectID {
		return nil, repository.ErrNotFound
	}
	return shot, nil
}

func (s *fakeScreenshotStore) Search(_ context.Context, projectID string, _ repository.SearchOptions) ([]*models.ProjectScreenshot, int, error) {
	var out []*models.ProjectScreenshot
	for _, shot := range s.shots {
		if shot.ProjectID == projectID {
			out = append(out, shot)
		}
	}
	return out, len(out), nil
}

func (s *fakeScreenshotStore) Update(_ context.Context, projectID, id string, _ *repository.Patch) (*models.ProjectScreenshot, error) {
	return s.GetByID(context.Background(), projectID, id)
}

func (s *fakeScreenshotStore) Delete(_ context.Context, projectID, id string) error {
	if _, err := s.GetByID(context.Background(), projectID, id); err != nil {
		return err
	}
	delete(s.shots, id)
	return nil
}

func newProjectRouter(store *fakeProjectStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewProjectHandler(store, store.screenshots)

	r := gin.New()
	g := r.Group("/api/users/:user_id/projects")
	g.POST("", h.CreateProject)
	g.GET("", h.ListProjects)
	g.GET("/:id", h.GetProject)
	g.PATCH("/:id", h.UpdateProject)
	g.DELETE("/:id", h.DeleteProject)
	g.POST("/:id/screenshots", h.CreateScreenshot)
	g.GET("/:id/screenshots", h.ListScreenshots)
	g.DELETE("/:id/screenshots/:screenshot_id", h.DeleteScreenshot)
	return r
}

func createTestProject(t *testing.T, r *gin.Engine, title string) models.Project {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/projects", gin.H{
		"title":  title,
		"status": "active",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Project `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	return created.Data
}

func TestCreateProjectInvalidStatus(t *testing.T) {
	r := newProjectRouter(newFakeProjectStore())

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/projects", gin.H{
		"title":  "Portfolio",
		"status": "abandoned",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestCreateScreenshotRequiresParent(t *testing.T) {
	r := newProjectRouter(newFakeProjectStore())

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/projects/prj_missing/screenshots", gin.H{
		"image_url": "https://example.com/shot.png",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PROJECT_NOT_FOUND")
}

func TestCreateScreenshotForeignOwner(t *testing.T) {
	store := newFakeProjectStore()
	r := newProjectRouter(store)
	project := createTestProject(t, r, "Portfolio")

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_2/projects/"+project.ID+"/screenshots", gin.H{
		"image_url": "https://example.com/shot.png",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScreenshotLifecycle(t *testing.T) {
	store := newFakeProjectStore()
	r := newProjectRouter(store)
	project := createTestProject(t, r, "Portfolio")

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/projects/"+project.ID+"/screenshots", gin.H{
		"image_url": "https://example.com/shot.png",
		"caption":   "Landing page",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.ProjectScreenshot `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, project.ID, created.Data.ProjectID)

	w = doJSON(t, r, http.MethodGet, "/api/users/usr_1/projects/"+project.ID+"/screenshots", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Data  []*models.ProjectScreenshot `json:"data"`
		Total int                         `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)

	w = doJSON(t, r, http.MethodDelete, "/api/users/usr_1/projects/"+project.ID+"/screenshots/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestDeleteProjectNotFound(t *testing.T) {
	r := newProjectRouter(newFakeProjectStore())

	w := doJSON(t, r, http.MethodDelete, "/api/users/usr_1/projects/prj_missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PROJECT_NOT_FOUND")
}

func TestDeleteProjectRemovesScreenshots(t *testing.T) {
	store := newFakeProjectStore()
	r := newProjectRouter(store)
	project := createTestProject(t, r, "Portfolio")

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/projects/"+project.ID+"/screenshots", gin.H{
		"image_url": "https://example.com/shot.png",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/users/usr_1/projects/"+project.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Empty(t, store.screenshots.shots)

	w = doJSON(t, r, http.MethodGet, "/api/users/usr_1/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
