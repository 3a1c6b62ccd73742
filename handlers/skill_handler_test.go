package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
	"portfolio-backend/repository"
)

type fakeSkillStore struct {
	skills map[string]*models.Skill
}

func newFakeSkillStore() *fakeSkillStore {
	return &fakeSkillStore{skills: map[string]*models.Skill{}}
}

func (s *fakeSkillStore) Create(_ context.Context, skill *models.Skill) error {
	skill.ID = models.NewID(models.PrefixSkill)
	s.skills[skill.ID] = skill
	return nil
}

func (s *fakeSkillStore) GetByID(_ context.Context, userID, id string) (*models.Skill, error) {
	skill, ok := s.skills[id]
	if !ok || skill.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return skill, nil
}

func (s *fakeSkillStore) Search(_ context.Context, userID string, _ repository.SearchOptions) ([]*models.Skill, int, error) {
	var out []*models.Skill
	for _, skill := range s.skills {
		if skill.UserID == userID {
			out = append(out, skill)
		}
	}
	return out, len(out), nil
}

func (s *fakeSkillStore) Update(_ context.Context, userID, id string, _ *repository.Patch) (*models.Skill, error) {
	return s.GetByID(context.Background(), userID, id)
}

func (s *fakeSkillStore) Delete(_ context.Context, userID, id string) error {
	if _, err := s.GetByID(context.Background(), userID, id); err != nil {
		return err
	}
	delete(s.skills, id)
	return nil
}

func newSkillRouter(store *fakeSkillStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewSkillHandler(store)

	r := gin.New()
	g := r.Group("/api/users/:user_id/skills")
	g.POST("", h.CreateSkill)
	g.GET("", h.ListSkills)
	g.GET("/:id", h.GetSkill)
	g.PATCH("/:id", h.UpdateSkill)
	g.DELETE("/:id", h.DeleteSkill)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateAndGetSkill(t *testing.T) {
	store := newFakeSkillStore()
	r := newSkillRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/skills", gin.H{
		"category":          "backend",
		"name":              "Go",
		"proficiency_level": 90,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Success bool         `json:"success"`
		Data    models.Skill `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Success)
	assert.NotEmpty(t, created.Data.ID)
	assert.Equal(t, "usr_1", created.Data.UserID)

	w = doJSON(t, r, http.MethodGet, "/api/users/usr_1/skills/"+created.Data.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data models.Skill `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Go", fetched.Data.Name)
}

func TestCreateSkillValidation(t *testing.T) {
	r := newSkillRouter(newFakeSkillStore())

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/skills", gin.H{
		"category": "backend",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestListSkillsEnvelope(t *testing.T) {
	store := newFakeSkillStore()
	r := newSkillRouter(store)

	for _, name := range []string{"Go", "Postgres", "Docker"} {
		w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/skills", gin.H{
			"category": "backend",
			"name":     name,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/users/usr_1/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Success bool            `json:"success"`
		Data    []*models.Skill `json:"data"`
		Total   int             `json:"total"`
		Limit   int             `json:"limit"`
		Offset  int             `json:"offset"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.True(t, list.Success)
	assert.Len(t, list.Data, 3)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, repository.DefaultLimit, list.Limit)
	assert.Equal(t, 0, list.Offset)
}

func TestUpdateSkillNoFields(t *testing.T) {
	r := newSkillRouter(newFakeSkillStore())

	w := doJSON(t, r, http.MethodPatch, "/api/users/usr_1/skills/skl_x", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "NO_UPDATE_FIELDS")
}

func TestUpdateSkillNotFound(t *testing.T) {
	r := newSkillRouter(newFakeSkillStore())

	w := doJSON(t, r, http.MethodPatch, "/api/users/usr_1/skills/skl_missing", gin.H{
		"name": "Rust",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "SKILL_NOT_FOUND")
}

func TestDeleteSkill(t *testing.T) {
	store := newFakeSkillStore()
	r := newSkillRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/skills", gin.H{
		"category": "backend",
		"name":     "Go",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Skill `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodDelete, "/api/users/usr_1/skills/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/users/usr_1/skills/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillScopedToOwner(t *testing.T) {
	store := newFakeSkillStore()
	r := newSkillRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/users/usr_1/skills", gin.H{
		"category": "backend",
		"name":     "Go",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data models.Skill `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, r, http.MethodGet, "/api/users/usr_2/skills/"+created.Data.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
