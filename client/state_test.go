package client

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func TestStateStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewStateStore(path)
	require.NoError(t, err)
	assert.Empty(t, store.State().Token)

	user := &models.AuthUser{ID: "usr_1", Email: "owner@example.com", Name: "Owner"}
	require.NoError(t, store.SetSession("token-abc", user))
	require.NoError(t, store.SetActiveTab("projects"))
	require.NoError(t, store.SetTheme(models.ThemeDark, 1.2))

	reopened, err := NewStateStore(path)
	require.NoError(t, err)

	state := reopened.State()
	assert.Equal(t, "token-abc", state.Token)
	require.NotNil(t, state.CurrentUser)
	assert.Equal(t, "usr_1", state.CurrentUser.ID)
	assert.Equal(t, "projects", state.ActiveTab)
	assert.Equal(t, models.ThemeDark, state.ThemeMode)
	assert.Equal(t, 1.2, state.FontScale)
}

func TestStateStoreClearSessionKeepsPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewStateStore(path)
	require.NoError(t, err)

	require.NoError(t, store.SetSession("token-abc", &models.AuthUser{ID: "usr_1"}))
	require.NoError(t, store.SetTheme(models.ThemeDark, 1.0))
	require.NoError(t, store.ClearSession())

	state := store.State()
	assert.Empty(t, state.Token)
	assert.Nil(t, state.CurrentUser)
	assert.Equal(t, models.ThemeDark, state.ThemeMode)
}

func TestStateStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewStateStore(path)
	assert.Error(t, err)
}
