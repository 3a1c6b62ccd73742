package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSortable = map[string]bool{
	"name":          true,
	"display_order": true,
	"created_at":    true,
}

func TestBuildSearchDefaults(t *testing.T) {
	sel, count, selArgs, countArgs, err := buildSearch(
		"id, name", "skills",
		[]Cond{{Column: "user_id", Value: "usr_1"}},
		SearchOptions{}, testSortable, "display_order", "asc",
	)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name FROM skills WHERE user_id = $1 ORDER BY display_order asc LIMIT $2 OFFSET $3", sel)
	assert.Equal(t, "SELECT COUNT(*) FROM skills WHERE user_id = $1", count)
	assert.Equal(t, []any{"usr_1", DefaultLimit, 0}, selArgs)
	assert.Equal(t, []any{"usr_1"}, countArgs)
}

func TestBuildSearchFilters(t *testing.T) {
	opts := SearchOptions{
		Limit:     5,
		Offset:    10,
		SortBy:    "name",
		SortOrder: "desc",
		Filters: []Filter{
			{Column: "category", Value: "backend"},
			{Column: "name", Value: "go", Fuzzy: true},
		},
	}
	sel, count, selArgs, countArgs, err := buildSearch(
		"id, name", "skills",
		[]Cond{{Column: "user_id", Value: "usr_1"}},
		opts, testSortable, "display_order", "asc",
	)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id, name FROM skills WHERE user_id = $1 AND category = $2 AND name ILIKE $3 ORDER BY name desc LIMIT $4 OFFSET $5", sel)
	assert.Equal(t, "SELECT COUNT(*) FROM skills WHERE user_id = $1 AND category = $2 AND name ILIKE $3", count)
	assert.Equal(t, []any{"usr_1", "backend", "%go%", 5, 10}, selArgs)
	assert.Equal(t, []any{"usr_1", "backend", "%go%"}, countArgs)
}

func TestBuildSearchRejectsUnknownSortColumn(t *testing.T) {
	_, _, _, _, err := buildSearch(
		"id", "skills", nil,
		SearchOptions{SortBy: "password_hash"},
		testSortable, "display_order", "asc",
	)
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestBuildSearchRejectsUnknownSortOrder(t *testing.T) {
	_, _, _, _, err := buildSearch(
		"id", "skills", nil,
		SearchOptions{SortBy: "name", SortOrder: "sideways"},
		testSortable, "display_order", "asc",
	)
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestBuildSearchClampsLimit(t *testing.T) {
	sel, _, selArgs, _, err := buildSearch(
		"id", "skills", nil,
		SearchOptions{Limit: 10000, Offset: -3},
		testSortable, "display_order", "asc",
	)
	require.NoError(t, err)

	assert.Equal(t, "SELECT id FROM skills ORDER BY display_order asc LIMIT $1 OFFSET $2", sel)
	assert.Equal(t, []any{MaxLimit, 0}, selArgs)
}
