package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchIsEmpty(t *testing.T) {
	p := &Patch{}
	assert.True(t, p.IsEmpty())

	p.Set("name", "Go")
	assert.False(t, p.IsEmpty())
}

func TestPatchBuildUpdate(t *testing.T) {
	p := &Patch{}
	p.Set("name", "Go")
	p.Set("proficiency_level", 90)

	query, args := p.BuildUpdate("skills",
		Cond{Column: "id", Value: "skl_1"},
		Cond{Column: "user_id", Value: "usr_1"},
	)

	assert.Equal(t, "UPDATE skills SET name = $1, proficiency_level = $2 WHERE id = $3 AND user_id = $4", query)
	assert.Equal(t, []any{"Go", 90, "skl_1", "usr_1"}, args)
}

func TestPatchBuildUpdateSingleCond(t *testing.T) {
	p := &Patch{}
	p.Set("site_title", "Home")

	query, args := p.BuildUpdate("site_settings", Cond{Column: "user_id", Value: "usr_1"})

	assert.Equal(t, "UPDATE site_settings SET site_title = $1 WHERE user_id = $2", query)
	assert.Equal(t, []any{"Home", "usr_1"}, args)
}
