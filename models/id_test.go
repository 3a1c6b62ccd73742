package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIDFormat(t *testing.T) {
	id := NewID(PrefixSkill)

	assert.True(t, strings.HasPrefix(id, "skl_"))
	assert.Len(t, id, len("skl_")+32)
	assert.NotContains(t, id, "-")
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID(PrefixProject)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
