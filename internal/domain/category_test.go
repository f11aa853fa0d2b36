package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	now := time.Now()

	t.Run("success", func(t *testing.T) {
		c, err := NewCategory(" Electronics ", "gadgets", nil, now)
		require.NoError(t, err)
		assert.Equal(t, "Electronics", c.Name)
		assert.True(t, c.IsActive)
		assert.Nil(t, c.ParentID)
	})

	t.Run("blank_parent_treated_as_root", func(t *testing.T) {
		blank := "  "
		c, err := NewCategory("Books", "", &blank, now)
		require.NoError(t, err)
		assert.Nil(t, c.ParentID)
	})

	t.Run("name_too_long", func(t *testing.T) {
		_, err := NewCategory(strings.Repeat("x", 51), "", nil, now)
		assert.True(t, Is(err, "invalid_field"))
	})

	t.Run("missing_name", func(t *testing.T) {
		_, err := NewCategory("", "", nil, now)
		assert.True(t, Is(err, "missing_field"))
	})
}

func TestCategoryApplyUpdate(t *testing.T) {
	now := time.Now()
	c, err := NewCategory("Books", "old", nil, now)
	require.NoError(t, err)

	name := "Novels"
	inactive := false
	later := now.Add(time.Hour)
	require.NoError(t, c.ApplyUpdate(&name, nil, &inactive, later))

	assert.Equal(t, "Novels", c.Name)
	assert.Equal(t, "old", c.Description)
	assert.False(t, c.IsActive)
	assert.Equal(t, later.UTC(), c.UpdatedAt)

	empty := ""
	assert.Error(t, c.ApplyUpdate(&empty, nil, nil, later))
}
