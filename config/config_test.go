package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := DefaultConfig()
	assert.True(t, c.Pruning)
	assert.False(t, c.Debug)
	assert.Equal(t, 30, c.DefaultClues)
	assert.NotEmpty(t, c.HistoryFile)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("PLYDECK_PRUNING", "false")
	t.Setenv("PLYDECK_DEFAULT_CLUES", "45")

	c, err := Load()
	require.NoError(t, err)
	assert.False(t, c.Pruning)
	assert.Equal(t, 45, c.DefaultClues)
}
