package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	body := []byte("world_width: 2000\nenemy_count: 3\nday_night_cycle: 30s\nbounds_mode: world\n")
	require.NoError(t, os.WriteFile(path, body, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2000.0, cfg.WorldWidth)
	assert.Equal(t, 3000.0, cfg.WorldHeight)
	assert.Equal(t, 3, cfg.EnemyCount)
	assert.Equal(t, 30*time.Second, cfg.DayNightCycle)
	assert.Equal(t, BoundsWorld, cfg.BoundsMode)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"world smaller than screen", func(c *Config) { c.WorldWidth = 100 }},
		{"zero cycle", func(c *Config) { c.DayNightCycle = 0 }},
		{"initial above cap", func(c *Config) { c.PigInitial = c.PigCap + 1 }},
		{"negative enemies", func(c *Config) { c.EnemyCount = -1 }},
		{"unknown bounds", func(c *Config) { c.BoundsMode = "screen" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
