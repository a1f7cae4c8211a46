package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()

	content := `
game:
  turn_duration: 90
  max_actors: 2

storage:
  backend: "redis"
  redis:
    addr: "redis:6379"
    password: "secret"
    db: 1

admin:
  pin: "9876"

ui:
  dark_mode: true
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 90, cfg.Game.TurnDuration)
	assert.Equal(t, 2, cfg.Game.MaxActors)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, "redis:6379", cfg.Storage.Redis.Addr)
	assert.Equal(t, "secret", cfg.Storage.Redis.Password)
	assert.Equal(t, 1, cfg.Storage.Redis.DB)
	assert.Equal(t, "9876", cfg.Admin.Pin)
	assert.True(t, cfg.UI.DarkMode)
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()

	cfg, err := Load("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")
	err := os.WriteFile(configPath, []byte("invalid: yaml: :::"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "empty.yaml")
	err := os.WriteFile(configPath, []byte("{}"), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, defaultTurnDuration, cfg.Game.TurnDuration)
	assert.Equal(t, defaultMaxActors, cfg.Game.MaxActors)
	assert.Equal(t, defaultBackend, cfg.Storage.Backend)
	assert.Equal(t, defaultRedisAddr, cfg.Storage.Redis.Addr)
	assert.Equal(t, defaultAdminPin, cfg.Admin.Pin)
	assert.False(t, cfg.UI.DarkMode)
}

func TestLoad_RepairsNonPositiveGameValues(t *testing.T) {
	t.Parallel()

	// A negative countdown would make every turn expire instantly
	content := `
game:
  turn_duration: -5
  max_actors: -1
`
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "negative.yaml")
	err := os.WriteFile(configPath, []byte(content), 0o600)
	require.NoError(t, err)

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, defaultTurnDuration, cfg.Game.TurnDuration)
	assert.Equal(t, defaultMaxActors, cfg.Game.MaxActors)
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, defaultTurnDuration, cfg.Game.TurnDuration)
	assert.Equal(t, defaultBackend, cfg.Storage.Backend)
}

func TestGameConfig_DurationMethods(t *testing.T) {
	t.Parallel()

	cfg := &GameConfig{TurnDuration: 90}
	assert.Equal(t, 90*time.Second, cfg.TurnDurationDuration())
}
