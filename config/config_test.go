package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "9339", cfg.Port)
	assert.Equal(t, "./audio", cfg.AudioDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.WatchLibrary)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8123")
	t.Setenv("AUDIO_DIR", "/srv/music")
	t.Setenv("WATCH_LIBRARY", "true")

	cfg := Load()

	assert.Equal(t, "8123", cfg.Port)
	assert.Equal(t, "/srv/music", cfg.AudioDir)
	assert.True(t, cfg.WatchLibrary)
}

func TestGetEnvBoolIgnoresGarbage(t *testing.T) {
	t.Setenv("WATCH_LIBRARY", "definitely")

	assert.False(t, getEnvBool("WATCH_LIBRARY", false))
	assert.True(t, getEnvBool("WATCH_LIBRARY", true))
}
