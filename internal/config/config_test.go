package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
}

func TestLoadLocalModeDisablesTLS(t *testing.T) {
	t.Setenv("GO_ENV", "local")

	cfg := Load()

	assert.Equal(t, "local", cfg.App.Environment)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "secret")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "secret", cfg.Database.Password)
}
