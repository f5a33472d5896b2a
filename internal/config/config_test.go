package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetBoolEnv(t *testing.T) {
	assert.False(t, GetBoolEnv("PREFORK", false))
	assert.True(t, GetBoolEnv("PREFORK", true))

	t.Setenv("PREFORK", "true")
	assert.True(t, GetBoolEnv("PREFORK", false))

	t.Setenv("PREFORK", "0")
	assert.False(t, GetBoolEnv("PREFORK", true))

	// Unparseable values fall back to the default.
	t.Setenv("PREFORK", "yes please")
	assert.True(t, GetBoolEnv("PREFORK", true))
}

func TestIsProduction(t *testing.T) {
	t.Setenv("ENV", "development")
	assert.False(t, IsProduction())

	t.Setenv("ENV", "production")
	assert.True(t, IsProduction())
}

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://pianostyle.app", cfg.BaseURL)
	assert.False(t, cfg.Prefork)

	t.Setenv("PREFORK", "true")
	assert.True(t, Load().Prefork)
}
