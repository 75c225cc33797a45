package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-gateway/internal/config"
)

func TestLoad(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co/")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("CORS_ORIGIN", "https://app.example.com, https://staging.example.com ,")
	t.Setenv("APP_ENV", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://project.supabase.co", cfg.Supabase.URL, "trailing slash trimmed")
	assert.Equal(t, "anon-key", cfg.Supabase.AnonKey)
	assert.Equal(t, []string{"https://app.example.com", "https://staging.example.com"}, cfg.CORS.Origins)
	assert.True(t, cfg.App.Production())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("APP_ENV", "")
	t.Setenv("CORS_ORIGIN", "")
	t.Setenv("APP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.False(t, cfg.App.Production())
	assert.Empty(t, cfg.CORS.Origins)
	assert.Equal(t, "0.0.0.0:4000", cfg.App.Addr())
	assert.Equal(t, "http://localhost:5173", cfg.App.URL)
}

func TestLoadRequiresBackendCoordinates(t *testing.T) {
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	_, err := config.Load()
	require.Error(t, err)

	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "")
	_, err = config.Load()
	require.Error(t, err)
}
