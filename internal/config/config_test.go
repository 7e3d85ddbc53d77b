package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "INSIGHT_TIMEOUT", "FAMILY_API_KEY"} {
			t.Setenv(key, "")
		}

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
		assert.Equal(t, 30*time.Second, cfg.InsightTimeout)
		assert.Empty(t, cfg.FamilyAPIKey)
		assert.False(t, cfg.InsightsEnabled())
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("GEMINI_API_KEY", "secret")
		t.Setenv("INSIGHT_CACHE_TTL", "2m")
		t.Setenv("INSIGHT_BURST", "7")
		t.Setenv("INSIGHT_RATE_PER_SEC", "0.5")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.InsightsEnabled())
		assert.Equal(t, 2*time.Minute, cfg.InsightCacheTTL)
		assert.Equal(t, 7, cfg.InsightBurst)
		assert.InDelta(t, 0.5, cfg.InsightRatePerSec, 1e-9)
	})

	t.Run("invalid values fall back", func(t *testing.T) {
		t.Setenv("INSIGHT_TIMEOUT", "soon")
		t.Setenv("INSIGHT_BURST", "-1")
		t.Setenv("INSIGHT_RATE_PER_SEC", "fast")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.InsightTimeout)
		assert.Equal(t, 3, cfg.InsightBurst)
		assert.InDelta(t, 1.0, cfg.InsightRatePerSec, 1e-9)
	})
}

func TestGet(t *testing.T) {
	t.Setenv("PORT", "7070")
	appConfig = nil

	cfg := Get()
	assert.Equal(t, "7070", cfg.Port)
	assert.Same(t, cfg, Get())
}

func TestAPIKeyRequired(t *testing.T) {
	assert.False(t, (&Config{Env: "development"}).APIKeyRequired())
	assert.True(t, (&Config{Env: "development", FamilyAPIKey: "k"}).APIKeyRequired())
	assert.True(t, (&Config{Env: "production"}).APIKeyRequired())
}
