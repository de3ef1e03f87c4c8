package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.False(t, cfg.DevLog)
	assert.Equal(t, 3*time.Second, cfg.RoundCooldown)
	assert.Equal(t, 0.5, cfg.MidAccuracy)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DEV_LOG", "1")
	t.Setenv("ROUND_COOLDOWN_MS", "250")
	t.Setenv("BOT_MID_ACCURACY", "0.8")

	cfg := Load()
	assert.Equal(t, ":9000", cfg.Addr)
	assert.True(t, cfg.DevLog)
	assert.Equal(t, 250*time.Millisecond, cfg.RoundCooldown)
	assert.Equal(t, 0.8, cfg.MidAccuracy)
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("ROUND_COOLDOWN_MS", "soon")
	t.Setenv("BOT_MID_ACCURACY", "often")

	cfg := Load()
	assert.Equal(t, 3*time.Second, cfg.RoundCooldown)
	assert.Equal(t, 0.5, cfg.MidAccuracy)
}
