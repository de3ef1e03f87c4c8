package config

import (
	"os"
	"strconv"
	"time"
)

// Config is the env-tunable runtime surface. Gameplay constants (rounds,
// reward) live with the game rules; only deployment and pacing knobs are
// exposed here.
type Config struct {
	Addr          string
	DevLog        bool
	RoundCooldown time.Duration
	MidAccuracy   float64
}

func Load() Config {
	return Config{
		Addr:          ":" + getenv("PORT", "8080"),
		DevLog:        getenv("DEV_LOG", "") == "1",
		RoundCooldown: time.Duration(getint("ROUND_COOLDOWN_MS", 3000)) * time.Millisecond,
		MidAccuracy:   getfloat("BOT_MID_ACCURACY", 0.5),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getfloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
