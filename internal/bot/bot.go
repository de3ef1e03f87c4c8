// Package bot drives the synthetic participants. Each bot in a round gets
// one scheduled decision: a skill-dependent thinking delay followed by a
// skill-dependent answer outcome. The room actor turns that outcome into a
// normal result submission, so bots and humans are symmetric inputs to the
// orchestrator.
package bot

import (
	"math/rand"
	"time"

	"quizbattle-backend/internal/game"
)

type Window struct {
	Min, Max time.Duration
}

func (w Window) draw() time.Duration {
	if w.Max <= w.Min {
		return w.Min
	}
	return w.Min + time.Duration(rand.Int63n(int64(w.Max-w.Min)))
}

type Config struct {
	LowDelay  Window
	MidDelay  Window
	HighDelay Window
	// MidAccuracy is the chance a mid-tier bot answers correctly. High
	// tier always answers correctly, low tier never does.
	MidAccuracy float64
}

func DefaultConfig() Config {
	return Config{
		LowDelay:    Window{5 * time.Second, 10 * time.Second},
		MidDelay:    Window{3 * time.Second, 6 * time.Second},
		HighDelay:   Window{1 * time.Second, 3 * time.Second},
		MidAccuracy: 0.5,
	}
}

// Think returns the simulated thinking time for one decision. Lower skill
// means a longer window.
func (c Config) Think(tier game.SkillTier) time.Duration {
	switch tier {
	case game.SkillHigh:
		return c.HighDelay.draw()
	case game.SkillMid:
		return c.MidDelay.draw()
	default:
		return c.LowDelay.draw()
	}
}

// Answer draws the decision outcome for one duel prompt.
func (c Config) Answer(tier game.SkillTier) bool {
	switch tier {
	case game.SkillHigh:
		return true
	case game.SkillMid:
		return rand.Float64() < c.MidAccuracy
	default:
		return false
	}
}
