package game

import (
	"math"

	"github.com/vovakirdan/skyfall/internal/config"
)

// Curve maps elapsed frames to spawn and item parameters.
// All methods are pure; the curve holds only its coefficients.
type Curve struct {
	cfg config.DifficultyConfig
}

// NewCurve creates a difficulty curve from config.
func NewCurve(cfg config.DifficultyConfig) Curve {
	return Curve{cfg: cfg}
}

// frames returns the frame count the curve is evaluated at.
// Disabled progression freezes the curve at its starting point.
func (c Curve) frames(elapsed int) float64 {
	if !c.cfg.Enabled || elapsed < 0 {
		return 0
	}
	return float64(elapsed)
}

// SpawnProbability is the chance that a new item appears this frame.
func (c Curve) SpawnProbability(elapsed int) float64 {
	return math.Min(c.cfg.SpawnCap, c.cfg.SpawnBase+c.frames(elapsed)/c.cfg.SpawnDivisor)
}

// BadProbability is the chance that a spawned item is bad.
func (c Curve) BadProbability(elapsed int) float64 {
	return math.Min(c.cfg.BadCap, c.cfg.BadBase+c.frames(elapsed)/c.cfg.BadDivisor)
}

// FallSpeed is the per-tick vertical speed of items spawned this frame.
// It grows without bound.
func (c Curve) FallSpeed(elapsed int) float64 {
	return c.cfg.SpeedBase + c.frames(elapsed)/c.cfg.SpeedDivisor
}
