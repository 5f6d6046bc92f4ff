// Package config provides YAML-based game configuration loading and
// difficulty presets for Skyfall.
package config

import (
	"errors"
	"fmt"
)

// SkyfallConfig contains all tunable parameters of the game.
type SkyfallConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Player     PlayerConfig     `yaml:"player"`
	Items      ItemsConfig      `yaml:"items"`
	Lives      int              `yaml:"lives"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the logical drawing surface.
// Coordinates are independent of the terminal size; the renderer scales them.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player sprite geometry and movement.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	MoveSpeed float64 `yaml:"move_speed"` // Distance per key press
}

// ItemsConfig defines falling item geometry.
type ItemsConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	PruneOffscreen bool    `yaml:"prune_offscreen"` // Drop items that passed the bottom edge
}

// DifficultyConfig defines the time-scaled difficulty curve.
// Each parameter follows min(cap, base + frames/divisor).
type DifficultyConfig struct {
	Enabled      bool    `yaml:"enabled"` // false freezes the curve at frame 0
	SpawnBase    float64 `yaml:"spawn_base"`
	SpawnDivisor float64 `yaml:"spawn_divisor"`
	SpawnCap     float64 `yaml:"spawn_cap"`
	BadBase      float64 `yaml:"bad_base"`
	BadDivisor   float64 `yaml:"bad_divisor"`
	BadCap       float64 `yaml:"bad_cap"`
	SpeedBase    float64 `yaml:"speed_base"`
	SpeedDivisor float64 `yaml:"speed_divisor"`
}

// Validate checks that the configuration describes a playable field.
func (c SkyfallConfig) Validate() error {
	var errs []error

	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		errs = append(errs, fmt.Errorf("playfield must have positive size, got %vx%v", c.Playfield.Width, c.Playfield.Height))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player must have positive size, got %vx%v", c.Player.Width, c.Player.Height))
	}
	if c.Player.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("player width %v exceeds playfield width %v", c.Player.Width, c.Playfield.Width))
	}
	if c.Player.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player move_speed must be positive, got %v", c.Player.MoveSpeed))
	}
	if c.Items.Width <= 0 || c.Items.Height <= 0 {
		errs = append(errs, fmt.Errorf("items must have positive size, got %vx%v", c.Items.Width, c.Items.Height))
	}
	if c.Items.Width > c.Playfield.Width {
		errs = append(errs, fmt.Errorf("item width %v exceeds playfield width %v", c.Items.Width, c.Playfield.Width))
	}
	if c.Lives <= 0 {
		errs = append(errs, fmt.Errorf("lives must be positive, got %d", c.Lives))
	}
	d := c.Difficulty
	if d.SpawnDivisor <= 0 || d.BadDivisor <= 0 || d.SpeedDivisor <= 0 {
		errs = append(errs, errors.New("difficulty divisors must be positive"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// Empty input maps to normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// LivesForPreset returns the starting lives for a difficulty preset.
// Returns 0 for presets that keep the configured value.
func LivesForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 2
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
