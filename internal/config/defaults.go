package config

import (
	_ "embed"
)

//go:embed defaults/skyfall.yaml
var defaultSkyfallYAML []byte

// DefaultSkyfallConfig returns the hardcoded default configuration.
// It matches defaults/skyfall.yaml.
func DefaultSkyfallConfig() SkyfallConfig {
	return SkyfallConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Player: PlayerConfig{
			X:         400,
			Y:         550,
			Width:     50,
			Height:    50,
			MoveSpeed: 10,
		},
		Items: ItemsConfig{
			Width:          40,
			Height:         40,
			PruneOffscreen: false,
		},
		Lives: 3,
		Difficulty: DifficultyConfig{
			Enabled:      true,
			SpawnBase:    0.01,
			SpawnDivisor: 36000,
			SpawnCap:     1.0,
			BadBase:      0.3,
			BadDivisor:   1800,
			BadCap:       0.7,
			SpeedBase:    2,
			SpeedDivisor: 600,
		},
	}
}
