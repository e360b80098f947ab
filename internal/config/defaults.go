package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the default crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		TickRate: 30,
		Speeds: CrossingSpeeds{
			Car:    1.5,
			Truck:  1.0,
			Log:    1.0,
			Turtle: 1.25,
		},
		Difficulty: DifficultyConfig{
			Enabled:        true,
			SpeedIncrement: 0.25,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "crossing":
		return defaultCrossingYAML
	default:
		return nil
	}
}
