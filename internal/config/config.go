// Package config provides YAML-based game configuration loading and
// difficulty management for the crossing game.
package config

// CrossingConfig contains all tunable configuration for the crossing game.
// The board layout is fixed; only timing and lane speeds are tunable.
type CrossingConfig struct {
	TickRate   int              `yaml:"tick_rate"`
	Speeds     CrossingSpeeds   `yaml:"speeds"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// CrossingSpeeds defines the level-0 lane speed for each entity kind,
// in world units per tick.
type CrossingSpeeds struct {
	Car    float64 `yaml:"car"`
	Truck  float64 `yaml:"truck"`
	Log    float64 `yaml:"log"`
	Turtle float64 `yaml:"turtle"`
}

// DifficultyConfig defines how lane speeds grow with each completed level.
type DifficultyConfig struct {
	Enabled        bool    `yaml:"enabled"`
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to every lane speed per level
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
