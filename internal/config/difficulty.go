package config

import "fmt"

// IncrementForPreset returns the per-level speed increment for a preset.
func IncrementForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.125
	case DifficultyNormal:
		return 0.25
	case DifficultyHard:
		return 0.5
	default:
		return 0
	}
}

// ParsePreset converts a CLI value into a preset.
// An empty string means "use the config file as is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyCrossingPreset modifies the config based on a difficulty preset.
func ApplyCrossingPreset(cfg *CrossingConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpeedIncrement = IncrementForPreset(preset)
	}
}

// LevelSpeed returns the speed of a lane whose level-0 speed is base.
func (d DifficultyConfig) LevelSpeed(base float64, level int) float64 {
	if !d.Enabled {
		return base
	}
	return base + float64(level)*d.SpeedIncrement
}
