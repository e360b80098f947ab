package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing/engine"
)

// LoadCrossing loads crossing configuration.
// Search order: customPath -> ~/.arcade/configs/crossing.yaml -> ./configs/crossing.yaml -> embedded default
// Files are overlaid onto the defaults, so a file may set only the keys it changes.
func LoadCrossing(customPath string) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultCrossingConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("crossing.yaml"), filepath.Join("configs", "crossing.yaml")} {
		if path == "" {
			continue
		}
		if parsed, ok := overlayFile(path); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultCrossingYAML, &cfg); err != nil {
		return DefaultCrossingConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseCrossing decodes YAML tuning onto the defaults and validates it.
func ParseCrossing(data []byte) (CrossingConfig, error) {
	cfg := DefaultCrossingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultCrossingConfig(), fmt.Errorf("config: cannot parse tuning: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultCrossingConfig(), fmt.Errorf("config: invalid tuning: %w", err)
	}
	return cfg, nil
}

// overlayFile parses path onto the defaults. Unreadable or invalid files are skipped.
func overlayFile(path string) (CrossingConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CrossingConfig{}, false
	}
	cfg, err := ParseCrossing(data)
	if err != nil {
		return CrossingConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// Validate reports settings the engine cannot run with.
// A lane faster than one hop per tick would let bodies skip over the player.
func (c CrossingConfig) Validate() error {
	var errs []error
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	step := engine.DefaultConfig().Step
	speeds := []struct {
		name string
		v    float64
	}{
		{"car", c.Speeds.Car},
		{"truck", c.Speeds.Truck},
		{"log", c.Speeds.Log},
		{"turtle", c.Speeds.Turtle},
	}
	for _, s := range speeds {
		if s.v <= 0 || s.v > step {
			errs = append(errs, fmt.Errorf("speeds.%s must be in (0, %g], got %g", s.name, step, s.v))
		}
	}
	if c.Difficulty.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("difficulty.speed_increment must not be negative, got %g", c.Difficulty.SpeedIncrement))
	}
	return errors.Join(errs...)
}

// EngineConfig converts the tuning into the engine's configuration.
func (c CrossingConfig) EngineConfig() engine.Config {
	ec := engine.DefaultConfig()
	ec.Speeds = engine.Speeds{
		Car:    c.Speeds.Car,
		Truck:  c.Speeds.Truck,
		Log:    c.Speeds.Log,
		Turtle: c.Speeds.Turtle,
	}
	ec.SpeedIncrement = c.Difficulty.LevelSpeed(0, 1)
	return ec
}

// YAML returns the config encoded as YAML.
func (c CrossingConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}
