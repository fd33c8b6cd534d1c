package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.crossroad/config.yaml -> ./configs/crossroad.yaml -> embedded default.
// Files are layered over the defaults, so they only need the keys they change.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "crossroad.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks that the configuration describes a playable field.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
		}
	}

	check(c.Playfield.Width > 0 && c.Playfield.Height > 0,
		"playfield must be positive, got %vx%v", c.Playfield.Width, c.Playfield.Height)
	check(c.Road.Lanes > 0, "road.lanes must be positive, got %d", c.Road.Lanes)
	check(c.Road.Top >= 0 && c.Road.Height > 0 && c.Road.Top+c.Road.Height <= c.Playfield.Height,
		"road band [%v, %v) must lie inside the playfield", c.Road.Top, c.Road.Top+c.Road.Height)
	check(c.Player.Width > 0 && c.Player.Height > 0,
		"player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	check(c.Player.Step > 0, "player.step must be positive, got %v", c.Player.Step)
	check(c.Player.StartX >= 0 && c.Player.StartX+c.Player.Width <= c.Playfield.Width &&
		c.Player.StartY >= 0 && c.Player.StartY+c.Player.Height <= c.Playfield.Height,
		"player start (%v, %v) must lie inside the playfield", c.Player.StartX, c.Player.StartY)
	check(c.Obstacles.Width > 0 && c.Obstacles.Height > 0,
		"obstacle size must be positive, got %vx%v", c.Obstacles.Width, c.Obstacles.Height)
	check(c.Obstacles.Speed > 0, "obstacles.speed must be positive, got %v", c.Obstacles.Speed)
	check(c.Obstacles.SpawnIntervalMS > 0,
		"obstacles.spawn_interval_ms must be positive, got %d", c.Obstacles.SpawnIntervalMS)
	check(c.Collision.Tolerance >= 0, "collision.tolerance must not be negative, got %v", c.Collision.Tolerance)
	check(c.Scoring.WinLine < c.Player.StartY,
		"scoring.win_line %v must be above player.start_y %v", c.Scoring.WinLine, c.Player.StartY)

	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".crossroad", filename)
}
