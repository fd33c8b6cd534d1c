package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("embedded YAML = %+v\nexpected %+v", cfg, DefaultConfig())
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("obstacles:\n  speed: 7\n  spawn_interval_ms: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Obstacles.Speed != 7 {
		t.Errorf("Obstacles.Speed = %v, expected 7", cfg.Obstacles.Speed)
	}
	if cfg.Obstacles.SpawnInterval().Milliseconds() != 500 {
		t.Errorf("SpawnInterval() = %v, expected 500ms", cfg.Obstacles.SpawnInterval())
	}
	// Untouched keys keep their defaults
	if cfg.Player.Step != DefaultConfig().Player.Step {
		t.Errorf("Player.Step = %v, expected default %v", cfg.Player.Step, DefaultConfig().Player.Step)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error should wrap os.ErrNotExist, got %v", err)
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("road:\n  lanes: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Load() error = %v, expected ErrInvalid", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		valid  bool
	}{
		{"defaults", func(*Config) {}, true},
		{"zero tolerance", func(c *Config) { c.Collision.Tolerance = 0 }, true},
		{"negative tolerance", func(c *Config) { c.Collision.Tolerance = -1 }, false},
		{"zero playfield", func(c *Config) { c.Playfield.Width = 0 }, false},
		{"road below playfield", func(c *Config) { c.Road.Top = 500 }, false},
		{"no lanes", func(c *Config) { c.Road.Lanes = 0 }, false},
		{"zero step", func(c *Config) { c.Player.Step = 0 }, false},
		{"start outside", func(c *Config) { c.Player.StartX = 790 }, false},
		{"zero speed", func(c *Config) { c.Obstacles.Speed = 0 }, false},
		{"zero spawn interval", func(c *Config) { c.Obstacles.SpawnIntervalMS = 0 }, false},
		{"win line below start", func(c *Config) { c.Scoring.WinLine = 560 }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("round trip changed config: %+v", cfg)
	}
}

func TestLaneHeight(t *testing.T) {
	r := Road{Top: 100, Height: 400, Lanes: 8}
	if r.LaneHeight() != 50 {
		t.Errorf("LaneHeight() = %v, expected 50", r.LaneHeight())
	}
}
