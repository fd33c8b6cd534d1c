package config

import (
	_ "embed"
)

//go:embed defaults/crossroad.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/crossroad.yaml and is used when the embed cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Playfield: Playfield{
			Width:  800,
			Height: 600,
		},
		Road: Road{
			Top:    100,
			Height: 400,
			Lanes:  8,
		},
		Player: Player{
			StartX:          400,
			StartY:          550,
			Width:           30,
			Height:          30,
			Step:            25,
			ClampHorizontal: true,
		},
		Obstacles: Obstacles{
			Width:           60,
			Height:          30,
			Speed:           4,
			SpawnIntervalMS: 250,
		},
		Collision: Collision{
			Tolerance: 5,
		},
		Scoring: Scoring{
			WinLine: 50,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
