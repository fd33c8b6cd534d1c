// Package config provides YAML-based game configuration loading for the
// crossroad game.
package config

import "time"

// Config contains all tunable parameters of the crossroad game.
// Lengths are playfield pixels; speeds are pixels per frame.
type Config struct {
	Playfield Playfield `yaml:"playfield"`
	Road      Road      `yaml:"road"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Collision Collision `yaml:"collision"`
	Scoring   Scoring   `yaml:"scoring"`
}

// Playfield defines the fixed simulation area.
type Playfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Road defines the drivable band obstacles spawn in.
type Road struct {
	Top    float64 `yaml:"top"`
	Height float64 `yaml:"height"`
	Lanes  int     `yaml:"lanes"`
}

// LaneHeight returns the height of a single lane.
func (r Road) LaneHeight() float64 {
	if r.Lanes <= 0 {
		return r.Height
	}
	return r.Height / float64(r.Lanes)
}

// Player defines the controllable character.
type Player struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Step            float64 `yaml:"step"`
	ClampHorizontal bool    `yaml:"clamp_horizontal"`
}

// Obstacles defines car geometry, speed and spawn cadence.
type Obstacles struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	SpawnIntervalMS int     `yaml:"spawn_interval_ms"`
}

// SpawnInterval returns the spawn period as a duration.
func (o Obstacles) SpawnInterval() time.Duration {
	return time.Duration(o.SpawnIntervalMS) * time.Millisecond
}

// Collision defines the fairness margin of the overlap test.
type Collision struct {
	Tolerance float64 `yaml:"tolerance"`
}

// Scoring defines the win line near the top of the playfield.
type Scoring struct {
	WinLine float64 `yaml:"win_line"`
}
