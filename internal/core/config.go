package core

// RuntimeConfig contains configuration passed to the platform at startup.
// The playfield itself is sized in pixels by the game config; these values
// describe the terminal the playfield is projected onto.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is a snapshot of the game's externally visible status.
type GameState struct {
	Score    int  // Crossings completed since the last reset
	GameOver bool // Latched on collision until an explicit reset
}
