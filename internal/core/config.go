package core

import "time"

const defaultTickRate = 60

// RuntimeConfig describes the terminal a game runs in and how fast it ticks.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Ticks per second
	Seed     int64 // Piece RNG seed; 0 lets the host pick one
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: defaultTickRate,
	}
}

// TickInterval returns the nominal duration of one tick.
// Non-positive rates fall back to the default.
func (c RuntimeConfig) TickInterval() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = defaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the summary a game reports to its host after every step.
type GameState struct {
	Score    int
	Level    int
	Lines    int
	Started  bool // false while the title screen waits for Enter
	GameOver bool
	Paused   bool
}

// StepResult is returned by a game's Step.
type StepResult struct {
	State GameState
}
