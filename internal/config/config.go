// Package config provides YAML-based game configuration loading
// for the tetris platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Input  InputConfig  `yaml:"input"`
}

// BoardConfig defines the well dimensions. They never change during a game.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TimingConfig defines automatic descent speed and level pacing.
// The drop interval at level L is max(min_drop_ms, base_drop_ms - (L-1)*drop_step_ms).
type TimingConfig struct {
	BaseDropMS    int `yaml:"base_drop_ms"`
	DropStepMS    int `yaml:"drop_step_ms"`
	MinDropMS     int `yaml:"min_drop_ms"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// InputConfig defines keyboard handling parameters.
type InputConfig struct {
	// RepeatWindowMS is how close two presses of the same key must be to
	// count as terminal auto-repeat rather than a fresh press. 0 disables it.
	RepeatWindowMS int `yaml:"repeat_window_ms"`
}

// BaseDrop returns the level-1 drop interval.
func (t TimingConfig) BaseDrop() time.Duration {
	return time.Duration(t.BaseDropMS) * time.Millisecond
}

// DropStep returns how much faster each level gets.
func (t TimingConfig) DropStep() time.Duration {
	return time.Duration(t.DropStepMS) * time.Millisecond
}

// MinDrop returns the fastest allowed drop interval.
func (t TimingConfig) MinDrop() time.Duration {
	return time.Duration(t.MinDropMS) * time.Millisecond
}

// RepeatWindow returns the auto-repeat detection window.
func (i InputConfig) RepeatWindow() time.Duration {
	return time.Duration(i.RepeatWindowMS) * time.Millisecond
}

// Minimum well size that still fits every tetromino in every rotation.
const (
	MinRows = 4
	MinCols = 4
)

// Validate checks the configuration for values the engine cannot run with.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Board.Rows < MinRows {
		errs = append(errs, fmt.Errorf("board.rows must be at least %d, got %d", MinRows, c.Board.Rows))
	}
	if c.Board.Cols < MinCols {
		errs = append(errs, fmt.Errorf("board.cols must be at least %d, got %d", MinCols, c.Board.Cols))
	}
	if c.Timing.BaseDropMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.base_drop_ms must be positive, got %d", c.Timing.BaseDropMS))
	}
	if c.Timing.MinDropMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_drop_ms must be positive, got %d", c.Timing.MinDropMS))
	}
	if c.Timing.DropStepMS < 0 {
		errs = append(errs, fmt.Errorf("timing.drop_step_ms must not be negative, got %d", c.Timing.DropStepMS))
	}
	if c.Timing.MinDropMS > c.Timing.BaseDropMS {
		errs = append(errs, fmt.Errorf("timing.min_drop_ms (%d) exceeds timing.base_drop_ms (%d)",
			c.Timing.MinDropMS, c.Timing.BaseDropMS))
	}
	if c.Timing.LinesPerLevel <= 0 {
		errs = append(errs, fmt.Errorf("timing.lines_per_level must be positive, got %d", c.Timing.LinesPerLevel))
	}
	if c.Input.RepeatWindowMS < 0 {
		errs = append(errs, fmt.Errorf("input.repeat_window_ms must not be negative, got %d", c.Input.RepeatWindowMS))
	}
	return errors.Join(errs...)
}
