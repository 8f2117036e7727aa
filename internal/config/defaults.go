package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default game configuration:
// a 20x12 well, one-second drops at level 1 shrinking by 100ms per level
// down to 100ms, and a new level every 10 lines.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 12,
		},
		Timing: TimingConfig{
			BaseDropMS:    1000,
			DropStepMS:    100,
			MinDropMS:     100,
			LinesPerLevel: 10,
		},
		Input: InputConfig{
			RepeatWindowMS: 60,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
