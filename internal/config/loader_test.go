package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded default YAML should parse: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tetris.yaml")
	data := []byte("board:\n  rows: 16\ntiming:\n  base_drop_ms: 800\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, source, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Board.Rows != 16 {
		t.Errorf("Board.Rows = %d, expected 16", cfg.Board.Rows)
	}
	// Keys not mentioned keep their defaults
	if cfg.Board.Cols != 12 {
		t.Errorf("Board.Cols = %d, expected default 12", cfg.Board.Cols)
	}
	if cfg.Timing.BaseDrop() != 800*time.Millisecond {
		t.Errorf("BaseDrop() = %v, expected 800ms", cfg.Timing.BaseDrop())
	}
	if cfg.Timing.MinDrop() != 100*time.Millisecond {
		t.Errorf("MinDrop() = %v, expected default 100ms", cfg.Timing.MinDrop())
	}
}

func TestLoadTetrisCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := LoadTetris(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	if _, _, err := LoadTetris(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("board:\n  cols: 2\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	_, _, err := LoadTetris(invalid)
	if err == nil || !strings.Contains(err.Error(), "board.cols") {
		t.Errorf("expected board.cols validation error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TetrisConfig)
		wantErr string
	}{
		{"defaults", func(*TetrisConfig) {}, ""},
		{"too few rows", func(c *TetrisConfig) { c.Board.Rows = 3 }, "board.rows"},
		{"zero base drop", func(c *TetrisConfig) { c.Timing.BaseDropMS = 0 }, "base_drop_ms"},
		{"negative step", func(c *TetrisConfig) { c.Timing.DropStepMS = -1 }, "drop_step_ms"},
		{"min above base", func(c *TetrisConfig) { c.Timing.MinDropMS = 2000 }, "exceeds"},
		{"zero lines per level", func(c *TetrisConfig) { c.Timing.LinesPerLevel = 0 }, "lines_per_level"},
		{"negative repeat window", func(c *TetrisConfig) { c.Input.RepeatWindowMS = -5 }, "repeat_window_ms"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected error mentioning %q", err, tc.wantErr)
			}
		})
	}
}
