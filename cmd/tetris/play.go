package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of Tetris right away.

Controls:
  Left/Right, A/D, H/L  - Move
  Up, W, K, X           - Rotate
  Down, S, J            - Soft drop
  Space                 - Hard drop
  P                     - Pause
  Enter                 - Start
  R                     - Restart (after game over)
  Esc                   - Leave (when not playing)
  Ctrl+S                - Save screenshot
  Q/Ctrl+C              - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard, "tetris")
	if err != nil {
		return err
	}
	defer closeLog()

	gameCfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := tui.Options{
		Tetris: gameCfg,
		Store:  store,
		Logger: logger,
		Player: localPlayer(),
	}
	if _, err := tui.Run(opts, runtimeConfig()); err != nil {
		return err
	}
	return nil
}
