package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the main menu",
	Long: `Start Tetris in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  tetris menu
  tetris menu --fps 30
  tetris menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(opts, cfg)
		if err != nil {
			return err
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoiceScores:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}

		case tui.ChoicePlay:
			// Fresh seed for every game unless one was pinned
			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			result, err := tui.Run(opts, cfg)
			if err != nil {
				return err
			}
			cfg = result.Config
			if result.Quit {
				return nil
			}

		default:
			return nil
		}
	}
}
