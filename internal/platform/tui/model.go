package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/metrics"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Options carries the dependencies shared by every screen.
// Store, Metrics and Logger may be nil.
type Options struct {
	Tetris  config.TetrisConfig
	Store   *storage.Store
	Metrics *metrics.Recorder
	Logger  *log.Logger
	Player  string
}

// GameModel runs one Tetris game inside Bubble Tea: it ticks the game at the
// configured rate with the real time elapsed between ticks, and feeds it
// debounced key presses.
type GameModel struct {
	game       *tetris.Game
	hooks      *Hooks
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	lastTick   time.Time
	exitOnBack bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. A zero seed is replaced with the clock.
func NewGameModel(opts Options, cfg core.RuntimeConfig) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	game := tetris.New(opts.Tetris)
	hooks := NewHooks(opts.Store, opts.Metrics, opts.Logger, opts.Player)
	game.Observe(hooks, hooks)

	return GameModel{
		game:       game,
		hooks:      hooks,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(opts.Tetris.Input.RepeatWindow()),
	}
}

// Init resets the game and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickInterval())
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	// Back leaves the game only when nothing is in progress.
	if action, _ := m.keyMapper.MapKey(msg); action == core.ActionBack {
		if m.gameState.Started && !m.gameState.Paused && !m.gameState.GameOver {
			return m, nil
		}
		m.backToMenu = true
		if m.exitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick runs one simulation step with the time since the previous tick.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if !m.lastTick.IsZero() {
		m.inputFrame.DT = now.Sub(m.lastTick)
	}
	m.lastTick = now

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickInterval())
}

// saveScreenshot writes the current screen as plain text to ~/.tetris/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the runtime config, including any resize.
func (m GameModel) Config() core.RuntimeConfig {
	return m.config
}

// QuitRequested reports whether the player asked to leave the program,
// as opposed to stepping back to the menu.
func (m GameModel) QuitRequested() bool {
	return m.quitting && !m.backToMenu
}

// RunResult is what a finished game hands back to the caller.
type RunResult struct {
	Config core.RuntimeConfig // including any resize
	Quit   bool               // q or ctrl+c, not a step back
}

// Run plays a single game in the current terminal until the player leaves.
// Esc on the title, pause or game-over screen steps back; q quits.
func Run(opts Options, cfg core.RuntimeConfig) (RunResult, error) {
	model := NewGameModel(opts, cfg)
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return RunResult{Config: cfg, Quit: true}, err
	}
	if m, ok := final.(GameModel); ok {
		return RunResult{Config: m.Config(), Quit: m.QuitRequested()}, nil
	}
	return RunResult{Config: cfg, Quit: true}, nil
}
