package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game adapts a Session to the platform's frame loop: it turns input frames
// into commands, advances the drop clock by real frame time and draws into
// a core.Screen.
type Game struct {
	cfg     config.TetrisConfig
	session *Session
	tick    time.Duration

	screenW  int
	screenH  int
	tooSmall bool

	status    StatusSink
	lifecycle LifecycleSink
}

// New creates a game using the given board and timing configuration.
// Reset must be called before the first Step.
func New(cfg config.TetrisConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier used for score records.
func (g *Game) ID() string {
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Tetris"
}

// Observe attaches status and lifecycle sinks. They survive Reset.
func (g *Game) Observe(status StatusSink, lifecycle LifecycleSink) {
	g.status = status
	g.lifecycle = lifecycle
	if g.session != nil {
		g.session.Observe(status, lifecycle)
	}
}

// Reset discards the current session and creates a fresh one in Ready.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.tick = rc.TickInterval()
	g.session = NewSession(Options{
		Rows: g.cfg.Board.Rows,
		Cols: g.cfg.Board.Cols,
		Timing: Timing{
			BaseInterval:  g.cfg.Timing.BaseDrop(),
			Step:          g.cfg.Timing.DropStep(),
			MinInterval:   g.cfg.Timing.MinDrop(),
			LinesPerLevel: g.cfg.Timing.LinesPerLevel,
		},
		Seed:      rc.Seed,
		Status:    g.status,
		Lifecycle: g.lifecycle,
	})
	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the terminal size. Play freezes while the well does not fit.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	cols, rows := DefaultCols, DefaultRows
	if g.session != nil {
		cols, rows = g.session.Grid().Cols(), g.session.Grid().Rows()
	}
	minW, minH := MinScreenSize(rows, cols)
	g.tooSmall = w < minW || h < minH
}

// Session exposes the underlying session.
func (g *Game) Session() *Session {
	return g.session
}

// Step applies the frame's actions in order, then advances the drop clock
// by the frame's measured duration. A frame that starts a game does not
// tick, so every game begins with an empty drop clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	started := false
	for _, a := range in.Actions {
		if g.apply(a) {
			started = true
		}
	}
	if started {
		return core.StepResult{State: g.State()}
	}

	dt := in.DT
	if dt <= 0 {
		dt = g.tick
	}
	g.session.Tick(dt)

	return core.StepResult{State: g.State()}
}

// apply feeds one action to the session and reports whether it started
// a game.
func (g *Game) apply(a core.Action) bool {
	s := g.session
	switch a {
	case core.ActionConfirm:
		if s.State() == StateReady {
			s.Start()
			return true
		}
	case core.ActionRestart:
		if s.State() == StateGameOver {
			s.Start()
			return true
		}
	case core.ActionLeft:
		s.Handle(CmdMoveLeft)
	case core.ActionRight:
		s.Handle(CmdMoveRight)
	case core.ActionDown:
		s.Handle(CmdSoftDrop)
	case core.ActionRotate:
		s.Handle(CmdRotate)
	case core.ActionDrop:
		s.Handle(CmdHardDrop)
	case core.ActionPause:
		s.Handle(CmdTogglePause)
	}
	return false
}

// State reports the game status to the platform.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	p := g.session.Progress()
	st := g.session.State()
	return core.GameState{
		Score:    p.Score,
		Level:    p.Level,
		Lines:    p.Lines,
		Started:  st != StateReady,
		GameOver: st == StateGameOver,
		Paused:   st == StatePaused,
	}
}
