package tui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris"
	"github.com/vovakirdan/tui-tetris/internal/metrics"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// Hooks observes a game and fans its events out to the logger, the score
// store and the metrics recorder. Every dependency is optional.
type Hooks struct {
	store   *storage.Store
	metrics *metrics.Recorder
	logger  *log.Logger
	player  string

	runID string
	score int
	level int
	lines int
	saved bool
}

var (
	_ tetris.StatusSink    = (*Hooks)(nil)
	_ tetris.LifecycleSink = (*Hooks)(nil)
)

// NewHooks creates hooks for one player's games.
func NewHooks(store *storage.Store, rec *metrics.Recorder, logger *log.Logger, player string) *Hooks {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hooks{
		store:   store,
		metrics: rec,
		logger:  logger,
		player:  player,
	}
}

// RunID identifies the current game; a new one is issued on every start.
func (h *Hooks) RunID() string {
	return h.runID
}

// GameStarted begins a new run.
func (h *Hooks) GameStarted() {
	h.runID = uuid.NewString()
	h.score, h.level, h.lines = 0, 1, 0
	h.saved = false
	h.metrics.GameStarted()
	h.logger.Debug("game started", "run", h.runID, "player", h.player)
}

// ScoreChanged tracks progress and forwards newly cleared lines to metrics.
func (h *Hooks) ScoreChanged(score, level, lines int) {
	if lines > h.lines {
		h.metrics.LinesCleared(lines - h.lines)
	}
	if level > h.level {
		h.logger.Debug("level up", "run", h.runID, "level", level)
	}
	h.score, h.level, h.lines = score, level, lines
}

// GameOver records the finished run. Saving is best-effort: a failure is
// logged and play continues.
func (h *Hooks) GameOver(finalScore int) {
	h.metrics.GameOver(finalScore)
	h.logger.Info("game over",
		"run", h.runID,
		"player", h.player,
		"score", finalScore,
		"level", h.level,
		"lines", h.lines,
	)

	if h.saved || h.store == nil || finalScore <= 0 {
		return
	}
	h.saved = true
	_, err := h.store.SaveScore(storage.ScoreEntry{
		RunID:  h.runID,
		Player: h.player,
		Score:  finalScore,
		Level:  h.level,
		Lines:  h.lines,
	})
	if err != nil {
		h.logger.Error("could not save score", "run", h.runID, "error", err)
	}
}
