package tetris

import "time"

// State is the session lifecycle state.
type State int

const (
	StateReady State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Command is a discrete player command.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
	CmdHardDrop
	CmdTogglePause
)

func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdRotate:
		return "rotate"
	case CmdHardDrop:
		return "hard-drop"
	case CmdTogglePause:
		return "toggle-pause"
	default:
		return "none"
	}
}

// Renderer draws the session. The active piece may have blocks above the
// top edge; those must simply not be drawn.
type Renderer interface {
	DrawBoard(g *Grid)
	DrawPiece(p *Piece)
	DrawPreview(p *Piece)
}

// StatusSink is notified with the current score, level and lines after
// any change, and once on every start.
type StatusSink interface {
	ScoreChanged(score, level, lines int)
}

// LifecycleSink is notified when a game starts and when it ends.
type LifecycleSink interface {
	GameStarted()
	GameOver(finalScore int)
}

// Options configures a Session. Zero fields take defaults.
type Options struct {
	Rows   int
	Cols   int
	Timing Timing
	Seed   int64

	Status    StatusSink
	Lifecycle LifecycleSink
}

const (
	DefaultRows = 20
	DefaultCols = 12
)

// Session owns all mutable game state. It is not safe for concurrent use;
// the host serializes ticks and commands.
type Session struct {
	grid     *Grid
	factory  *Factory
	active   *Piece
	next     *Piece
	progress Progression
	elapsed  time.Duration
	state    State
	pieces   int

	status    StatusSink
	lifecycle LifecycleSink
}

// NewSession creates a session in the Ready state.
func NewSession(opts Options) *Session {
	if opts.Rows <= 0 {
		opts.Rows = DefaultRows
	}
	if opts.Cols <= 0 {
		opts.Cols = DefaultCols
	}
	if opts.Timing == (Timing{}) {
		opts.Timing = DefaultTiming()
	}
	if opts.Timing.LinesPerLevel <= 0 {
		opts.Timing.LinesPerLevel = DefaultTiming().LinesPerLevel
	}
	return &Session{
		grid:      NewGrid(opts.Rows, opts.Cols),
		factory:   NewFactory(opts.Seed, opts.Cols),
		progress:  NewProgression(opts.Timing),
		state:     StateReady,
		status:    opts.Status,
		lifecycle: opts.Lifecycle,
	}
}

// Observe replaces the attached sinks. Nil disables a sink.
func (s *Session) Observe(status StatusSink, lifecycle LifecycleSink) {
	s.status = status
	s.lifecycle = lifecycle
}

// Start resets all state and begins a game. It serves both the initial
// start and every restart, from any state.
func (s *Session) Start() {
	s.grid.Reset()
	s.progress.Reset()
	s.elapsed = 0
	s.pieces = 0
	s.active = s.factory.Next()
	s.next = s.factory.Next()
	s.state = StateRunning

	if s.lifecycle != nil {
		s.lifecycle.GameStarted()
	}
	s.notifyStatus()

	if Collides(s.grid, s.active, 0, 0) {
		s.finish()
	}
}

// Tick advances the drop clock by dt. A descent happens only once the
// accumulated time strictly exceeds the drop interval, after which the
// accumulator starts over. At most one descent happens per tick.
func (s *Session) Tick(dt time.Duration) {
	if s.state != StateRunning || dt <= 0 {
		return
	}
	s.elapsed += dt
	if s.elapsed > s.progress.DropInterval {
		s.descend()
	}
}

// Handle applies a player command. Only TogglePause is honored outside
// the Running state, and only while Paused. Illegal moves are no-ops.
func (s *Session) Handle(cmd Command) {
	switch s.state {
	case StateRunning:
	case StatePaused:
		if cmd == CmdTogglePause {
			s.state = StateRunning
		}
		return
	default:
		return
	}

	switch cmd {
	case CmdMoveLeft:
		s.shift(-1)
	case CmdMoveRight:
		s.shift(1)
	case CmdSoftDrop:
		s.descend()
	case CmdRotate:
		Rotate(s.grid, s.active)
	case CmdHardDrop:
		s.hardDrop()
	case CmdTogglePause:
		s.state = StatePaused
	}
}

func (s *Session) shift(dx int) {
	if !Collides(s.grid, s.active, dx, 0) {
		s.active.X += dx
	}
}

// descend moves the active piece down one row, or settles it when it
// cannot move. The drop accumulator is reset either way.
func (s *Session) descend() {
	s.elapsed = 0
	if !Collides(s.grid, s.active, 0, 1) {
		s.active.Y++
		return
	}
	s.settle()
}

func (s *Session) hardDrop() {
	rows := 0
	for !Collides(s.grid, s.active, 0, 1) {
		s.active.Y++
		rows++
	}
	if rows > 0 {
		s.progress.AddHardDrop(rows)
		s.notifyStatus()
	}
	s.elapsed = 0
	s.settle()
}

// settle locks the active piece, clears lines, then spawns the next
// piece. Overflow during the lock or a blocked spawn ends the game.
func (s *Session) settle() {
	overflow := Lock(s.grid, s.active)
	s.pieces++

	if s.progress.AddLines(ClearLines(s.grid)) {
		s.notifyStatus()
	}
	if overflow {
		s.finish()
		return
	}

	s.active = s.next
	s.next = s.factory.Next()
	if Collides(s.grid, s.active, 0, 0) {
		s.finish()
	}
}

func (s *Session) finish() {
	s.state = StateGameOver
	if s.lifecycle != nil {
		s.lifecycle.GameOver(s.progress.Score)
	}
}

func (s *Session) notifyStatus() {
	if s.status != nil {
		s.status.ScoreChanged(s.progress.Score, s.progress.Level, s.progress.Lines)
	}
}

// Render draws the board, the active piece and the preview. Before the
// first start only the empty board is drawn.
func (s *Session) Render(r Renderer) {
	r.DrawBoard(s.grid)
	if s.active != nil {
		r.DrawPiece(s.active)
	}
	if s.next != nil {
		r.DrawPreview(s.next)
	}
}

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Grid returns the playfield. Callers must not mutate it.
func (s *Session) Grid() *Grid { return s.grid }

// Active returns the falling piece, nil before the first start.
func (s *Session) Active() *Piece { return s.active }

// Next returns the preview piece, nil before the first start.
func (s *Session) Next() *Piece { return s.next }

// Progress returns a copy of the score tracker.
func (s *Session) Progress() Progression { return s.progress }

// Elapsed returns the time accumulated toward the next automatic descent.
func (s *Session) Elapsed() time.Duration { return s.elapsed }

// Pieces returns how many pieces have locked in the current game.
func (s *Session) Pieces() int { return s.pieces }
