package tetris

import (
	"strings"
	"time"
)

// Snapshot is a comparable summary of a session. Two sessions driven with
// the same seed and the same inputs produce equal snapshots.
type Snapshot struct {
	State   State
	Score   int
	Level   int
	Lines   int
	Pieces  int
	Elapsed time.Duration
	Drop    time.Duration

	Active Kind
	X, Y   int
	Shape  string
	Next   Kind

	// Board is Grid.String(): one line per row, '.' for empty cells.
	Board string
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Score:   s.progress.Score,
		Level:   s.progress.Level,
		Lines:   s.progress.Lines,
		Pieces:  s.pieces,
		Elapsed: s.elapsed,
		Drop:    s.progress.DropInterval,
		Board:   s.grid.String(),
	}
	if s.active != nil {
		snap.Active = s.active.Kind
		snap.X = s.active.X
		snap.Y = s.active.Y
		snap.Shape = shapeString(s.active.Shape)
	}
	if s.next != nil {
		snap.Next = s.next.Kind
	}
	return snap
}

func shapeString(sh Shape) string {
	var sb strings.Builder
	for y, row := range sh {
		if y > 0 {
			sb.WriteByte('/')
		}
		for _, c := range row {
			if c.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('#')
			}
		}
	}
	return sb.String()
}
