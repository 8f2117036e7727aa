package tetris

import "time"

// Scoring constants.
const (
	LinePoints     = 100 // per cleared line, multiplied by the level
	HardDropPoints = 2   // per row descended during a hard drop
)

// Timing controls how fast pieces fall as the level rises.
type Timing struct {
	BaseInterval  time.Duration // drop interval at level 1
	Step          time.Duration // reduction per level
	MinInterval   time.Duration // floor
	LinesPerLevel int
}

// DefaultTiming returns 1s at level 1, 100ms faster per level, never below
// 100ms, with a level every 10 lines. Speed stops increasing at level 10.
func DefaultTiming() Timing {
	return Timing{
		BaseInterval:  time.Second,
		Step:          100 * time.Millisecond,
		MinInterval:   100 * time.Millisecond,
		LinesPerLevel: 10,
	}
}

// IntervalFor returns the drop interval at the given level.
func (t Timing) IntervalFor(level int) time.Duration {
	return max(t.MinInterval, t.BaseInterval-time.Duration(level-1)*t.Step)
}

// Progression tracks score, level and lines, and derives the drop interval.
type Progression struct {
	Score        int
	Level        int
	Lines        int
	DropInterval time.Duration

	timing Timing
}

// NewProgression returns a level-1 progression.
func NewProgression(t Timing) Progression {
	p := Progression{timing: t}
	p.Reset()
	return p
}

// Reset returns to score 0, level 1.
func (p *Progression) Reset() {
	p.Score = 0
	p.Level = 1
	p.Lines = 0
	p.DropInterval = p.timing.IntervalFor(1)
}

// AddLines credits n cleared lines. Points are awarded at the level in
// effect before the clear; level and drop interval are recomputed after.
// Reports whether anything changed.
func (p *Progression) AddLines(n int) bool {
	if n <= 0 {
		return false
	}
	p.Lines += n
	p.Score += n * LinePoints * p.Level
	p.Level = p.Lines/p.timing.LinesPerLevel + 1
	p.DropInterval = p.timing.IntervalFor(p.Level)
	return true
}

// AddHardDrop credits rows descended by a hard drop.
func (p *Progression) AddHardDrop(rows int) {
	if rows > 0 {
		p.Score += rows * HardDropPoints
	}
}
