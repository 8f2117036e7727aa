package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimingIntervalFor(t *testing.T) {
	tm := DefaultTiming()
	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{2, 900 * time.Millisecond},
		{9, 200 * time.Millisecond},
		{10, 100 * time.Millisecond},
		{11, 100 * time.Millisecond},
		{30, 100 * time.Millisecond},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tm.IntervalFor(tc.level), "level %d", tc.level)
	}
}

func TestProgressionScoresAtPreClearLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		lines     int
		cleared   int
		wantScore int
		wantLevel int
	}{
		{"single at level 1", 1, 0, 1, 100, 1},
		{"tetris at level 1", 1, 0, 4, 400, 1},
		{"double at level 3", 3, 20, 2, 600, 3},
		{"crossing into level 2 scores at level 1", 1, 9, 4, 400, 2},
		{"crossing into level 4 scores at level 3", 3, 28, 3, 900, 4},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProgression(DefaultTiming())
			p.Level = tc.level
			p.Lines = tc.lines

			assert.True(t, p.AddLines(tc.cleared))
			assert.Equal(t, tc.wantScore, p.Score)
			assert.Equal(t, tc.wantLevel, p.Level)
			assert.Equal(t, tc.lines+tc.cleared, p.Lines)
		})
	}
}

func TestProgressionLevelTwoAtTenLines(t *testing.T) {
	p := NewProgression(DefaultTiming())
	for range 9 {
		p.AddLines(1)
	}
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, time.Second, p.DropInterval)

	p.AddLines(1)
	assert.Equal(t, 10, p.Lines)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 900*time.Millisecond, p.DropInterval)
	assert.Equal(t, 1000, p.Score)
}

func TestProgressionNoLines(t *testing.T) {
	p := NewProgression(DefaultTiming())
	assert.False(t, p.AddLines(0))
	assert.Equal(t, 0, p.Score)
	assert.Equal(t, 1, p.Level)
}

func TestProgressionHardDrop(t *testing.T) {
	p := NewProgression(DefaultTiming())
	p.AddHardDrop(5)
	assert.Equal(t, 10, p.Score)
	p.AddHardDrop(0)
	assert.Equal(t, 10, p.Score)
}

func TestProgressionReset(t *testing.T) {
	p := NewProgression(DefaultTiming())
	p.AddLines(25)
	p.Reset()
	assert.Equal(t, NewProgression(DefaultTiming()), p)
}
