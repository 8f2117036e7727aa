package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gridFrom builds a grid from rows of '.' (empty) and kind letters.
// '#' is accepted as shorthand for a T block.
func gridFrom(t *testing.T, rows ...string) *Grid {
	t.Helper()
	require.NotEmpty(t, rows)
	g := NewGrid(len(rows), len(rows[0]))
	for y, row := range rows {
		require.Len(t, row, g.Cols(), "row %d", y)
		for x, ch := range row {
			if ch == '.' {
				continue
			}
			g.Set(x, y, Colored(kindFromLetter(t, ch)))
		}
	}
	return g
}

func kindFromLetter(t *testing.T, ch rune) Kind {
	t.Helper()
	if ch == '#' {
		return KindT
	}
	for _, k := range Kinds {
		if k.String() == string(ch) {
			return k
		}
	}
	t.Fatalf("unknown kind letter %q", ch)
	return 0
}

func TestNewGridIsEmpty(t *testing.T) {
	g := NewGrid(20, 12)
	assert.Equal(t, 20, g.Rows())
	assert.Equal(t, 12, g.Cols())
	for y := range g.Rows() {
		for x := range g.Cols() {
			require.True(t, g.At(x, y).IsEmpty(), "cell (%d,%d)", x, y)
		}
	}
}

func TestGridIsOccupied(t *testing.T) {
	g := gridFrom(t,
		"....",
		"..I.",
		"....",
	)

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"empty cell", 0, 0, false},
		{"locked cell", 2, 1, true},
		{"left wall", -1, 1, true},
		{"right wall", 4, 1, true},
		{"floor", 1, 3, true},
		{"above top", 1, -1, false},
		{"above top outside columns", -1, -3, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, g.IsOccupied(tc.x, tc.y))
		})
	}
}

func TestGridSetOutOfBoundsIgnored(t *testing.T) {
	g := NewGrid(3, 3)
	before := g.String()
	g.Set(-1, 0, Colored(KindZ))
	g.Set(0, -1, Colored(KindZ))
	g.Set(3, 0, Colored(KindZ))
	g.Set(0, 3, Colored(KindZ))
	assert.Equal(t, before, g.String())
	assert.Equal(t, Empty, g.At(5, 5))
}

func TestGridRowFull(t *testing.T) {
	g := gridFrom(t,
		"IJ.O",
		"IJLO",
	)
	assert.False(t, g.RowFull(0))
	assert.True(t, g.RowFull(1))
	assert.False(t, g.RowFull(-1))
	assert.False(t, g.RowFull(2))
}

func TestGridCollapse(t *testing.T) {
	g := gridFrom(t,
		"I...",
		".J..",
		"SSSS",
		"..L.",
	)
	g.Collapse(2)

	want := strings.Join([]string{
		"....",
		"I...",
		".J..",
		"..L.",
	}, "\n")
	assert.Equal(t, want, g.String())
	assert.Equal(t, 4, g.Rows())
}

func TestGridCollapseTopRow(t *testing.T) {
	g := gridFrom(t,
		"TTTT",
		"Z...",
	)
	g.Collapse(0)
	assert.Equal(t, "....\nZ...", g.String())
}

func TestGridResetAndClone(t *testing.T) {
	g := gridFrom(t,
		"I.",
		".O",
	)
	c := g.Clone()
	g.Reset()

	assert.Equal(t, "..\n..", g.String())
	assert.Equal(t, "I.\n.O", c.String(), "clone must not share storage")
}
