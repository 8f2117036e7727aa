package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotateShapeClockwise(t *testing.T) {
	got := RotateShape(BaseShape(KindT))

	t6 := Colored(KindT)
	want := Shape{
		{t6, Empty},
		{t6, t6},
		{t6, Empty},
	}
	assert.True(t, want.Equal(got), "got %v", got)
}

func TestRotateShapeFourTimesIsIdentity(t *testing.T) {
	for _, k := range Kinds {
		s := BaseShape(k)
		r := s
		for range 4 {
			r = RotateShape(r)
		}
		assert.True(t, s.Equal(r), "kind %s", k)
	}
}

func TestNextKickSequence(t *testing.T) {
	want := []int{1, -2, 3, -4, 5, -6}
	offset := 0
	for _, w := range want {
		offset = nextKick(offset)
		require.Equal(t, w, offset)
	}
}

func TestRotateOPieceNeverChanges(t *testing.T) {
	g := gridFrom(t,
		"......",
		"......",
		"Z....Z",
		"ZZ..ZZ",
	)
	p := &Piece{Shape: BaseShape(KindO), Kind: KindO, X: 2, Y: 2}
	before := p.Clone()

	assert.True(t, Rotate(g, p))
	assert.True(t, before.Shape.Equal(p.Shape))
	assert.Equal(t, before.X, p.X)
	assert.Equal(t, before.Y, p.Y)
}

func TestRotateKicksOffWall(t *testing.T) {
	g := NewGrid(20, 12)
	vertical := RotateShape(BaseShape(KindI))
	p := &Piece{Shape: vertical, Kind: KindI, X: 10, Y: 5}

	// In place the horizontal bar spans columns 10..13; +1 is worse,
	// -2 lands it on columns 8..11.
	require.True(t, Rotate(g, p))
	assert.Equal(t, 8, p.X)
	assert.Equal(t, 5, p.Y)
	assert.Equal(t, 4, p.Shape.Width())
	assert.False(t, Collides(g, p, 0, 0))
}

func TestRotateAbortRestoresPiece(t *testing.T) {
	// A one-wide shaft: no horizontal placement of I exists on rows 4..9.
	g := gridFrom(t,
		"......",
		"......",
		"......",
		"......",
		"ZZ.ZZZ",
		"ZZ.ZZZ",
		"ZZ.ZZZ",
		"ZZ.ZZZ",
		"ZZ.ZZZ",
		"ZZ.ZZZ",
	)
	p := &Piece{Shape: RotateShape(BaseShape(KindI)), Kind: KindI, X: 2, Y: 5}
	before := p.Clone()

	assert.False(t, Rotate(g, p))
	assert.True(t, before.Shape.Equal(p.Shape))
	assert.Equal(t, before.X, p.X)
	assert.Equal(t, before.Y, p.Y)
}

func TestRotateNeverLeavesCollision(t *testing.T) {
	g := gridFrom(t,
		"........",
		"........",
		"........",
		"...S....",
		"..SS...Z",
		"I.S...ZZ",
		"I.....Z.",
		"I.OO....",
	)
	for _, k := range Kinds {
		for x := -1; x < g.Cols(); x++ {
			for y := -2; y < g.Rows(); y++ {
				p := &Piece{Shape: BaseShape(k), Kind: k, X: x, Y: y}
				if Collides(g, p, 0, 0) {
					continue
				}
				before := p.Clone()
				if Rotate(g, p) {
					require.False(t, Collides(g, p, 0, 0), "%s at (%d,%d)", k, x, y)
					require.Equal(t, before.Y, p.Y, "rotation never moves vertically")
				} else {
					require.True(t, before.Shape.Equal(p.Shape))
					require.Equal(t, before.X, p.X)
					require.Equal(t, before.Y, p.Y)
				}
			}
		}
	}
}
