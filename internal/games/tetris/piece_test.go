package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseShapes(t *testing.T) {
	for _, k := range Kinds {
		t.Run(k.String(), func(t *testing.T) {
			s := BaseShape(k)
			blocks := 0
			for _, row := range s {
				require.Len(t, row, s.Width(), "shape must be rectangular")
				for _, c := range row {
					if c.IsEmpty() {
						continue
					}
					blocks++
					assert.Equal(t, k, c.Kind(), "blocks carry the kind's color")
				}
			}
			assert.Equal(t, 4, blocks)
		})
	}
}

func TestBaseShapeIsCopy(t *testing.T) {
	s := BaseShape(KindT)
	s[0][0] = Colored(KindZ)
	assert.True(t, BaseShape(KindT)[0][0].IsEmpty())
}

func TestFactoryCreateCentersPiece(t *testing.T) {
	f := NewFactory(1, 12)

	tests := []struct {
		kind  Kind
		wantX int
	}{
		{KindI, 4}, // width 4
		{KindO, 5}, // width 2
		{KindT, 5}, // width 3
		{KindS, 5},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			p := f.Create(tc.kind)
			assert.Equal(t, tc.kind, p.Kind)
			assert.Equal(t, tc.wantX, p.X)
			assert.Equal(t, 0, p.Y)
		})
	}
}

func TestFactoryNextIsReproducible(t *testing.T) {
	a := NewFactory(42, 12)
	b := NewFactory(42, 12)
	seen := make(map[Kind]int)
	for range 700 {
		pa, pb := a.Next(), b.Next()
		require.Equal(t, pa.Kind, pb.Kind)
		require.True(t, pa.Kind.Valid())
		seen[pa.Kind]++
	}
	assert.Len(t, seen, KindCount, "every kind should be drawn eventually")
}

func TestSpawnedPieceFitsEmptyGrid(t *testing.T) {
	g := NewGrid(20, 12)
	f := NewFactory(7, 12)
	for _, k := range Kinds {
		assert.False(t, Collides(g, f.Create(k), 0, 0), "kind %s", k)
	}
}

func TestPieceBlocksAndClone(t *testing.T) {
	p := &Piece{Shape: BaseShape(KindT), Kind: KindT, X: 3, Y: -1}
	assert.ElementsMatch(t, []Point{{4, -1}, {3, 0}, {4, 0}, {5, 0}}, p.Blocks())

	c := p.Clone()
	c.Shape[0][0] = Colored(KindT)
	c.X = 9
	assert.True(t, p.Shape[0][0].IsEmpty())
	assert.Equal(t, 3, p.X)
}
