package tetris

import "math/rand"

// Shape is one rotation state of a piece: a rectangular matrix where
// Empty marks a gap and colored cells are blocks.
type Shape [][]Cell

// canonical holds the single base orientation of every kind.
// Rotations are derived at runtime.
var canonical = [KindCount + 1][][]uint8{
	KindI: {{1, 1, 1, 1}},
	KindJ: {{2, 0, 0}, {2, 2, 2}},
	KindL: {{0, 0, 3}, {3, 3, 3}},
	KindO: {{4, 4}, {4, 4}},
	KindS: {{0, 5, 5}, {5, 5, 0}},
	KindT: {{0, 6, 0}, {6, 6, 6}},
	KindZ: {{7, 7, 0}, {0, 7, 7}},
}

// BaseShape returns a fresh copy of the canonical orientation of k.
func BaseShape(k Kind) Shape {
	src := canonical[k]
	s := make(Shape, len(src))
	for y, row := range src {
		s[y] = make([]Cell, len(row))
		for x, v := range row {
			s[y][x] = Cell(v)
		}
	}
	return s
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y, row := range s {
		c[y] = append([]Cell(nil), row...)
	}
	return c
}

// Equal reports whether two shapes have identical dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Point is an absolute grid coordinate.
type Point struct {
	X, Y int
}

// Piece is the falling tetromino: its current rotation, fixed color and
// the grid position of the shape's top-left corner. Y may be negative
// while the piece overhangs the top of the well.
type Piece struct {
	Shape Shape
	Kind  Kind
	X, Y  int
}

// Clone returns a deep copy of the piece.
func (p *Piece) Clone() *Piece {
	return &Piece{
		Shape: p.Shape.Clone(),
		Kind:  p.Kind,
		X:     p.X,
		Y:     p.Y,
	}
}

// Blocks returns the absolute coordinates of every block of the piece.
func (p *Piece) Blocks() []Point {
	pts := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, c := range row {
			if !c.IsEmpty() {
				pts = append(pts, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return pts
}

// Factory creates pieces for a grid of a given width.
//
// Kinds for gameplay are independent uniform draws: there is no 7-bag,
// so droughts and repeats of the same kind are possible.
type Factory struct {
	rng  *rand.Rand
	cols int
}

// NewFactory creates a factory whose draws are reproducible for a seed.
func NewFactory(seed int64, cols int) *Factory {
	return &Factory{
		rng:  rand.New(rand.NewSource(seed)),
		cols: cols,
	}
}

// Create builds a piece of kind k horizontally centered at the top row.
func (f *Factory) Create(k Kind) *Piece {
	shape := BaseShape(k)
	return &Piece{
		Shape: shape,
		Kind:  k,
		X:     f.cols/2 - shape.Width()/2,
		Y:     0,
	}
}

// Next creates a piece of a uniformly random kind.
func (f *Factory) Next() *Piece {
	return f.Create(Kind(f.rng.Intn(KindCount) + 1))
}
