package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// RotateShape returns s turned 90° clockwise: column i of s, read from
// bottom to top, becomes row i of the result.
func RotateShape(s Shape) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		row := make([]Cell, h)
		for j := 0; j < h; j++ {
			row[j] = s[h-1-j][i]
		}
		out[i] = row
	}
	return out
}

// nextKick returns the horizontal offset tried after offset failed.
// Starting from 0 the order is 0, +1, -2, +3, -4, ...
func nextKick(offset int) int {
	if offset > 0 {
		return -(offset + 1)
	}
	return -offset + 1
}

// Rotate turns the piece clockwise, kicking it sideways if the rotated
// shape collides in place. Offsets are tried in nextKick order until one
// fits; once the offset magnitude exceeds the rotated width the rotation
// is abandoned and the piece is left exactly as it was. The piece never
// moves vertically. Reports whether the rotation happened.
func Rotate(g *Grid, p *Piece) bool {
	old := p.Shape
	p.Shape = RotateShape(old)

	offset := 0
	for Collides(g, p, offset, 0) {
		offset = nextKick(offset)
		if core.Abs(offset) > p.Shape.Width() {
			p.Shape = old
			return false
		}
	}
	p.X += offset
	return true
}
