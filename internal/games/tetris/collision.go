package tetris

// Collides reports whether the piece, shifted by (dx, dy), would overlap a
// wall, the floor or a locked block. Cells above the top edge are free.
// Every move, rotation and spawn check goes through here.
func Collides(g *Grid, p *Piece, dx, dy int) bool {
	for y, row := range p.Shape {
		for x, c := range row {
			if c.IsEmpty() {
				continue
			}
			nx := p.X + x + dx
			ny := p.Y + y + dy
			if nx < 0 || nx >= g.Cols() || ny >= g.Rows() {
				return true
			}
			if ny >= 0 && g.IsOccupied(nx, ny) {
				return true
			}
		}
	}
	return false
}

// Lock writes the piece's blocks into the grid in its own color.
// It reports overflow when any block is still above the top edge; the
// blocks that are inside the grid are written regardless.
func Lock(g *Grid, p *Piece) (overflow bool) {
	cell := Colored(p.Kind)
	for _, pt := range p.Blocks() {
		if pt.Y < 0 {
			overflow = true
			continue
		}
		g.Set(pt.X, pt.Y, cell)
	}
	return overflow
}
