package tetris

// ClearLines removes every full row, bottom to top, and returns how many
// were removed. After a collapse the same row index is checked again
// since the row above has just moved into it.
func ClearLines(g *Grid) int {
	cleared := 0
	for y := g.Rows() - 1; y >= 0; y-- {
		if !g.RowFull(y) {
			continue
		}
		g.Collapse(y)
		cleared++
		y++
	}
	return cleared
}
