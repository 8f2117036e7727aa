package tetris

// Grid is the fixed-size well holding locked blocks.
// Row 0 is the top; x grows to the right.
type Grid struct {
	rows  int
	cols  int
	cells [][]Cell
}

// NewGrid creates an empty grid. Its dimensions never change afterwards.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([][]Cell, rows),
	}
	for y := range g.cells {
		g.cells[y] = make([]Cell, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// At returns the cell at (x, y), or Empty outside the grid.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return Empty
	}
	return g.cells[y][x]
}

// IsOccupied reports whether (x, y) blocks a piece.
// Columns outside [0, cols) and rows at or below the floor always block;
// rows above the top (y < 0) never do, so pieces may overhang the well.
func (g *Grid) IsOccupied(x, y int) bool {
	if x < 0 || x >= g.cols || y >= g.rows {
		return true
	}
	if y < 0 {
		return false
	}
	return !g.cells[y][x].IsEmpty()
}

// Set writes a cell. Coordinates outside the grid are ignored.
func (g *Grid) Set(x, y int, c Cell) {
	if x < 0 || x >= g.cols || y < 0 || y >= g.rows {
		return
	}
	g.cells[y][x] = c
}

// RowFull reports whether every column of row y is occupied.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.rows {
		return false
	}
	for _, c := range g.cells[y] {
		if c.IsEmpty() {
			return false
		}
	}
	return true
}

// Collapse removes row y and inserts an empty row at the top,
// shifting every row above y down by one. The row count is unchanged.
func (g *Grid) Collapse(y int) {
	if y < 0 || y >= g.rows {
		return
	}
	removed := g.cells[y]
	copy(g.cells[1:y+1], g.cells[:y])
	clear(removed)
	g.cells[0] = removed
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	for y := range g.cells {
		copy(c.cells[y], g.cells[y])
	}
	return c
}

// String renders the grid one line per row, '.' for empty cells and the
// kind letter for locked blocks. Used by snapshots and test failures.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for y, row := range g.cells {
		if y > 0 {
			buf = append(buf, '\n')
		}
		for _, c := range row {
			if c.IsEmpty() {
				buf = append(buf, '.')
				continue
			}
			buf = append(buf, c.Kind().String()...)
		}
	}
	return string(buf)
}
