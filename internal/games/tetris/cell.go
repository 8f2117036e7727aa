package tetris

// Kind identifies one of the seven tetromino shapes.
// A kind is also the color index of every block it leaves on the grid.
type Kind uint8

const (
	KindI Kind = iota + 1
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ
)

// KindCount is the number of distinct tetromino kinds.
const KindCount = 7

// Kinds lists every kind in color-index order.
var Kinds = [KindCount]Kind{KindI, KindJ, KindL, KindO, KindS, KindT, KindZ}

// Valid reports whether k is one of the seven defined kinds.
func (k Kind) Valid() bool {
	return k >= KindI && k <= KindZ
}

func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindO:
		return "O"
	case KindS:
		return "S"
	case KindT:
		return "T"
	case KindZ:
		return "Z"
	default:
		return "?"
	}
}

// Cell is the content of one grid square: either Empty or Colored with
// the kind of the piece that was locked there.
type Cell uint8

// Empty is the cell value of an unoccupied square.
const Empty Cell = 0

// Colored returns the cell left behind by a block of the given kind.
func Colored(k Kind) Cell {
	return Cell(k)
}

// IsEmpty reports whether the cell holds no block.
func (c Cell) IsEmpty() bool {
	return c == Empty
}

// Kind returns the color identity of a colored cell, or 0 for Empty.
func (c Cell) Kind() Kind {
	return Kind(c)
}
