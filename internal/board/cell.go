package board

import "fmt"

type Kind uint8

const (
	Blank Kind = iota
	Number
	Mine
)

func (k Kind) String() string {
	switch k {
	case Blank:
		return "blank"
	case Number:
		return "number"
	case Mine:
		return "mine"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}

// Cell is a single square of the board. MineCount is only meaningful for
// Number cells; Shown holds the last display intent produced for the cell.
type Cell struct {
	Row, Col  int
	Kind      Kind
	Revealed  bool
	Flagged   bool
	MineCount int
	Shown     Intent
}

func (c Cell) Point() Point {
	return Point{c.Row, c.Col}
}

func newCell(kind Kind, row, col int) Cell {
	return Cell{Row: row, Col: col, Kind: kind, Shown: ShowWater}
}

// revealIntent is the intent of a cell uncovered without being clicked, that
// is at the end of a game: flags are judged against the real content.
func revealIntent(c Cell) Intent {
	switch c.Kind {
	case Mine:
		if c.Flagged {
			return ShowMineCorrectFlag
		}
		return ShowMine
	case Number:
		if c.Flagged {
			return ShowNumberWrongFlag
		}
		return ShowNumber
	default:
		if c.Flagged {
			return ShowMineWrongFlag
		}
		return ShowBlank
	}
}
