package board

import (
	"fmt"
	"strconv"
)

// Intent is the visual state a cell asks the presentation layer for.
type Intent int8

const (
	ShowWater           Intent = iota // covered
	ShowFlag                          // covered, flagged
	ShowNumber                        // open with Display.Count adjacent mines
	ShowBlank                         // open, no adjacent mines
	ShowMine                          // mine uncovered after the game ended
	ShowMineExploded                  // the mine the player stepped on
	ShowMineWrongFlag                 // flag over a blank cell
	ShowMineCorrectFlag               // flag over a mine
	ShowNumberWrongFlag               // flag over a number cell
)

func (i Intent) String() string {
	switch i {
	case ShowWater:
		return "water"
	case ShowFlag:
		return "flag"
	case ShowNumber:
		return "number"
	case ShowBlank:
		return "blank"
	case ShowMine:
		return "mine"
	case ShowMineExploded:
		return "mine-exploded"
	case ShowMineWrongFlag:
		return "mine-wrong-flag"
	case ShowMineCorrectFlag:
		return "mine-correct-flag"
	case ShowNumberWrongFlag:
		return "number-wrong-flag"
	default:
		return fmt.Sprintf("Intent(%d)", int8(i))
	}
}

// Symbol is a one-character rendering of the intent used by text dumps.
func (i Intent) Symbol(count int) string {
	switch i {
	case ShowWater:
		return "#"
	case ShowFlag:
		return "F"
	case ShowNumber:
		return strconv.Itoa(count)
	case ShowBlank:
		return "."
	case ShowMine:
		return "*"
	case ShowMineExploded:
		return "X"
	case ShowMineCorrectFlag:
		return "+"
	case ShowMineWrongFlag, ShowNumberWrongFlag:
		return "x"
	default:
		return "!"
	}
}

// Display is one mutation notice sent to the presentation layer.
type Display struct {
	Row, Col int
	Intent   Intent
	Count    int
}

func (d Display) String() string {
	if d.Intent == ShowNumber {
		return fmt.Sprintf("(%d, %d) %s %d", d.Row, d.Col, d.Intent, d.Count)
	}
	return fmt.Sprintf("(%d, %d) %s", d.Row, d.Col, d.Intent)
}
