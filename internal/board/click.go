package board

import "github.com/sirupsen/logrus"

// ClickAt applies a player action to the cell at row, col and returns its
// flag-delta:
//
//   - toggleFlag: -1 flag removed, 0 nothing changed, +1 flag set;
//   - Mine: 1 if it detonated, 0 if it was already open;
//   - Number: -1 if a flag was removed while opening it, 0 otherwise;
//   - Blank: the net number of flags removed by the whole cascade (<= 0).
//
// Clicks on open cells are no-ops returning 0. Out of bounds coordinates
// return a [BoundsError] and leave the grid untouched.
func (g *Grid) ClickAt(row, col int, toggleFlag bool) (int, error) {
	i, err := g.index(row, col)
	if err != nil {
		return 0, err
	}
	g.sealed = true

	before := g.revealed
	delta := g.click(i, toggleFlag)

	Log.WithFields(logrus.Fields{
		"row":      row,
		"col":      col,
		"flag":     toggleFlag,
		"delta":    delta,
		"revealed": g.revealed - before,
	}).Debug("click")
	return delta, nil
}

func (g *Grid) click(i int, toggleFlag bool) int {
	if g.cells[i].Revealed {
		return 0
	}
	if toggleFlag {
		return g.toggleFlag(i)
	}

	switch g.cells[i].Kind {
	case Mine:
		g.open(i, ShowMineExploded)
		return 1
	case Number:
		ret := g.unflag(i)
		g.open(i, ShowNumber)
		return ret
	case Blank:
		ret := g.unflag(i)
		g.open(i, ShowBlank)
		for n := range g.neighbors(i) {
			if g.cells[n].Kind != Mine {
				ret += g.click(n, false)
			}
		}
		return ret
	}
	return 0
}

func (g *Grid) toggleFlag(i int) int {
	c := &g.cells[i]
	if c.Flagged {
		c.Flagged = false
		g.flagged--
		g.emit(i, ShowWater)
		return -1
	}
	c.Flagged = true
	g.flagged++
	g.emit(i, ShowFlag)
	return 1
}

// unflag drops the flag of a cell about to be opened and reports the delta.
func (g *Grid) unflag(i int) int {
	c := &g.cells[i]
	if !c.Flagged {
		return 0
	}
	c.Flagged = false
	g.flagged--
	return -1
}

// open uncovers the cell at i with the given intent. A flag still set at
// this point only lives through the display step.
func (g *Grid) open(i int, intent Intent) {
	c := &g.cells[i]
	c.Revealed = true
	g.revealed++
	if c.Kind != Mine {
		g.opened++
	}
	g.emit(i, intent)
	if c.Flagged {
		c.Flagged = false
		g.flagged--
	}
}

// RevealAll uncovers every covered cell at the end of a game, judging flags
// against what lies beneath them. It returns the number of cells uncovered.
func (g *Grid) RevealAll() int {
	g.sealed = true
	n := 0
	for i := range g.cells {
		if g.cells[i].Revealed {
			continue
		}
		g.open(i, revealIntent(g.cells[i]))
		n++
	}
	Log.WithField("uncovered", n).Debug("board revealed")
	return n
}
