package board

import (
	"fmt"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Grid is a size x size board stored as a flat array indexed by
// row*size+col. It is not safe for concurrent use.
type Grid struct {
	size     int
	mines    int
	cells    []Cell
	display  func(Display)
	placed   bool
	sealed   bool // set by the first click, closes setup
	flagged  int
	revealed int
	opened   int // revealed cells that are not mines
}

type Option func(*Grid)

// WithDisplay registers fn to receive every display change of the grid.
func WithDisplay(fn func(Display)) Option {
	return func(g *Grid) {
		g.display = fn
	}
}

// NewBlank builds a grid in which every cell is Blank. Mines are added with
// [Grid.PlaceMines].
func NewBlank(size int, opts ...Option) (*Grid, error) {
	if size < 1 {
		return nil, ConfigError{Size: size}
	}
	g := &Grid{
		size:  size,
		cells: make([]Cell, size*size),
	}
	for _, opt := range opts {
		opt(g)
	}
	for i := range g.cells {
		g.cells[i] = newCell(Blank, i/size, i%size)
		g.emit(i, ShowWater)
	}
	return g, nil
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) MineCount() int {
	return g.mines
}

// Flagged returns the number of flags currently on the board.
func (g *Grid) Flagged() int {
	return g.flagged
}

// Revealed returns the number of uncovered cells, mines included.
func (g *Grid) Revealed() int {
	return g.revealed
}

// SafeRemaining returns the number of non-mine cells still covered.
func (g *Grid) SafeRemaining() int {
	return g.size*g.size - g.mines - g.opened
}

func (g *Grid) InBounds(row, col int) bool {
	return 0 <= row && row < g.size && 0 <= col && col < g.size
}

func (g *Grid) index(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, BoundsError{Row: row, Col: col, Size: g.size}
	}
	return row*g.size + col, nil
}

// Cell returns a copy of the cell at row, col.
func (g *Grid) Cell(row, col int) (Cell, error) {
	i, err := g.index(row, col)
	if err != nil {
		return Cell{}, err
	}
	return g.cells[i], nil
}

// All yields every cell in row-major order.
func (g *Grid) All() iter.Seq2[Point, Cell] {
	return func(yield func(Point, Cell) bool) {
		for _, c := range g.cells {
			if !yield(c.Point(), c) {
				return
			}
		}
	}
}

// neighbors yields the indices of the 3x3 block around i, clamped at the
// edges, without i itself.
func (g *Grid) neighbors(i int) iter.Seq[int] {
	return func(yield func(int) bool) {
		row, col := i/g.size, i%g.size
		for r := max(row-1, 0); r <= min(row+1, g.size-1); r++ {
			for c := max(col-1, 0); c <= min(col+1, g.size-1); c++ {
				if r == row && c == col {
					continue
				}
				if !yield(r*g.size + c) {
					return
				}
			}
		}
	}
}

// Neighbors returns the coordinates of the cells around row, col. Corner
// cells have 3 neighbors, edge cells 5 and interior cells 8.
func (g *Grid) Neighbors(row, col int) ([]Point, error) {
	i, err := g.index(row, col)
	if err != nil {
		return nil, err
	}
	points := make([]Point, 0, 8)
	for n := range g.neighbors(i) {
		points = append(points, g.cells[n].Point())
	}
	return points, nil
}

func (g *Grid) emit(i int, intent Intent) {
	c := &g.cells[i]
	c.Shown = intent
	if g.display == nil {
		return
	}
	d := Display{Row: c.Row, Col: c.Col, Intent: intent}
	if intent == ShowNumber {
		d.Count = c.MineCount
	}
	g.display(d)
}

// Grid implements [fmt.Stringer]
func (g *Grid) String() string {
	var b strings.Builder
	for row := range g.size {
		for col := range g.size {
			c := g.cells[row*g.size+col]
			fmt.Fprint(&b, c.Shown.Symbol(c.MineCount)+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
