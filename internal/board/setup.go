package board

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

func validate(size, mines int) error {
	if size < 1 || mines < 0 || mines >= size*size {
		return ConfigError{Size: size, Mines: mines}
	}
	return nil
}

// New builds a size x size grid with the given number of mines placed
// uniformly at random by r. At least one cell must stay free of mines.
func New(size, mines int, r *rand.Rand, opts ...Option) (*Grid, error) {
	if err := validate(size, mines); err != nil {
		return nil, err
	}
	g, err := NewBlank(size, opts...)
	if err != nil {
		return nil, err
	}
	if err := g.PlaceMines(pickMines(size, mines, r)); err != nil {
		return nil, err
	}
	return g, nil
}

func pickMines(size, mines int, r *rand.Rand) []Point {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	candidates := make([]int, size*size)
	for i := range candidates {
		candidates[i] = i
	}

	points := make([]Point, 0, mines)
	k := len(candidates)
	for range mines {
		i := r.IntN(k)
		points = append(points, Point{candidates[i] / size, candidates[i] % size})
		k--
		candidates[i] = candidates[k]
	}
	return points
}

// PlaceMines turns the cells at points into mines and materializes the
// Number cells around them. It runs once, before the first click.
func (g *Grid) PlaceMines(points []Point) error {
	if g.sealed {
		return ConfigError{Size: g.size, Mines: len(points), reason: "setup is closed after the first click"}
	}
	if g.placed {
		return ConfigError{Size: g.size, Mines: len(points), reason: "mines are already placed"}
	}
	if err := validate(g.size, len(points)); err != nil {
		return err
	}

	seen := make(map[int]struct{}, len(points))
	mines := make([]int, 0, len(points))
	for _, p := range points {
		i, err := g.index(p.Row, p.Col)
		if err != nil {
			return ConfigError{Size: g.size, Mines: len(points), reason: fmt.Sprintf("mine %s: %s", p, err)}
		}
		if _, dup := seen[i]; dup {
			return ConfigError{Size: g.size, Mines: len(points), reason: fmt.Sprintf("mine %s is listed twice", p)}
		}
		seen[i] = struct{}{}
		mines = append(mines, i)
	}

	for _, i := range mines {
		g.cells[i] = newCell(Mine, i/g.size, i%g.size)
	}
	for _, i := range mines {
		g.enumerate(i)
	}
	g.mines = len(mines)
	g.placed = true

	Log.WithFields(logrus.Fields{
		"size":  g.size,
		"mines": g.mines,
	}).Debug("mines placed")
	return nil
}

// enumerate bumps the mine count of every non-mine neighbor of the mine at
// i, replacing Blank neighbors with fresh Number cells first.
func (g *Grid) enumerate(i int) {
	for n := range g.neighbors(i) {
		switch g.cells[n].Kind {
		case Blank:
			g.cells[n] = newCell(Number, n/g.size, n%g.size)
			g.cells[n].MineCount++
		case Number:
			g.cells[n].MineCount++
		case Mine:
		}
	}
}
