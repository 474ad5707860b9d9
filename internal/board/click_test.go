package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloodFillAllBlank(t *testing.T) {
	for _, size := range []int{1, 2, 7, 20} {
		var blanks int
		visits := make(map[Point]int)
		g, err := NewBlank(size, WithDisplay(func(d Display) {
			if d.Intent == ShowBlank {
				blanks++
				visits[Point{d.Row, d.Col}]++
			}
		}))
		require.NoError(t, err)
		require.NoError(t, g.PlaceMines(nil))

		delta, err := g.ClickAt(0, 0, false)
		require.NoError(t, err)
		assert.Zero(t, delta)
		assert.Equal(t, size*size, g.Revealed())
		assert.Zero(t, g.SafeRemaining())
		assert.Equal(t, size*size, blanks)
		for p, n := range visits {
			assert.Equal(t, 1, n, "cell %s visited more than once", p)
		}
	}
}

func TestFloodFillFlagAccounting(t *testing.T) {
	g := mustGrid(t, 3)

	delta, err := g.ClickAt(1, 1, true)
	require.NoError(t, err)
	require.Equal(t, 1, delta)

	delta, err = g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, -1, delta)

	c, err := g.Cell(1, 1)
	require.NoError(t, err)
	assert.True(t, c.Revealed)
	assert.False(t, c.Flagged)
	assert.Equal(t, ShowBlank, c.Shown)
	assert.Zero(t, g.Flagged())
	assert.Equal(t, 9, g.Revealed())
}

func TestCascadeAggregatesFlags(t *testing.T) {
	g := mustGrid(t, 4)
	for _, p := range []Point{{3, 3}, {2, 1}, {0, 3}} {
		delta, err := g.ClickAt(p.Row, p.Col, true)
		require.NoError(t, err)
		require.Equal(t, 1, delta)
	}

	delta, err := g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, -3, delta)
	assert.Zero(t, g.Flagged())
}

func TestCascadeStopsAtNumbers(t *testing.T) {
	var mines []Point
	for row := range 5 {
		mines = append(mines, Point{row, 2})
	}
	g := mustGrid(t, 5, mines...)

	delta, err := g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Zero(t, delta)
	assert.Equal(t, 10, g.Revealed())

	for p, c := range g.All() {
		switch p.Col {
		case 0:
			assert.True(t, c.Revealed, "%s", p)
			assert.Equal(t, ShowBlank, c.Shown, "%s", p)
		case 1:
			assert.True(t, c.Revealed, "%s", p)
			assert.Equal(t, ShowNumber, c.Shown, "%s", p)
		default:
			assert.False(t, c.Revealed, "%s", p)
		}
	}
}

func TestCascadeNeverClicksMines(t *testing.T) {
	g := mustGrid(t, 5, Point{4, 4})

	delta, err := g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Zero(t, delta)

	mine, err := g.Cell(4, 4)
	require.NoError(t, err)
	assert.False(t, mine.Revealed)
	assert.Zero(t, g.SafeRemaining())
	assert.Equal(t, 24, g.Revealed())
}

func TestMineReveal(t *testing.T) {
	g := mustGrid(t, 2, Point{0, 0})

	delta, err := g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, delta)

	c, err := g.Cell(0, 0)
	require.NoError(t, err)
	assert.True(t, c.Revealed)
	assert.Equal(t, ShowMineExploded, c.Shown)

	delta, err = g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Zero(t, delta)
}

func TestFlaggedMineReveal(t *testing.T) {
	g := mustGrid(t, 2, Point{0, 0})

	_, err := g.ClickAt(0, 0, true)
	require.NoError(t, err)
	delta, err := g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, 1, delta)

	c, err := g.Cell(0, 0)
	require.NoError(t, err)
	assert.True(t, c.Revealed)
	assert.False(t, c.Flagged)
	assert.Zero(t, g.Flagged())
}

func TestFlagToggle(t *testing.T) {
	for _, kind := range []struct {
		name  string
		mines []Point
		at    Point
	}{
		{"blank", nil, Point{1, 1}},
		{"number", []Point{{0, 0}}, Point{1, 1}},
		{"mine", []Point{{1, 1}}, Point{1, 1}},
	} {
		t.Run(kind.name, func(t *testing.T) {
			g := mustGrid(t, 3, kind.mines...)
			for i, want := range []int{1, -1, 1, -1, 1} {
				delta, err := g.ClickAt(kind.at.Row, kind.at.Col, true)
				require.NoError(t, err)
				assert.Equal(t, want, delta, "toggle #%d", i)
				c, err := g.Cell(kind.at.Row, kind.at.Col)
				require.NoError(t, err)
				assert.Equal(t, want == 1, c.Flagged)
				assert.False(t, c.Revealed)
			}
			assert.Equal(t, 1, g.Flagged())
		})
	}
}

func TestFlagIgnoredOnceRevealed(t *testing.T) {
	g := mustGrid(t, 3, Point{0, 0})

	_, err := g.ClickAt(1, 1, false)
	require.NoError(t, err)

	for range 3 {
		delta, err := g.ClickAt(1, 1, true)
		require.NoError(t, err)
		assert.Zero(t, delta)
		c, err := g.Cell(1, 1)
		require.NoError(t, err)
		assert.False(t, c.Flagged)
		assert.True(t, c.Revealed)
	}
}

func TestNumberClickRemovesFlag(t *testing.T) {
	g := mustGrid(t, 3, Point{0, 0})

	_, err := g.ClickAt(0, 1, true)
	require.NoError(t, err)

	delta, err := g.ClickAt(0, 1, false)
	require.NoError(t, err)
	assert.Equal(t, -1, delta)

	c, err := g.Cell(0, 1)
	require.NoError(t, err)
	assert.True(t, c.Revealed)
	assert.False(t, c.Flagged)
	assert.Equal(t, ShowNumber, c.Shown)
	assert.Equal(t, 1, g.Revealed())
}

func TestClickIdempotent(t *testing.T) {
	g := mustGrid(t, 4, Point{0, 0}, Point{3, 3})

	_, err := g.ClickAt(0, 3, false)
	require.NoError(t, err)
	before := snapshot(g)
	revealed, flagged := g.Revealed(), g.Flagged()

	for p, c := range g.All() {
		if !c.Revealed {
			continue
		}
		for _, flag := range []bool{false, true} {
			delta, err := g.ClickAt(p.Row, p.Col, flag)
			require.NoError(t, err)
			assert.Zero(t, delta)
		}
	}
	assert.Equal(t, before, snapshot(g))
	assert.Equal(t, revealed, g.Revealed())
	assert.Equal(t, flagged, g.Flagged())
}

func TestClickOutOfBounds(t *testing.T) {
	g, err := NewBlank(3)
	require.NoError(t, err)

	for _, p := range []Point{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		delta, err := g.ClickAt(p.Row, p.Col, false)
		assert.ErrorIs(t, err, ErrOutOfBounds)
		assert.Zero(t, delta)
	}
	assert.Zero(t, g.Revealed())
	assert.NoError(t, g.PlaceMines(nil), "rejected clicks must not close setup")
}

func TestDisplayEvents(t *testing.T) {
	var events []Display
	g, err := NewBlank(2, WithDisplay(func(d Display) {
		events = append(events, d)
	}))
	require.NoError(t, err)
	require.NoError(t, g.PlaceMines([]Point{{1, 1}}))

	_, err = g.ClickAt(0, 0, true)
	require.NoError(t, err)
	_, err = g.ClickAt(0, 1, true)
	require.NoError(t, err)
	_, err = g.ClickAt(0, 1, true)
	require.NoError(t, err)
	delta, err := g.ClickAt(0, 0, false)
	require.NoError(t, err)
	assert.Equal(t, -1, delta)
	delta, err = g.ClickAt(1, 1, false)
	require.NoError(t, err)
	assert.Equal(t, 1, delta)

	assert.Equal(t, []Display{
		{Row: 0, Col: 0, Intent: ShowWater},
		{Row: 0, Col: 1, Intent: ShowWater},
		{Row: 1, Col: 0, Intent: ShowWater},
		{Row: 1, Col: 1, Intent: ShowWater},
		{Row: 0, Col: 0, Intent: ShowFlag},
		{Row: 0, Col: 1, Intent: ShowFlag},
		{Row: 0, Col: 1, Intent: ShowWater},
		{Row: 0, Col: 0, Intent: ShowNumber, Count: 1},
		{Row: 1, Col: 1, Intent: ShowMineExploded},
	}, events)
}

func TestRevealAll(t *testing.T) {
	g := mustGrid(t, 3, Point{0, 0}, Point{2, 0})

	for _, p := range []Point{{0, 0}, {0, 1}, {2, 2}} {
		_, err := g.ClickAt(p.Row, p.Col, true)
		require.NoError(t, err)
	}
	assert.Equal(t, 9, g.RevealAll())
	assert.Zero(t, g.Flagged())
	assert.Equal(t, 9, g.Revealed())

	want := map[Point]Intent{
		{0, 0}: ShowMineCorrectFlag,
		{0, 1}: ShowNumberWrongFlag,
		{0, 2}: ShowBlank,
		{1, 0}: ShowNumber,
		{1, 1}: ShowNumber,
		{1, 2}: ShowBlank,
		{2, 0}: ShowMine,
		{2, 1}: ShowNumber,
		{2, 2}: ShowMineWrongFlag,
	}
	for p, c := range g.All() {
		assert.True(t, c.Revealed, "%s", p)
		assert.False(t, c.Flagged, "%s", p)
		assert.Equal(t, want[p], c.Shown, "%s", p)
	}
	assert.Zero(t, g.RevealAll())
}
