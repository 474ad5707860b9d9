package session

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-board/internal/board"
)

var Log = logrus.New()

// Board sizes offered to players.
var Presets = []int{7, 10, 12, 15, 20}

const (
	DefaultSize    = 7
	DefaultDensity = 0.15
)

var (
	ErrGameOver      = errors.New("game is over")
	ErrUnknownPreset = errors.New("unknown board size")
)

type State int

const (
	Ready State = iota
	Running
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

func (s State) Over() bool {
	return s == Won || s == Lost
}

func ValidSize(size int) bool {
	return slices.Contains(Presets, size)
}

// MineCountFor returns the number of mines of a size x size board at the
// given density. There is at least one mine and at least one free cell,
// except on a single-cell board which has no mines.
func MineCountFor(size int, density float64) int {
	cells := size * size
	n := int(math.Round(float64(cells) * density))
	return min(max(n, 1), cells-1)
}

// Outcome describes the session after a click.
type Outcome struct {
	Delta     int
	State     State
	Flags     int
	MinesLeft int
}

// Session owns a board for the duration of one game and judges it.
type Session struct {
	grid      *board.Grid
	state     State
	flags     int
	startedAt time.Time
	endedAt   time.Time

	rnd          *rand.Rand
	now          func() time.Time
	density      float64
	display      func(board.Display)
	protectFlags bool
}

type Option func(*Session)

func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		s.rnd = r
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

func WithDensity(density float64) Option {
	return func(s *Session) {
		s.density = density
	}
}

func WithDisplay(fn func(board.Display)) Option {
	return func(s *Session) {
		s.display = fn
	}
}

// WithFlagProtection makes the session ignore reveal clicks on flagged
// cells. The board itself always lets a reveal through a flag.
func WithFlagProtection(on bool) Option {
	return func(s *Session) {
		s.protectFlags = on
	}
}

func newSession(opts []Option) *Session {
	s := &Session{
		density: DefaultDensity,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rnd == nil {
		s.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return s
}

// New starts a session on a fresh board of one of the [Presets] sizes.
func New(size int, opts ...Option) (*Session, error) {
	s := newSession(opts)
	if err := s.Restart(size); err != nil {
		return nil, err
	}
	return s, nil
}

// NewWithGrid starts a session on a board built by the caller.
func NewWithGrid(g *board.Grid, opts ...Option) *Session {
	s := newSession(opts)
	s.reset(g)
	return s
}

// Restart throws the current board away and deals a new one.
func (s *Session) Restart(size int) error {
	if !ValidSize(size) {
		return fmt.Errorf("%w: %d (want one of %v)", ErrUnknownPreset, size, Presets)
	}
	var opts []board.Option
	if s.display != nil {
		opts = append(opts, board.WithDisplay(s.display))
	}
	g, err := board.New(size, MineCountFor(size, s.density), s.rnd, opts...)
	if err != nil {
		return fmt.Errorf("unable to deal a board: %w", err)
	}
	s.reset(g)
	Log.WithFields(logrus.Fields{
		"size":  size,
		"mines": g.MineCount(),
	}).Info("new game")
	return nil
}

func (s *Session) reset(g *board.Grid) {
	s.grid = g
	s.state = Ready
	s.flags = g.Flagged()
	s.startedAt = time.Time{}
	s.endedAt = time.Time{}
}

func (s *Session) Grid() *board.Grid {
	return s.grid
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Flags() int {
	return s.flags
}

// MinesLeft is the mine counter shown to the player; it goes negative when
// more flags than mines are placed.
func (s *Session) MinesLeft() int {
	return s.grid.MineCount() - s.flags
}

func (s *Session) Elapsed() time.Duration {
	switch {
	case s.state == Ready:
		return 0
	case s.state.Over():
		return s.endedAt.Sub(s.startedAt)
	default:
		return s.now().Sub(s.startedAt)
	}
}

func (s *Session) outcome(delta int) Outcome {
	return Outcome{
		Delta:     delta,
		State:     s.state,
		Flags:     s.flags,
		MinesLeft: s.MinesLeft(),
	}
}

// Click forwards a player action to the board and updates the flag counter,
// the timer and the game state from its return code.
func (s *Session) Click(row, col int, flag bool) (Outcome, error) {
	if s.state.Over() {
		return s.outcome(0), ErrGameOver
	}
	cell, err := s.grid.Cell(row, col)
	if err != nil {
		return s.outcome(0), err
	}
	if s.protectFlags && !flag && cell.Flagged {
		return s.outcome(0), nil
	}

	delta, err := s.grid.ClickAt(row, col, flag)
	if err != nil {
		return s.outcome(0), err
	}
	if s.state == Ready {
		s.state = Running
		s.startedAt = s.now()
	}

	switch {
	case flag:
		s.flags += delta
	case cell.Kind == board.Mine:
		if delta == 1 {
			s.finish(Lost)
			s.grid.RevealAll()
			s.flags = s.grid.Flagged()
		}
	default:
		s.flags += delta
		if s.grid.SafeRemaining() == 0 {
			s.finish(Won)
		}
	}
	return s.outcome(delta), nil
}

// Forfeit ends a game in progress as lost and uncovers the board.
func (s *Session) Forfeit() {
	if !s.state.Over() {
		if s.state == Ready {
			s.startedAt = s.now()
		}
		s.finish(Lost)
	}
	s.grid.RevealAll()
	s.flags = s.grid.Flagged()
}

func (s *Session) finish(state State) {
	s.state = state
	s.endedAt = s.now()
	Log.WithFields(logrus.Fields{
		"state":   state,
		"elapsed": FormatElapsed(s.Elapsed()),
	}).Info("game over")
}

// FormatElapsed renders d as m:ss.
func FormatElapsed(d time.Duration) string {
	secs := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
