package board

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("cell out of bounds")
)

// ConfigError is returned when a board cannot be built or set up with the
// given parameters. It matches [ErrInvalidConfiguration] under [errors.Is].
type ConfigError struct {
	Size, Mines int
	reason      string
}

// [ConfigError] implements [error]
func (e ConfigError) Error() string {
	switch {
	case e.reason != "":
		return fmt.Sprintf("invalid board %dx%d(%d): %s", e.Size, e.Size, e.Mines, e.reason)
	case e.Size < 1:
		return fmt.Sprintf("cannot create a board of size %d", e.Size)
	case e.Mines < 0:
		return fmt.Sprintf("cannot create a board with negative amount of mines: %d", e.Mines)
	case e.Mines >= e.Size*e.Size:
		return fmt.Sprintf(
			"not enough room for %d mines on a %dx%d board (%d >= %d)",
			e.Mines, e.Size, e.Size, e.Mines, e.Size*e.Size,
		)
	default:
		return ErrInvalidConfiguration.Error()
	}
}

func (e ConfigError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

// BoundsError reports a coordinate outside of the board. It matches
// [ErrOutOfBounds] under [errors.Is].
type BoundsError struct {
	Row, Col, Size int
}

// [BoundsError] implements [error]
func (e BoundsError) Error() string {
	return fmt.Sprintf("cell (%d, %d) is outside of %dx%d board", e.Row, e.Col, e.Size, e.Size)
}

func (e BoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
