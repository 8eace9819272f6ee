package fleet

import (
	"errors"
	"fmt"

	"seabattle/types"
)

var (
	// ErrOutOfBounds is returned when a shot lands off the board.
	ErrOutOfBounds = errors.New("target out of bounds")
	// ErrAlreadyTargeted is returned when a cell is fired upon twice.
	ErrAlreadyTargeted = errors.New("target already fired upon")
	// ErrInvalidPlacement is returned when a ship leaves the grid, overlaps
	// another ship or touches one.
	ErrInvalidPlacement = errors.New("invalid ship placement")
)

func outOfBounds(c types.Coord) error {
	return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
}

func alreadyTargeted(c types.Coord) error {
	return fmt.Errorf("%w: %s", ErrAlreadyTargeted, c)
}

func invalidPlacement(reason string, c types.Coord) error {
	return fmt.Errorf("%w: %s at %s", ErrInvalidPlacement, reason, c)
}

// Notice returns the player-facing message for a shot error,
// or the error text for anything else.
func Notice(err error) string {
	switch {
	case errors.Is(err, ErrOutOfBounds):
		return "You are firing off the board!"
	case errors.Is(err, ErrAlreadyTargeted):
		return "That cell has already been fired upon."
	case errors.Is(err, ErrInvalidPlacement):
		return "A ship cannot go there."
	default:
		return err.Error()
	}
}
