package engine

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"seabattle/types"
)

// Player-facing coordinate system:
// - Two numbers, row then column, separated by whitespace
// - Both 1-based, row 1 at the top
// - Example: "1 1" is the top-left cell, "6 6" the bottom-right on a 6x6 board
//
// Board coordinate system:
// - Row/Col 0-based, top-left origin

var (
	errTokenCount = errors.New("expected two coordinates")
	errNotNumber  = errors.New("coordinates must be numbers")
)

// inputNotice returns the prompt shown after a malformed target line.
func inputNotice(err error) string {
	if errors.Is(err, errTokenCount) {
		return "Enter two coordinates!"
	}
	return "Enter numbers!"
}

// ParseTarget converts "row col" (1-based) into a board coordinate.
// It validates the format only; bounds are the board's business, so "0 9" parses.
func ParseTarget(line string) (types.Coord, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return types.Coord{}, errTokenCount
	}

	var vals [2]int
	for i, f := range fields {
		if !isDigits(f) {
			return types.Coord{}, errNotNumber
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			// Only overflow gets here.
			return types.Coord{}, fmt.Errorf("%w (%s)", errNotNumber, f)
		}
		vals[i] = n
	}

	return types.Coord{Row: vals[0] - 1, Col: vals[1] - 1}, nil
}

// FormatCoord converts a board coordinate to "row col" (1-based).
// (0, 0) -> "1 1", (2, 5) -> "3 6"
func FormatCoord(c types.Coord) string {
	return fmt.Sprintf("%d %d", c.Row+1, c.Col+1)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
