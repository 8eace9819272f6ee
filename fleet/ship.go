package fleet

import "seabattle/types"

// Ship is a straight run of cells anchored at its bow.
type Ship struct {
	Bow         types.Coord
	Length      int
	Orientation types.Orientation
	lives       int
}

// NewShip creates an undamaged ship.
func NewShip(bow types.Coord, length int, o types.Orientation) *Ship {
	return &Ship{
		Bow:         bow,
		Length:      length,
		Orientation: o,
		lives:       length,
	}
}

// Dots returns the cells the ship occupies, starting at the bow.
func (s *Ship) Dots() []types.Coord {
	dots := make([]types.Coord, s.Length)
	for i := range dots {
		c := s.Bow
		if s.Orientation == types.Vertical {
			c.Row += i
		} else {
			c.Col += i
		}
		dots[i] = c
	}
	return dots
}

// Covers returns true if c is one of the ship's cells.
func (s *Ship) Covers(c types.Coord) bool {
	for _, d := range s.Dots() {
		if d == c {
			return true
		}
	}
	return false
}

// Lives returns the number of cells not yet hit.
func (s *Ship) Lives() int {
	return s.lives
}

// Sunk returns true once every cell has been hit.
func (s *Ship) Sunk() bool {
	return s.lives == 0
}

func (s *Ship) hit() {
	if s.lives > 0 {
		s.lives--
	}
}
