// Package fleet implements ship placement and shot resolution on a square board.
package fleet

import (
	"github.com/dolthub/swiss"

	"seabattle/types"
)

// Board is one player's grid together with the ships placed on it.
//
// A board has two phases. While placing, blocked holds every ship cell and
// its margin so the next ship can neither overlap nor touch. Begin ends
// placement; from then on fired tracks every cell that can no longer be shot.
type Board struct {
	Hidden bool

	size      int
	grid      [][]types.CellState
	ships     []*Ship
	destroyed int
	started   bool
	lastShot  *types.Coord

	blocked *swiss.Map[types.Coord, struct{}]
	fired   *swiss.Map[types.Coord, struct{}]
}

// NewBoard creates an empty board in the placement phase.
func NewBoard(size int) *Board {
	grid := make([][]types.CellState, size)
	for i := range grid {
		grid[i] = make([]types.CellState, size)
	}
	hint := uint32(size * size)
	return &Board{
		size:    size,
		grid:    grid,
		blocked: swiss.NewMap[types.Coord, struct{}](hint),
		fired:   swiss.NewMap[types.Coord, struct{}](hint),
	}
}

// Size returns the board width and height.
func (b *Board) Size() int {
	return b.size
}

// OutOfBounds returns true if c is off the board.
func (b *Board) OutOfBounds(c types.Coord) bool {
	return c.Row < 0 || c.Row >= b.size || c.Col < 0 || c.Col >= b.size
}

// PlaceShip adds a ship to the board. The ship must lie entirely on the
// board and keep at least one cell of water from every other ship.
func (b *Board) PlaceShip(s *Ship) error {
	dots := s.Dots()
	if b.started {
		return invalidPlacement("placement closed", s.Bow)
	}
	for _, d := range dots {
		if b.OutOfBounds(d) {
			return invalidPlacement("off the board", d)
		}
		if b.blocked.Has(d) {
			return invalidPlacement("overlaps or touches a ship", d)
		}
	}

	for _, d := range dots {
		b.grid[d.Row][d.Col] = types.CellShip
		b.blocked.Put(d, struct{}{})
	}
	b.ships = append(b.ships, s)

	// Block the margin; it stays water on the grid.
	b.contour(s, b.blocked, false)
	return nil
}

// Begin ends the placement phase. Placement blocking is dropped and the
// board starts tracking fired cells from scratch.
func (b *Board) Begin() {
	b.started = true
	b.blocked.Clear()
	b.fired.Clear()
}

// Started returns true once Begin has been called.
func (b *Board) Started() bool {
	return b.started
}

// FireAt resolves a shot at c.
func (b *Board) FireAt(c types.Coord) (types.ShotResult, error) {
	if b.OutOfBounds(c) {
		return types.Miss, outOfBounds(c)
	}
	if b.fired.Has(c) {
		return types.Miss, alreadyTargeted(c)
	}

	b.fired.Put(c, struct{}{})
	shot := c
	b.lastShot = &shot

	for _, s := range b.ships {
		if !s.Covers(c) {
			continue
		}
		s.hit()
		b.grid[c.Row][c.Col] = types.CellHit
		if s.Sunk() {
			b.destroyed++
			b.contour(s, b.fired, true)
			return types.Destroyed, nil
		}
		return types.Hit, nil
	}

	b.grid[c.Row][c.Col] = types.CellMiss
	return types.Miss, nil
}

// contour adds the in-bounds neighbourhood of every ship cell to set.
// When reveal is set the newly added cells are marked as margin on the grid.
func (b *Board) contour(s *Ship, set *swiss.Map[types.Coord, struct{}], reveal bool) {
	for _, d := range s.Dots() {
		for _, n := range d.Neighbours() {
			if b.OutOfBounds(n) || set.Has(n) {
				continue
			}
			if reveal {
				b.grid[n.Row][n.Col] = types.CellMargin
			}
			set.Put(n, struct{}{})
		}
	}
}

// AllShipsDestroyed returns true if every placed ship has been sunk.
func (b *Board) AllShipsDestroyed() bool {
	return b.destroyed == len(b.ships)
}

// Ships returns the ships on the board in placement order.
func (b *Board) Ships() []*Ship {
	return b.ships
}

// Destroyed returns the number of sunk ships.
func (b *Board) Destroyed() int {
	return b.destroyed
}

// Cell returns the raw grid state at c.
func (b *Board) Cell(c types.Coord) types.CellState {
	return b.grid[c.Row][c.Col]
}

// Fired returns true if c can no longer be shot at.
func (b *Board) Fired(c types.Coord) bool {
	return b.fired.Has(c)
}

// State returns a deep copy of the board for rendering.
func (b *Board) State() types.BoardState {
	cells := make([][]types.CellState, b.size)
	for i := range cells {
		cells[i] = make([]types.CellState, b.size)
		copy(cells[i], b.grid[i])
	}
	var last *types.Coord
	if b.lastShot != nil {
		c := *b.lastShot
		last = &c
	}
	return types.BoardState{
		Size:           b.size,
		Cells:          cells,
		Hidden:         b.Hidden,
		ShipsTotal:     len(b.ships),
		ShipsDestroyed: b.destroyed,
		LastShot:       last,
	}
}
