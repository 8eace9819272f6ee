// Package types contains shared data structures for seabattle.
package types

import "fmt"

// Coord is a position on a board, 0-indexed from the top-left corner.
type Coord struct {
	Row int
	Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Neighbours returns the 3x3 block centred on c, including c itself, in row-major order.
// Coordinates off the board are included; callers filter them.
func (c Coord) Neighbours() []Coord {
	near := make([]Coord, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			near = append(near, Coord{Row: c.Row + dr, Col: c.Col + dc})
		}
	}
	return near
}

// Orientation is the direction a ship extends from its bow.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "Vertical"
	case Horizontal:
		return "Horizontal"
	default:
		return "Unknown"
	}
}

// CellState is what a single grid cell currently shows.
type CellState int

const (
	CellEmpty CellState = iota
	CellShip
	CellHit
	CellMiss
	CellMargin // water revealed around a destroyed ship
)

func (s CellState) String() string {
	switch s {
	case CellEmpty:
		return "Empty"
	case CellShip:
		return "Ship"
	case CellHit:
		return "Hit"
	case CellMiss:
		return "Miss"
	case CellMargin:
		return "Margin"
	default:
		return "Unknown"
	}
}

// ShotResult is the outcome of a legal shot.
type ShotResult int

const (
	Miss ShotResult = iota
	Hit
	Destroyed
)

func (r ShotResult) String() string {
	switch r {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case Destroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// FireAgain reports whether the shooter keeps the turn after this result.
func (r ShotResult) FireAgain() bool {
	return r == Hit || r == Destroyed
}

// Side identifies one of the two players.
type Side int

const (
	Human Side = iota
	Computer
)

func (s Side) String() string {
	if s == Human {
		return "You"
	}
	return "Computer"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == Human {
		return Computer
	}
	return Human
}

// BoardState is a read-only snapshot of a board.
// Cells is indexed as Cells[row][col].
type BoardState struct {
	Size           int
	Cells          [][]CellState
	Hidden         bool
	ShipsTotal     int
	ShipsDestroyed int
	LastShot       *Coord
}

// Cell returns the state a renderer should draw at c.
// Ships on a hidden board read as empty water.
func (b *BoardState) Cell(c Coord) CellState {
	s := b.Cells[c.Row][c.Col]
	if b.Hidden && s == CellShip {
		return CellEmpty
	}
	return s
}

// ShipsLeft returns the number of ships still afloat.
func (b *BoardState) ShipsLeft() int {
	return b.ShipsTotal - b.ShipsDestroyed
}

// Defeated returns true if every ship on the board is destroyed.
func (b *BoardState) Defeated() bool {
	return b.ShipsTotal > 0 && b.ShipsDestroyed == b.ShipsTotal
}

// NewBoardState creates an empty snapshot of the given size.
func NewBoardState(size int) *BoardState {
	cells := make([][]CellState, size)
	for i := range cells {
		cells[i] = make([]CellState, size)
	}
	return &BoardState{
		Size:  size,
		Cells: cells,
	}
}
