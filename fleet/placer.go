package fleet

import (
	"github.com/charmbracelet/log"

	"seabattle/types"
)

// DefaultFleet is the ship manifest: one 3-cell ship, two 2-cell ships and four 1-cell ships.
var DefaultFleet = []int{3, 2, 2, 1, 1, 1, 1}

// DefaultAttempts is the placement budget shared by all ships of one layout.
const DefaultAttempts = 2000

// Random is the source of randomness for placement and targeting.
// *math/rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Placer lays out a fleet at random on a fresh board.
type Placer struct {
	Size     int
	Fleet    []int
	Attempts int
	Rand     Random
}

// NewPlacer creates a placer with the default attempt budget.
func NewPlacer(size int, fleet []int, rnd Random) *Placer {
	return &Placer{
		Size:     size,
		Fleet:    fleet,
		Attempts: DefaultAttempts,
		Rand:     rnd,
	}
}

// TryPlace makes one layout attempt. It returns false if the attempt budget
// runs out before the whole fleet is placed; the partial board is discarded.
func (p *Placer) TryPlace() (*Board, bool) {
	board := NewBoard(p.Size)
	attempts := 0
	for _, length := range p.Fleet {
		for {
			attempts++
			if attempts > p.Attempts {
				return nil, false
			}
			ship := NewShip(p.randomCoord(), length, types.Orientation(p.Rand.Intn(2)))
			if err := board.PlaceShip(ship); err == nil {
				break
			}
		}
	}
	board.Begin()
	log.Debug("placer: fleet placed", "ships", len(p.Fleet), "attempts", attempts)
	return board, true
}

// RandomBoard retries TryPlace until a complete layout succeeds.
// The fleet must be able to fit on the board or this never returns.
func (p *Placer) RandomBoard() *Board {
	for discarded := 0; ; discarded++ {
		if board, ok := p.TryPlace(); ok {
			return board
		}
		log.Debug("placer: layout discarded", "size", p.Size, "discarded", discarded+1)
	}
}

func (p *Placer) randomCoord() types.Coord {
	return types.Coord{Row: p.Rand.Intn(p.Size), Col: p.Rand.Intn(p.Size)}
}
