// Package engine runs a game of sea battle between a human and the computer.
package engine

import (
	"context"
	"math/rand"
	"time"

	"seabattle/fleet"
	"seabattle/types"
)

// Targeting chooses the next cell to fire at.
type Targeting interface {
	// NextTarget returns a candidate target given the enemy board as the
	// shooter sees it. The candidate may be illegal; the board rejects it
	// and the player asks again.
	// An error means no more targets will come (input closed, context done).
	NextTarget(ctx context.Context, enemy types.BoardState) (types.Coord, error)
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize         int   // Square board width, 6 by default
	Fleet             []int // Ship lengths placed on each board
	PlacementAttempts int   // Attempt budget for one random layout
	HumanFirst        bool  // Human fires the opening shot
	Seed              int64 // 0 picks a time-based seed
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:         6,
		Fleet:             append([]int(nil), fleet.DefaultFleet...),
		PlacementAttempts: fleet.DefaultAttempts,
		HumanFirst:        true,
	}
}

// placer builds a fleet placer for this configuration.
func (c GameConfig) placer(rnd fleet.Random) *fleet.Placer {
	p := fleet.NewPlacer(c.BoardSize, c.Fleet, rnd)
	if c.PlacementAttempts > 0 {
		p.Attempts = c.PlacementAttempts
	}
	return p
}

// Rand returns the random source for a game with this configuration.
func (c GameConfig) Rand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
