package engine

import (
	"context"
	"errors"

	"seabattle/fleet"
	"seabattle/types"
)

// Shot is a legal shot that has been resolved.
type Shot struct {
	Shooter types.Side
	Target  types.Coord
	Result  types.ShotResult
}

// FireAgain reports whether the shooter moves again.
func (s Shot) FireAgain() bool {
	return s.Result.FireAgain()
}

// Player pairs the board a side owns with the board it fires at.
type Player struct {
	Side      types.Side
	Own       *fleet.Board
	Enemy     *fleet.Board
	Targeting Targeting

	notice func(side types.Side, msg string)
}

// NewPlayer creates a player. own is the player's fleet, enemy is the board it shoots at.
func NewPlayer(side types.Side, own, enemy *fleet.Board, t Targeting) *Player {
	return &Player{
		Side:      side,
		Own:       own,
		Enemy:     enemy,
		Targeting: t,
		notice:    func(types.Side, string) {},
	}
}

// Move asks for targets until one is accepted by the enemy board.
// Off-board and repeated targets are reported and asked for again.
func (p *Player) Move(ctx context.Context) (Shot, error) {
	for {
		view := p.Enemy.State()
		view.Hidden = true

		target, err := p.Targeting.NextTarget(ctx, view)
		if err != nil {
			return Shot{}, err
		}

		result, err := p.Enemy.FireAt(target)
		if errors.Is(err, fleet.ErrOutOfBounds) || errors.Is(err, fleet.ErrAlreadyTargeted) {
			p.notice(p.Side, fleet.Notice(err))
			continue
		}
		if err != nil {
			return Shot{}, err
		}

		return Shot{Shooter: p.Side, Target: target, Result: result}, nil
	}
}
