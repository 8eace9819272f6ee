package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"seabattle/fleet"
	"seabattle/history"
	"seabattle/types"
)

// Update is delivered after every legal shot. Boards are copies and safe to
// keep or hand to another goroutine.
type Update struct {
	Shot     Shot
	Next     types.Side // who moves next
	Human    types.BoardState
	Computer types.BoardState
}

// Outcome is the result of a finished game.
type Outcome struct {
	Winner   types.Side
	Shots    int
	Human    history.Stats
	Computer history.Stats
}

func (o Outcome) String() string {
	if o.Winner == types.Human {
		return "You win!"
	}
	return "Computer wins!"
}

// Session drives the turn order between the human and the computer.
// Run must only be called once; callbacks run on the goroutine calling Run.
type Session struct {
	ID string

	cfg      GameConfig
	human    *Player
	computer *Player
	shots    *history.ShotLog
	moves    int
	logger   *log.Logger

	updateCallback func(Update)
	noticeCallback func(side types.Side, msg string)
	endCallback    func(Outcome)
}

// NewGame lays out random fleets for both sides and pairs them with the
// given human targeting and a random computer opponent.
func NewGame(cfg GameConfig, human Targeting, rnd fleet.Random) *Session {
	placer := cfg.placer(rnd)
	humanBoard := placer.RandomBoard()
	computerBoard := placer.RandomBoard()
	computerBoard.Hidden = true

	return NewSession(cfg, humanBoard, computerBoard, human, NewRandomTargeting(rnd))
}

// NewSession creates a session over boards that are already laid out.
func NewSession(cfg GameConfig, humanBoard, computerBoard *fleet.Board, human, computer Targeting) *Session {
	id := uuid.NewString()[:8]
	s := &Session{
		ID:       id,
		cfg:      cfg,
		human:    NewPlayer(types.Human, humanBoard, computerBoard, human),
		computer: NewPlayer(types.Computer, computerBoard, humanBoard, computer),
		shots:    history.NewShotLog(),
		logger:   log.With("session", id),
	}
	notice := func(side types.Side, msg string) {
		s.logger.Debug("shot rejected", "side", side, "reason", msg)
		if s.noticeCallback != nil {
			s.noticeCallback(side, msg)
		}
	}
	s.human.notice = notice
	s.computer.notice = notice
	return s
}

// OnUpdate registers a callback for every resolved shot.
func (s *Session) OnUpdate(callback func(Update)) {
	s.updateCallback = callback
}

// OnNotice registers a callback for rejected shots.
func (s *Session) OnNotice(callback func(side types.Side, msg string)) {
	s.noticeCallback = callback
}

// OnGameEnd registers a callback for when the game ends.
func (s *Session) OnGameEnd(callback func(Outcome)) {
	s.endCallback = callback
}

// Snapshot returns copies of both boards.
func (s *Session) Snapshot() (human, computer types.BoardState) {
	return s.human.Own.State(), s.computer.Own.State()
}

// Mover returns the side whose move it is.
func (s *Session) Mover() types.Side {
	return s.mover().Side
}

// Shots returns the number of legal shots fired so far.
func (s *Session) Shots() int {
	return s.shots.Len()
}

// History returns every shot fired so far, oldest first.
func (s *Session) History() []history.Entry {
	return s.shots.Entries()
}

func (s *Session) mover() *Player {
	first, second := s.human, s.computer
	if !s.cfg.HumanFirst {
		first, second = second, first
	}
	if s.moves%2 == 0 {
		return first
	}
	return second
}

// Run plays until one fleet is destroyed. It only fails if a player stops
// producing targets, for example when input is closed or ctx is cancelled.
func (s *Session) Run(ctx context.Context) (Outcome, error) {
	s.logger.Info("game started", "size", s.cfg.BoardSize, "ships", len(s.human.Own.Ships()), "first", s.Mover())

	for {
		p := s.mover()
		shot, err := p.Move(ctx)
		if err != nil {
			s.logger.Warn("game aborted", "side", p.Side, "err", err)
			return Outcome{}, fmt.Errorf("%s move: %w", p.Side, err)
		}

		s.shots.Add(shot.Shooter, shot.Target, shot.Result)
		if !shot.FireAgain() {
			s.moves++
		}
		s.logger.Debug("shot", "side", shot.Shooter, "target", FormatCoord(shot.Target), "result", shot.Result)

		if s.updateCallback != nil {
			human, computer := s.Snapshot()
			s.updateCallback(Update{
				Shot:     shot,
				Next:     s.Mover(),
				Human:    human,
				Computer: computer,
			})
		}

		if s.computer.Own.AllShipsDestroyed() {
			return s.finish(types.Human), nil
		}
		if s.human.Own.AllShipsDestroyed() {
			return s.finish(types.Computer), nil
		}
	}
}

func (s *Session) finish(winner types.Side) Outcome {
	o := Outcome{
		Winner:   winner,
		Shots:    s.shots.Len(),
		Human:    s.shots.Stats(types.Human),
		Computer: s.shots.Stats(types.Computer),
	}
	s.logger.Info("game over", "winner", winner, "shots", o.Shots)
	if s.endCallback != nil {
		s.endCallback(o)
	}
	return o
}
