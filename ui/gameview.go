package ui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/engine"
	"seabattle/types"
)

// GameView connects two boards, the info panel and the status bar to a
// running session. Its fields are only touched on the tview event goroutine;
// the session reports back through QueueUpdateDraw.
type GameView struct {
	Own   *SeaBoardUI
	Enemy *SeaBoardUI

	app       *tview.Application
	hint      *tview.TextView
	infoPanel *GameInfoPanel

	session   *engine.Session
	lines     engine.LineChannel
	cancel    context.CancelFunc
	mover     types.Side
	notice    string
	pending   bool // a shot has been sent and not yet resolved
	outcome   *engine.Outcome
	failure   error
	focusMode bool
}

func NewGameView(app *tview.Application, c *config.Config, hint *tview.TextView) *GameView {
	return &GameView{
		Own:   NewSeaBoard("Your board", c, false),
		Enemy: NewSeaBoard("Computer board", c, true),
		app:   app,
		hint:  hint,
	}
}

// SetConfig applies a new theme to both boards.
func (g *GameView) SetConfig(c *config.Config) {
	g.Own.SetConfig(c)
	g.Enemy.SetConfig(c)
}

// Start lays out new fleets and runs the session in the background.
// A running game is abandoned first.
func (g *GameView) Start(cfg engine.GameConfig) {
	g.Close()

	ctx, cancel := context.WithCancel(context.Background())
	g.lines = make(engine.LineChannel, 1)
	g.cancel = cancel
	g.outcome = nil
	g.failure = nil
	g.notice = ""
	g.pending = false

	s := engine.NewGame(cfg, engine.NewInteractiveTargeting(g.lines, nil), cfg.Rand())
	g.session = s
	g.mover = s.Mover()
	human, computer := s.Snapshot()
	g.Own.SetBoardState(human)
	g.Enemy.SetBoardState(computer)
	g.Enemy.ResetSelection()
	if g.infoPanel != nil {
		g.infoPanel.Reset(s.ID)
		g.infoPanel.SetBoards(human, computer)
	}

	s.OnUpdate(func(u engine.Update) {
		g.queue(s, func() {
			g.mover = u.Next
			g.notice = ""
			g.pending = false
			g.Own.SetBoardState(u.Human)
			g.Enemy.SetBoardState(u.Computer)
			if g.infoPanel != nil {
				g.infoPanel.AddShot(u.Shot)
				g.infoPanel.SetBoards(u.Human, u.Computer)
			}
		})
	})
	s.OnNotice(func(side types.Side, msg string) {
		if side != types.Human {
			return
		}
		g.queue(s, func() {
			g.notice = msg
			g.pending = false
		})
	})
	s.OnGameEnd(func(o engine.Outcome) {
		g.queue(s, func() {
			g.outcome = &o
			g.Enemy.ResetSelection()
		})
	})

	go func() {
		_, err := s.Run(ctx)
		if err == nil || errors.Is(err, context.Canceled) {
			return
		}
		log.Error("session stopped", "session", s.ID, "err", err)
		g.queue(s, func() { g.failure = err })
	}()
	g.refreshHint()
}

// queue runs f on the event goroutine unless s has been replaced meanwhile.
func (g *GameView) queue(s *engine.Session, f func()) {
	g.app.QueueUpdateDraw(func() {
		if g.session != s {
			return
		}
		f()
		g.refreshHint()
	})
}

// Fire sends the selected enemy cell to the session. It does nothing
// unless it is the player's turn.
func (g *GameView) Fire() {
	if g.session == nil || g.IsFinished() || g.mover != types.Human || g.pending {
		return
	}
	sel := g.Enemy.SelectedTile()
	if sel == nil {
		return
	}
	if g.lines.Send(engine.FormatCoord(*sel)) {
		g.pending = true
		g.notice = ""
		g.refreshHint()
	}
}

// Close abandons the running game, if any.
func (g *GameView) Close() {
	if g.cancel != nil {
		g.cancel()
		g.cancel = nil
	}
	g.session = nil
}

// IsFinished returns true if the game is over.
func (g *GameView) IsFinished() bool {
	return g.outcome != nil || g.failure != nil
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *GameView) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *GameView) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *GameView) IsFocusMode() bool {
	return g.focusMode
}

func (g *GameView) refreshHint() {
	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine, controlsLine string
	switch {
	case g.failure != nil:
		statusLine = "───────── Game Stopped ─────────\n"
		turnLine = fmt.Sprintf("  %s\n", g.failure)
		controlsLine = "  q · return to menu"
	case g.outcome != nil:
		statusLine = "───────── Game Complete ─────────\n"
		turnLine = fmt.Sprintf("  %s  %d shots\n", g.outcome, g.outcome.Shots)
		controlsLine = "  q · return to menu"
	default:
		if g.notice != "" {
			statusLine = fmt.Sprintf("  ! %s\n", g.notice)
		}
		if g.mover == types.Human {
			turnLine = "  ● Your move\n"
		} else {
			turnLine = "  ◌ Computer is aiming...\n"
		}
		controlsLine = "  hjkl/↑↓←→ aim   ⏎ fire   f focus   q quit"
	}
	g.hint.SetText(statusLine + turnLine + controlsLine)
}
