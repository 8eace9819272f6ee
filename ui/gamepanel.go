package ui

import (
	"fmt"
	"strings"

	"github.com/mitchellh/go-wordwrap"
	"github.com/rivo/tview"

	"seabattle/engine"
	"seabattle/history"
	"seabattle/types"
)

const (
	infoPanelWidth  = 28
	maxVisibleShots = 10
)

var panelHelp = "Sink every ship on the computer board. " +
	"A hit or a sunk ship gives you another shot. " +
	"Water around a sunk ship is marked automatically."

// GameInfoPanel displays fleet status and recent shots alongside the boards.
type GameInfoPanel struct {
	box       *tview.TextView
	sessionID string
	human     types.BoardState
	computer  types.BoardState
	shots     *history.ShotLog
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box:   tview.NewTextView(),
		shots: history.NewShotLog(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// Reset clears the shot list for a new game.
func (p *GameInfoPanel) Reset(sessionID string) {
	p.sessionID = sessionID
	p.shots = history.NewShotLog()
	p.refresh()
}

// SetBoards updates the fleet status.
func (p *GameInfoPanel) SetBoards(human, computer types.BoardState) {
	p.human = human
	p.computer = computer
	p.refresh()
}

// AddShot records a resolved shot.
func (p *GameInfoPanel) AddShot(shot engine.Shot) {
	p.shots.Add(shot.Shooter, shot.Target, shot.Result)
	p.refresh()
}

func (p *GameInfoPanel) refresh() {
	p.box.SetText(p.text())
}

func (p *GameInfoPanel) text() string {
	var sb strings.Builder

	sb.WriteString("[white::b]Fleets[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	fmt.Fprintf(&sb, "[white]You:[-:-:-]      %d/%d afloat\n", p.human.ShipsLeft(), p.human.ShipsTotal)
	fmt.Fprintf(&sb, "[white]Computer:[-:-:-] %d/%d afloat\n", p.computer.ShipsLeft(), p.computer.ShipsTotal)

	sb.WriteString("\n[white::b]Shots[-:-:-]\n")
	sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
	for _, side := range []types.Side{types.Human, types.Computer} {
		st := p.shots.Stats(side)
		fmt.Fprintf(&sb, "[white]%-9s[-:-:-] %d  (%.0f%%)\n", side.String()+":", st.Shots, st.Accuracy())
	}

	if p.shots.Len() > 0 {
		sb.WriteString("\n[white::b]Last shots[-:-:-]\n")
		sb.WriteString("[dimgray]──────────────────────[-:-:-]\n")
		recent := p.shots.Last(maxVisibleShots)
		for i, e := range recent {
			marker := " "
			if i == len(recent)-1 {
				marker = "[white]>[-]"
			}
			fmt.Fprintf(&sb, "%s[dimgray]%3d.[-] %-8s %-5s %s\n",
				marker, e.Seq, e.Shooter, engine.FormatCoord(e.Target), resultTag(e.Result))
		}
		if earlier := p.shots.Len() - len(recent); earlier > 0 {
			fmt.Fprintf(&sb, "[dimgray]  ··· %d earlier[-]\n", earlier)
		}
	}

	sb.WriteString("\n[dimgray]")
	sb.WriteString(wordwrap.WrapString(panelHelp, infoPanelWidth-2))
	sb.WriteString("[-]\n")
	if p.sessionID != "" {
		fmt.Fprintf(&sb, "[dimgray]game %s[-]\n", p.sessionID)
	}
	return sb.String()
}

func resultTag(r types.ShotResult) string {
	switch r {
	case types.Destroyed:
		return "[red]sunk[-]"
	case types.Hit:
		return "[yellow]hit[-]"
	default:
		return "[blue]miss[-]"
	}
}

// CreateGameLayout creates the main game layout with both boards and a side panel.
func CreateGameLayout(view *GameView, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, view, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)
	centered.AddItem(form, maxWidth, 0, true)
	centered.AddItem(nil, 0, 1, false)

	return centered
}

// RebuildNormalLayout lays out own board | enemy board | info panel above the status bar.
func RebuildNormalLayout(gameFrame *tview.Flex, view *GameView, hint *tview.TextView) {
	gameFrame.Clear()

	if view.infoPanel == nil {
		view.infoPanel = NewGameInfoPanel()
	}
	infoPanel := view.infoPanel
	infoPanel.SetBoards(*view.Own.BoardState, *view.Enemy.BoardState)

	boardW, boardH := view.Enemy.Dimensions()
	boards := tview.NewFlex().SetDirection(tview.FlexRow)
	boards.AddItem(view.Own.Box, boardH, 0, false)
	boards.AddItem(nil, 0, 1, false)

	enemy := tview.NewFlex().SetDirection(tview.FlexRow)
	enemy.AddItem(view.Enemy.Box, boardH, 0, true)
	enemy.AddItem(nil, 0, 1, false)

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(boards, boardW, 0, false)
	boardRow.AddItem(enemy, boardW, 0, true)
	boardRow.AddItem(nil, 0, 1, false)
	boardRow.AddItem(infoPanel.Box(), infoPanelWidth, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 5, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered enemy board.
func BuildFocusLayout(gameFrame *tview.Flex, view *GameView) {
	gameFrame.Clear()

	boardW, boardH := view.Enemy.Dimensions()

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false)

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(view.Enemy.Box, boardW, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardH, 0, true)
	gameFrame.AddItem(nil, 0, 1, false)
}
