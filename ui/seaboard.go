// Package ui specifies custom controls for tview to play sea battle in the terminal.
package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/types"
)

// Style slots.
const (
	styleWater = iota
	styleWaterAlt
	styleShip
	styleHit
	styleMiss
	styleMargin
	styleCursorFG
	styleCursorBG
	styleLastShot
)

// SeaBoardUI draws a single board. Only a selectable board has a cursor.
type SeaBoardUI struct {
	Box        *tview.Box
	BoardState *types.BoardState
	cfg        *config.Config
	styles     []tcell.Color
	selectable bool
	selRow     int
	selCol     int
}

func NewSeaBoard(title string, c *config.Config, selectable bool) *SeaBoardUI {
	board := &SeaBoardUI{
		Box:        tview.NewBox(),
		BoardState: &types.BoardState{},
		selectable: selectable,
		selRow:     -1,
		selCol:     -1,
	}
	board.Box.SetBorder(true)
	board.Box.SetTitle(" " + title + " ")
	board.Box.SetTitleAlign(tview.AlignLeft)
	board.SetConfig(c)
	board.Box.SetDrawFunc(board.draw)
	return board
}

func (g *SeaBoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.WaterColor),      // 0
		tcell.PaletteColor(c.Theme.Colors.WaterColorAlt),   // 1
		tcell.PaletteColor(c.Theme.Colors.ShipColor),       // 2
		tcell.PaletteColor(c.Theme.Colors.HitColor),        // 3
		tcell.PaletteColor(c.Theme.Colors.MissColor),       // 4
		tcell.PaletteColor(c.Theme.Colors.MarginColor),     // 5
		tcell.PaletteColor(c.Theme.Colors.CursorColorFG),   // 6
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),   // 7
		tcell.PaletteColor(c.Theme.Colors.LastShotColorBG), // 8
	}
	g.cfg = c
}

// SetBoardState replaces the board being drawn.
func (g *SeaBoardUI) SetBoardState(st types.BoardState) {
	g.BoardState = &st
	if g.SelectedTile() != nil && (g.selRow >= st.Size || g.selCol >= st.Size) {
		g.ResetSelection()
	}
}

func (g *SeaBoardUI) SelectedTile() *types.Coord {
	if g.selRow == -1 && g.selCol == -1 {
		return nil
	}
	return &types.Coord{Row: g.selRow, Col: g.selCol}
}

// MoveSelection moves the cursor. The first move places it on the last shot,
// or the board centre if nothing has been fired yet.
func (g *SeaBoardUI) MoveSelection(dRow, dCol int) {
	if !g.selectable || g.BoardState.Size == 0 || g.BoardState.Defeated() {
		g.ResetSelection()
		return
	}
	if g.SelectedTile() == nil {
		if last := g.BoardState.LastShot; last != nil {
			g.selRow, g.selCol = last.Row, last.Col
		} else {
			g.selRow, g.selCol = g.BoardState.Size/2, g.BoardState.Size/2
		}
		return
	}
	if g.selRow+dRow < 0 || g.selRow+dRow >= g.BoardState.Size {
		return
	}
	if g.selCol+dCol < 0 || g.selCol+dCol >= g.BoardState.Size {
		return
	}
	g.selRow += dRow
	g.selCol += dCol
}

func (g *SeaBoardUI) ResetSelection() {
	g.selRow = -1
	g.selCol = -1
}

// Dimensions returns the drawn width and height including labels and border.
func (g *SeaBoardUI) Dimensions() (int, int) {
	size := g.BoardState.Size
	if size == 0 {
		size = 6
	}
	return size*2 + 6, size + 3
}

func (g *SeaBoardUI) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	innerX, innerY, innerW, innerH := x+1, y+1, width-2, height-2
	st := g.BoardState
	if st == nil || st.Size == 0 {
		return innerX, innerY, innerW, innerH
	}
	left, top := innerX+3, innerY+1
	theme := g.cfg.Theme

	for row := 0; row < st.Size; row++ {
		for col := 0; col < st.Size; col++ {
			c := types.Coord{Row: row, Col: col}
			cell := st.Cell(c)

			bg := g.styles[styleWater]
			if (row+col)%2 == 1 {
				bg = g.styles[styleWaterAlt]
			}
			fg := g.styles[cellStyle(cell)]
			if !theme.DrawCellBackground {
				bg = tcell.ColorDefault
			}
			r := theme.Symbols.For(cell)

			if row == g.selRow && col == g.selCol {
				if theme.DrawCursorBackground {
					bg = g.styles[styleCursorBG]
					fg = g.styles[styleCursorFG]
				} else {
					r = theme.Symbols.Cursor
				}
			} else if st.LastShot != nil && *st.LastShot == c && theme.DrawLastShotBackground {
				bg = g.styles[styleLastShot]
			}

			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), r, col, row, left, top)
		}
	}
	g.drawCoordinates(screen, innerX, innerY)
	return innerX, innerY, innerW, innerH
}

func cellStyle(cell types.CellState) int {
	switch cell {
	case types.CellShip:
		return styleShip
	case types.CellHit:
		return styleHit
	case types.CellMiss:
		return styleMiss
	case types.CellMargin:
		return styleMargin
	default:
		return styleWaterAlt
	}
}

// drawCell draws a cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, col, row, l, t int) {
	s.SetContent(l+col*2, t+row, r, nil, c)
	s.SetContent(l+col*2+1, t+row, ' ', nil, c)
}

func (g *SeaBoardUI) drawCoordinates(s tcell.Screen, x, y int) {
	size := g.BoardState.Size
	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(g.styles[styleCursorBG]).Foreground(g.styles[styleCursorFG])

	for col := 0; col < size; col++ {
		_style := style
		if col == g.selCol {
			_style = highlight
		}
		for i, r := range strconv.Itoa(col + 1) {
			s.SetContent(x+3+col*2+i, y, r, nil, _style)
		}
	}
	for row := 0; row < size; row++ {
		_style := style
		if row == g.selRow {
			_style = highlight
		}
		drawNumber(s, x, y+1+row, row+1, _style)
	}
}

// drawNumber writes n right-aligned in two columns.
func drawNumber(s tcell.Screen, x, y, n int, style tcell.Style) {
	tensRune := ' '
	if n >= 10 {
		tensRune = rune('0' + n/10)
	}
	s.SetContent(x, y, tensRune, nil, style)
	s.SetContent(x+1, y, rune('0'+n%10), nil, style)
}
