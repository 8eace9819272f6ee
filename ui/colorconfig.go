package ui

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"seabattle/config"
	"seabattle/types"
)

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()

	selectedWaterColor int
	selectedShipColor  int
	editingShip        bool // true = editing ship color, false = editing water color
}

type namedColor struct {
	code int
	name string
}

var waterColors = []namedColor{
	{17, "Navy"},
	{18, "Dark Blue"},
	{19, "Blue"},
	{23, "Deep Teal"},
	{24, "Deep Sea"},
	{25, "Ocean"},
	{26, "Royal Blue"},
	{30, "Teal"},
	{31, "Lagoon"},
	{32, "Azure"},
	{37, "Turquoise"},
	{60, "Slate"},
	{66, "Storm"},
	{234, "Night"},
	{236, "Dark Gray"},
}

var shipColors = []namedColor{
	{250, "Gray"},
	{252, "Light Gray"},
	{255, "White"},
	{244, "Steel"},
	{240, "Gunmetal"},
	{180, "Tan"},
	{136, "Dark Brown"},
	{94, "Saddle Brown"},
	{22, "Dark Green"},
	{220, "Yellow"},
	{16, "Black"},
}

// previewShips is the sample fleet drawn on the preview sea.
var previewShips = map[types.Coord]types.CellState{
	{Row: 1, Col: 1}: types.CellShip,
	{Row: 1, Col: 2}: types.CellShip,
	{Row: 1, Col: 3}: types.CellHit,
	{Row: 4, Col: 4}: types.CellShip,
	{Row: 3, Col: 0}: types.CellMiss,
	{Row: 5, Col: 1}: types.CellMargin,
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                cfg,
		onDone:             onDone,
		selectedWaterColor: cfg.Theme.Colors.WaterColor,
		selectedShipColor:  cfg.Theme.Colors.ShipColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.SetBorderColor(MenuColors.BorderFocus)
	cc.colorList.ShowSecondaryText(false)

	cc.populateColorList()

	// Preview follows the highlighted item.
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		colors := cc.palette()
		if index < 0 || index >= len(colors) {
			return
		}
		if cc.editingShip {
			cc.selectedShipColor = colors[index].code
		} else {
			cc.selectedWaterColor = colors[index].code
		}
	})

	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.palette()) {
			return
		}
		if cc.editingShip {
			cc.cfg.Theme.Colors.ShipColor = cc.selectedShipColor
			cc.save()
			cc.editingShip = false
			cc.populateColorList()
			return
		}
		cc.cfg.Theme.Colors.WaterColor = cc.selectedWaterColor
		cc.cfg.Theme.Colors.WaterColorAlt = cc.selectedWaterColor
		cc.save()
		onDone()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetTitle(" Sea Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 34, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) palette() []namedColor {
	if cc.editingShip {
		return shipColors
	}
	return waterColors
}

func (cc *ColorConfigUI) save() {
	if err := cc.cfg.Save(); err != nil {
		log.Warn("could not save colors", "err", err)
	}
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedWaterColor
	if cc.editingShip {
		cc.colorList.SetTitle(" Select Ship Color (Tab: switch to water) ")
		current = cc.selectedShipColor
	} else {
		cc.colorList.SetTitle(" Select Water Color (Tab: switch to ship) ")
	}

	for i, c := range cc.palette() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.palette() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	const size = 6
	if width < 20 || height < size+4 {
		return x, y, width, height
	}

	water := tcell.PaletteColor(cc.selectedWaterColor)
	colors := cc.cfg.Theme.Colors
	foreground := map[types.CellState]tcell.Color{
		types.CellShip:   tcell.PaletteColor(cc.selectedShipColor),
		types.CellHit:    tcell.PaletteColor(colors.HitColor),
		types.CellMiss:   tcell.PaletteColor(colors.MissColor),
		types.CellMargin: tcell.PaletteColor(colors.MarginColor),
		types.CellEmpty:  water,
	}
	sym := cc.cfg.Theme.Symbols

	startX := x + 2
	startY := y + 1
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			cell := previewShips[types.Coord{Row: row, Col: col}]
			style := tcell.StyleDefault.Background(water).Foreground(foreground[cell])
			drawCell(screen, style, sym.For(cell), col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Water: %d  Ship: %d", cc.selectedWaterColor, cc.selectedShipColor)
	for i, ch := range info {
		if startX+i < x+width-1 {
			screen.SetContent(startX+i, startY+size+1, ch, nil, tcell.StyleDefault)
		}
	}

	return x, y, width, height
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between water color and ship color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingShip = !cc.editingShip
	cc.populateColorList()
}
