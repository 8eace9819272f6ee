package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the sea-blue palette for menus and forms.
var MenuColors = struct {
	Border      tcell.Color
	BorderFocus tcell.Color
	Title       tcell.Color
	Label       tcell.Color
	Hint        tcell.Color
	ButtonBG    tcell.Color
	ButtonText  tcell.Color
}{
	Border:      tcell.PaletteColor(24),  // Deep blue
	BorderFocus: tcell.PaletteColor(38),  // Bright sea blue
	Title:       tcell.PaletteColor(255), // Bright white
	Label:       tcell.PaletteColor(152), // Pale cyan
	Hint:        tcell.PaletteColor(245), // Dim gray
	ButtonBG:    tcell.PaletteColor(24),
	ButtonText:  tcell.PaletteColor(255),
}
