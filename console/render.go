// Package console plays seabattle on a plain line-oriented terminal.
package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"seabattle/config"
	"seabattle/types"
)

const (
	separatorWidth = 60
	boardGap       = "       "
)

var help = "Enter the shot as two numbers separated by a space: " +
	"x is the row number, y is the column number. " +
	"Hitting or sinking a ship gives you another shot."

// Greeting returns the banner printed before the first move.
func Greeting() string {
	var sb strings.Builder
	pad := strings.Repeat(" ", 20)
	rule := strings.Repeat("-", 20)
	fmt.Fprintf(&sb, "%s %s\n", pad, rule)
	fmt.Fprintf(&sb, "%s   Sea Battle\n", pad)
	fmt.Fprintf(&sb, "%s %s\n", pad, rule)
	sb.WriteString(" Shot coordinates: x y\n")
	sb.WriteString(wordwrap.WrapString(help, separatorWidth))
	sb.WriteString("\n\n")
	return sb.String()
}

// Render draws a board as a text grid with 1-based row and column labels.
// Ships on a hidden board are drawn as water.
func Render(st types.BoardState, sym config.ConfigSymbols) string {
	labelWidth := len(strconv.Itoa(st.Size))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", labelWidth+1))
	sb.WriteString("|")
	for col := 1; col <= st.Size; col++ {
		fmt.Fprintf(&sb, " %d |", col)
	}

	for row := 0; row < st.Size; row++ {
		fmt.Fprintf(&sb, "\n%*d |", labelWidth, row+1)
		for col := 0; col < st.Size; col++ {
			cellWidth := len(strconv.Itoa(col + 1))
			r := sym.For(st.Cell(types.Coord{Row: row, Col: col}))
			fmt.Fprintf(&sb, " %-*c |", cellWidth, r)
		}
	}
	return sb.String()
}

// SideBySide places two rendered boards next to each other under their
// titles and ends with a separator line.
func SideBySide(leftTitle, left, rightTitle, right string) string {
	l := strings.Split(left, "\n")
	r := strings.Split(right, "\n")
	width := 0
	for _, line := range l {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}

	var sb strings.Builder
	sb.WriteString(padRight(leftTitle, width) + boardGap + rightTitle + "\n")
	for i := 0; i < len(l) || i < len(r); i++ {
		var a, b string
		if i < len(l) {
			a = l[i]
		}
		if i < len(r) {
			b = r[i]
		}
		sb.WriteString(strings.TrimRight(padRight(a, width)+boardGap+b, " ") + "\n")
	}
	sb.WriteString(strings.Repeat("-", separatorWidth))
	return sb.String()
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
