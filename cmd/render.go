package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/arcanaland/deckhand/internal/card"
)

var (
	majorColor = colorful.Color{R: 0.85, G: 0.68, B: 0.22}
	suitColors = map[card.Suit]colorful.Color{
		card.Wands:     {R: 0.80, G: 0.33, B: 0.13},
		card.Cups:      {R: 0.20, G: 0.45, B: 0.80},
		card.Swords:    {R: 0.70, G: 0.72, B: 0.78},
		card.Pentacles: {R: 0.25, G: 0.60, B: 0.30},
	}
	reversedTint = colorful.Color{R: 0.35, G: 0.35, B: 0.35}
)

func getSuitSymbol(suit card.Suit) string {
	switch suit {
	case card.Wands:
		return "♣"
	case card.Cups:
		return "♥"
	case card.Swords:
		return "♠"
	case card.Pentacles:
		return "♦"
	default:
		return "•"
	}
}

// cardColor returns the swatch color for a card; reversed cards are dimmed
func cardColor(c card.Card) colorful.Color {
	base := majorColor
	if m, ok := c.Arcana.(card.Minor); ok {
		base = suitColors[m.Suit]
	}
	if c.Reversed() {
		return base.BlendHcl(reversedTint, 0.5).Clamped()
	}
	return base
}

// swatch renders a small truecolor block for the card
func swatch(c card.Card) string {
	if colorize.NoColor {
		return ""
	}
	r, g, b := cardColor(c).RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm██\x1b[0m ", r, g, b)
}

func symbol(c card.Card) string {
	if m, ok := c.Arcana.(card.Minor); ok {
		return getSuitSymbol(m.Suit)
	}
	return "★"
}

// formatCard renders a card on one line, colored unless color is disabled
func formatCard(c card.Card) string {
	name := colorize.HiWhiteString("%s", c.Arcana)
	if c.Reversed() {
		name = colorize.MagentaString("Reversed ") + name
	}
	return swatch(c) + symbol(c) + " " + name
}

// printCard writes a labelled card
func printCard(w io.Writer, label string, c card.Card) {
	fmt.Fprintln(w, colorize.CyanString("%s ", label)+formatCard(c))
}

// terminalWidth returns the width of the terminal w writes to, or 80 if w
// is not a terminal
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// printColumns lays entries out in as many columns as fit in width
func printColumns(w io.Writer, entries []string, width int) {
	if len(entries) == 0 {
		return
	}

	colWidth := 0
	for _, e := range entries {
		colWidth = max(colWidth, visibleWidth(e))
	}
	colWidth += 2

	cols := max(1, width/colWidth)
	rows := (len(entries) + cols - 1) / cols

	for row := 0; row < rows; row++ {
		var line strings.Builder
		for col := 0; col < cols; col++ {
			i := col*rows + row
			if i >= len(entries) {
				break
			}
			line.WriteString(entries[i])
			if col < cols-1 && i+rows < len(entries) {
				line.WriteString(strings.Repeat(" ", colWidth-visibleWidth(entries[i])))
			}
		}
		fmt.Fprintln(w, line.String())
	}
}

func visibleWidth(s string) int {
	return len([]rune(stripAnsi(s)))
}

// stripAnsi removes ANSI escape sequences from a string
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
