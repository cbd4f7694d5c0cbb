package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"

	"golife/pkg/life"
)

const (
	liveGlyph = "█"
	deadGlyph = "·"

	// ANSI cursor-home plus erase-below, so each generation overwrites
	// the previous one instead of scrolling.
	clearScreen = "\x1b[H\x1b[J"
)

// ConsoleRenderer writes a fixed-width text grid to the console, refreshing
// in place each generation.
type ConsoleRenderer struct {
	out     io.Writer
	inPlace bool
	live    string
	dead    string
	status  lipgloss.Style
}

// NewConsoleRenderer returns a renderer targeting out. When inPlace is set
// the screen is cleared before every frame.
func NewConsoleRenderer(out io.Writer, inPlace bool) *ConsoleRenderer {
	return &ConsoleRenderer{
		out:     out,
		inPlace: inPlace,
		live:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(liveGlyph),
		dead:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Render(deadGlyph),
		status:  lipgloss.NewStyle().Bold(true),
	}
}

// Render writes the grid followed by a generation counter line.
func (r *ConsoleRenderer) Render(generation int, g *life.Grid) error {
	var b strings.Builder
	if r.inPlace {
		b.WriteString(clearScreen)
	}
	cells := g.Cells()
	w := g.Width()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < w; col++ {
			if cells[row*w+col] == 1 {
				b.WriteString(r.live)
			} else {
				b.WriteString(r.dead)
			}
		}
		b.WriteByte('\n')
	}
	b.WriteString(r.status.Render(statusLine(generation, g.Population())))
	b.WriteByte('\n')
	if _, err := io.WriteString(r.out, b.String()); err != nil {
		return errors.Wrap(err, "write console frame")
	}
	return nil
}
