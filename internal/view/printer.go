// Package view renders grids to the terminal: a one-shot Printer for
// headless runs and an interactive gocui UI for watch mode. Cell appearance
// comes from state metadata ("glyph" and "color"), which the engine carries
// opaquely for exactly this kind of consumer.
package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/logrusorgru/aurora"

	"github.com/yippiez/calib/pkg/ca"
)

var colors = map[string]aurora.Color{
	"black":   aurora.BlackFg,
	"red":     aurora.RedFg,
	"green":   aurora.GreenFg,
	"yellow":  aurora.YellowFg,
	"blue":    aurora.BlueFg,
	"magenta": aurora.MagentaFg,
	"cyan":    aurora.CyanFg,
	"white":   aurora.WhiteFg,
}

// Printer writes grids one glyph per cell.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a printer. Colors are dropped when color is false.
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

// Print renders the grid to the printer's writer.
func (p *Printer) Print(g ca.Grid, reg *ca.Registry) error {
	_, err := io.WriteString(p.out, p.Render(g, reg))
	return err
}

// Render returns the grid as rows of glyphs, top row first.
func (p *Printer) Render(g ca.Grid, reg *ca.Registry) string {
	var b strings.Builder
	for y := 0; y < g.H(); y++ {
		for x := 0; x < g.W(); x++ {
			b.WriteString(p.cell(g.At(x, y), reg))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (p *Printer) cell(id ca.StateID, reg *ca.Registry) string {
	glyph := "?"
	colorName := ""
	if state, ok := reg.State(id); ok {
		if id != "" {
			glyph = string([]rune(string(id))[0])
		}
		if v, ok := state.Metadata["glyph"].(string); ok && v != "" {
			glyph = v
		}
		if v, ok := state.Metadata["color"].(string); ok {
			colorName = v
		}
	}
	if p.color {
		if c, ok := colors[colorName]; ok {
			return aurora.Colorize(glyph, c).String()
		}
	}
	return glyph
}

// Legend returns one line per registered state mapping glyphs back to ids.
func (p *Printer) Legend(reg *ca.Registry) string {
	var b strings.Builder
	for _, id := range reg.IDs() {
		fmt.Fprintf(&b, "%s %s\n", p.cell(id, reg), id)
	}
	return b.String()
}
