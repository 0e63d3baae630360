package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yippiez/calib/pkg/ca"
)

func testRegistry(t *testing.T) *ca.Registry {
	t.Helper()
	reg := ca.NewRegistry(nil)
	require.NoError(t, reg.RegisterState("empty", map[string]any{"glyph": "."}))
	require.NoError(t, reg.RegisterState("sand", map[string]any{"glyph": "#", "color": "yellow"}))
	require.NoError(t, reg.RegisterState("rock", nil))
	return reg
}

func TestRenderGlyphs(t *testing.T) {
	reg := testRegistry(t)
	grid, err := ca.GridFromRows([][]ca.StateID{
		{"empty", "sand"},
		{"rock", "empty"},
	})
	require.NoError(t, err)

	p := NewPrinter(nil, false)
	assert.Equal(t, ".#\nr.\n", p.Render(grid, reg), "rock has no glyph metadata and falls back to its first rune")
}

func TestRenderUnknownState(t *testing.T) {
	reg := testRegistry(t)
	grid, err := ca.GridFromRows([][]ca.StateID{{"lava"}})
	require.NoError(t, err)

	p := NewPrinter(nil, false)
	assert.Equal(t, "?\n", p.Render(grid, reg))
}

func TestPrintWritesToWriter(t *testing.T) {
	reg := testRegistry(t)
	grid, err := ca.GridFromRows([][]ca.StateID{{"sand"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	require.NoError(t, p.Print(grid, reg))
	assert.Equal(t, "#\n", buf.String())
}

func TestColorizedCellCarriesEscapeCodes(t *testing.T) {
	reg := testRegistry(t)
	grid, err := ca.GridFromRows([][]ca.StateID{{"sand"}})
	require.NoError(t, err)

	p := NewPrinter(nil, true)
	out := p.Render(grid, reg)
	assert.Contains(t, out, "#")
	assert.Contains(t, out, "\x1b[", "yellow metadata should produce an ANSI sequence")
}

func TestLegend(t *testing.T) {
	reg := testRegistry(t)
	p := NewPrinter(nil, false)
	assert.Equal(t, ". empty\nr rock\n# sand\n", p.Legend(reg))
}
