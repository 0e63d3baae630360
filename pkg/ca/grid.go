// Package ca implements an engine for anisotropic cellular automata: cell
// states carry ordered pattern-matching rules that are evaluated against a
// configurable neighborhood shape to advance a grid one generation at a time.
package ca

// StateID names a cell state. It is opaque to the engine beyond equality.
type StateID string

const (
	// Border is the sentinel substituted for neighbor lookups outside the
	// grid. It is not a state and can never be registered.
	Border StateID = "border"
	// Empty is the default value new grids are seeded with. Unlike Border it
	// is an ordinary state that simulations are expected to register.
	Empty StateID = "empty"
)

// Grid stores a fixed-size rectangle of cell states in row-major order.
// Row 0 is the top of the grid. A step produces a new Grid and never
// mutates its input.
type Grid struct {
	w, h  int
	cells []StateID
}

// NewGrid allocates a grid with the given dimensions, filled with Empty.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	cells := make([]StateID, w*h)
	for i := range cells {
		cells[i] = Empty
	}
	return Grid{w: w, h: h, cells: cells}
}

// GridFromRows builds a grid from rows of state ids (row 0 on top). All rows
// must have the same length.
func GridFromRows(rows [][]StateID) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrRaggedGrid
	}
	w, h := len(rows[0]), len(rows)
	cells := make([]StateID, 0, w*h)
	for _, row := range rows {
		if len(row) != w {
			return Grid{}, ErrRaggedGrid
		}
		cells = append(cells, row...)
	}
	return Grid{w: w, h: h, cells: cells}, nil
}

// W returns the grid width.
func (g Grid) W() int { return g.w }

// H returns the grid height.
func (g Grid) H() int { return g.h }

// Index returns the linear slice index for coordinates (x, y).
func (g Grid) Index(x, y int) int { return y*g.w + x }

// At returns the state at (x, y). Coordinates must be in bounds.
func (g Grid) At(x, y int) StateID { return g.cells[y*g.w+x] }

// Set writes the state at (x, y). Coordinates must be in bounds.
func (g Grid) Set(x, y int, s StateID) { g.cells[y*g.w+x] = s }

// Cells exposes the backing slice so callers can read values directly.
func (g Grid) Cells() []StateID { return g.cells }

// Rows copies the grid into a row-major slice of rows, top row first.
func (g Grid) Rows() [][]StateID {
	rows := make([][]StateID, g.h)
	for y := 0; y < g.h; y++ {
		row := make([]StateID, g.w)
		copy(row, g.cells[y*g.w:(y+1)*g.w])
		rows[y] = row
	}
	return rows
}

// Clone returns a grid with the same dimensions and an independent copy of
// the cell values.
func (g Grid) Clone() Grid {
	cells := make([]StateID, len(g.cells))
	copy(cells, g.cells)
	return Grid{w: g.w, h: g.h, cells: cells}
}

// Fill sets every cell to the given state.
func (g Grid) Fill(s StateID) {
	for i := range g.cells {
		g.cells[i] = s
	}
}
