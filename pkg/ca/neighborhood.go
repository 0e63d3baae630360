package ca

import "fmt"

// Offset is a position relative to a cell. Positive DY points up, so the
// cell one row below (x, y) is reached with Offset{0, -1}.
type Offset struct {
	DX, DY int
}

// Neighborhood selects one of the supported neighborhood shapes. Each shape
// fixes an ordered offset table that determines both pattern-token order and
// the order of extracted neighbor values.
type Neighborhood uint8

const (
	// Moore is the eight surrounding cells plus self, self first, then
	// clockwise from north.
	Moore Neighborhood = iota
	// VonNeumann is the four cardinal neighbors plus self.
	VonNeumann

	neighborhoodCount
)

var mooreOffsets = []Offset{
	{0, 0},
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
}

var vonNeumannOffsets = []Offset{
	{0, 0},
	{0, 1}, {1, 0}, {0, -1}, {-1, 0},
}

// Valid reports whether n is one of the known shapes.
func (n Neighborhood) Valid() bool { return n < neighborhoodCount }

// Offsets returns the shape's fixed offset table. Index 0 is always the self
// offset (0,0). The returned slice must not be modified.
func (n Neighborhood) Offsets() []Offset {
	switch n {
	case Moore:
		return mooreOffsets
	case VonNeumann:
		return vonNeumannOffsets
	default:
		return nil
	}
}

// Size returns the number of cells in the shape, self included.
func (n Neighborhood) Size() int { return len(n.Offsets()) }

// String returns the canonical name of the shape.
func (n Neighborhood) String() string {
	switch n {
	case Moore:
		return "moore"
	case VonNeumann:
		return "von_neumann"
	default:
		return fmt.Sprintf("neighborhood(%d)", uint8(n))
	}
}

// ParseNeighborhood maps a canonical shape name back to its enum value.
func ParseNeighborhood(s string) (Neighborhood, error) {
	switch s {
	case "moore":
		return Moore, nil
	case "von_neumann":
		return VonNeumann, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidNeighborhood, s)
	}
}

// Extract returns the neighborhood of (x, y) in shape-offset order, the cell
// itself first. Offsets that fall outside the grid yield Border. The offset
// (dx, dy) addresses the cell at column x+dx and row y-dy, so positive dy
// looks upward.
func (n Neighborhood) Extract(g Grid, x, y int) []StateID {
	offsets := n.Offsets()
	out := make([]StateID, len(offsets))
	n.extractInto(out, g, x, y)
	return out
}

// extractInto is Extract without the allocation; out must have len(Offsets()).
func (n Neighborhood) extractInto(out []StateID, g Grid, x, y int) {
	for i, off := range n.Offsets() {
		cx := x + off.DX
		cy := y - off.DY
		if cx < 0 || cx >= g.w || cy < 0 || cy >= g.h {
			out[i] = Border
			continue
		}
		out[i] = g.cells[cy*g.w+cx]
	}
}
