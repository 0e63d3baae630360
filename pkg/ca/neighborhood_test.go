package ca

import "testing"

// numbered returns the 3x3 grid
//
//	1 2 3
//	4 5 6
//	7 8 9
func numbered(t *testing.T) Grid {
	t.Helper()
	g, err := GridFromRows([][]StateID{
		{"1", "2", "3"},
		{"4", "5", "6"},
		{"7", "8", "9"},
	})
	if err != nil {
		t.Fatalf("GridFromRows: %v", err)
	}
	return g
}

func TestExtractCenter(t *testing.T) {
	g := numbered(t)

	moore := Moore.Extract(g, 1, 1)
	wantMoore := []StateID{"5", "2", "3", "6", "9", "8", "7", "4", "1"}
	if len(moore) != len(wantMoore) {
		t.Fatalf("moore length = %d, want %d", len(moore), len(wantMoore))
	}
	for i, want := range wantMoore {
		if moore[i] != want {
			t.Fatalf("moore[%d] = %q, want %q (full: %v)", i, moore[i], want, moore)
		}
	}

	vn := VonNeumann.Extract(g, 1, 1)
	wantVN := []StateID{"5", "2", "6", "8", "4"}
	for i, want := range wantVN {
		if vn[i] != want {
			t.Fatalf("von neumann[%d] = %q, want %q (full: %v)", i, vn[i], want, vn)
		}
	}
}

func TestExtractSelfFirst(t *testing.T) {
	g := numbered(t)
	for _, shape := range []Neighborhood{Moore, VonNeumann} {
		for y := 0; y < g.H(); y++ {
			for x := 0; x < g.W(); x++ {
				got := shape.Extract(g, x, y)
				if got[0] != g.At(x, y) {
					t.Fatalf("%v at (%d,%d): self = %q, want %q", shape, x, y, got[0], g.At(x, y))
				}
			}
		}
	}
}

func TestExtractBorders(t *testing.T) {
	g := numbered(t)

	// Top-left corner: everything above and to the left is outside.
	moore := Moore.Extract(g, 0, 0)
	wantMoore := []StateID{"1", Border, Border, "2", "5", "4", Border, Border, Border}
	for i, want := range wantMoore {
		if moore[i] != want {
			t.Fatalf("moore corner[%d] = %q, want %q", i, moore[i], want)
		}
	}

	// Bottom-right corner for the other shape.
	vn := VonNeumann.Extract(g, 2, 2)
	wantVN := []StateID{"9", "6", Border, Border, "8"}
	for i, want := range wantVN {
		if vn[i] != want {
			t.Fatalf("von neumann corner[%d] = %q, want %q", i, vn[i], want)
		}
	}
}

func TestExtractLength(t *testing.T) {
	g := numbered(t)
	if got := Moore.Extract(g, 0, 0); len(got) != Moore.Size() {
		t.Fatalf("moore extraction length = %d, want %d", len(got), Moore.Size())
	}
	if got := VonNeumann.Extract(g, 0, 0); len(got) != VonNeumann.Size() {
		t.Fatalf("von neumann extraction length = %d, want %d", len(got), VonNeumann.Size())
	}
}

func TestParseNeighborhood(t *testing.T) {
	if n, err := ParseNeighborhood("moore"); err != nil || n != Moore {
		t.Fatalf("ParseNeighborhood(moore) = %v, %v", n, err)
	}
	if n, err := ParseNeighborhood("von_neumann"); err != nil || n != VonNeumann {
		t.Fatalf("ParseNeighborhood(von_neumann) = %v, %v", n, err)
	}
	if _, err := ParseNeighborhood("hexagonal"); err == nil {
		t.Fatal("ParseNeighborhood(hexagonal) succeeded, want error")
	}
}
