package ca

import (
	"errors"
	"testing"
)

func TestNewPatternDenseMoore(t *testing.T) {
	parts := map[Offset]StateID{
		{0, 0}:   "self",
		{0, 1}:   "1",
		{1, 1}:   "2",
		{1, 0}:   "3",
		{1, -1}:  "4",
		{0, -1}:  "5",
		{-1, -1}: "6",
		{-1, 0}:  "7",
		{-1, 1}:  "8",
	}
	p, err := NewPattern(parts, Moore)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	if p.Shape() != Moore {
		t.Fatalf("shape = %v, want moore", p.Shape())
	}

	want := []StateID{"self", "1", "2", "3", "4", "5", "6", "7", "8"}
	if p.Len() != len(want) {
		t.Fatalf("pattern length = %d, want %d", p.Len(), len(want))
	}
	for i, w := range want {
		tok := p.Token(i)
		if tok.Wildcard || tok.State != w {
			t.Fatalf("token[%d] = %v, want %q", i, tok, w)
		}
	}
}

func TestNewPatternSparseDefaultsToWildcards(t *testing.T) {
	p, err := NewPattern(map[Offset]StateID{
		{0, 0}:  "sand",
		{0, -1}: "empty",
	}, Moore)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	for i := 0; i < p.Len(); i++ {
		tok := p.Token(i)
		switch i {
		case 0:
			if tok.Wildcard || tok.State != "sand" {
				t.Fatalf("self token = %v, want sand", tok)
			}
		case 5: // (0,-1) is the sixth moore offset
			if tok.Wildcard || tok.State != "empty" {
				t.Fatalf("below token = %v, want empty", tok)
			}
		default:
			if !tok.Wildcard {
				t.Fatalf("token[%d] = %v, want wildcard", i, tok)
			}
		}
	}
}

func TestNewPatternIgnoresOffsetsOutsideShape(t *testing.T) {
	p, err := NewPattern(map[Offset]StateID{
		{0, 0}: "a",
		{2, 0}: "far", // not a von neumann offset
		{1, 1}: "b",   // moore-only offset
	}, VonNeumann)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	for i := 1; i < p.Len(); i++ {
		if !p.Token(i).Wildcard {
			t.Fatalf("token[%d] = %v, want wildcard", i, p.Token(i))
		}
	}
}

func TestNewPatternErrors(t *testing.T) {
	if _, err := NewPattern(map[Offset]StateID{{0, 1}: "a"}, Moore); !errors.Is(err, ErrMissingSelf) {
		t.Fatalf("missing self: err = %v, want ErrMissingSelf", err)
	}
	if _, err := NewPattern(map[Offset]StateID{{0, 0}: "a"}, Neighborhood(42)); !errors.Is(err, ErrInvalidNeighborhood) {
		t.Fatalf("bad shape: err = %v, want ErrInvalidNeighborhood", err)
	}
}

func TestMatches(t *testing.T) {
	p, err := NewPattern(map[Offset]StateID{
		{0, 0}: "empty",
		{0, 1}: "sand",
	}, VonNeumann)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}

	cases := []struct {
		name         string
		neighborhood []StateID
		want         bool
	}{
		{"exact", []StateID{"empty", "sand", "empty", "empty", "empty"}, true},
		{"wildcards accept border", []StateID{"empty", "sand", Border, Border, Border}, true},
		{"self mismatch", []StateID{"sand", "sand", "empty", "empty", "empty"}, false},
		{"neighbor mismatch", []StateID{"empty", "empty", "empty", "empty", "empty"}, false},
		{"concrete token rejects border", []StateID{"empty", Border, "empty", "empty", "empty"}, false},
	}
	for _, tc := range cases {
		if got := p.Matches(tc.neighborhood); got != tc.want {
			t.Fatalf("%s: Matches = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesAllWildcardsExceptSelf(t *testing.T) {
	p, err := NewPattern(map[Offset]StateID{{0, 0}: "x"}, Moore)
	if err != nil {
		t.Fatalf("NewPattern: %v", err)
	}
	neighborhood := make([]StateID, Moore.Size())
	for i := range neighborhood {
		neighborhood[i] = Border
	}
	neighborhood[0] = "x"
	if !p.Matches(neighborhood) {
		t.Fatal("pattern with only a self token should match any surrounding values")
	}
}
