package ca

import "fmt"

// Token is one slot of a pattern: either a concrete state that must match
// exactly, or a wildcard that matches anything, Border included. The
// wildcard is a dedicated flag rather than a magic state id, so a state
// literally named "*" cannot collide with it.
type Token struct {
	State    StateID
	Wildcard bool
}

// String renders the token for diagnostics.
func (t Token) String() string {
	if t.Wildcard {
		return "*"
	}
	return string(t.State)
}

// Pattern is a dense template over a neighborhood shape: one token per shape
// offset, in shape-offset order. Index 0 corresponds to the (0,0) self
// offset. Patterns are immutable once built.
type Pattern struct {
	tokens []Token
	shape  Neighborhood
}

// NewPattern builds a pattern from a sparse offset-to-state map. Every
// offset missing from the map becomes a wildcard; offsets that do not exist
// in the shape are ignored. The map must contain the (0,0) self offset —
// its value identifies the state the resulting rule belongs to.
func NewPattern(parts map[Offset]StateID, shape Neighborhood) (Pattern, error) {
	if !shape.Valid() {
		return Pattern{}, fmt.Errorf("%w: %d", ErrInvalidNeighborhood, uint8(shape))
	}
	if _, ok := parts[Offset{0, 0}]; !ok {
		return Pattern{}, ErrMissingSelf
	}

	offsets := shape.Offsets()
	tokens := make([]Token, len(offsets))
	for i := range tokens {
		tokens[i] = Token{Wildcard: true}
	}
	for i, off := range offsets {
		if state, ok := parts[off]; ok {
			tokens[i] = Token{State: state}
		}
	}
	return Pattern{tokens: tokens, shape: shape}, nil
}

// Shape returns the neighborhood type the pattern was built for.
func (p Pattern) Shape() Neighborhood { return p.shape }

// Len returns the number of tokens, which equals the shape size.
func (p Pattern) Len() int { return len(p.tokens) }

// Token returns the token at the given shape index.
func (p Pattern) Token(i int) Token { return p.tokens[i] }

// Self returns the state the pattern requires at the (0,0) offset. It is
// always concrete because NewPattern rejects maps without a self entry.
func (p Pattern) Self() StateID { return p.tokens[0].State }

// Matches reports whether every non-wildcard token equals the corresponding
// neighborhood entry. The neighborhood must come from an extraction with the
// pattern's own shape; lengths are expected to agree by construction.
func (p Pattern) Matches(neighborhood []StateID) bool {
	if len(neighborhood) != len(p.tokens) {
		return false
	}
	for i, tok := range p.tokens {
		if tok.Wildcard {
			continue
		}
		if tok.State != neighborhood[i] {
			return false
		}
	}
	return true
}
