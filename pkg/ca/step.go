package ca

import "fmt"

// stepScratch holds the per-cell neighborhood cache for one Step call. The
// same cell's neighborhood is often requested by several rules (and by rules
// of both shapes), so extractions are memoized per shape and reused until
// the evaluation moves on to the next cell.
type stepScratch struct {
	buf   [neighborhoodCount][]StateID
	fresh [neighborhoodCount]bool
}

func newStepScratch() *stepScratch {
	var s stepScratch
	for n := Neighborhood(0); n < neighborhoodCount; n++ {
		s.buf[n] = make([]StateID, n.Size())
	}
	return &s
}

// neighborhood returns the memoized extraction for the given shape at (x, y).
func (s *stepScratch) neighborhood(n Neighborhood, g Grid, x, y int) []StateID {
	if !s.fresh[n] {
		n.extractInto(s.buf[n], g, x, y)
		s.fresh[n] = true
	}
	return s.buf[n]
}

func (s *stepScratch) nextCell() {
	s.fresh = [neighborhoodCount]bool{}
}

// Step advances the grid by one generation and returns the result as a new
// grid; the input is never modified. For every cell the rules of its current
// state are tried in registration order against the pre-step grid, and the
// first matching rule decides the new value. A cell with no matching rule
// keeps its state. All lookups read the input snapshot, so the outcome does
// not depend on cell evaluation order.
//
// Step fails with ErrUnknownState if the grid contains a state that was
// never registered; no partial result is returned in that case.
func (r *Registry) Step(g Grid) (Grid, error) {
	next := NewGrid(g.w, g.h)
	scratch := newStepScratch()

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			current := g.At(x, y)
			state, ok := r.states[current]
			if !ok {
				return Grid{}, fmt.Errorf("cell (%d,%d): %w: %q", x, y, ErrUnknownState, current)
			}

			scratch.nextCell()
			result := current
			for _, rule := range state.rules {
				neighborhood := scratch.neighborhood(rule.Pattern.Shape(), g, x, y)
				if rule.Pattern.Matches(neighborhood) {
					result = rule.Result
					break
				}
			}
			next.Set(x, y, result)
		}
	}
	return next, nil
}
