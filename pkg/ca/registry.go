package ca

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
)

// Rule pairs a matching pattern with the state a matching cell turns into.
// Rules are evaluated in registration order; the first match wins.
type Rule struct {
	Pattern Pattern
	Result  StateID
}

// CellState is one registered state: its id, opaque metadata carried for
// consumers such as viewers, and its ordered rule list.
type CellState struct {
	ID       StateID
	Metadata map[string]any

	rules []Rule
}

// Rules returns the state's rules in registration order.
func (c *CellState) Rules() []Rule { return c.rules }

// Registry is the catalogue of known cell states and their rules. It is the
// mutable setup-time half of a simulation: populate it before stepping and
// leave it untouched while a step is in flight. A Registry is not safe for
// concurrent mutation.
type Registry struct {
	states map[StateID]*CellState
	log    *slog.Logger
}

// NewRegistry creates an empty registry. A nil logger disables logging.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{states: make(map[StateID]*CellState), log: log}
}

// RegisterState adds a state with the given metadata and an empty rule list.
// Registering an id that already exists is a destructive overwrite: the
// previous metadata and all previously added rules are discarded. This
// matches the reference semantics; the overwrite is logged because it is an
// easy way to lose rules by accident.
func (r *Registry) RegisterState(id StateID, metadata map[string]any) error {
	if id == Border {
		return fmt.Errorf("%w: %q", ErrReservedState, id)
	}
	if prev, ok := r.states[id]; ok {
		r.log.Warn("overwriting registered cell state",
			"state", id, "rules_discarded", len(prev.rules))
	}
	r.states[id] = &CellState{ID: id, Metadata: metadata}
	return nil
}

// AddRule appends a rule to the state named by the pattern's self token.
// The owning state must already be registered.
func (r *Registry) AddRule(p Pattern, result StateID) error {
	if p.Len() == 0 {
		return ErrMissingSelf
	}
	owner := p.Self()
	state, ok := r.states[owner]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, owner)
	}
	state.rules = append(state.rules, Rule{Pattern: p, Result: result})
	return nil
}

// RulesFor returns the rules of the given state in registration order.
func (r *Registry) RulesFor(id StateID) ([]Rule, error) {
	state, ok := r.states[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownState, id)
	}
	return state.rules, nil
}

// State looks up a registered state, e.g. to read its metadata.
func (r *Registry) State(id StateID) (*CellState, bool) {
	state, ok := r.states[id]
	return state, ok
}

// IDs returns the registered state ids in sorted order.
func (r *Registry) IDs() []StateID {
	ids := make([]StateID, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
