// Package config loads simulation scenarios from YAML files. A scenario is
// harness configuration: the states, rules, and starting grid of a custom
// automaton, assembled into a runnable simulation through the engine's
// public operations.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/yippiez/calib/pkg/ca"
)

type stateSpec struct {
	ID       string         `yaml:"id"`
	Metadata map[string]any `yaml:"metadata"`
}

type ruleSpec struct {
	Neighborhood string            `yaml:"neighborhood"`
	When         map[string]string `yaml:"when"`
	Become       string            `yaml:"become"`
}

type scenarioFile struct {
	Name   string      `yaml:"name"`
	States []stateSpec `yaml:"states"`
	Rules  []ruleSpec  `yaml:"rules"`
	Grid   [][]string  `yaml:"grid"`
}

// Scenario is a simulation assembled from a YAML file. Reset restores the
// file's starting grid; the seed is unused because scenarios are fully
// specified.
type Scenario struct {
	name    string
	reg     *ca.Registry
	initial ca.Grid
	grid    ca.Grid
}

// Load reads a scenario file and assembles it into a runnable simulation.
func Load(path string, log *slog.Logger) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(raw, log)
}

// Parse assembles a scenario from YAML bytes.
func Parse(raw []byte, log *slog.Logger) (*Scenario, error) {
	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(file.States) == 0 {
		return nil, fmt.Errorf("scenario %q declares no states", file.Name)
	}
	if len(file.Grid) == 0 {
		return nil, fmt.Errorf("scenario %q declares no grid", file.Name)
	}

	reg := ca.NewRegistry(log)
	for _, s := range file.States {
		if err := reg.RegisterState(ca.StateID(s.ID), s.Metadata); err != nil {
			return nil, fmt.Errorf("state %q: %w", s.ID, err)
		}
	}

	for i, r := range file.Rules {
		shape, err := ca.ParseNeighborhood(r.Neighborhood)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		parts := make(map[ca.Offset]ca.StateID, len(r.When))
		for key, state := range r.When {
			off, err := parseOffset(key)
			if err != nil {
				return nil, fmt.Errorf("rule %d: %w", i, err)
			}
			parts[off] = ca.StateID(state)
		}
		pattern, err := ca.NewPattern(parts, shape)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		if err := reg.AddRule(pattern, ca.StateID(r.Become)); err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
	}

	rows := make([][]ca.StateID, len(file.Grid))
	for y, row := range file.Grid {
		rows[y] = make([]ca.StateID, len(row))
		for x, cell := range row {
			rows[y][x] = ca.StateID(cell)
		}
	}
	grid, err := ca.GridFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("scenario grid: %w", err)
	}

	name := file.Name
	if name == "" {
		name = "scenario"
	}
	return &Scenario{name: name, reg: reg, initial: grid, grid: grid.Clone()}, nil
}

// parseOffset converts a "dx,dy" key into an offset.
func parseOffset(key string) (ca.Offset, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 2 {
		return ca.Offset{}, fmt.Errorf("offset %q: want \"dx,dy\"", key)
	}
	dx, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return ca.Offset{}, fmt.Errorf("offset %q: %w", key, err)
	}
	dy, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ca.Offset{}, fmt.Errorf("offset %q: %w", key, err)
	}
	return ca.Offset{DX: dx, DY: dy}, nil
}

// Name identifies the scenario.
func (s *Scenario) Name() string { return s.name }

// Grid exposes the current grid.
func (s *Scenario) Grid() ca.Grid { return s.grid }

// States exposes the state registry.
func (s *Scenario) States() *ca.Registry { return s.reg }

// Reset restores the scenario's starting grid.
func (s *Scenario) Reset(seed int64) {
	s.grid = s.initial.Clone()
}

// Step advances the scenario by one tick.
func (s *Scenario) Step() error {
	next, err := s.reg.Step(s.grid)
	if err != nil {
		return err
	}
	s.grid = next
	return nil
}
