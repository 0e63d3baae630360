// Package sand implements the falling-sand automaton: grains drop straight
// down through empty cells and pile up on the bottom border.
package sand

import (
	"log/slog"
	"strconv"

	"github.com/yippiez/calib/internal/sim"
	"github.com/yippiez/calib/pkg/ca"
)

// StateSand is the grain state id; ca.Empty is used for vacant cells.
const StateSand ca.StateID = "sand"

// Config holds parameters for the sand simulation.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 32, Height: 16, Density: 0.2}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// Install registers the sand states and rules on the given registry. The
// rule order matters: a grain that can fall vacates its cell, and an empty
// cell under a grain receives it.
func Install(r *ca.Registry) error {
	if err := r.RegisterState(ca.Empty, map[string]any{"glyph": ".", "color": "black"}); err != nil {
		return err
	}
	if err := r.RegisterState(StateSand, map[string]any{"glyph": "#", "color": "yellow"}); err != nil {
		return err
	}

	fall, err := ca.NewPattern(map[ca.Offset]ca.StateID{
		{DX: 0, DY: 0}:  StateSand,
		{DX: 0, DY: -1}: ca.Empty,
	}, ca.Moore)
	if err != nil {
		return err
	}
	if err := r.AddRule(fall, ca.Empty); err != nil {
		return err
	}

	land, err := ca.NewPattern(map[ca.Offset]ca.StateID{
		{DX: 0, DY: 0}: ca.Empty,
		{DX: 0, DY: 1}: StateSand,
	}, ca.Moore)
	if err != nil {
		return err
	}
	return r.AddRule(land, StateSand)
}

// Sand drives the falling-sand rules over a grid.
type Sand struct {
	cfg  Config
	reg  *ca.Registry
	grid ca.Grid
}

// New creates a sand simulation with the provided configuration.
func New(cfg Config, log *slog.Logger) (*Sand, error) {
	reg := ca.NewRegistry(log)
	if err := Install(reg); err != nil {
		return nil, err
	}
	return &Sand{cfg: cfg, reg: reg, grid: ca.NewGrid(cfg.Width, cfg.Height)}, nil
}

// Name identifies the simulation.
func (s *Sand) Name() string { return "sand" }

// Grid exposes the current grid.
func (s *Sand) Grid() ca.Grid { return s.grid }

// States exposes the state registry, e.g. for viewers.
func (s *Sand) States() *ca.Registry { return s.reg }

// Reset scatters grains over the upper half of an empty grid.
func (s *Sand) Reset(seed int64) {
	rng := sim.NewRNG(seed)
	s.grid = ca.NewGrid(s.cfg.Width, s.cfg.Height)
	for y := 0; y < s.grid.H()/2; y++ {
		for x := 0; x < s.grid.W(); x++ {
			if rng.Chance(s.cfg.Density) {
				s.grid.Set(x, y, StateSand)
			}
		}
	}
}

// Step advances the simulation by one tick.
func (s *Sand) Step() error {
	next, err := s.reg.Step(s.grid)
	if err != nil {
		return err
	}
	s.grid = next
	return nil
}

func init() {
	sim.Register("sand", func(cfg map[string]string) (sim.Sim, error) {
		return New(FromMap(cfg), slog.Default())
	})
}
