// Package forest implements a forest-fire automaton on the von Neumann
// neighborhood: a tree with a burning cardinal neighbor ignites, and fire
// burns out to ash after one tick.
package forest

import (
	"log/slog"
	"strconv"

	"github.com/yippiez/calib/internal/sim"
	"github.com/yippiez/calib/pkg/ca"
)

// State ids used by the simulation; vacant cells are ca.Empty.
const (
	StateTree ca.StateID = "tree"
	StateFire ca.StateID = "fire"
	StateAsh  ca.StateID = "ash"
)

// Config holds parameters for the forest simulation.
type Config struct {
	Width       int
	Height      int
	TreeDensity float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 32, Height: 16, TreeDensity: 0.55}
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
			c.TreeDensity = parsed
		}
	}
	return c
}

// Install registers the forest states and rules on the given registry.
// Patterns match exact states only, so "any burning neighbor ignites the
// tree" becomes one rule per cardinal offset, tried in order.
func Install(r *ca.Registry) error {
	states := []struct {
		id   ca.StateID
		meta map[string]any
	}{
		{ca.Empty, map[string]any{"glyph": ".", "color": "black"}},
		{StateTree, map[string]any{"glyph": "T", "color": "green"}},
		{StateFire, map[string]any{"glyph": "^", "color": "red"}},
		{StateAsh, map[string]any{"glyph": ",", "color": "white"}},
	}
	for _, s := range states {
		if err := r.RegisterState(s.id, s.meta); err != nil {
			return err
		}
	}

	cardinals := []ca.Offset{
		{DX: 0, DY: 1}, {DX: 1, DY: 0}, {DX: 0, DY: -1}, {DX: -1, DY: 0},
	}
	for _, off := range cardinals {
		ignite, err := ca.NewPattern(map[ca.Offset]ca.StateID{
			{DX: 0, DY: 0}: StateTree,
			off:            StateFire,
		}, ca.VonNeumann)
		if err != nil {
			return err
		}
		if err := r.AddRule(ignite, StateFire); err != nil {
			return err
		}
	}

	burnout, err := ca.NewPattern(map[ca.Offset]ca.StateID{
		{DX: 0, DY: 0}: StateFire,
	}, ca.VonNeumann)
	if err != nil {
		return err
	}
	return r.AddRule(burnout, StateAsh)
}

// Forest drives the forest-fire rules over a grid.
type Forest struct {
	cfg  Config
	reg  *ca.Registry
	grid ca.Grid
}

// New creates a forest simulation with the provided configuration.
func New(cfg Config, log *slog.Logger) (*Forest, error) {
	reg := ca.NewRegistry(log)
	if err := Install(reg); err != nil {
		return nil, err
	}
	return &Forest{cfg: cfg, reg: reg, grid: ca.NewGrid(cfg.Width, cfg.Height)}, nil
}

// Name identifies the simulation.
func (f *Forest) Name() string { return "forest" }

// Grid exposes the current grid.
func (f *Forest) Grid() ca.Grid { return f.grid }

// States exposes the state registry, e.g. for viewers.
func (f *Forest) States() *ca.Registry { return f.reg }

// Reset grows a random forest and lights a single fire.
func (f *Forest) Reset(seed int64) {
	rng := sim.NewRNG(seed)
	f.grid = ca.NewGrid(f.cfg.Width, f.cfg.Height)

	type point struct{ x, y int }
	trees := make([]point, 0, f.grid.W()*f.grid.H())
	for y := 0; y < f.grid.H(); y++ {
		for x := 0; x < f.grid.W(); x++ {
			if rng.Chance(f.cfg.TreeDensity) {
				f.grid.Set(x, y, StateTree)
				trees = append(trees, point{x, y})
			}
		}
	}
	if len(trees) > 0 {
		spark := trees[rng.IntN(len(trees))]
		f.grid.Set(spark.x, spark.y, StateFire)
	}
}

// Step advances the simulation by one tick.
func (f *Forest) Step() error {
	next, err := f.reg.Step(f.grid)
	if err != nil {
		return err
	}
	f.grid = next
	return nil
}

func init() {
	sim.Register("forest", func(cfg map[string]string) (sim.Sim, error) {
		return New(FromMap(cfg), slog.Default())
	})
}
