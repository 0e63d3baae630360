// Package sim defines the harness contract for runnable simulations and a
// registry of named simulation factories.
package sim

import (
	"sort"

	"github.com/yippiez/calib/pkg/ca"
)

// Sim is the minimal contract a runnable cellular automaton must implement.
type Sim interface {
	Name() string
	Grid() ca.Grid
	States() *ca.Registry
	Reset(seed int64)
	Step() error
}

// Factory constructs a Sim from flag-style key/value configuration.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// Names returns the registered simulation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(sims))
	for name := range sims {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
