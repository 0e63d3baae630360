// Package app drives simulations for the CLI: a headless fixed-count runner
// here, and the interactive watch mode in internal/view.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/yippiez/calib/internal/sim"
	"github.com/yippiez/calib/internal/view"
)

// Runner advances a simulation a fixed number of steps, printing each
// generation.
type Runner struct {
	Sim     sim.Sim
	Steps   int
	TPS     int // 0 runs unpaced
	Out     io.Writer
	Printer *view.Printer
	Log     *slog.Logger
}

// Run executes the configured number of steps. It stops at the first step
// error; per the engine contract a failed step produces no partial grid.
func (r *Runner) Run() error {
	log := r.Log
	if log == nil {
		log = slog.Default()
	}

	start := time.Now()
	r.print(0)

	var fs *sim.FixedStep
	if r.TPS > 0 {
		fs = sim.NewFixedStep(r.TPS)
	}
	for i := 1; i <= r.Steps; i++ {
		if fs != nil {
			for !fs.ShouldStep() {
				time.Sleep(time.Millisecond)
			}
		}
		if err := r.Sim.Step(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
		r.print(i)
	}

	log.Info("simulation finished",
		"sim", r.Sim.Name(), "steps", r.Steps, "elapsed", time.Since(start).Round(time.Millisecond))
	return nil
}

func (r *Runner) print(step int) {
	if r.Printer == nil || r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, "step %d\n%s\n", step, r.Printer.Render(r.Sim.Grid(), r.Sim.States()))
}
