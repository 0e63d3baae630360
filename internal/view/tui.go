package view

import (
	"fmt"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"github.com/yippiez/calib/internal/sim"
)

// UI is the interactive watch mode: the grid in a bordered view, a status
// bar underneath, and keybindings to step, run, and reset the simulation.
type UI struct {
	gui     *gocui.Gui
	sim     sim.Sim
	printer *Printer
	seed    int64
	tps     int

	mu      sync.Mutex
	running bool
	steps   int
	lastErr error

	quit chan struct{}
}

// NewUI creates the watch-mode UI for the given simulation.
func NewUI(s sim.Sim, seed int64, tps int, color bool) (*UI, error) {
	gui, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, fmt.Errorf("init terminal ui: %w", err)
	}

	u := &UI{
		gui:     gui,
		sim:     s,
		printer: NewPrinter(nil, color),
		seed:    seed,
		tps:     tps,
		quit:    make(chan struct{}),
	}
	gui.SetManagerFunc(u.layout)

	bindings := []struct {
		key     interface{}
		handler func(*gocui.Gui, *gocui.View) error
	}{
		{gocui.KeyCtrlC, u.cmdQuit},
		{'q', u.cmdQuit},
		{'n', u.cmdStepOnce},
		{'r', u.cmdRun},
		{'s', u.cmdStop},
		{'w', u.cmdReset},
	}
	for _, b := range bindings {
		if err := gui.SetKeybinding("", b.key, gocui.ModNone, b.handler); err != nil {
			gui.Close()
			return nil, fmt.Errorf("keybinding: %w", err)
		}
	}
	return u, nil
}

// Run drives the UI until the user quits. It returns the last simulation
// error, if stepping failed.
func (u *UI) Run() error {
	go u.loop()
	err := u.gui.MainLoop()
	close(u.quit)
	u.gui.Close()
	if err != nil && err != gocui.ErrQuit {
		return err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.lastErr
}

// loop advances the simulation while running, paced by a fixed-step
// accumulator so the automaton ticks at the configured TPS regardless of
// the redraw cadence.
func (u *UI) loop() {
	fs := sim.NewFixedStep(u.tps)
	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-u.quit:
			return
		case <-ticker.C:
			u.mu.Lock()
			advance := u.running && fs.ShouldStep()
			u.mu.Unlock()
			if advance {
				u.step()
			}
			u.gui.Update(func(*gocui.Gui) error { return nil })
		}
	}
}

func (u *UI) step() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if err := u.sim.Step(); err != nil {
		u.lastErr = err
		u.running = false
		return
	}
	u.steps++
}

func (u *UI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()
	grid := u.sim.Grid()

	w := grid.W() + 1
	if w > maxX-1 {
		w = maxX - 1
	}
	h := grid.H() + 1
	if h > maxY-4 {
		h = maxY - 4
	}

	gv, err := g.SetView("grid", 0, 0, w, h)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	gv.Title = u.sim.Name()
	gv.Clear()
	u.mu.Lock()
	fmt.Fprint(gv, u.printer.Render(grid, u.sim.States()))
	status := u.statusLine()
	u.mu.Unlock()

	sv, err := g.SetView("status", 0, h+1, maxX-1, h+3)
	if err != nil && err != gocui.ErrUnknownView {
		return err
	}
	sv.Frame = false
	sv.Clear()
	fmt.Fprintf(sv, "%s\n", status)
	fmt.Fprint(sv, "N step  R run  S stop  W reset  Q quit")
	return nil
}

func (u *UI) statusLine() string {
	mode := aurora.Blue("paused").String()
	if u.running {
		mode = aurora.Cyan("running").String()
	}
	if u.lastErr != nil {
		mode = aurora.Red(u.lastErr.Error()).String()
	}
	return fmt.Sprintf("step %d  %s", u.steps, mode)
}

func (u *UI) cmdQuit(*gocui.Gui, *gocui.View) error {
	return gocui.ErrQuit
}

func (u *UI) cmdStepOnce(*gocui.Gui, *gocui.View) error {
	u.step()
	return nil
}

func (u *UI) cmdRun(*gocui.Gui, *gocui.View) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.lastErr == nil {
		u.running = true
	}
	return nil
}

func (u *UI) cmdStop(*gocui.Gui, *gocui.View) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.running = false
	return nil
}

func (u *UI) cmdReset(*gocui.Gui, *gocui.View) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.sim.Reset(u.seed)
	u.steps = 0
	u.lastErr = nil
	return nil
}
