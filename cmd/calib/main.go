package main

import (
	// Bundled simulations register themselves with the sim registry.
	_ "github.com/yippiez/calib/internal/sims/forest"
	_ "github.com/yippiez/calib/internal/sims/sand"
)

func main() {
	Execute()
}
