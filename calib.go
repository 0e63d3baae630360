// Package calib is a small engine for anisotropic cellular automata: grids of
// named cell states evolved by ordered, pattern-matching transition rules.
//
// The engine itself lives in pkg/ca. Simulations are built by registering
// states and rules, not by writing per-simulation step logic; see
// internal/sims for the bundled examples and cmd/calib for the demo CLI.
package calib

// Version is the current release of the calib module.
const Version = "0.2.0"
