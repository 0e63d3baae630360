package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yippiez/calib/internal/logging"
	"github.com/yippiez/calib/internal/sims/sand"
	"github.com/yippiez/calib/internal/view"
)

func TestRunnerPrintsEveryGeneration(t *testing.T) {
	s, err := sand.New(sand.Config{Width: 4, Height: 4}, nil)
	require.NoError(t, err)
	s.Grid().Set(1, 1, sand.StateSand)

	var out bytes.Buffer
	r := &Runner{
		Sim:     s,
		Steps:   3,
		Out:     &out,
		Printer: view.NewPrinter(nil, false),
		Log:     logging.NewNop(),
	}
	require.NoError(t, r.Run())

	text := out.String()
	// Initial grid plus one block per step.
	assert.Equal(t, 4, strings.Count(text, "step "))
	assert.Contains(t, text, "step 0\n....\n.#..\n....\n....\n")
	assert.Contains(t, text, "step 3\n....\n....\n....\n.#..\n")
}

func TestRunnerStopsOnStepError(t *testing.T) {
	s, err := sand.New(sand.Config{Width: 2, Height: 2}, nil)
	require.NoError(t, err)
	s.Grid().Set(0, 0, "lava") // never registered

	r := &Runner{Sim: s, Steps: 5, Log: logging.NewNop()}
	assert.Error(t, r.Run())
}
