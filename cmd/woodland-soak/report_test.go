package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/woodland/sim"
	"github.com/plus3/woodland/sprite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	empty := Stats{}
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestSweepStaysOnScreen(t *testing.T) {
	cfg := sim.DefaultConfig()
	script := newSweep(cfg)

	held := 0
	const dt = 1.0 / 144
	for i := range 144 * 8 {
		input := script.Input(float64(i)*dt, dt)
		require.Equal(t, dt, input.DeltaTime)
		require.GreaterOrEqual(t, input.Pointer.X(), float32(0))
		require.Less(t, input.Pointer.X(), cfg.ScreenWidth)
		require.GreaterOrEqual(t, input.Pointer.Y(), float32(0))
		require.Less(t, input.Pointer.Y(), cfg.ScreenHeight)
		if input.PrimaryDown {
			held++
		}
	}
	assert.InDelta(t, 0.75, float64(held)/(144*8), 0.01)
}

func TestReportGenerate(t *testing.T) {
	cfg := sim.DefaultConfig()
	sounds := &countingSink{}
	world := sim.NewWorld(cfg, sprite.Builtin(), sounds, rand.New(rand.NewPCG(3, 4)))
	sim.Populate(world)
	simulation := sim.NewSimulation(world)

	script := newSweep(cfg)
	for i := range 600 {
		simulation.Frame(script.Input(float64(i)/60, 1.0/60))
	}

	report := &Report{Duration: time.Second, Seed: 3, Trees: cfg.TreeCount, FrameTime: time.Second / 60, TotalFrames: 600}
	report.UpdateTime.Samples = []time.Duration{time.Millisecond}
	report.UpdateTime.Finalize()
	report.Collect(simulation, sounds)

	assert.Equal(t, cfg.TreeCount, report.Entities["tree"])
	assert.Equal(t, 1, report.Entities["reticle"])
	assert.Equal(t, report.ApplesEaten, report.Sounds["ui_confirm"])
	assert.Equal(t, report.Chops, report.Sounds["baseball_bat_swing"])
	assert.Len(t, report.Systems, 11)

	var out bytes.Buffer
	require.NoError(t, report.Generate(&out))
	text := out.String()
	assert.Contains(t, text, "# Woodland Soak Report")
	assert.Contains(t, text, "**Total Frames:** 600")
	assert.Contains(t, text, "- PruneSystem: avg")
	assert.Contains(t, text, "- tree: 20")
	assert.NotContains(t, text, "GC Pause Durations")
}
