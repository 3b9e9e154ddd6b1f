package main

import (
	"context"
	"time"

	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sim"
)

// soak is the state the driver scheduler runs over.
type soak struct {
	simulation *sim.Simulation
	script     *sweep
	report     *Report
	maxFrames  int64

	elapsed float64
	frames  int64
	stop    context.CancelFunc
}

// FrameSystem feeds the scripted input into one simulation frame and samples
// how long it took.
type FrameSystem struct{}

func (FrameSystem) Execute(frame *ecs.UpdateFrame[*soak]) {
	s := frame.World
	if s.maxFrames > 0 && s.frames >= s.maxFrames {
		s.stop()
		return
	}

	dt := frame.DeltaTime
	input := s.script.Input(s.elapsed, dt)

	start := time.Now()
	s.simulation.Frame(input)
	s.report.UpdateTime.Samples = append(s.report.UpdateTime.Samples, time.Since(start))
	s.report.PeakEntities = max(s.report.PeakEntities, s.simulation.World.Entities.Len())

	s.elapsed += dt
	s.frames++
}

// run drives the soak until ctx ends or the frame limit is hit. Flat out, every
// frame gets the fixed frame time; paced, frames follow the wall clock.
func (s *soak) run(ctx context.Context, frameTime time.Duration, paced bool) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.stop = cancel

	scheduler := ecs.NewScheduler[*soak]()
	scheduler.Register(FrameSystem{})

	if paced {
		scheduler.Run(ctx, frameTime, s)
		return
	}

	dt := frameTime.Seconds()
	for ctx.Err() == nil {
		scheduler.Once(s, dt)
	}
}
