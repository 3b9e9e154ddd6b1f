package sim

import "github.com/plus3/woodland/ecs"

// Simulation runs the frame pipeline over a world.
//
// The stage order is fixed: friction, integration, wraparound, gait,
// animation, apple, following, chopping, stumps, expiry, prune. Each stage sees
// what the previous stages of the same frame wrote.
type Simulation struct {
	World *World

	Apples *AppleSystem
	Chops  *ChopSystem
	Prunes *PruneSystem

	scheduler *ecs.Scheduler[*World]
	frames    int64
}

// NewSimulation wires the pipeline for world.
func NewSimulation(world *World) *Simulation {
	s := &Simulation{
		World:     world,
		Apples:    &AppleSystem{},
		Chops:     &ChopSystem{},
		Prunes:    &PruneSystem{},
		scheduler: ecs.NewScheduler[*World](),
	}

	s.scheduler.Register(&FrictionSystem{})
	s.scheduler.Register(&IntegrateSystem{})
	s.scheduler.Register(&WrapSystem{})
	s.scheduler.Register(&GaitSystem{})
	s.scheduler.Register(&AnimateSystem{})
	s.scheduler.Register(s.Apples)
	s.scheduler.Register(&FollowSystem{})
	s.scheduler.Register(s.Chops)
	s.scheduler.Register(&StumpSystem{})
	s.scheduler.Register(&ExpirySystem{})
	s.scheduler.Register(s.Prunes)

	return s
}

// Frame runs one frame to completion. The reticle is moved to the pointer
// and given the nudge velocity before the first stage, so integration drifts
// it off the pointer while arrow keys are held.
func (s *Simulation) Frame(input FrameInput) {
	w := s.World
	w.Input = input
	if reticle := w.Entity(w.Reticle); reticle != nil {
		reticle.Position = input.Pointer
		reticle.Velocity = input.Nudge
	}

	s.scheduler.Once(w, input.DeltaTime)
	s.frames++
}

// Frames returns how many frames have run.
func (s *Simulation) Frames() int64 {
	return s.frames
}

// Stats returns per-stage timing.
func (s *Simulation) Stats() *ecs.SchedulerStats {
	return s.scheduler.GetStats()
}
