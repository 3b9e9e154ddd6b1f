package ecs_test

import (
	"fmt"

	"github.com/plus3/woodland/ecs"
)

type Timer struct {
	Left float64
	Done bool
}

type CountdownSystem struct{}

func (s *CountdownSystem) Execute(frame *ecs.UpdateFrame[*ecs.Storage[Timer]]) {
	for id, timer := range frame.World.Iter() {
		timer.Left -= frame.DeltaTime
		if timer.Left <= 0 {
			timer.Done = true
			frame.Commands.Defer(func() {
				fmt.Printf("timer %d expired\n", id)
			})
		}
	}
}

type SweepSystem struct{}

func (s *SweepSystem) Execute(frame *ecs.UpdateFrame[*ecs.Storage[Timer]]) {
	frame.World.Retain(func(t *Timer) bool { return !t.Done })
}

// ExampleScheduler demonstrates building a frame out of ordered systems.
// Systems run in registration order and share the world passed to Once;
// deferred commands run after the last system.
func ExampleScheduler() {
	storage := ecs.NewStorage[Timer]()
	storage.Spawn(Timer{Left: 0.5})
	storage.Spawn(Timer{Left: 1.5})

	scheduler := ecs.NewScheduler[*ecs.Storage[Timer]]()
	scheduler.Register(&CountdownSystem{})
	scheduler.Register(&SweepSystem{})

	for frame := 1; frame <= 2; frame++ {
		scheduler.Once(storage, 1.0)
		fmt.Printf("after frame %d: %d timers\n", frame, storage.Len())
	}

	// Output:
	// timer 1 expired
	// after frame 1: 1 timers
	// timer 2 expired
	// after frame 2: 0 timers
}
