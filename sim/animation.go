package sim

import (
	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sprite"
)

// GaitSystem picks the walk or idle cycle for men from their speed.
type GaitSystem struct{}

func (s *GaitSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	for e := range frame.World.Entities.Values() {
		if !e.Active || e.Kind != KindMan {
			continue
		}
		if e.Velocity.Len() > MinWalkSpeed {
			e.Animator.SetSprite(sprite.ManWalk)
		} else {
			e.Animator.SetSprite(sprite.ManIdle)
		}
	}
}

// AnimateSystem advances every animator. Frame durations are in
// milliseconds, so the frame time is scaled before stepping.
type AnimateSystem struct{}

func (s *AnimateSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	w := frame.World
	dt := frame.DeltaTime * AnimationTimeUnit
	for e := range w.Entities.Values() {
		if !e.Active {
			continue
		}
		e.Animator.Step(w.Sprites.Frames(e.Animator.Sprite), dt)
	}
}
