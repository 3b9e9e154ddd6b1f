package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/ecs"
)

// FrictionSystem damps the velocity of entities that have a friction
// coefficient, and stops them once they crawl below RestSpeed.
type FrictionSystem struct{}

func (s *FrictionSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	dt := float32(frame.DeltaTime)
	for e := range frame.World.Entities.Values() {
		if !e.Active || e.Friction == nil {
			continue
		}

		factor := max(0, 1-*e.Friction*dt)
		e.Velocity = e.Velocity.Mul(factor)

		if e.Velocity.Len() < RestSpeed {
			e.Velocity = mgl32.Vec2{}
		}
	}
}

// IntegrateSystem moves entities by velocity·dt.
type IntegrateSystem struct{}

func (s *IntegrateSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	dt := float32(frame.DeltaTime)
	for e := range frame.World.Entities.Values() {
		if !e.Active {
			continue
		}
		e.Position = e.Position.Add(e.Velocity.Mul(dt))
	}
}

// WrapSystem folds positions back onto the screen torus. Entities are assumed
// to move less than one screen per frame, so one correction per axis suffices.
type WrapSystem struct{}

func (s *WrapSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	w, h := frame.World.Config.ScreenWidth, frame.World.Config.ScreenHeight
	for e := range frame.World.Entities.Values() {
		if !e.Active {
			continue
		}
		e.Position[0] = wrap(e.Position[0], w)
		e.Position[1] = wrap(e.Position[1], h)
	}
}

// wrap maps v into [0, size). Adding size to a tiny negative v can round up
// to size itself, hence the second check.
func wrap(v, size float32) float32 {
	if v < 0 {
		v += size
	}
	if v >= size {
		v -= size
	}
	return v
}
