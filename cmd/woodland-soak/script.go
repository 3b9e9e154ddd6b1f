package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/sim"
)

// sweep drives the pointer along a Lissajous curve over the whole screen and
// holds the button for three seconds out of every four.
type sweep struct {
	width, height float64
}

func newSweep(cfg sim.Config) *sweep {
	return &sweep{width: float64(cfg.ScreenWidth), height: float64(cfg.ScreenHeight)}
}

func (s *sweep) Input(t, dt float64) sim.FrameInput {
	x := s.width/2 + 0.45*s.width*math.Sin(t*0.7)
	y := s.height/2 + 0.45*s.height*math.Sin(t*1.1+1)
	return sim.FrameInput{
		DeltaTime:   dt,
		Pointer:     mgl32.Vec2{float32(x), float32(y)},
		PrimaryDown: math.Mod(t, 4) < 3,
	}
}
