package sim_test

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/sim"
	"github.com/plus3/woodland/sprite"
)

// frozenSheets never advances past the frame an animator starts on; the axe
// has enough frames to reach the impact frame.
type frozenSheets struct{}

func (frozenSheets) Frames(kind sprite.Kind) []sprite.Frame {
	hold := sprite.Frame{Duration: 1e9}
	if kind == sprite.AxeCutting {
		return []sprite.Frame{hold, hold, hold, hold}
	}
	return []sprite.Frame{hold, hold}
}

type recordingSink struct {
	played []sim.SoundEffect
}

func (r *recordingSink) Play(effect sim.SoundEffect) {
	r.played = append(r.played, effect)
}

func (r *recordingSink) count(effect sim.SoundEffect) int {
	n := 0
	for _, e := range r.played {
		if e == effect {
			n++
		}
	}
	return n
}

func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func newTestWorld(catalog sim.SpriteCatalog) (*sim.World, *recordingSink) {
	sink := &recordingSink{}
	return sim.NewWorld(sim.DefaultConfig(), catalog, sink, newRand()), sink
}

func frame(dt float64, pointer mgl32.Vec2, down bool) sim.FrameInput {
	return sim.FrameInput{DeltaTime: dt, Pointer: pointer, PrimaryDown: down}
}

func kinds(w *sim.World) []sim.Kind {
	out := make([]sim.Kind, 0, w.Entities.Len())
	for e := range w.Entities.Values() {
		out = append(out, e.Kind)
	}
	return out
}
