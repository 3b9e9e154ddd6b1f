package sim

import (
	"math/rand/v2"

	"github.com/plus3/woodland/sprite"
)

// SpriteCatalog is the read-only sprite metadata the simulation needs.
type SpriteCatalog interface {
	Frames(kind sprite.Kind) []sprite.Frame
}

// Animator is a cursor into the frames of one sprite sheet.
// Elapsed is measured in the unit of the sheet's frame durations (milliseconds).
type Animator struct {
	Sprite  sprite.Kind
	Frame   int
	Elapsed float64
	Scale   float32
}

// NewAnimator starts at the first frame of kind.
func NewAnimator(kind sprite.Kind, scale float32) Animator {
	return Animator{Sprite: kind, Scale: scale}
}

// Step advances the animation by dt. At most one frame is advanced per call,
// however large dt is. If the sheet shrank since the last call (hot reload),
// the cursor is clamped to its last frame first.
func (a *Animator) Step(frames []sprite.Frame, dt float64) {
	if len(frames) == 0 {
		return
	}
	if a.Frame >= len(frames) {
		a.Frame = len(frames) - 1
	}

	a.Elapsed += dt
	if a.Elapsed >= frames[a.Frame].Duration {
		a.Elapsed = 0
		a.Frame = (a.Frame + 1) % len(frames)
	}
}

// SetSprite switches to another sheet and restarts it. Setting the sheet
// that is already playing leaves the animation running.
func (a *Animator) SetSprite(kind sprite.Kind) {
	if a.Sprite == kind {
		return
	}
	a.Sprite = kind
	a.Frame = 0
	a.Elapsed = 0
}

// RandomizeFrame jumps to a uniformly random frame of the current sheet.
func (a *Animator) RandomizeFrame(catalog SpriteCatalog, rng *rand.Rand) {
	n := len(catalog.Frames(a.Sprite))
	if n == 0 {
		return
	}
	a.Frame = rng.IntN(n)
}
