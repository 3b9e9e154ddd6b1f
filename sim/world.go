package sim

import (
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/ecs"
)

// FrameInput is what the host samples once per frame before stepping.
type FrameInput struct {
	DeltaTime   float64 // seconds since the previous frame
	Pointer     mgl32.Vec2
	PrimaryDown bool
	Nudge       mgl32.Vec2 // reticle velocity from the arrow keys
}

// ArrowNudge turns held arrow keys into a reticle velocity. Right wins over
// left and down wins over up.
func ArrowNudge(left, right, up, down bool) mgl32.Vec2 {
	var v mgl32.Vec2
	switch {
	case right:
		v[0] = ReticleNudgeSpeed
	case left:
		v[0] = -ReticleNudgeSpeed
	}
	switch {
	case down:
		v[1] = ReticleNudgeSpeed
	case up:
		v[1] = -ReticleNudgeSpeed
	}
	return v
}

// World is the mutable state threaded through every stage of a frame.
// The reticle and the apple are named roles, not store positions.
type World struct {
	Config   Config
	Entities *ecs.Storage[Entity]

	Reticle ecs.EntityId
	Apple   ecs.EntityId

	ChopCooldown float32
	Input        FrameInput

	Sprites SpriteCatalog
	Sounds  SoundSink
	Rand    *rand.Rand
}

// NewWorld creates an empty world. Sounds may be nil.
func NewWorld(cfg Config, sprites SpriteCatalog, sounds SoundSink, rng *rand.Rand) *World {
	return &World{
		Config:   cfg,
		Entities: ecs.NewStorage[Entity](),
		Sprites:  sprites,
		Sounds:   sounds,
		Rand:     rng,
	}
}

// Spawn appends an entity to the store.
func (w *World) Spawn(e Entity) ecs.EntityId {
	return w.Entities.Spawn(e)
}

// Entity returns the entity behind a handle, or nil once it has been pruned.
func (w *World) Entity(id ecs.EntityId) *Entity {
	return w.Entities.Get(id)
}

// RandomPoint returns a uniformly random on-screen position.
func (w *World) RandomPoint() mgl32.Vec2 {
	return mgl32.Vec2{
		w.Rand.Float32() * w.Config.ScreenWidth,
		w.Rand.Float32() * w.Config.ScreenHeight,
	}
}

// Center returns the middle of the screen.
func (w *World) Center() mgl32.Vec2 {
	return mgl32.Vec2{w.Config.ScreenWidth / 2, w.Config.ScreenHeight / 2}
}

// lastMan returns the handle of the last live man in store order.
func (w *World) lastMan() (ecs.EntityId, bool) {
	for slot := w.Entities.Len() - 1; slot >= 0; slot-- {
		e := w.Entities.At(slot)
		if e.Active && e.Kind == KindMan {
			return w.Entities.IdAt(slot), true
		}
	}
	return ecs.NoEntity, false
}

// Count returns how many live entities of a kind are stored.
func (w *World) Count(kind Kind) int {
	n := 0
	for e := range w.Entities.Values() {
		if e.Active && e.Kind == kind {
			n++
		}
	}
	return n
}
