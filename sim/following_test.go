package sim_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sim"
	"github.com/plus3/woodland/sprite"
	"github.com/stretchr/testify/assert"
)

func spawnPost(w *sim.World, position mgl32.Vec2) ecs.EntityId {
	return w.Spawn(sim.NewEntity(sim.KindTree, position, mgl32.Vec2{1, 1}, sprite.Tree))
}

func TestFollowing(t *testing.T) {
	t.Run("chases a distant target", func(t *testing.T) {
		w, _ := newTestWorld(frozenSheets{})
		s := sim.NewSimulation(w)
		target := spawnPost(w, mgl32.Vec2{300, 200})
		man := w.Spawn(sim.NewMan(mgl32.Vec2{200, 200}, target))

		s.Frame(frame(0.001, away, false))

		e := w.Entity(man)
		assert.InDelta(t, sim.ChaseSpeed, e.Velocity.X(), 1e-2)
		assert.InDelta(t, 0, e.Velocity.Y(), 1e-4)
		assert.InDelta(t, sim.ChaseSpeed, e.Velocity.Len(), 1e-2)
	})

	t.Run("halts close to the target", func(t *testing.T) {
		w, _ := newTestWorld(frozenSheets{})
		s := sim.NewSimulation(w)
		target := spawnPost(w, mgl32.Vec2{205, 200})
		man := sim.NewMan(mgl32.Vec2{200, 200}, target)
		man.Velocity = mgl32.Vec2{0, 0.001}
		id := w.Spawn(man)

		s.Frame(frame(0.001, away, false))

		assert.Equal(t, mgl32.Vec2{}, w.Entity(id).Velocity)
	})

	t.Run("reticle never follows", func(t *testing.T) {
		w, _ := newTestWorld(frozenSheets{})
		s := sim.NewSimulation(w)
		target := spawnPost(w, mgl32.Vec2{900, 600})
		reticle := sim.NewReticle(mgl32.Vec2{})
		reticle.Follows = target
		w.Reticle = w.Spawn(reticle)

		s.Frame(frame(0.016, mgl32.Vec2{10, 10}, false))

		e := w.Entity(w.Reticle)
		assert.Equal(t, mgl32.Vec2{}, e.Velocity)
		assert.Equal(t, mgl32.Vec2{10, 10}, e.Position)
	})

	t.Run("pruned target clears the relation", func(t *testing.T) {
		w, _ := newTestWorld(frozenSheets{})
		s := sim.NewSimulation(w)
		log := sim.NewLog(mgl32.Vec2{600, 200}, mgl32.Vec2{})
		*log.ExpireIn = 0.05
		target := w.Spawn(log)
		man := w.Spawn(sim.NewMan(mgl32.Vec2{200, 200}, target))

		s.Frame(frame(0.1, away, false))
		assert.False(t, w.Entities.Has(target))
		assert.Equal(t, target, w.Entity(man).Follows, "the log was still alive while following ran")

		s.Frame(frame(0.1, away, false))
		assert.False(t, w.Entity(man).Follows.Valid())

		w.Spawn(sim.NewTree(mgl32.Vec2{600, 200}))
		s.Frame(frame(0.1, away, false))
		assert.False(t, w.Entity(man).Follows.Valid(), "handles are never reused")
	})

	t.Run("inactive target clears the relation", func(t *testing.T) {
		w, _ := newTestWorld(frozenSheets{})
		s := sim.NewSimulation(w)
		target := spawnPost(w, mgl32.Vec2{300, 200})
		w.Entity(target).Active = false
		man := w.Spawn(sim.NewMan(mgl32.Vec2{200, 200}, target))

		s.Frame(frame(0.016, away, false))

		assert.False(t, w.Entity(man).Follows.Valid())
	})
}

func TestGait(t *testing.T) {
	w, _ := newTestWorld(frozenSheets{})
	s := sim.NewSimulation(w)

	walker := sim.NewMan(mgl32.Vec2{200, 200}, ecs.NoEntity)
	walker.Velocity = mgl32.Vec2{sim.MinWalkSpeed + 1, 0}
	walking := w.Spawn(walker)

	dawdler := sim.NewMan(mgl32.Vec2{400, 200}, ecs.NoEntity)
	dawdler.Velocity = mgl32.Vec2{sim.MinWalkSpeed, 0}
	dawdling := w.Spawn(dawdler)

	s.Frame(frame(0.016, away, false))

	assert.Equal(t, sprite.ManWalk, w.Entity(walking).Animator.Sprite)
	assert.Equal(t, sprite.ManIdle, w.Entity(dawdling).Animator.Sprite)
}
