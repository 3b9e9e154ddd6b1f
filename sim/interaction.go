package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sprite"
)

// AppleSystem lets men eat the apple. A meal grows the chain by one man
// behind the current tail and puts the apple somewhere else. At most one
// meal happens per frame.
type AppleSystem struct {
	Eaten int
}

func (s *AppleSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	w := frame.World

	apple := w.Entity(w.Apple)
	if apple == nil || !apple.Active {
		return
	}
	appleBounds := apple.Bounds()

	for man := range w.Entities.Values() {
		if !man.Active || man.Kind != KindMan {
			continue
		}
		if !man.Bounds().Intersects(appleBounds) {
			continue
		}

		playSound(frame, SoundConfirm)

		position := w.Center()
		leader, ok := w.lastMan()
		if ok {
			position = w.Entity(leader).Position
		}

		scale := FollowerMinScale + w.Rand.Float32()*(FollowerMaxScale-FollowerMinScale)
		w.Spawn(NewFollower(position, leader, scale))

		// the spawn may have moved the store; look the apple up again
		w.Entity(w.Apple).Position = w.RandomPoint()
		s.Eaten++
		return
	}
}

// ChopSystem resolves the reticle against the trees under it.
//
// Hovering a tree shows the idle axe; holding the button swings it. When the
// swing reaches ChopImpactFrame and the cooldown has run out, every tree under
// the reticle loses one hit point and sheds logs.
type ChopSystem struct {
	Chops int

	trees []ecs.EntityId
}

func (s *ChopSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	w := frame.World
	defer s.cool(w, float32(frame.DeltaTime))

	reticle := w.Entity(w.Reticle)
	if reticle == nil || !reticle.Active {
		return
	}
	reticleBounds := reticle.Bounds()

	s.trees = s.trees[:0]
	for id, e := range w.Entities.Iter() {
		if e.Active && e.Kind == KindTree && e.Bounds().Intersects(reticleBounds) {
			s.trees = append(s.trees, id)
		}
	}

	switch {
	case len(s.trees) == 0:
		reticle.Animator.SetSprite(sprite.Reticle)
	case !w.Input.PrimaryDown:
		reticle.Animator.SetSprite(sprite.AxeIdle)
	default:
		reticle.Animator.SetSprite(sprite.AxeCutting)
		if reticle.Animator.Frame != ChopImpactFrame || w.ChopCooldown > 0 {
			return
		}

		w.ChopCooldown = ChopCooldown
		playSound(frame, SoundBatSwing)
		for _, tree := range s.trees {
			s.chop(w, tree)
		}
		s.Chops++
	}
}

// cool runs down the chop cooldown every frame, chopping or not.
func (s *ChopSystem) cool(w *World, dt float32) {
	if w.ChopCooldown > 0 {
		w.ChopCooldown -= dt
	}
}

func (s *ChopSystem) chop(w *World, id ecs.EntityId) {
	tree := w.Entity(id)
	if tree.HP > 0 {
		tree.HP--
	}
	position := tree.Position

	count := LogCountMin + w.Rand.IntN(LogCountMax-LogCountMin+1)
	for range count {
		velocity := mgl32.Vec2{
			float32(w.Rand.IntN(2*LogSpeedX) - LogSpeedX),
			float32(w.Rand.IntN(2*LogSpeedY) - LogSpeedY),
		}
		w.Spawn(NewLog(position, velocity))
	}
}

// StumpSystem shows dead trees as stumps.
type StumpSystem struct{}

func (s *StumpSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	for e := range frame.World.Entities.Values() {
		if e.Active && e.Kind == KindTree && e.HP <= 0 {
			e.Animator.SetSprite(sprite.TreeStump)
		}
	}
}
