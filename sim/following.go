package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/ecs"
)

// FollowSystem steers followers at ChaseSpeed towards their target and halts
// them inside FollowDistance. A target that no longer exists clears the
// relation instead of failing the frame.
type FollowSystem struct{}

func (s *FollowSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	w := frame.World
	for id, e := range w.Entities.Iter() {
		if !e.Active || id == w.Reticle || !e.Follows.Valid() {
			continue
		}

		target := w.Entity(e.Follows)
		if target == nil || !target.Active {
			e.Follows = ecs.NoEntity
			continue
		}

		direction := target.Position.Sub(e.Position)
		if direction.Len() > FollowDistance {
			e.Velocity = direction.Normalize().Mul(ChaseSpeed)
		} else {
			e.Velocity = mgl32.Vec2{}
		}
	}
}
