package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sprite"
)

// NewReticle builds the pointer-driven reticle.
func NewReticle(position mgl32.Vec2) Entity {
	e := NewEntity(KindReticle, position, ReticleSize, sprite.Reticle)
	e.Animator.Scale = ReticleScale
	e.HP = SpawnedHP
	return e
}

// NewApple builds the apple men chase.
func NewApple(position mgl32.Vec2) Entity {
	e := NewEntity(KindApple, position, AppleSize, sprite.Apple)
	e.Animator.Scale = AppleScale
	e.HP = SpawnedHP
	return e
}

// NewTree builds a choppable tree.
func NewTree(position mgl32.Vec2) Entity {
	e := NewEntity(KindTree, position, mgl32.Vec2{2 * TreeScale, 5 * TreeScale}, sprite.Tree)
	e.Animator.Scale = TreeScale
	e.HP = TreeHP
	return e
}

// NewMan builds a man following target.
func NewMan(position mgl32.Vec2, target ecs.EntityId) Entity {
	e := NewEntity(KindMan, position, ManSize, sprite.ManIdle)
	e.Animator.Scale = ManScale
	e.Follows = target
	e.HP = SpawnedHP
	return e
}

// NewFollower builds a man of the given scale at the tail of a chain.
// Its collision box grows with its scale.
func NewFollower(position mgl32.Vec2, leader ecs.EntityId, scale float32) Entity {
	e := NewMan(position, leader)
	e.Size = FollowerBaseSize.Mul(scale)
	e.Animator.Scale = scale
	return e
}

// NewLog builds a skidding log that vanishes after LogExpiry seconds.
func NewLog(position, velocity mgl32.Vec2) Entity {
	e := NewEntity(KindLog, position, LogSize, sprite.Log)
	e.Velocity = velocity
	e.Animator.Scale = LogScale
	e.HP = LogHP

	friction := float32(LogFriction)
	expire := float32(LogExpiry)
	e.Friction = &friction
	e.ExpireIn = &expire
	return e
}
