// Package sim is the per-frame world simulation: a fixed pipeline of stages
// run over an order-stable entity store once per rendered frame.
package sim

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/plus3/woodland/ecs"
	"github.com/plus3/woodland/sprite"
)

// Kind is the gameplay role of an entity.
type Kind int

const (
	KindReticle Kind = iota
	KindMan
	KindTree
	KindApple
	KindLog
)

func (k Kind) String() string {
	switch k {
	case KindReticle:
		return "reticle"
	case KindMan:
		return "man"
	case KindTree:
		return "tree"
	case KindApple:
		return "apple"
	case KindLog:
		return "log"
	}
	return "unknown"
}

// Entity is one simulated object.
//
// Position is the feet anchor: the bottom-centre of the sprite. Size is the
// collision box around it, Velocity is in world units per second.
// Friction and ExpireIn are optional; nil disables velocity decay and timed
// expiry respectively.
type Entity struct {
	Kind     Kind
	Position mgl32.Vec2
	Size     mgl32.Vec2
	Velocity mgl32.Vec2
	Animator Animator
	Follows  ecs.EntityId
	HP       float32
	Friction *float32
	ExpireIn *float32
	Active   bool
}

// NewEntity returns an active, motionless entity with default hit points.
func NewEntity(kind Kind, position, size mgl32.Vec2, sheet sprite.Kind) Entity {
	return Entity{
		Kind:     kind,
		Position: position,
		Size:     size,
		Animator: NewAnimator(sheet, 1),
		HP:       DefaultHP,
		Active:   true,
	}
}

// Bounds returns the collision box: horizontally centred on Position with its
// bottom edge at Position.Y.
func (e *Entity) Bounds() Bounds {
	return Bounds{
		Min: mgl32.Vec2{e.Position.X() - e.Size.X()/2, e.Position.Y() - e.Size.Y()},
		Max: mgl32.Vec2{e.Position.X() + e.Size.X()/2, e.Position.Y()},
	}
}

// Bounds is an axis-aligned box.
type Bounds struct {
	Min, Max mgl32.Vec2
}

// Intersects reports whether two boxes overlap. Boxes that only share an edge
// do not intersect.
func (b Bounds) Intersects(other Bounds) bool {
	return b.Min.X() < other.Max.X() &&
		b.Max.X() > other.Min.X() &&
		b.Min.Y() < other.Max.Y() &&
		b.Max.Y() > other.Min.Y()
}
