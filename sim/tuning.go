package sim

import "github.com/go-gl/mathgl/mgl32"

const (
	ChopCooldown      = 0.2  // seconds between two damaging chop ticks
	ChopImpactFrame   = 2    // axe animation frame that lands the blow
	FollowDistance    = 10.0 // followers halt inside this radius
	ChaseSpeed        = 1000.0
	ReticleNudgeSpeed = 100.0
	MinWalkSpeed      = 10.0 // men above this speed use the walk cycle
	RestSpeed         = 1.0  // friction snaps slower velocities to zero
	AnimationTimeUnit = 1000.0

	LogExpiry        = 5.0
	LogFriction      = 0.5
	LogCountMin      = 2
	LogCountMax      = 3
	LogSpeedX        = 30
	LogSpeedY        = 5
	LogScale         = 6.0
	LogHP            = 10.0
	DefaultHP        = 100.0
	SpawnedHP        = 10.0
	TreeHP           = 4.0
	TreeScale        = 10.0
	FollowerMinScale = 4.0
	FollowerMaxScale = 10.0
)

var (
	LogSize          = mgl32.Vec2{16, 16}
	FollowerBaseSize = mgl32.Vec2{2, 4}
	ReticleSize      = mgl32.Vec2{40, 40}
	AppleSize        = mgl32.Vec2{48, 36}
	ManSize          = mgl32.Vec2{16, 24}
	ReticleStart     = mgl32.Vec2{50, 200}
)

const (
	ReticleScale = 5.0
	AppleScale   = 6.0
	ManScale     = 6.0
)
