package ecs

// UpdateFrame is the explicit mutable context passed to every system in a frame.
type UpdateFrame[W any] struct {
	DeltaTime float64
	World     W
	Commands  *Commands
}

func newUpdateFrame[W any](dt float64, world W, commands *Commands) *UpdateFrame[W] {
	return &UpdateFrame[W]{
		DeltaTime: dt,
		World:     world,
		Commands:  commands,
	}
}
