package ecs

// System represents one stage of a frame. W is the world type systems mutate;
// the scheduler hands every system the same world within a frame, so each
// system sees the output of the ones registered before it.
// Systems are usually structs so that they can keep state between frames.
type System[W any] interface {
	Execute(frame *UpdateFrame[W])
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc[W any] func(frame *UpdateFrame[W])

// Execute calls f(frame).
func (f SystemFunc[W]) Execute(frame *UpdateFrame[W]) {
	f(frame)
}
