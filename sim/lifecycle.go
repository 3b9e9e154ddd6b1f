package sim

import "github.com/plus3/woodland/ecs"

// ExpirySystem counts down timed entities and deactivates them once the
// remaining time reaches zero.
type ExpirySystem struct{}

func (s *ExpirySystem) Execute(frame *ecs.UpdateFrame[*World]) {
	dt := float32(frame.DeltaTime)
	for e := range frame.World.Entities.Values() {
		if !e.Active || e.ExpireIn == nil {
			continue
		}

		left := *e.ExpireIn - dt
		if left <= 0 {
			e.Active = false
			e.ExpireIn = nil
			continue
		}
		*e.ExpireIn = left
	}
}

// PruneSystem removes inactive entities. It is the only stage that removes
// or reorders entities, and it runs last.
type PruneSystem struct {
	Pruned int64
}

func (s *PruneSystem) Execute(frame *ecs.UpdateFrame[*World]) {
	removed := frame.World.Entities.Retain(func(e *Entity) bool {
		return e.Active
	})
	s.Pruned += int64(removed)
}
