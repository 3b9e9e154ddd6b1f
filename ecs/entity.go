package ecs

// EntityId is a stable handle to an entity held in a Storage.
// Ids are handed out from a monotonically increasing counter and never reused,
// so a handle to a removed entity can never alias a newer one.
type EntityId uint64

// NoEntity is the zero handle. It never resolves.
const NoEntity EntityId = 0

// Valid reports whether the id could refer to an entity at all.
// It does not check that the entity is still alive; use Storage.Resolve for that.
func (e EntityId) Valid() bool {
	return e != NoEntity
}
