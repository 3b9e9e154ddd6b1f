package ecs

import (
	"iter"

	"github.com/kamstrup/intmap"
)

// Storage is an order-stable collection of entities of type T.
//
// Spawn always appends, so iteration order is insertion order. Retain is the
// only operation that removes or moves entities; it compacts in place and keeps
// the relative order of survivors. Every entity is addressed by an EntityId that
// survives compaction; slot indices do not.
//
// Pointers returned by At, Get and the iterators are only valid until the next
// Spawn or Retain call, which may reallocate the backing slice.
type Storage[T any] struct {
	items  []T
	ids    []EntityId
	slots  *intmap.Map[EntityId, int]
	nextId EntityId

	spawned int64
	removed int64
}

// NewStorage creates an empty storage.
func NewStorage[T any]() *Storage[T] {
	return &Storage[T]{
		slots:  intmap.New[EntityId, int](256),
		nextId: 1,
	}
}

// Spawn appends an entity and returns its handle.
func (s *Storage[T]) Spawn(item T) EntityId {
	id := s.nextId
	s.nextId++

	s.slots.Put(id, len(s.items))
	s.items = append(s.items, item)
	s.ids = append(s.ids, id)
	s.spawned++
	return id
}

// Len returns the number of entities currently stored.
func (s *Storage[T]) Len() int {
	return len(s.items)
}

// At returns the entity in the given slot. It panics if slot is out of range.
func (s *Storage[T]) At(slot int) *T {
	return &s.items[slot]
}

// IdAt returns the handle of the entity in the given slot.
func (s *Storage[T]) IdAt(slot int) EntityId {
	return s.ids[slot]
}

// Resolve maps a handle to its current slot.
func (s *Storage[T]) Resolve(id EntityId) (int, bool) {
	if id == NoEntity {
		return 0, false
	}
	return s.slots.Get(id)
}

// Get returns the entity for a handle, or nil if the handle is stale.
func (s *Storage[T]) Get(id EntityId) *T {
	slot, ok := s.Resolve(id)
	if !ok {
		return nil
	}
	return &s.items[slot]
}

// Has reports whether the handle still refers to a stored entity.
func (s *Storage[T]) Has(id EntityId) bool {
	_, ok := s.Resolve(id)
	return ok
}

// Iter yields every entity in slot order together with its handle.
// Entities spawned during iteration are not visited.
func (s *Storage[T]) Iter() iter.Seq2[EntityId, *T] {
	return func(yield func(EntityId, *T) bool) {
		n := len(s.items)
		for i := 0; i < n; i++ {
			if !yield(s.ids[i], &s.items[i]) {
				return
			}
		}
	}
}

// Values yields every entity in slot order.
// Entities spawned during iteration are not visited.
func (s *Storage[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		n := len(s.items)
		for i := 0; i < n; i++ {
			if !yield(&s.items[i]) {
				return
			}
		}
	}
}

// Retain removes every entity for which keep returns false, preserving the
// relative order of the rest, and returns how many were removed.
// Handles of removed entities stop resolving; handles of survivors follow them
// to their new slots.
func (s *Storage[T]) Retain(keep func(*T) bool) int {
	write := 0
	for read := range s.items {
		id := s.ids[read]
		if !keep(&s.items[read]) {
			s.slots.Del(id)
			continue
		}
		if write != read {
			s.items[write] = s.items[read]
			s.ids[write] = id
		}
		s.slots.Put(id, write)
		write++
	}

	removed := len(s.items) - write

	var zero T
	for i := write; i < len(s.items); i++ {
		s.items[i] = zero
		s.ids[i] = NoEntity
	}
	s.items = s.items[:write]
	s.ids = s.ids[:write]
	s.removed += int64(removed)

	return removed
}

// Clear removes every entity. Outstanding handles stop resolving.
func (s *Storage[T]) Clear() {
	for _, id := range s.ids {
		s.slots.Del(id)
	}
	s.removed += int64(len(s.items))
	clear(s.items)
	s.items = s.items[:0]
	s.ids = s.ids[:0]
}

// StorageStats is a point-in-time summary of a Storage.
type StorageStats struct {
	EntityCount  int
	Capacity     int
	TotalSpawned int64
	TotalRemoved int64
	NextId       EntityId
}

// CollectStats gathers statistics about the storage.
func (s *Storage[T]) CollectStats() *StorageStats {
	return &StorageStats{
		EntityCount:  len(s.items),
		Capacity:     cap(s.items),
		TotalSpawned: s.spawned,
		TotalRemoved: s.removed,
		NextId:       s.nextId,
	}
}
