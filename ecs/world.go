package ecs

import "github.com/milk9111/voicejumper/ecs/component"

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities and their component storage. Systems live in a
// Scheduler so the same world can be stepped by different system orders.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*sparseSet{}}
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	if w == nil {
		return nil
	}
	s, ok := w.stores[id]
	if !ok && create {
		if w.stores == nil {
			w.stores = map[component.ComponentID]*sparseSet{}
		}
		s = &sparseSet{}
		w.stores[id] = s
	}
	return s
}

// IsAlive reports whether an entity handle is valid in w.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes every component of e and recycles its slot.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid in w.
func IsAlive(w *World, e Entity) bool {
	return w.IsAlive(e)
}

// Entities returns all live entities in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.alive()
}
