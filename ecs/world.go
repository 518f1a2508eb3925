package ecs

import "github.com/Gautam-J/LCC-S2/ecs/component"

// System updates a world each tick.
type System interface {
	Update(w *World)
}

// World owns entities, component storage, system order, the event queue,
// and the monotonic tick counter every animation timer reads from. A world
// is a single play session: tearing one down drops every entity and every
// group membership at once.
//
// All access is single-threaded; systems run to completion in registration
// order within one Update call.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	systems  []System
	events   EventQueue
	tick     uint64
}

func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*sparseSet{}}
}

func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity kills an entity and removes it from every component store,
// so membership in all groups ends atomically.
func DestroyEntity(w *World, e Entity) bool {
	if !w.entities.destroy(e) {
		return false
	}
	for _, s := range w.stores {
		s.remove(e.id())
	}
	return true
}

func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns all live entity handles.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	freed := make(map[entityID]struct{}, len(w.entities.free))
	for _, id := range w.entities.free {
		freed[id] = struct{}{}
	}
	out := make([]Entity, 0, w.entities.count())
	for i, gen := range w.entities.gens {
		id := entityID(i + 1)
		if _, ok := freed[id]; ok {
			continue
		}
		out = append(out, makeEntity(id, gen))
	}
	return out
}

func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update advances the tick counter and runs all systems once. Events pushed
// during the tick are visible to later systems and flushed at the end.
func (w *World) Update() {
	if w == nil {
		return
	}
	w.tick++
	for _, s := range w.systems {
		s.Update(w)
	}
	w.events.flush()
}

// Tick returns the monotonic update counter. It starts at 0 and increments
// once per Update, before any system runs.
func (w *World) Tick() uint64 {
	return w.tick
}

func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID) *sparseSet {
	if w == nil || id == 0 {
		return nil
	}
	return w.stores[id]
}

func (w *World) ensureStore(id component.ComponentID) *sparseSet {
	if s, ok := w.stores[id]; ok {
		return s
	}
	s := &sparseSet{}
	w.stores[id] = s
	return s
}

// Query returns the live entities holding every given component kind.
func (w *World) Query(kinds ...component.AnyKind) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	smallest := w.store(kinds[0].ID())
	for _, k := range kinds[1:] {
		s := w.store(k.ID())
		if s.len() < smallest.len() {
			smallest = s
		}
	}
	if smallest.len() == 0 {
		return nil
	}

	out := make([]Entity, 0, smallest.len())
	for _, id := range append([]entityID(nil), smallest.denseIDs...) {
		ok := true
		for _, k := range kinds {
			if !w.store(k.ID()).has(id) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		e := makeEntity(id, w.entities.gens[id-1])
		if w.entities.isAlive(e) {
			out = append(out, e)
		}
	}
	return out
}

// First returns some live entity holding the component kind.
func (w *World) First(kind component.AnyKind) (Entity, bool) {
	for _, e := range w.Query(kind) {
		return e, true
	}
	return 0, false
}

// Count returns how many live entities hold the component kind.
func (w *World) Count(kind component.AnyKind) int {
	return len(w.Query(kind))
}
