package ecs

import "github.com/Gautam-J/LCC-S2/ecs/component"

// Add attaches a component to a live entity, replacing any existing one of
// the same kind.
func Add[T any](w *World, e Entity, k component.ComponentKind[T], v *T) error {
	if !k.Valid() {
		return component.ErrInvalidComponentKind
	}
	if v == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	w.ensureStore(k.ID()).set(e.id(), v)
	return nil
}

// Get returns the entity's component of the given kind.
func Get[T any](w *World, e Entity, k component.ComponentKind[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	v := w.store(k.ID()).get(e.id())
	if v == nil {
		return nil, false
	}
	cast, ok := v.(*T)
	return cast, ok
}

func Has[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	return IsAlive(w, e) && w.store(k.ID()).has(e.id())
}

func Remove[T any](w *World, e Entity, k component.ComponentKind[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	return w.store(k.ID()).remove(e.id())
}

// ForEach calls fn for every live entity holding the component kind. The
// iteration order snapshot is taken up front, so fn may add or destroy
// entities.
func ForEach[T any](w *World, k component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil {
		return
	}
	s := w.store(k.ID())
	if s.len() == 0 {
		return
	}
	for _, id := range append([]entityID(nil), s.denseIDs...) {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.entities.isAlive(e) {
			continue
		}
		if v, ok := s.get(id).(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 calls fn for every live entity holding both component kinds.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	ForEach(w, ka, func(e Entity, a *A) {
		if b, ok := Get(w, e, kb); ok {
			fn(e, a, b)
		}
	})
}

// ForEach3 calls fn for every live entity holding all three component kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		if c, ok := Get(w, e, kc); ok {
			fn(e, a, b, c)
		}
	})
}
