package ecs

import (
	"github.com/Gautam-J/LCC-S2/common"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

// Probe reports whether rect overlaps the collider of any live entity
// bearing the tag kind. Members are only read, never mutated or removed; an
// empty group yields no overlap.
func Probe(w *World, rect common.Rect, tag component.AnyKind) bool {
	if w == nil {
		return false
	}
	s := w.store(tag.ID())
	if s == nil {
		return false
	}
	for _, id := range s.denseIDs {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.entities.isAlive(e) {
			continue
		}
		if c, ok := Get(w, e, component.ColliderComponent.Kind()); ok && rect.Intersects(c.Rect) {
			return true
		}
	}
	return false
}

// Overlap is Probe with the colliding member's rect returned, for callers
// that resolve the contact (landing) rather than just gate on it.
func Overlap(w *World, rect common.Rect, tag component.AnyKind) (common.Rect, bool) {
	if w == nil {
		return common.Rect{}, false
	}
	s := w.store(tag.ID())
	if s == nil {
		return common.Rect{}, false
	}
	for _, id := range s.denseIDs {
		e := makeEntity(id, w.entities.gens[id-1])
		if !w.entities.isAlive(e) {
			continue
		}
		if c, ok := Get(w, e, component.ColliderComponent.Kind()); ok && rect.Intersects(c.Rect) {
			return c.Rect, true
		}
	}
	return common.Rect{}, false
}
