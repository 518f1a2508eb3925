package system

import (
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

// CloudSystem reaps clouds that have fully exited the left edge. Their
// motion comes from the scroll system; a cloud with no world scroll simply
// hangs in the sky.
type CloudSystem struct{}

func NewCloudSystem() *CloudSystem {
	return &CloudSystem{}
}

func (c *CloudSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach2(w, component.CloudComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, _ *component.Cloud, col *component.Collider) {
			if col.Rect.Right() < 0 {
				ecs.DestroyEntity(w, e)
			}
		})
}
