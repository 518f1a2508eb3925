package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

// RenderSystem draws every sprite-bearing entity, ordered by render layer
// and then by entity handle so draw order is stable within a layer. It is
// not registered as an Update system; the game calls Draw from its own Draw.
type RenderSystem struct{}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if w == nil || screen == nil {
		return
	}

	entities := w.Query(component.SpriteComponent.Kind(), component.ColliderComponent.Kind())
	sort.Slice(entities, func(i, j int) bool {
		li := layerOf(w, entities[i])
		lj := layerOf(w, entities[j])
		if li != lj {
			return li < lj
		}
		return entities[i] < entities[j]
	})

	for _, e := range entities {
		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || sprite.Image == nil {
			continue
		}
		col, ok := ecs.Get(w, e, component.ColliderComponent.Kind())
		if !ok {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		bounds := sprite.Image.Bounds()
		if bounds.Dx() != sprite.W || bounds.Dy() != sprite.H {
			op.GeoM.Scale(
				float64(sprite.W)/float64(bounds.Dx()),
				float64(sprite.H)/float64(bounds.Dy()),
			)
		}
		op.GeoM.Translate(col.Rect.X, col.Rect.Y)
		screen.DrawImage(sprite.Image, op)
	}
}

func layerOf(w *ecs.World, e ecs.Entity) int {
	if layer, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		return layer.Index
	}
	return 0
}
