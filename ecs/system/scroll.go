package system

import (
	"math"

	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

// ScrollSystem is the camera: once the player pushes past the scroll
// threshold while moving right, the whole world shifts left instead of the
// player moving further right. Terrain and enemies shift fully; clouds
// shift by their parallax factor so the far sky lags behind.
type ScrollSystem struct {
	cfg *config.Settings
}

func NewScrollSystem(cfg *config.Settings) *ScrollSystem {
	return &ScrollSystem{cfg: cfg}
}

func (s *ScrollSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !ok {
		return
	}
	col, ok := ecs.Get(w, player, component.ColliderComponent.Kind())
	if !ok {
		return
	}

	threshold := s.cfg.ScrollThreshold * float64(s.cfg.Width)
	if vel.V.X <= 0 || col.Rect.Right() < threshold {
		return
	}

	shift := math.Max(vel.V.X, s.cfg.MinScroll)

	tr.Pos.X -= shift
	col.Rect.SetMidBottom(tr.Pos.X, tr.Pos.Y)

	ecs.ForEach(w, component.ColliderComponent.Kind(), func(e ecs.Entity, c *component.Collider) {
		if e == player {
			return
		}
		factor := 1.0
		if cloud, ok := ecs.Get(w, e, component.CloudComponent.Kind()); ok {
			factor = cloud.Parallax
		}
		c.Rect.X -= shift * factor
	})
}
