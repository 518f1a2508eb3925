package system

import (
	"github.com/Gautam-J/LCC-S2/common"
	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

// SlimeSystem drives the patrolling enemies: an unconditional two-frame
// walk cycle, constant leftward drift, and self-destruction the moment the
// right edge passes the left edge of the screen.
type SlimeSystem struct {
	walkTicks uint64
}

func NewSlimeSystem(cfg *config.Settings) *SlimeSystem {
	return &SlimeSystem{walkTicks: common.MsToTicks(cfg.SlimeFrameMs)}
}

func (s *SlimeSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	ecs.ForEach3(w, component.SlimeComponent.Kind(), component.ColliderComponent.Kind(), component.SpriteComponent.Kind(),
		func(e ecs.Entity, sl *component.Slime, col *component.Collider, sprite *component.Sprite) {
			now := w.Tick()
			if now-sl.LastChange > s.walkTicks {
				sl.LastChange = now
				if len(sl.Walk) == 0 {
					panic("slime system: empty walk cycle")
				}
				sl.Index = (sl.Index + 1) % len(sl.Walk)
				sprite.SetFrame(sl.Walk[sl.Index])
				sprite.RecomputeMask()
			}

			col.Rect.X -= sl.Speed

			if col.Rect.Right() < 0 {
				w.Events().Push(ecs.Event{Kind: ecs.EventDespawn, Entity: e})
				ecs.DestroyEntity(w, e)
			}
		})
}
