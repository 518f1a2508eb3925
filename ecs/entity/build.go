// Package entity builds the game's entities: each function wires the full
// component set for one variant and returns the handle.
package entity

import (
	"math/rand"

	"github.com/jakecoffman/cp"

	"github.com/Gautam-J/LCC-S2/common"
	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

// Player start position, matching the original layout: a little in from the
// left wall, standing on the base.
const (
	playerStartX       = 40
	playerStartYOffset = 50
)

func mustAdd[T any](w *ecs.World, e ecs.Entity, k component.ComponentKind[T], v *T) {
	if err := ecs.Add(w, e, k, v); err != nil {
		panic("entity: add component: " + err.Error())
	}
}

// BuildPlayer creates the player at its fixed session start position. The
// frame set is validated here so an empty sequence fails session start
// instead of the first frame advance.
func BuildPlayer(w *ecs.World, cfg *config.Settings, frames *component.FrameSet) (ecs.Entity, error) {
	if err := frames.Validate(); err != nil {
		return 0, err
	}

	first := frames.Idle[component.FacingRight][0]
	pos := cp.Vector{X: playerStartX, Y: float64(cfg.Height) - playerStartYOffset}

	rect := common.Rect{Width: float64(first.W), Height: float64(first.H)}
	rect.SetMidBottom(pos.X, pos.Y)

	sprite := &component.Sprite{}
	sprite.SetFrame(first)
	sprite.RecomputeMask()

	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(w, e, component.TransformComponent.Kind(), &component.Transform{Pos: pos})
	mustAdd(w, e, component.VelocityComponent.Kind(), &component.Velocity{})
	mustAdd(w, e, component.AccelerationComponent.Kind(), &component.Acceleration{})
	mustAdd(w, e, component.PlayerStateComponent.Kind(), &component.PlayerState{Facing: component.FacingRight})
	mustAdd(w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(w, e, component.ColliderComponent.Kind(), &component.Collider{Rect: rect})
	mustAdd(w, e, component.SpriteComponent.Kind(), sprite)
	mustAdd(w, e, component.AnimatorComponent.Kind(), &component.Animator{Frames: frames})
	mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: cfg.Layers.Player})
	return e, nil
}

// BuildSlime spawns a slime just past the right edge, feet on the base.
func BuildSlime(w *ecs.World, cfg *config.Settings, walk component.Sequence, die component.Frame, speed float64) ecs.Entity {
	if len(walk) == 0 {
		panic("entity: slime walk cycle is empty")
	}
	first := walk[0]

	rect := common.Rect{
		X:      float64(cfg.Width),
		Width:  float64(first.W),
		Height: float64(first.H),
	}
	rect.SetBottom(float64(cfg.Height) - float64(cfg.BaseHeight) + 5)

	sprite := &component.Sprite{}
	sprite.SetFrame(first)
	sprite.RecomputeMask()

	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.SlimeComponent.Kind(), &component.Slime{Speed: speed, Walk: walk, Die: die})
	mustAdd(w, e, component.ColliderComponent.Kind(), &component.Collider{Rect: rect})
	mustAdd(w, e, component.SpriteComponent.Kind(), sprite)
	mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: cfg.Layers.Enemy})
	return e
}

// BuildCloud spawns a cloud just past the right edge, in the configured
// upper band, at a random scale in [0.50, 1.00]. The scale doubles as the
// parallax depth: smaller clouds read as farther away and scroll slower.
func BuildCloud(w *ecs.World, cfg *config.Settings, frame component.Frame, rng *rand.Rand) ecs.Entity {
	scale := float64(50+rng.Intn(51)) / 100

	sw := common.Round(float64(frame.W) * scale)
	sh := common.Round(float64(frame.H) * scale)

	// A tiny cloud_band on a short screen can floor to zero; keep at least
	// one row so rand.Intn stays legal.
	band := int(cfg.CloudBand * float64(cfg.Height))
	if band < 1 {
		band = 1
	}

	rect := common.Rect{
		X:      float64(cfg.Width + rng.Intn(sw+1)),
		Y:      float64(rng.Intn(band)),
		Width:  float64(sw),
		Height: float64(sh),
	}

	sprite := &component.Sprite{Image: frame.Image, W: sw, H: sh}

	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.CloudComponent.Kind(), &component.Cloud{Parallax: scale})
	mustAdd(w, e, component.ColliderComponent.Kind(), &component.Collider{Rect: rect})
	mustAdd(w, e, component.SpriteComponent.Kind(), sprite)
	mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: cfg.Layers.Cloud})
	return e
}

// BuildPlatform creates a static platform with its top-left at (x, y).
func BuildPlatform(w *ecs.World, cfg *config.Settings, frame component.Frame, x, y float64) ecs.Entity {
	sprite := &component.Sprite{}
	sprite.SetFrame(frame)

	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{})
	mustAdd(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Rect: common.Rect{X: x, Y: y, Width: float64(frame.W), Height: float64(frame.H)},
	})
	mustAdd(w, e, component.SpriteComponent.Kind(), sprite)
	mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: cfg.Layers.Terrain})
	return e
}

// BuildBase creates one ground tile starting at x.
func BuildBase(w *ecs.World, cfg *config.Settings, frame component.Frame, x float64) ecs.Entity {
	sprite := &component.Sprite{}
	sprite.SetFrame(frame)

	e := ecs.CreateEntity(w)
	mustAdd(w, e, component.BaseTagComponent.Kind(), &component.BaseTag{})
	mustAdd(w, e, component.ColliderComponent.Kind(), &component.Collider{
		Rect: common.Rect{
			X:      x,
			Y:      float64(cfg.Height - cfg.BaseHeight),
			Width:  float64(frame.W),
			Height: float64(frame.H),
		},
	})
	mustAdd(w, e, component.SpriteComponent.Kind(), sprite)
	mustAdd(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: cfg.Layers.Terrain})
	return e
}
