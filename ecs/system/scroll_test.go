package system

import (
	"testing"

	"github.com/Gautam-J/LCC-S2/common"
	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
	"github.com/Gautam-J/LCC-S2/ecs/entity"
)

func addCloud(t *testing.T, w *ecs.World, x, parallax float64) *component.Collider {
	t.Helper()
	e := ecs.CreateEntity(w)
	col := &component.Collider{Rect: common.Rect{X: x, Y: 50, Width: 60, Height: 30}}
	if err := ecs.Add(w, e, component.CloudComponent.Kind(), &component.Cloud{Parallax: parallax}); err != nil {
		t.Fatal(err)
	}
	if err := ecs.Add(w, e, component.ColliderComponent.Kind(), col); err != nil {
		t.Fatal(err)
	}
	return col
}

func TestScrollShiftsWorldNotPlayer(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	w.AddSystem(NewScrollSystem(cfg))

	e, err := entity.BuildPlayer(w, cfg, testFrames())
	if err != nil {
		t.Fatalf("BuildPlayer: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())

	platform := ecs.CreateEntity(w)
	pcol := &component.Collider{Rect: common.Rect{X: 100, Y: 400, Width: 190, Height: 47}}
	_ = ecs.Add(w, platform, component.PlatformTagComponent.Kind(), &component.PlatformTag{})
	_ = ecs.Add(w, platform, component.ColliderComponent.Kind(), pcol)

	ccol := addCloud(t, w, 200, 0.5)

	// park the player past the scroll threshold, moving right
	threshold := cfg.ScrollThreshold * float64(cfg.Width)
	tr.Pos.X = threshold + 10
	col.Rect.SetMidBottom(tr.Pos.X, tr.Pos.Y)
	vel.V.X = 5

	w.Update()

	if tr.Pos.X != threshold+10-5 {
		t.Fatalf("player pos.x = %v, want %v", tr.Pos.X, threshold+10-5)
	}
	if pcol.Rect.X != 95 {
		t.Fatalf("platform x = %v, want 95", pcol.Rect.X)
	}
	if ccol.Rect.X != 200-5*0.5 {
		t.Fatalf("cloud x = %v, want %v (parallax)", ccol.Rect.X, 200-5*0.5)
	}
}

func TestScrollMinimumShift(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	w.AddSystem(NewScrollSystem(cfg))

	e, err := entity.BuildPlayer(w, cfg, testFrames())
	if err != nil {
		t.Fatalf("BuildPlayer: %v", err)
	}
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())

	tr.Pos.X = cfg.ScrollThreshold*float64(cfg.Width) + 10
	col.Rect.SetMidBottom(tr.Pos.X, tr.Pos.Y)
	vel.V.X = 0.5 // slower than the minimum scroll speed

	before := tr.Pos.X
	w.Update()
	if got := before - tr.Pos.X; got != cfg.MinScroll {
		t.Fatalf("shift = %v, want minimum %v", got, cfg.MinScroll)
	}
}

func TestScrollInactiveConditions(t *testing.T) {
	cfg := config.Default()

	cases := []struct {
		name string
		x    float64
		velX float64
	}{
		{"below_threshold", 100, 5},
		{"moving_left", cfg.ScrollThreshold*float64(cfg.Width) + 10, -5},
		{"standing_still", cfg.ScrollThreshold*float64(cfg.Width) + 10, 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			w.AddSystem(NewScrollSystem(cfg))
			e, err := entity.BuildPlayer(w, cfg, testFrames())
			if err != nil {
				t.Fatalf("BuildPlayer: %v", err)
			}
			tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
			vel, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
			col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())

			tr.Pos.X = c.x
			col.Rect.SetMidBottom(tr.Pos.X, tr.Pos.Y)
			vel.V.X = c.velX

			w.Update()
			if tr.Pos.X != c.x {
				t.Fatalf("player moved by scroll: %v -> %v", c.x, tr.Pos.X)
			}
		})
	}
}

func TestCloudReapedPastLeftEdge(t *testing.T) {
	w := ecs.NewWorld()
	w.AddSystem(NewCloudSystem())

	gone := addCloud(t, w, -100, 1)
	kept := addCloud(t, w, -30, 1) // right edge still at +30

	w.Update()

	if gone.Rect.Right() >= 0 {
		t.Fatal("test setup: first cloud should be fully off screen")
	}
	if w.Count(component.CloudComponent.Kind()) != 1 {
		t.Fatalf("cloud count = %d, want 1", w.Count(component.CloudComponent.Kind()))
	}
	_ = kept
}
