package entity

import (
	"math/rand"
	"testing"

	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

func TestBuildCloudPlacement(t *testing.T) {
	cfg := config.Default()
	w := ecs.NewWorld()
	rng := rand.New(rand.NewSource(7))
	frame := component.Frame{W: 96, H: 48}

	band := float64(int(cfg.CloudBand * float64(cfg.Height)))
	for i := 0; i < 200; i++ {
		e := BuildCloud(w, cfg, frame, rng)
		col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
		cloud, _ := ecs.Get(w, e, component.CloudComponent.Kind())
		if col == nil || cloud == nil {
			t.Fatal("cloud is missing components")
		}
		if col.Rect.X < float64(cfg.Width) {
			t.Fatalf("cloud spawned on screen at x=%v", col.Rect.X)
		}
		if col.Rect.Y < 0 || col.Rect.Y >= band {
			t.Fatalf("cloud y=%v outside band [0, %v)", col.Rect.Y, band)
		}
		if col.Rect.Width < 48 || col.Rect.Width > 96 {
			t.Fatalf("cloud width %v outside the half-to-full range", col.Rect.Width)
		}
		if cloud.Parallax < 0.5 || cloud.Parallax > 1 {
			t.Fatalf("parallax %v outside [0.5, 1]", cloud.Parallax)
		}
	}
}

func TestBuildCloudDegenerateBand(t *testing.T) {
	cfg := config.Default()
	cfg.CloudBand = 0.0001 // floors to a zero-pixel band

	w := ecs.NewWorld()
	rng := rand.New(rand.NewSource(1))
	e := BuildCloud(w, cfg, component.Frame{W: 96, H: 48}, rng)

	col, _ := ecs.Get(w, e, component.ColliderComponent.Kind())
	if col == nil {
		t.Fatal("cloud has no collider")
	}
	if col.Rect.Y != 0 {
		t.Fatalf("degenerate band must pin clouds to the top, got y=%v", col.Rect.Y)
	}
}
