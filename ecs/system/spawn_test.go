package system

import (
	"math/rand"
	"testing"

	"github.com/Gautam-J/LCC-S2/assets"
	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
)

func testLibrary() *assets.Library {
	return &assets.Library{
		Base:      component.Frame{W: 190, H: 47},
		SlimeWalk: testWalk(),
		SlimeDie:  component.Frame{W: 88, H: 18},
		Clouds:    []component.Frame{{W: 60, H: 30}},
	}
}

const directorScript = `
slime_interval := 5
slime_speed_min := 2
slime_speed_max := 2
cloud_target := 3
`

func newSpawnWorld(t *testing.T, script string) (*ecs.World, *SpawnSystem) {
	t.Helper()
	cfg := config.Default()
	s, err := NewSpawnSystem(cfg, testLibrary(), rand.New(rand.NewSource(1)), []byte(script))
	if err != nil {
		t.Fatalf("NewSpawnSystem: %v", err)
	}
	w := ecs.NewWorld()
	w.AddSystem(s)
	return w, s
}

func TestSpawnDirectorScriptControlsPacing(t *testing.T) {
	w, _ := newSpawnWorld(t, directorScript)

	for i := 0; i < 4; i++ {
		w.Update()
	}
	if got := w.Count(component.SlimeComponent.Kind()); got != 0 {
		t.Fatalf("slimes before the interval elapsed: %d", got)
	}

	w.Update() // tick 5
	if got := w.Count(component.SlimeComponent.Kind()); got != 1 {
		t.Fatalf("slime count after interval = %d, want 1", got)
	}

	slime, _ := w.First(component.SlimeComponent.Kind())
	sl, _ := ecs.Get(w, slime, component.SlimeComponent.Kind())
	if sl == nil || sl.Speed != 2 {
		t.Fatalf("scripted speed range [2,2] must yield speed 2, got %+v", sl)
	}

	if got := w.Count(component.CloudComponent.Kind()); got != 3 {
		t.Fatalf("cloud count = %d, want scripted target 3", got)
	}
}

func TestSpawnBadScriptFailsConstruction(t *testing.T) {
	cfg := config.Default()
	_, err := NewSpawnSystem(cfg, testLibrary(), rand.New(rand.NewSource(1)), []byte("this is not tengo ((("))
	if err == nil {
		t.Fatal("expected a compile error")
	}
}

func TestSpawnEmptyScriptUsesDefaults(t *testing.T) {
	w, s := newSpawnWorld(t, "")

	w.Update()
	if s.interval != defaultSlimeInterval || s.cloudTarget != defaultCloudTarget {
		t.Fatalf("defaults not in effect: interval=%d target=%d", s.interval, s.cloudTarget)
	}
	if got := w.Count(component.CloudComponent.Kind()); got != defaultCloudTarget {
		t.Fatalf("cloud count = %d, want %d", got, defaultCloudTarget)
	}
}

func TestSpawnExtendsBaseAheadOfScroll(t *testing.T) {
	cfg := config.Default()
	w, _ := newSpawnWorld(t, directorScript)

	w.Update()

	horizon := float64(cfg.Width) * 2
	rightmost := 0.0
	tiles := 0
	ecs.ForEach2(w, component.BaseTagComponent.Kind(), component.ColliderComponent.Kind(),
		func(_ ecs.Entity, _ *component.BaseTag, col *component.Collider) {
			tiles++
			if col.Rect.Right() > rightmost {
				rightmost = col.Rect.Right()
			}
		})

	if tiles == 0 {
		t.Fatal("no base tiles were created")
	}
	if rightmost < horizon {
		t.Fatalf("base covered up to %v, want at least %v", rightmost, horizon)
	}

	// a second update must not add more tiles while coverage holds
	before := w.Count(component.BaseTagComponent.Kind())
	w.Update()
	if got := w.Count(component.BaseTagComponent.Kind()); got != before {
		t.Fatalf("tile count changed with full coverage: %d -> %d", before, got)
	}
}

func TestSpawnReloadSwapsScript(t *testing.T) {
	w, s := newSpawnWorld(t, directorScript)
	w.Update()
	if s.cloudTarget != 3 {
		t.Fatalf("initial script target = %d, want 3", s.cloudTarget)
	}

	if err := s.Reload([]byte("cloud_target := 7")); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	w.Update()
	if s.cloudTarget != 7 {
		t.Fatalf("reloaded script target = %d, want 7", s.cloudTarget)
	}
	if got := w.Count(component.CloudComponent.Kind()); got != 7 {
		t.Fatalf("cloud count = %d, want 7", got)
	}
}
