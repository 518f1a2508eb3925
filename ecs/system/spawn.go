package system

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/Gautam-J/LCC-S2/assets"
	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
	"github.com/Gautam-J/LCC-S2/ecs/entity"
)

// Fallbacks when no director script is loaded or a run fails.
const (
	defaultSlimeInterval = 240
	defaultCloudTarget   = 5
)

// SpawnSystem keeps the world populated: slimes on a scripted cadence,
// clouds up to a scripted target, and ground tiles extended ahead of the
// scroll. Pacing decisions are delegated to a tengo director script so they
// can be tuned without a rebuild.
type SpawnSystem struct {
	cfg *config.Settings
	lib *assets.Library
	rng *rand.Rand

	compiled *tengo.Compiled

	lastSlime   uint64
	interval    uint64
	speedMin    int
	speedMax    int
	cloudTarget int
}

// NewSpawnSystem compiles the director script. An empty script is allowed
// and leaves the defaults in place; a script that fails to compile is an
// error, not a silent fallback.
func NewSpawnSystem(cfg *config.Settings, lib *assets.Library, rng *rand.Rand, script []byte) (*SpawnSystem, error) {
	s := &SpawnSystem{
		cfg:         cfg,
		lib:         lib,
		rng:         rng,
		interval:    defaultSlimeInterval,
		speedMin:    cfg.SlimeSpeedMin,
		speedMax:    cfg.SlimeSpeedMax,
		cloudTarget: defaultCloudTarget,
	}
	if err := s.Reload(script); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload swaps in a new director script. Used by the dev config watcher.
func (s *SpawnSystem) Reload(script []byte) error {
	if len(script) == 0 {
		s.compiled = nil
		return nil
	}

	sc := tengo.NewScript(script)
	_ = sc.Add("__elapsed", int64(0))
	sc.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := sc.Compile()
	if err != nil {
		return fmt.Errorf("spawn system: compile director script: %w", err)
	}
	s.compiled = compiled
	return nil
}

func (s *SpawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.direct(w.Tick())
	s.spawnSlimes(w)
	s.spawnClouds(w)
	s.extendBase(w)
}

// direct runs the script with the current tick bound to __elapsed and reads
// back the pacing globals. A runtime error disables the script for the rest
// of the session rather than spamming every tick.
func (s *SpawnSystem) direct(tick uint64) {
	if s.compiled == nil {
		return
	}
	if err := s.compiled.Set("__elapsed", int64(tick)); err != nil {
		fmt.Printf("spawn: bind elapsed: %v\n", err)
		s.compiled = nil
		return
	}
	if err := s.compiled.Run(); err != nil {
		fmt.Printf("spawn: director script error: %v\n", err)
		s.compiled = nil
		return
	}

	if v := s.compiled.Get("slime_interval"); !v.IsUndefined() && v.Int() > 0 {
		s.interval = uint64(v.Int())
	}
	if v := s.compiled.Get("slime_speed_min"); !v.IsUndefined() && v.Int() > 0 {
		s.speedMin = v.Int()
	}
	if v := s.compiled.Get("slime_speed_max"); !v.IsUndefined() && v.Int() >= s.speedMin {
		s.speedMax = v.Int()
	}
	if v := s.compiled.Get("cloud_target"); !v.IsUndefined() && v.Int() >= 0 {
		s.cloudTarget = v.Int()
	}
}

func (s *SpawnSystem) spawnSlimes(w *ecs.World) {
	if w.Tick()-s.lastSlime < s.interval {
		return
	}
	s.lastSlime = w.Tick()

	speed := float64(s.speedMin)
	if s.speedMax > s.speedMin {
		speed += float64(s.rng.Intn(s.speedMax - s.speedMin + 1))
	}

	e := entity.BuildSlime(w, s.cfg, s.lib.SlimeWalk, s.lib.SlimeDie, speed)
	w.Events().Push(ecs.Event{Kind: ecs.EventSpawn, Entity: e})
}

func (s *SpawnSystem) spawnClouds(w *ecs.World) {
	if len(s.lib.Clouds) == 0 {
		return
	}
	for w.Count(component.CloudComponent.Kind()) < s.cloudTarget {
		frame := s.lib.Clouds[s.rng.Intn(len(s.lib.Clouds))]
		entity.BuildCloud(w, s.cfg, frame, s.rng)
	}
}

// extendBase tiles the ground one screen width past the right edge so the
// scroll never outruns the floor. Tiles that scrolled fully off the left
// edge are reaped here too.
func (s *SpawnSystem) extendBase(w *ecs.World) {
	horizon := float64(s.cfg.Width) * 2

	rightmost := 0.0
	found := false
	ecs.ForEach2(w, component.BaseTagComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, _ *component.BaseTag, col *component.Collider) {
			if col.Rect.Right() < 0 {
				ecs.DestroyEntity(w, e)
				return
			}
			if !found || col.Rect.Right() > rightmost {
				rightmost = col.Rect.Right()
				found = true
			}
		})

	if !found {
		rightmost = 0
	}
	for rightmost < horizon {
		entity.BuildBase(w, s.cfg, s.lib.Base, rightmost)
		rightmost += float64(s.lib.Base.W)
	}
}
