package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Gautam-J/LCC-S2/assets"
	"github.com/Gautam-J/LCC-S2/audio"
	"github.com/Gautam-J/LCC-S2/common"
	"github.com/Gautam-J/LCC-S2/config"
	"github.com/Gautam-J/LCC-S2/ecs"
	"github.com/Gautam-J/LCC-S2/ecs/component"
	"github.com/Gautam-J/LCC-S2/ecs/entity"
	"github.com/Gautam-J/LCC-S2/ecs/system"
)

var skyColor = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}

type mode int

const (
	modeStart mode = iota
	modePlaying
	modeGameOver
)

// Game owns everything that outlives a session: settings, assets, prefs and
// the audio context. The ECS world is session-scoped and rebuilt on every
// restart so no run leaks state into the next.
type Game struct {
	cfg    *config.Settings
	lib    *assets.Library
	prefs  *config.PrefsStore
	sounds *audio.Player
	rng    *rand.Rand

	settingsPath string
	scriptPath   string
	watcher      *config.Watcher

	mode    mode
	paused  bool
	quit    bool
	world   *ecs.World
	render  *system.RenderSystem
	spawn   *system.SpawnSystem
	pauseUI *ebitenui.UI
}

type Options struct {
	SettingsPath string
	ScriptPath   string
	AssetDir     string
	Watcher      *config.Watcher
	Prefs        *config.PrefsStore
	Mute         bool
}

func NewGame(opts Options) (*Game, error) {
	cfg, err := config.Load(opts.SettingsPath)
	if err != nil {
		return nil, err
	}
	lib, err := assets.LoadLibrary(opts.AssetDir)
	if err != nil {
		return nil, err
	}

	prefs := opts.Prefs
	if prefs == nil {
		prefs = config.NewPrefsStore(nil)
	}

	g := &Game{
		cfg:          cfg,
		lib:          lib,
		prefs:        prefs,
		rng:          rand.New(rand.NewSource(rand.Int63())),
		settingsPath: opts.SettingsPath,
		scriptPath:   opts.ScriptPath,
		watcher:      opts.Watcher,
		mode:         modeStart,
	}
	if !opts.Mute {
		g.sounds = audio.NewPlayer(prefs.Prefs())
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// startSession builds a fresh world: player, a couple of starting platforms,
// and the systems in their fixed order. The base and the first clouds come
// from the spawn system on the first tick.
func (g *Game) startSession() error {
	script, err := config.SpawnScript(g.scriptPath)
	if err != nil {
		return err
	}

	w := ecs.NewWorld()

	spawn, err := system.NewSpawnSystem(g.cfg, g.lib, g.rng, script)
	if err != nil {
		return err
	}

	w.AddSystem(system.NewInputSystem())
	w.AddSystem(system.NewPlayerSystem(g.cfg))
	w.AddSystem(system.NewSlimeSystem(g.cfg))
	w.AddSystem(system.NewCloudSystem())
	w.AddSystem(system.NewScrollSystem(g.cfg))
	w.AddSystem(spawn)
	w.AddSystem(system.NewAudioSystem(g.sounds))

	if _, err := entity.BuildPlayer(w, g.cfg, g.lib.Player); err != nil {
		return err
	}

	width := float64(g.cfg.Width)
	height := float64(g.cfg.Height)
	entity.BuildPlatform(w, g.cfg, g.randomPlatform(), width*0.45, height-220)
	entity.BuildPlatform(w, g.cfg, g.randomPlatform(), width*0.05, height-380)

	g.world = w
	g.spawn = spawn
	g.render = system.NewRenderSystem()
	return nil
}

func (g *Game) randomPlatform() component.Frame {
	return g.lib.Platforms[g.rng.Intn(len(g.lib.Platforms))]
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()

	switch g.mode {
	case modeStart, modeGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			if err := g.startSession(); err != nil {
				return err
			}
			g.mode = modePlaying
		}
	case modePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.paused = !g.paused
		}
		if g.paused {
			g.pauseUI.Update()
			return nil
		}
		g.world.Update()
		if g.playerFell() || g.playerHit() {
			g.mode = modeGameOver
			if g.sounds != nil {
				g.sounds.Pop()
			}
			if err := g.prefs.Save(); err != nil {
				log.Printf("save prefs: %v", err)
			}
		}
	}
	return nil
}

// playerFell reports the player dropping past the bottom edge, the other way
// a session ends.
func (g *Game) playerFell() bool {
	player, ok := g.world.First(component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	col, ok := ecs.Get(g.world, player, component.ColliderComponent.Kind())
	if !ok {
		return false
	}
	return col.Rect.Top() > float64(g.cfg.Height)
}

// playerHit reports a pixel-accurate overlap between the player and any
// slime. Rect intersection gates the expensive mask walk.
func (g *Game) playerHit() bool {
	player, ok := g.world.First(component.PlayerTagComponent.Kind())
	if !ok {
		return false
	}
	pcol, ok := ecs.Get(g.world, player, component.ColliderComponent.Kind())
	if !ok {
		return false
	}
	psprite, _ := ecs.Get(g.world, player, component.SpriteComponent.Kind())

	hit := false
	ecs.ForEach2(g.world, component.SlimeComponent.Kind(), component.ColliderComponent.Kind(),
		func(e ecs.Entity, _ *component.Slime, scol *component.Collider) {
			if hit || !pcol.Rect.Intersects(scol.Rect) {
				return
			}
			ssprite, _ := ecs.Get(g.world, e, component.SpriteComponent.Kind())
			if masksOverlap(psprite, pcol.Rect, ssprite, scol.Rect) {
				hit = true
			}
		})
	return hit
}

// masksOverlap walks the intersection of the two rects and reports any pixel
// where both alpha masks are set. Missing masks fall back to the rect test.
func masksOverlap(a *component.Sprite, ra common.Rect, b *component.Sprite, rb common.Rect) bool {
	if a == nil || b == nil || a.Mask == nil || b.Mask == nil {
		return true
	}

	x0 := int(max(ra.Left(), rb.Left()))
	x1 := int(min(ra.Right(), rb.Right()))
	y0 := int(max(ra.Top(), rb.Top()))
	y1 := int(min(ra.Bottom(), rb.Bottom()))

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			ax, ay := x-int(ra.X), y-int(ra.Y)
			bx, by := x-int(rb.X), y-int(rb.Y)
			if a.Mask.AlphaAt(ax, ay).A > 0 && b.Mask.AlphaAt(bx, by).A > 0 {
				return true
			}
		}
	}
	return false
}

// drainWatcher applies pending dev-mode file changes. Settings apply to the
// next session; the spawn script hot-swaps into the running one.
func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events():
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors():
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if g.settingsPath != "" && path == filepath.Clean(g.settingsPath) {
		cfg, err := config.Load(path)
		if err != nil {
			log.Printf("reload settings: %v", err)
			return
		}
		g.cfg = cfg
		log.Printf("reloaded settings from %s (applies next session)", path)
		return
	}
	if g.scriptPath != "" && path == filepath.Clean(g.scriptPath) && g.spawn != nil {
		script, err := config.SpawnScript(path)
		if err != nil {
			log.Printf("reload script: %v", err)
			return
		}
		if err := g.spawn.Reload(script); err != nil {
			log.Printf("reload script: %v", err)
			return
		}
		log.Printf("reloaded spawn script from %s", path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	if g.world != nil {
		g.render.Draw(g.world, screen)
	}

	switch g.mode {
	case modeStart:
		g.centerText(screen, g.cfg.Title, -10)
		g.centerText(screen, "arrows/WASD to move, space to jump", 10)
		g.centerText(screen, "press space to start", 30)
	case modeGameOver:
		g.centerText(screen, "game over", -10)
		g.centerText(screen, "press space to retry", 10)
	case modePlaying:
		if g.paused {
			g.pauseUI.Draw(screen)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.0f", ebiten.ActualFPS()))
}

func (g *Game) centerText(screen *ebiten.Image, msg string, dy int) {
	// DebugPrintAt uses a 6px-advance debug font; good enough for overlays.
	x := g.cfg.Width/2 - len(msg)*6/2
	y := g.cfg.Height/2 + dy
	ebitenutil.DebugPrintAt(screen, msg, x, y)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}
