package assets

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Gautam-J/LCC-S2/ecs/component"
)

// Spritesheet regions, in source-sheet pixels.
var platformRegions = [][4]int{
	{0, 96, 380, 94},     // stone
	{0, 192, 380, 94},    // stone broken
	{382, 408, 200, 100}, // stone small
	{232, 1288, 200, 100},
}

var baseRegion = [4]int{0, 576, 380, 94}

var (
	slimeWalkRegions = [][4]int{{52, 125, 50, 28}, {0, 125, 51, 26}}
	slimeDieRegion   = [4]int{0, 112, 59, 12}
	slimeScale       = 1.5
)

const cloudVariants = 3

// Library holds every frame a session needs, cut and scaled once at session
// start.
type Library struct {
	Player    *component.FrameSet
	Platforms []component.Frame
	Base      component.Frame
	SlimeWalk component.Sequence
	SlimeDie  component.Frame
	Clouds    []component.Frame
}

// LoadLibrary builds the frame library. Files under dir override the
// generated placeholders; a missing dir means all-placeholder art. Decode
// failures are fatal (ErrDecode) — a session cannot start half-rendered.
func LoadLibrary(dir string) (*Library, error) {
	terrainImg, err := loadOrGenerate(dir, "terrain.png", PlaceholderTerrainSheet)
	if err != nil {
		return nil, err
	}
	enemyImg, err := loadOrGenerate(dir, "enemies.png", PlaceholderEnemySheet)
	if err != nil {
		return nil, err
	}

	terrain := NewSpriteSheet(terrainImg)
	enemy := NewSpriteSheet(enemyImg)

	lib := &Library{}
	for _, r := range platformRegions {
		lib.Platforms = append(lib.Platforms, sheetFrame(terrain, r, DefaultScale))
	}
	lib.Base = sheetFrame(terrain, baseRegion, DefaultScale)

	for _, r := range slimeWalkRegions {
		lib.SlimeWalk = append(lib.SlimeWalk, sheetFrame(enemy, r, slimeScale))
	}
	lib.SlimeDie = sheetFrame(enemy, slimeDieRegion, DefaultScale)

	for i := 0; i < cloudVariants; i++ {
		variant := i
		img, err := loadOrGenerate(dir, fmt.Sprintf("cloud%d.png", i+1), func() image.Image {
			return PlaceholderCloud(variant)
		})
		if err != nil {
			return nil, err
		}
		lib.Clouds = append(lib.Clouds, toFrame(img))
	}

	player, err := buildPlayerFrames()
	if err != nil {
		return nil, err
	}
	lib.Player = player

	return lib, nil
}

func toFrame(img image.Image) component.Frame {
	b := img.Bounds()
	return component.Frame{
		Image: ebiten.NewImageFromImage(img),
		W:     b.Dx(),
		H:     b.Dy(),
	}
}

// sheetFrame cuts one region out of a sheet, already uploaded as an ebiten
// image.
func sheetFrame(s *SpriteSheet, r [4]int, scale float64) component.Frame {
	img := s.Sub(r[0], r[1], r[2], r[3], scale)
	b := img.Bounds()
	return component.Frame{
		Image: img,
		W:     b.Dx(),
		H:     b.Dy(),
	}
}

// buildPlayerFrames generates the directional sequences. Left-facing frames
// are horizontal mirrors of the right-facing ones.
func buildPlayerFrames() (*component.FrameSet, error) {
	fs := &component.FrameSet{}
	for _, st := range []struct {
		n, w, h int
		fill    color.RGBA
		dst     *[2]component.Sequence
	}{
		{2, 34, 56, palette.PlayerBody, &fs.Idle},
		{3, 36, 56, palette.PlayerRun, &fs.Run},
		{1, 36, 58, palette.PlayerBody, &fs.Jump},
		{2, 34, 56, palette.PlayerHurt, &fs.Hurt},
		{2, 38, 56, palette.PlayerShoot, &fs.Shoot},
	} {
		for _, img := range placeholderPlayerFrames(st.n, st.w, st.h, st.fill) {
			st.dst[component.FacingRight] = append(st.dst[component.FacingRight], toFrame(img))
			st.dst[component.FacingLeft] = append(st.dst[component.FacingLeft], toFrame(FlipH(img)))
		}
	}
	if err := fs.Validate(); err != nil {
		return nil, fmt.Errorf("assets: player frames: %w", err)
	}
	return fs, nil
}
