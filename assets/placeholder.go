package assets

import (
	"image"
	"image/color"
	"image/draw"
)

// Placeholder art, generated in memory so the repo runs without binary
// assets. Region coordinates below match the real spritesheets, so swapping
// a PNG into the assets dir changes only the pixels.

var palette = struct {
	Stone       color.RGBA
	StoneBroken color.RGBA
	Ground      color.RGBA
	GroundDark  color.RGBA
	Slime       color.RGBA
	SlimeDark   color.RGBA
	Cloud       color.RGBA
	PlayerBody  color.RGBA
	PlayerRun   color.RGBA
	PlayerHurt  color.RGBA
	PlayerShoot color.RGBA
	Outline     color.RGBA
}{
	Stone:       color.RGBA{150, 145, 135, 255},
	StoneBroken: color.RGBA{120, 115, 105, 255},
	Ground:      color.RGBA{110, 80, 50, 255},
	GroundDark:  color.RGBA{90, 64, 40, 255},
	Slime:       color.RGBA{80, 200, 90, 255},
	SlimeDark:   color.RGBA{50, 150, 60, 255},
	Cloud:       color.RGBA{235, 240, 250, 255},
	PlayerBody:  color.RGBA{60, 120, 220, 255},
	PlayerRun:   color.RGBA{70, 140, 230, 255},
	PlayerHurt:  color.RGBA{220, 80, 80, 255},
	PlayerShoot: color.RGBA{200, 160, 60, 255},
	Outline:     color.RGBA{30, 30, 35, 255},
}

func cell(w, h int, fill color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{fill}, image.Point{}, draw.Src)
	for x := 0; x < w; x++ {
		img.Set(x, 0, palette.Outline)
		img.Set(x, h-1, palette.Outline)
	}
	for y := 0; y < h; y++ {
		img.Set(0, y, palette.Outline)
		img.Set(w-1, y, palette.Outline)
	}
	return img
}

func stamp(dst *image.RGBA, x, y, w, h int, fill color.RGBA) {
	draw.Draw(dst, image.Rect(x, y, x+w, y+h), cell(w, h, fill), image.Point{}, draw.Src)
}

// PlaceholderTerrainSheet covers the platform and base regions.
func PlaceholderTerrainSheet() image.Image {
	sheet := image.NewRGBA(image.Rect(0, 0, 600, 1400))
	stamp(sheet, 0, 96, 380, 94, palette.Stone)        // stone
	stamp(sheet, 0, 192, 380, 94, palette.StoneBroken) // stone broken
	stamp(sheet, 382, 408, 200, 100, palette.Stone)    // stone small
	stamp(sheet, 232, 1288, 200, 100, palette.StoneBroken)
	stamp(sheet, 0, 576, 380, 94, palette.Ground) // base strip
	return sheet
}

// PlaceholderEnemySheet covers the slime walk and die regions.
func PlaceholderEnemySheet() image.Image {
	sheet := image.NewRGBA(image.Rect(0, 0, 120, 160))
	stamp(sheet, 52, 125, 50, 28, palette.Slime)     // walk A
	stamp(sheet, 0, 125, 51, 26, palette.SlimeDark)  // walk B
	stamp(sheet, 0, 112, 59, 12, palette.SlimeDark)  // die
	return sheet
}

// PlaceholderCloud returns one of a few cloud shapes, varying slightly so
// the sky doesn't tile visibly.
func PlaceholderCloud(i int) image.Image {
	sizes := [][2]int{{96, 48}, {120, 56}, {80, 40}}
	s := sizes[((i%len(sizes))+len(sizes))%len(sizes)]
	return cell(s[0], s[1], palette.Cloud)
}

// placeholderPlayerFrames generates right-facing frames for one animation
// state. Widths wobble per frame so the bottom re-anchoring path is actually
// exercised by the placeholder art.
func placeholderPlayerFrames(n, w, h int, fill color.RGBA) []image.Image {
	out := make([]image.Image, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, cell(w+2*(i%2), h, fill))
	}
	return out
}
