package component

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite is the current visual frame. W and H mirror the image bounds so
// geometry code never has to touch the GPU-side image; Image may be nil in
// headless tests.
type Sprite struct {
	Image *ebiten.Image
	W, H  int
	Mask  *image.Alpha
}

// SetFrame swaps the displayed image and size. The mask is left stale until
// RecomputeMask runs; callers that need pixel-precise overlap recompute it
// after the last frame change of the tick.
func (s *Sprite) SetFrame(f Frame) {
	s.Image = f.Image
	s.W = f.W
	s.H = f.H
}

// RecomputeMask rebuilds the per-pixel opacity mask from the current image.
// No-op when the entity has no decoded image (headless tests, placeholders
// not yet registered).
func (s *Sprite) RecomputeMask() {
	if s == nil || s.Image == nil {
		s.Mask = nil
		return
	}
	b := s.Image.Bounds()
	mask := image.NewAlpha(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := s.Image.At(x, y).RGBA()
			mask.SetAlpha(x-b.Min.X, y-b.Min.Y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	s.Mask = mask
}

var SpriteComponent = NewComponent[Sprite]()
