package assets

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/Gautam-J/LCC-S2/common"
)

// DefaultScale is applied where a call site does not override it; the source
// art is authored at twice the display resolution.
const DefaultScale = 0.5

// SpriteSheet cuts sub-images out of one larger source image. The source
// stays a plain image.Image so region math is testable without a graphics
// context; GPU-side images are only created in Sub.
type SpriteSheet struct {
	src image.Image
}

func NewSpriteSheet(src image.Image) *SpriteSheet {
	return &SpriteSheet{src: src}
}

// Region crops (x, y, w, h) and resamples it to
// (round(w*scale), round(h*scale)). Out-of-bounds rects are the caller's
// responsibility; the resampler samples whatever is there.
func (s *SpriteSheet) Region(x, y, w, h int, scale float64) *image.RGBA {
	dw := common.Round(float64(w) * scale)
	dh := common.Round(float64(h) * scale)
	dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), s.src, image.Rect(x, y, x+w, y+h), xdraw.Over, nil)
	return dst
}

// Sub is Region uploaded as an ebiten image.
func (s *SpriteSheet) Sub(x, y, w, h int, scale float64) *ebiten.Image {
	return ebiten.NewImageFromImage(s.Region(x, y, w, h, scale))
}

// FlipH returns a horizontal mirror of img. Left-facing animation frames are
// mirrors of the right-facing ones.
func FlipH(img image.Image) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			out.Set(b.Dx()-1-x, y, img.At(b.Min.X+x, b.Min.Y+y))
		}
	}
	return out
}
