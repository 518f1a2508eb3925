package common

// Rect is an axis-aligned bounding box in screen space (y grows downward).
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// MidBottom returns the bottom-center point of the rect.
func (r Rect) MidBottom() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height
}

// SetMidBottom moves the rect so its bottom-center sits at (x, y).
func (r *Rect) SetMidBottom(x, y float64) {
	r.X = x - r.Width/2
	r.Y = y - r.Height
}

// SetBottom moves the rect vertically so its bottom edge sits at y.
func (r *Rect) SetBottom(y float64) {
	r.Y = y - r.Height
}

func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
