package physics

// Rect is an axis-aligned box described by its center and extents.
type Rect struct {
	Center Vector
	Width  float64
	Height float64
}

// NewRect returns a rectangle centered on the origin. Negative extents are clamped to zero.
func NewRect(width, height float64) Rect {
	return Rect{Width: max(width, 0), Height: max(height, 0)}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.Center.X - r.Width/2
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.Center.X + r.Width/2
}

// Top returns the y coordinate of the top edge (y grows downwards).
func (r Rect) Top() float64 {
	return r.Center.Y - r.Height/2
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Center.Y + r.Height/2
}

// Overlaps reports whether r and o intersect. Touching edges do not count.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() < o.Right() &&
		r.Right() > o.Left() &&
		r.Top() < o.Bottom() &&
		r.Bottom() > o.Top()
}

// Bounds returns the rectangle itself so embedding types satisfy bounds-based interfaces.
func (r Rect) Bounds() Rect {
	return r
}
