package utils

// Rectangle is an axis aligned box anchored at its top-left corner.
type Rectangle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func NewRectangle(x, y, width, height float64) Rectangle {
	return Rectangle{X: x, Y: y, Width: width, Height: height}
}

func (r Rectangle) Left() float64   { return r.X }
func (r Rectangle) Right() float64  { return r.X + r.Width }
func (r Rectangle) Top() float64    { return r.Y }
func (r Rectangle) Bottom() float64 { return r.Y + r.Height }

// Intersects reports whether the two rectangles overlap. Rectangles that only
// share an edge do not intersect.
func (r Rectangle) Intersects(other Rectangle) bool {
	return r.Left() < other.Right() &&
		r.Right() > other.Left() &&
		r.Top() < other.Bottom() &&
		r.Bottom() > other.Top()
}
