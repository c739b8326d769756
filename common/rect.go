package common

// Rect is an axis-aligned rectangle in canvas pixels. Y grows downward.
type Rect struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Intersects reports whether the two rectangles overlap. Edges that only
// touch do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) CenterX() float64 {
	return r.X + r.Width/2
}
