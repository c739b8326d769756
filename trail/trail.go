// Package trail keeps the fading afterimages drawn behind the character.
package trail

const (
	InitialOpacity = 0.5
	Decay          = 0.05
	Size           = 30
)

// Point is a past character position. Opacity is in (0, InitialOpacity].
type Point struct {
	X       float64
	Y       float64
	Opacity float64
}

// Update ages every point by one frame, drops the ones that faded out and
// prepends the current position. The input slice is left untouched.
func Update(points []Point, x, y float64) []Point {
	out := make([]Point, 0, len(points)+1)
	out = append(out, Point{X: x, Y: y, Opacity: InitialOpacity})
	for _, p := range points {
		p.Opacity -= Decay
		// 0.5 - 10*0.05 is not exactly zero in float64.
		if p.Opacity <= 1e-9 {
			continue
		}
		out = append(out, p)
	}
	return out
}
