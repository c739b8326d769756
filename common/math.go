package common

const (
	// BaseWidth and BaseHeight are the logical canvas size. Every position in
	// the game is expressed in this space.
	BaseWidth  = 800
	BaseHeight = 600
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
