package component

// Transform is the top-left corner of an entity in canvas pixels.
type Transform struct {
	X float64
	Y float64
}

var TransformComponent = NewComponent[Transform]()
