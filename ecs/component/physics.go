package component

// Velocity is measured in pixels per frame. X is the constant auto-scroll
// speed; Y is driven by gravity, jump impulses and landings.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()

// Gravity is added to Velocity.Y every simulated frame.
type Gravity struct {
	Accel float64
}

var GravityComponent = NewComponent[Gravity]()

// Hitbox is the square the character collides with, anchored at Transform.
type Hitbox struct {
	Width  float64
	Height float64
}

var HitboxComponent = NewComponent[Hitbox]()
