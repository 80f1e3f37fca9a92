package components

// Position represents an entity's position on the surface in pixels.
// Tufts store their offset from the player instead.
type Position struct {
	X, Y float32
}

// Velocity represents an entity's velocity in pixels per second.
type Velocity struct {
	X, Y float32
}
