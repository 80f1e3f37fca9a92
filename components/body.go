// Package components defines ECS components for the game.
package components

// Body holds the collision circle of an entity.
// Radius may dip below zero between a mutation and the next cull pass.
type Body struct {
	Radius float32
}

// Enemy marks a torch flying toward the player.
type Enemy struct {
	Serial uint32 // Spawn order, for logs and tests
}

// Droplet marks a fired water droplet.
type Droplet struct {
	Spent bool    // Hit an enemy already; still simulated until off-surface
	Hue   float32 // Degrees, render only
}

// Steam marks a puff released by a hit.
type Steam struct {
	Opacity float32
}

// Tuft marks a decorative cloud particle around the player.
type Tuft struct {
	Opacity     float32
	Evaporating bool
}
