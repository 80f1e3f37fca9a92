// Package systems contains the simulation systems: particle pools, spawn rules,
// kinematics and collision.
package systems

import "github.com/pthm-cable/cloudburst/components"

// Bounds represents the drawing surface rectangle [0,Width]x[0,Height].
type Bounds struct {
	Width, Height float32
}

// Contains reports whether a point lies inside the bounds, edges included.
func (b Bounds) Contains(x, y float32) bool {
	return 0 <= x && x <= b.Width && 0 <= y && y <= b.Height
}

// step advances a position by one Euler step.
func step(pos *components.Position, vel *components.Velocity, dt float32) {
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

// stepFalling advances a position and then accelerates it downward.
// The velocity change compounds across frames with no terminal speed.
func stepFalling(pos *components.Position, vel *components.Velocity, gravity, dt float32) {
	step(pos, vel, dt)
	vel.Y += gravity * dt
}
