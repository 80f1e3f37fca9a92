package renderer

import (
	"github.com/pthm-cable/cloudburst/components"
)

// EnemySource yields enemies for drawing.
type EnemySource interface {
	Each(fn func(pos components.Position, vel components.Velocity, body components.Body))
}

// DropletSource yields droplets for drawing.
type DropletSource interface {
	Each(fn func(pos components.Position, vel components.Velocity, body components.Body, drop components.Droplet))
}

// SteamSource yields steam puffs for drawing.
type SteamSource interface {
	Each(fn func(pos components.Position, body components.Body, steam components.Steam))
}

// ParticleRenderer renders torches, droplets and steam.
type ParticleRenderer struct{}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer() *ParticleRenderer {
	return &ParticleRenderer{}
}

// DrawEnemies renders each enemy as a torch: handle, flame, then a narrow core.
func (r *ParticleRenderer) DrawEnemies(s Surface, enemies EnemySource) {
	enemies.Each(func(pos components.Position, _ components.Velocity, body components.Body) {
		s.FillRect(pos.X-4, pos.Y+4, 8, 30, TorchHandle)
		if body.Radius <= 0 {
			return
		}
		s.FillCircle(pos.X, pos.Y, body.Radius, TorchFlame)
		s.FillEllipse(pos.X, pos.Y, 2, body.Radius*0.6, TorchCore)
	})
}

// DrawDroplets renders droplets in their own hue.
func (r *ParticleRenderer) DrawDroplets(s Surface, droplets DropletSource) {
	droplets.Each(func(pos components.Position, _ components.Velocity, body components.Body, drop components.Droplet) {
		s.FillCircle(pos.X, pos.Y, body.Radius, DropletColor(drop.Hue))
	})
}

// DrawSteam renders puffs as translucent white circles.
func (r *ParticleRenderer) DrawSteam(s Surface, steam SteamSource) {
	steam.Each(func(pos components.Position, body components.Body, puff components.Steam) {
		if body.Radius <= 0 || puff.Opacity <= 0 {
			return
		}
		s.FillCircle(pos.X, pos.Y, body.Radius, withOpacity(Cloud, puff.Opacity))
	})
}
