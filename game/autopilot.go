package game

import (
	"math"

	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/config"
)

// Autopilot aims for the player in headless runs. Each frame it holds the
// reticle on a point ahead of the nearest enemy, far enough from the player
// to fire at full pressure.
type Autopilot struct {
	cfg     config.AutopilotConfig
	droplet config.DropletConfig
}

// NewAutopilot creates an autopilot with the given tuning.
func NewAutopilot(cfg config.AutopilotConfig, droplet config.DropletConfig) *Autopilot {
	return &Autopilot{cfg: cfg, droplet: droplet}
}

// Aim returns where to hold the reticle, or fire=false when there is nothing
// worth shooting at.
func (a *Autopilot) Aim(s *GameState) (x, y float32, fire bool) {
	p := s.Player

	found := false
	var best float32
	var tx, ty, tvx, tvy float32
	s.Enemies.Each(func(pos components.Position, vel components.Velocity, _ components.Body) {
		d := hypot(pos.X-p.X, pos.Y-p.Y)
		if !found || d < best {
			best, found = d, true
			tx, ty, tvx, tvy = pos.X, pos.Y, vel.X, vel.Y
		}
	})
	if !found {
		return 0, 0, false
	}
	if a.cfg.Threshold > 0 && best > float32(a.cfg.Threshold) {
		return 0, 0, false
	}

	// Flight time at full pressure, ignoring the gravity bend
	speed := float32(a.droplet.BaseSpeed * (1 + a.droplet.PressureBoost))
	t := best / speed

	tx += tvx * t * float32(a.cfg.Lead)
	ty += tvy * t * float32(a.cfg.Lead)
	ty -= 0.5 * float32(a.droplet.Gravity) * t * t * float32(a.cfg.Lift)

	dx, dy := tx-p.X, ty-p.Y
	d := hypot(dx, dy)
	if d == 0 {
		return 0, 0, false
	}
	reach := max(d, float32(a.cfg.Reach))
	return p.X + dx/d*reach, p.Y + dy/d*reach, true
}

// Drive translates the aim into pointer events on g.
func (a *Autopilot) Drive(g *Game) {
	s := g.State()
	x, y, fire := a.Aim(s)
	switch {
	case fire && !s.Reticle.Active:
		g.PointerDown(x, y)
	case fire:
		g.PointerMove(x, y)
	case s.Reticle.Active:
		g.PointerUp()
	}
}

func hypot(dx, dy float32) float32 {
	return float32(math.Hypot(float64(dx), float64(dy)))
}
