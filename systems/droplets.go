package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/config"
)

// DropletParams holds the spawn state of one droplet.
type DropletParams struct {
	X, Y   float32
	VX, VY float32
	Radius float32
	Hue    float32
}

// NewDropletParams aims a droplet from the player toward the reticle.
// Speed grows with the aim distance until it saturates at the pressure range.
// Returns false when the reticle sits exactly on the player, in which case no
// random numbers are drawn.
func NewDropletParams(rng RNG, cfg config.DropletConfig, fromX, fromY, toX, toY float32) (DropletParams, bool) {
	dx := toX - fromX
	dy := toY - fromY
	h := Speed(dx, dy)
	if h == 0 || !Finite(h) {
		return DropletParams{}, false
	}

	pressureRange := float32(cfg.PressureRange)
	pressure := min(h, pressureRange) / pressureRange
	speed := float32(cfg.BaseSpeed) * (1 + float32(cfg.PressureBoost)*pressure)

	return DropletParams{
		X:      fromX,
		Y:      fromY,
		VX:     speed * dx / h,
		VY:     speed * dy / h,
		Radius: float32(cfg.Radius),
		Hue:    uniform(rng, float32(cfg.HueMin), float32(cfg.HueMax)),
	}, true
}

// DropletPool stores droplets in the ECS world.
type DropletPool struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Droplet]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Droplet]
}

// NewDropletPool creates an empty droplet pool backed by world.
func NewDropletPool(world *ecs.World) *DropletPool {
	return &DropletPool{
		world:  world,
		mapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Droplet](world),
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Droplet](world),
	}
}

// Add creates a droplet from explicit parameters.
func (p *DropletPool) Add(params DropletParams) ecs.Entity {
	pos := components.Position{X: params.X, Y: params.Y}
	vel := components.Velocity{X: params.VX, Y: params.VY}
	body := components.Body{Radius: params.Radius}
	drop := components.Droplet{Hue: params.Hue}
	return p.mapper.NewEntity(&pos, &vel, &body, &drop)
}

// Fire spawns a droplet from the player toward the reticle.
// Returns the spawn parameters and whether a droplet was created.
func (p *DropletPool) Fire(rng RNG, cfg config.DropletConfig, player *Player, aimX, aimY float32) (DropletParams, bool) {
	params, ok := NewDropletParams(rng, cfg, player.X, player.Y, aimX, aimY)
	if !ok {
		return params, false
	}
	p.Add(params)
	return params, true
}

// Integrate moves droplets and applies gravity. Non-finite dt is ignored.
func (p *DropletPool) Integrate(dt, gravity float32) {
	if !Finite(dt) {
		return
	}
	query := p.filter.Query()
	for query.Next() {
		pos, vel, _, _ := query.Get()
		stepFalling(pos, vel, gravity, dt)
	}
}

// Cull removes droplets outside b and returns how many were removed.
// Spent droplets stay until they leave the surface.
func (p *DropletPool) Cull(b Bounds) int {
	var doomed []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		pos, _, _, _ := query.Get()
		if !b.Contains(pos.X, pos.Y) {
			doomed = append(doomed, query.Entity())
		}
	}
	removeEntities(p.world, doomed)
	return len(doomed)
}

// Each calls fn with a copy of every droplet's state.
func (p *DropletPool) Each(fn func(pos components.Position, vel components.Velocity, body components.Body, drop components.Droplet)) {
	query := p.filter.Query()
	for query.Next() {
		pos, vel, body, drop := query.Get()
		fn(*pos, *vel, *body, *drop)
	}
}

// Len returns the number of live droplets.
func (p *DropletPool) Len() int {
	n := 0
	query := p.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Clear removes every droplet.
func (p *DropletPool) Clear() {
	var doomed []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		doomed = append(doomed, query.Entity())
	}
	removeEntities(p.world, doomed)
}
