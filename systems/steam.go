package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/config"
)

// SteamParams holds the spawn state of one steam puff.
type SteamParams struct {
	X, Y    float32
	VY      float32
	Radius  float32
	Opacity float32
}

// SteamCount draws how many puffs a hit releases, in [MinCount, MaxCount).
func SteamCount(rng RNG, cfg config.SteamConfig) int {
	span := float64(cfg.MaxCount - cfg.MinCount)
	n := cfg.MinCount + int(math.Floor(float64(rng.Float32())*span))
	if n >= cfg.MaxCount && cfg.MaxCount > cfg.MinCount {
		n = cfg.MaxCount - 1
	}
	return n
}

// NewSteamParams draws one puff released at (x, y).
// The horizontal jitter range is one-sided, so bursts drift left of the hit.
func NewSteamParams(rng RNG, cfg config.SteamConfig, x, y float32) SteamParams {
	return SteamParams{
		X:       x + uniform(rng, float32(cfg.JitterMin), float32(cfg.JitterMax)),
		Y:       y,
		VY:      -uniform(rng, float32(cfg.MinRise), float32(cfg.MaxRise)),
		Radius:  float32(cfg.Radius),
		Opacity: float32(cfg.Opacity),
	}
}

// SteamPool stores steam puffs in the ECS world.
type SteamPool struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Steam]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Steam]
}

// NewSteamPool creates an empty steam pool backed by world.
func NewSteamPool(world *ecs.World) *SteamPool {
	return &SteamPool{
		world:  world,
		mapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Steam](world),
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Steam](world),
	}
}

// Add creates a puff from explicit parameters.
func (p *SteamPool) Add(params SteamParams) ecs.Entity {
	pos := components.Position{X: params.X, Y: params.Y}
	vel := components.Velocity{Y: params.VY}
	body := components.Body{Radius: params.Radius}
	steam := components.Steam{Opacity: params.Opacity}
	return p.mapper.NewEntity(&pos, &vel, &body, &steam)
}

// Burst releases a randomized burst at (x, y) and returns the puff count.
// Must not be called while another pool query is open.
func (p *SteamPool) Burst(rng RNG, cfg config.SteamConfig, x, y float32) int {
	n := SteamCount(rng, cfg)
	for range n {
		p.Add(NewSteamParams(rng, cfg, x, y))
	}
	return n
}

// Integrate raises puffs and applies the per-frame fade and shrink.
// Non-finite dt skips the whole update, decay included.
func (p *SteamPool) Integrate(dt float32, cfg config.SteamConfig) {
	if !Finite(dt) {
		return
	}
	fade := float32(cfg.FadePerFrame)
	shrink := float32(cfg.ShrinkPerFrame)

	query := p.filter.Query()
	for query.Next() {
		pos, vel, body, steam := query.Get()
		step(pos, vel, dt)
		steam.Opacity -= fade
		body.Radius -= shrink
	}
}

// Cull removes puffs that have faded out or shrunk away.
func (p *SteamPool) Cull() int {
	var doomed []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		_, _, body, steam := query.Get()
		if steam.Opacity <= 0 || body.Radius <= 0 {
			doomed = append(doomed, query.Entity())
		}
	}
	removeEntities(p.world, doomed)
	return len(doomed)
}

// Each calls fn with a copy of every puff's state.
func (p *SteamPool) Each(fn func(pos components.Position, body components.Body, steam components.Steam)) {
	query := p.filter.Query()
	for query.Next() {
		pos, _, body, steam := query.Get()
		fn(*pos, *body, *steam)
	}
}

// Len returns the number of live puffs.
func (p *SteamPool) Len() int {
	n := 0
	query := p.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Clear removes every puff.
func (p *SteamPool) Clear() {
	var doomed []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		doomed = append(doomed, query.Entity())
	}
	removeEntities(p.world, doomed)
}
