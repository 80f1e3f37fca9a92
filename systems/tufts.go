package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/config"
)

// TuftParams holds the spawn state of one tuft, relative to the player centre.
type TuftParams struct {
	OffsetX, OffsetY float32
	VX, VY           float32
	Radius           float32
	Opacity          float32
}

// NewTuftParams draws a tuft somewhere in the square around a player of the
// given radius. Corners of the square lie outside the circle, so some tufts
// start evaporating right away.
func NewTuftParams(rng RNG, cfg config.TuftConfig, playerRadius float32) TuftParams {
	ox := (rng.Float32()*2 - 1) * playerRadius
	oy := (rng.Float32()*2 - 1) * playerRadius
	radius := uniform(rng, float32(cfg.MinRadius), float32(cfg.MaxRadius))
	vx := signed(rng, uniform(rng, float32(cfg.MinSpeed), float32(cfg.MaxSpeed)))
	vy := signed(rng, uniform(rng, float32(cfg.MinSpeed), float32(cfg.MaxSpeed)))
	return TuftParams{
		OffsetX: ox,
		OffsetY: oy,
		VX:      vx,
		VY:      vy,
		Radius:  radius,
		Opacity: float32(cfg.Opacity),
	}
}

// TuftPool stores the player's cloud tufts in the ECS world.
type TuftPool struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Tuft]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Tuft]
}

// NewTuftPool creates an empty tuft pool backed by world.
func NewTuftPool(world *ecs.World) *TuftPool {
	return &TuftPool{
		world:  world,
		mapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Tuft](world),
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Tuft](world),
	}
}

// Add creates a tuft from explicit parameters.
func (p *TuftPool) Add(params TuftParams) ecs.Entity {
	pos := components.Position{X: params.OffsetX, Y: params.OffsetY}
	vel := components.Velocity{X: params.VX, Y: params.VY}
	body := components.Body{Radius: params.Radius}
	tuft := components.Tuft{Opacity: params.Opacity}
	return p.mapper.NewEntity(&pos, &vel, &body, &tuft)
}

// Fill replaces all tufts with count fresh ones.
func (p *TuftPool) Fill(rng RNG, cfg config.TuftConfig, playerRadius float32, count int) {
	p.Clear()
	for range count {
		p.Add(NewTuftParams(rng, cfg, playerRadius))
	}
}

// Integrate drifts tufts, fades the ones that wandered past the player's edge,
// and respawns any that faded out completely. Non-finite dt is ignored.
func (p *TuftPool) Integrate(dt float32, rng RNG, cfg config.TuftConfig, playerRadius float32) {
	if !Finite(dt) {
		return
	}
	fade := float32(cfg.FadePerFrame)
	limitSq := playerRadius * playerRadius

	query := p.filter.Query()
	for query.Next() {
		pos, vel, body, tuft := query.Get()
		step(pos, vel, dt)

		if pos.X*pos.X+pos.Y*pos.Y > limitSq {
			tuft.Evaporating = true
		}
		if tuft.Evaporating {
			tuft.Opacity -= fade
		}
		if tuft.Opacity < 0 {
			// Components are updated in place; no structural change while the query is open.
			fresh := NewTuftParams(rng, cfg, playerRadius)
			*pos = components.Position{X: fresh.OffsetX, Y: fresh.OffsetY}
			*vel = components.Velocity{X: fresh.VX, Y: fresh.VY}
			body.Radius = fresh.Radius
			*tuft = components.Tuft{Opacity: fresh.Opacity}
		}
	}
}

// Each calls fn with a copy of every tuft's state. Positions are player offsets.
func (p *TuftPool) Each(fn func(offset components.Position, body components.Body, tuft components.Tuft)) {
	query := p.filter.Query()
	for query.Next() {
		pos, _, body, tuft := query.Get()
		fn(*pos, *body, *tuft)
	}
}

// Len returns the number of tufts.
func (p *TuftPool) Len() int {
	n := 0
	query := p.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Clear removes every tuft.
func (p *TuftPool) Clear() {
	var doomed []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		doomed = append(doomed, query.Entity())
	}
	removeEntities(p.world, doomed)
}
