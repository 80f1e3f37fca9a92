package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/config"
)

// EnemyParams holds the spawn state of one enemy.
type EnemyParams struct {
	X, Y   float32
	VX, VY float32
	Radius float32
}

// NewEnemyParams draws an enemy entering at the right edge, aimed at where the
// player is now. The aim is never corrected after spawn.
// RNG draw order: height, speed, radius.
func NewEnemyParams(rng RNG, cfg config.EnemyConfig, b Bounds, playerX, playerY float32) EnemyParams {
	x := b.Width
	y := rng.Float32() * b.Height
	vx := -uniform(rng, float32(cfg.MinSpeed), float32(cfg.MaxSpeed))

	// Time to reach the player's column is (x-playerX)/-vx; pick vy so the
	// straight line passes through the player's current position.
	var vy float32
	if travel := (x - playerX) / vx; travel != 0 {
		vy = (y - playerY) / travel
	}

	return EnemyParams{
		X:      x,
		Y:      y,
		VX:     vx,
		VY:     vy,
		Radius: uniform(rng, float32(cfg.MinRadius), float32(cfg.MaxRadius)),
	}
}

// EnemyCull reports why enemies were removed by a cull pass.
type EnemyCull struct {
	Extinguished int // Radius shrank to the kill radius or below
	Escaped      int // Crossed the left edge
}

// Total returns the number of enemies removed.
func (c EnemyCull) Total() int {
	return c.Extinguished + c.Escaped
}

// EnemyPool stores enemies in the ECS world.
type EnemyPool struct {
	world  *ecs.World
	mapper *ecs.Map4[components.Position, components.Velocity, components.Body, components.Enemy]
	filter *ecs.Filter4[components.Position, components.Velocity, components.Body, components.Enemy]
	serial uint32
}

// NewEnemyPool creates an empty enemy pool backed by world.
func NewEnemyPool(world *ecs.World) *EnemyPool {
	return &EnemyPool{
		world:  world,
		mapper: ecs.NewMap4[components.Position, components.Velocity, components.Body, components.Enemy](world),
		filter: ecs.NewFilter4[components.Position, components.Velocity, components.Body, components.Enemy](world),
	}
}

// Add creates an enemy from explicit parameters.
func (p *EnemyPool) Add(params EnemyParams) ecs.Entity {
	p.serial++
	pos := components.Position{X: params.X, Y: params.Y}
	vel := components.Velocity{X: params.VX, Y: params.VY}
	body := components.Body{Radius: params.Radius}
	enemy := components.Enemy{Serial: p.serial}
	return p.mapper.NewEntity(&pos, &vel, &body, &enemy)
}

// Spawn creates a randomized enemy aimed at the player.
func (p *EnemyPool) Spawn(rng RNG, cfg config.EnemyConfig, b Bounds, player *Player) ecs.Entity {
	return p.Add(NewEnemyParams(rng, cfg, b, player.X, player.Y))
}

// Integrate moves every enemy along its fixed velocity.
// Non-finite dt is ignored.
func (p *EnemyPool) Integrate(dt float32) {
	if !Finite(dt) {
		return
	}
	query := p.filter.Query()
	for query.Next() {
		pos, vel, _, _ := query.Get()
		step(pos, vel, dt)
	}
}

// Cull removes enemies that left through the left edge or burned down to
// killRadius. An enemy matching both counts as extinguished.
func (p *EnemyPool) Cull(killRadius float32) EnemyCull {
	var result EnemyCull
	var doomed []ecs.Entity

	query := p.filter.Query()
	for query.Next() {
		pos, _, body, _ := query.Get()
		switch {
		case body.Radius <= killRadius:
			result.Extinguished++
		case pos.X <= 0:
			result.Escaped++
		default:
			continue
		}
		doomed = append(doomed, query.Entity())
	}

	removeEntities(p.world, doomed)
	return result
}

// Each calls fn with a copy of every enemy's state.
func (p *EnemyPool) Each(fn func(pos components.Position, vel components.Velocity, body components.Body)) {
	query := p.filter.Query()
	for query.Next() {
		pos, vel, body, _ := query.Get()
		fn(*pos, *vel, *body)
	}
}

// Len returns the number of live enemies.
func (p *EnemyPool) Len() int {
	n := 0
	query := p.filter.Query()
	for query.Next() {
		n++
	}
	return n
}

// Clear removes every enemy.
func (p *EnemyPool) Clear() {
	var doomed []ecs.Entity
	query := p.filter.Query()
	for query.Next() {
		doomed = append(doomed, query.Entity())
	}
	removeEntities(p.world, doomed)
}
