package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/cloudburst/components"
)

// ---------- Spawn parameters ----------

func TestNewEnemyParams_DrawOrder(t *testing.T) {
	cfg := testConfig(t)
	rng := newSeqRNG(0.2, 0.5, 0.5)

	p := NewEnemyParams(rng, cfg.Enemy, testBounds(), 48, 300)

	if p.X != 960 {
		t.Errorf("enemy x = %v, want right edge 960", p.X)
	}
	if !near(p.Y, 120, 1e-4) {
		t.Errorf("enemy y = %v, want 120", p.Y)
	}
	if !near(p.VX, -250, 1e-4) {
		t.Errorf("enemy vx = %v, want -250", p.VX)
	}
	if !near(p.Radius, 10, 1e-4) {
		t.Errorf("enemy radius = %v, want 10", p.Radius)
	}
	if rng.draws != 3 {
		t.Errorf("expected 3 random draws, got %d", rng.draws)
	}
}

func TestNewEnemyParams_AimsAtPlayer(t *testing.T) {
	cfg := testConfig(t)
	b := testBounds()

	tests := []struct {
		name             string
		rng              []float32
		playerX, playerY float32
	}{
		{"above centre", []float32{0.1, 0.3, 0.2}, 0, 300},
		{"below centre", []float32{0.9, 0.8, 0.7}, 0, 300},
		{"player offset", []float32{0.5, 0.0, 0.0}, 48, 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewEnemyParams(newSeqRNG(tc.rng...), cfg.Enemy, b, tc.playerX, tc.playerY)

			// Time until the enemy reaches the player's column
			travel := (p.X - tc.playerX) / -p.VX
			y := p.Y + p.VY*travel
			if !near(y, tc.playerY, 1e-3) {
				t.Errorf("enemy reaches player column at y=%v, want %v", y, tc.playerY)
			}
		})
	}
}

func TestNewEnemyParams_Ranges(t *testing.T) {
	cfg := testConfig(t)
	for _, u := range []float32{0, 0.25, 0.5, 0.75, 0.9999} {
		p := NewEnemyParams(newSeqRNG(u), cfg.Enemy, testBounds(), 48, 300)
		if p.VX > -200 || p.VX < -300 {
			t.Errorf("u=%v: vx = %v, want in [-300,-200]", u, p.VX)
		}
		if p.Radius < 5 || p.Radius > 15 {
			t.Errorf("u=%v: radius = %v, want in [5,15]", u, p.Radius)
		}
		if p.Y < 0 || p.Y >= 600 {
			t.Errorf("u=%v: y = %v, want in [0,600)", u, p.Y)
		}
	}
}

func TestNewEnemyParams_ZeroWidthSurface(t *testing.T) {
	cfg := testConfig(t)
	p := NewEnemyParams(newSeqRNG(0.5), cfg.Enemy, Bounds{}, 0, 0)
	if math.IsNaN(float64(p.VY)) || math.IsInf(float64(p.VY), 0) {
		t.Errorf("vy = %v, want finite", p.VY)
	}
}

// ---------- Pool behaviour ----------

func TestEnemyPool_Integrate(t *testing.T) {
	pool := NewEnemyPool(newWorld())
	pool.Add(EnemyParams{X: 100, Y: 50, VX: -200, VY: 10, Radius: 8})

	pool.Integrate(0.5)

	pool.Each(func(pos components.Position, _ components.Velocity, _ components.Body) {
		if pos.X != 0 || pos.Y != 55 {
			t.Errorf("enemy at (%v,%v), want (0,55)", pos.X, pos.Y)
		}
	})
}

func TestEnemyPool_IntegrateSkipsNonFinite(t *testing.T) {
	pool := NewEnemyPool(newWorld())
	pool.Add(EnemyParams{X: 100, Y: 50, VX: -200, VY: 10, Radius: 8})

	for _, dt := range []float32{float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1))} {
		pool.Integrate(dt)
	}

	pool.Each(func(pos components.Position, _ components.Velocity, _ components.Body) {
		if pos.X != 100 || pos.Y != 50 {
			t.Errorf("enemy moved to (%v,%v) on non-finite dt", pos.X, pos.Y)
		}
	})
}

func TestEnemyPool_Cull(t *testing.T) {
	pool := NewEnemyPool(newWorld())
	pool.Add(EnemyParams{X: -1, Y: 10, Radius: 10})   // escaped
	pool.Add(EnemyParams{X: 0, Y: 10, Radius: 10})    // escaped at the edge
	pool.Add(EnemyParams{X: 100, Y: 10, Radius: 3})   // extinguished at the limit
	pool.Add(EnemyParams{X: 100, Y: 10, Radius: 2.5}) // extinguished
	pool.Add(EnemyParams{X: -5, Y: 10, Radius: 1})    // both; counts as extinguished
	pool.Add(EnemyParams{X: 100, Y: 10, Radius: 3.5}) // kept

	got := pool.Cull(3)

	if got.Escaped != 2 {
		t.Errorf("escaped = %d, want 2", got.Escaped)
	}
	if got.Extinguished != 3 {
		t.Errorf("extinguished = %d, want 3", got.Extinguished)
	}
	if got.Total() != 5 {
		t.Errorf("total = %d, want 5", got.Total())
	}
	if n := pool.Len(); n != 1 {
		t.Fatalf("pool has %d enemies, want 1", n)
	}
	pool.Each(func(pos components.Position, _ components.Velocity, body components.Body) {
		if body.Radius <= 3 || pos.X <= 0 {
			t.Errorf("survivor violates keep rule: x=%v radius=%v", pos.X, body.Radius)
		}
	})
}

func TestEnemyPool_Clear(t *testing.T) {
	pool := NewEnemyPool(newWorld())
	for i := 0; i < 4; i++ {
		pool.Add(EnemyParams{X: 500, Y: float32(i), Radius: 10})
	}
	pool.Clear()
	if n := pool.Len(); n != 0 {
		t.Errorf("pool has %d enemies after Clear, want 0", n)
	}
}
