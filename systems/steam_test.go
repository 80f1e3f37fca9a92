package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/cloudburst/components"
)

func TestSteamCount(t *testing.T) {
	cfg := testConfig(t)
	tests := []struct {
		u    float32
		want int
	}{
		{0, 15},
		{0.19, 15},
		{0.5, 17},
		{0.99, 19},
		{0.99999994, 19},
	}
	for _, tc := range tests {
		if got := SteamCount(newSeqRNG(tc.u), cfg.Steam); got != tc.want {
			t.Errorf("SteamCount(u=%v) = %d, want %d", tc.u, got, tc.want)
		}
	}
}

func TestNewSteamParams_Jitter(t *testing.T) {
	cfg := testConfig(t)

	low := NewSteamParams(newSeqRNG(0), cfg.Steam, 100, 50)
	if !near(low.X, 80, 1e-4) {
		t.Errorf("x = %v, want 80", low.X)
	}
	if !near(low.VY, -50, 1e-4) {
		t.Errorf("vy = %v, want -50", low.VY)
	}
	if low.Y != 50 {
		t.Errorf("y = %v, want unchanged 50", low.Y)
	}
	if low.Opacity != float32(cfg.Steam.Opacity) || low.Radius != 10 {
		t.Errorf("opacity/radius = %v/%v, want 0.1/10", low.Opacity, low.Radius)
	}

	// Offsets stay strictly left of the hit
	high := NewSteamParams(newSeqRNG(0.999), cfg.Steam, 100, 50)
	if high.X >= 90 || high.X < 80 {
		t.Errorf("x = %v, want in [80,90)", high.X)
	}
	if high.VY > -50 || high.VY < -100 {
		t.Errorf("vy = %v, want in [-100,-50]", high.VY)
	}
}

func TestSteamPool_Burst(t *testing.T) {
	cfg := testConfig(t)
	pool := NewSteamPool(newWorld())

	n := pool.Burst(newSeqRNG(0), cfg.Steam, 200, 200)

	if n != 15 {
		t.Errorf("burst released %d puffs, want 15", n)
	}
	if got := pool.Len(); got != 15 {
		t.Errorf("pool has %d puffs, want 15", got)
	}
}

func TestSteamPool_PerFrameDecay(t *testing.T) {
	cfg := testConfig(t)

	// Decay does not scale with dt
	for _, dt := range []float32{1.0 / 60, 0.5} {
		pool := NewSteamPool(newWorld())
		pool.Add(SteamParams{X: 10, Y: 100, VY: -60, Radius: 10, Opacity: 0.1})

		pool.Integrate(dt, cfg.Steam)

		pool.Each(func(pos components.Position, body components.Body, steam components.Steam) {
			if !near(steam.Opacity, 0.098, 1e-6) {
				t.Errorf("dt=%v: opacity = %v, want 0.098", dt, steam.Opacity)
			}
			if !near(body.Radius, 9.98, 1e-5) {
				t.Errorf("dt=%v: radius = %v, want 9.98", dt, body.Radius)
			}
			if !near(pos.Y, 100-60*dt, 1e-4) {
				t.Errorf("dt=%v: y = %v, want %v", dt, pos.Y, 100-60*dt)
			}
		})
	}
}

func TestSteamPool_NonFiniteSkipsDecay(t *testing.T) {
	cfg := testConfig(t)
	pool := NewSteamPool(newWorld())
	pool.Add(SteamParams{X: 10, Y: 100, VY: -60, Radius: 10, Opacity: 0.1})

	pool.Integrate(float32(math.NaN()), cfg.Steam)

	pool.Each(func(pos components.Position, body components.Body, steam components.Steam) {
		if steam.Opacity != 0.1 || body.Radius != 10 || pos.Y != 100 {
			t.Errorf("puff changed on NaN dt: y=%v r=%v o=%v", pos.Y, body.Radius, steam.Opacity)
		}
	})
}

func TestSteamPool_Cull(t *testing.T) {
	pool := NewSteamPool(newWorld())
	pool.Add(SteamParams{Radius: 10, Opacity: 0})
	pool.Add(SteamParams{Radius: 0, Opacity: 0.05})
	pool.Add(SteamParams{Radius: -0.01, Opacity: 0.05})
	pool.Add(SteamParams{Radius: 5, Opacity: 0.001})

	if removed := pool.Cull(); removed != 3 {
		t.Errorf("removed %d puffs, want 3", removed)
	}
	if n := pool.Len(); n != 1 {
		t.Errorf("pool has %d puffs, want 1", n)
	}
}

func TestSteamPool_FadesOutEventually(t *testing.T) {
	cfg := testConfig(t)
	pool := NewSteamPool(newWorld())
	pool.Burst(newSeqRNG(0.3), cfg.Steam, 500, 300)

	// 0.1 opacity at 0.002 per frame is gone within 51 frames
	for i := 0; i < 51; i++ {
		pool.Integrate(1.0/60, cfg.Steam)
		pool.Cull()
	}
	if n := pool.Len(); n != 0 {
		t.Errorf("%d puffs survived past their fade", n)
	}
}
