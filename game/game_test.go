package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/cloudburst/systems"
)

func TestStartSeedsFirstGame(t *testing.T) {
	cfg := testConfig(t)
	g, sched, _ := newTestGame(t, cfg, Options{Seed: 1})
	s := g.State()

	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing", g.Mode())
	}
	if s.Enemies.Len() != 1 {
		t.Errorf("enemies = %d, want 1", s.Enemies.Len())
	}
	if s.Tufts.Len() != cfg.Derived.TuftCount {
		t.Errorf("tufts = %d, want %d", s.Tufts.Len(), cfg.Derived.TuftCount)
	}
	if !s.InputEnabled {
		t.Error("expected input enabled")
	}
	if !sched.Pending() {
		t.Error("expected the next frame to be scheduled")
	}
	if g.Frames() != 1 {
		t.Errorf("frames = %d, want 1 (the start frame)", g.Frames())
	}
	if !near(s.Player.X, 48, 1e-4) || !near(s.Player.Y, 300, 1e-4) {
		t.Errorf("player at (%v,%v), want (48,300)", s.Player.X, s.Player.Y)
	}
}

func TestFirstFrameSkipsPhysics(t *testing.T) {
	g, sched, _ := newTestGame(t, testConfig(t), Options{Seed: 2})
	x0 := enemyX(g)

	sched.Fire(1000)
	if x := enemyX(g); x != x0 {
		t.Fatalf("enemy moved on first timestamp: %v -> %v", x0, x)
	}

	sched.Fire(1016)
	moved := x0 - enemyX(g)
	// Leftward speed is within [200,300] px/s
	if moved < 200*0.016-1e-3 || moved > 300*0.016+1e-3 {
		t.Errorf("enemy moved %v px in 16ms, want within [3.2,4.8]", moved)
	}
}

func TestNonFiniteDeltaSkipsPhysics(t *testing.T) {
	g, sched, _ := newTestGame(t, testConfig(t), Options{Seed: 3})
	sched.Fire(1000)
	x0 := enemyX(g)

	sched.Fire(math.Inf(1))
	if x := enemyX(g); x != x0 {
		t.Errorf("enemy moved on infinite delta: %v -> %v", x0, x)
	}
	if !sched.Pending() {
		t.Error("frame loop stopped after a bad timestamp")
	}
}

func TestDebugModeSingleSteps(t *testing.T) {
	cfg := testConfig(t)
	g, sched, _ := newTestGame(t, cfg, Options{Seed: 4, Debug: true})

	if sched.Pending() {
		t.Fatal("debug mode scheduled a frame")
	}
	x0 := enemyX(g)

	g.KeyPressed(StepKey)
	if g.Frames() != 2 {
		t.Errorf("frames = %d, want 2", g.Frames())
	}
	if x := enemyX(g); x != x0 {
		t.Errorf("first step moved the enemy: %v -> %v", x0, x)
	}

	g.KeyPressed(StepKey)
	moved := x0 - enemyX(g)
	if moved < 200*0.017-1e-3 || moved > 300*0.017+1e-3 {
		t.Errorf("enemy moved %v px in one step, want within [3.4,5.1]", moved)
	}
	if last, _ := g.clock.Last(); last != 2*cfg.Debug.StepMS {
		t.Errorf("clock at %v ms, want %v", last, 2*cfg.Debug.StepMS)
	}
	if sched.Pending() {
		t.Error("stepping scheduled a frame")
	}
}

func TestStepKeyIgnoredOutsideDebug(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(t), Options{Seed: 5})
	before := g.Frames()
	g.KeyPressed(StepKey)
	g.KeyPressed(RestartKey)
	if g.Frames() != before {
		t.Errorf("frames changed from %d to %d", before, g.Frames())
	}
}

func TestOverlapEndsGame(t *testing.T) {
	g, sched, _ := newTestGame(t, testConfig(t), Options{Seed: 6})
	s := g.State()
	onlyEnemy(g, systems.EnemyParams{X: s.Player.X + 15, Y: s.Player.Y, Radius: 10})
	g.PointerDown(400, 300)

	sched.Fire(1000)

	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %v, want game_over", g.Mode())
	}
	if s.Enemies.Len() != 0 {
		t.Errorf("enemies = %d, want 0", s.Enemies.Len())
	}
	if s.Reticle.Active {
		t.Error("reticle still active")
	}
	if s.InputEnabled {
		t.Error("input still enabled")
	}
	if sched.Pending() {
		t.Error("frame scheduled after game over")
	}
	if g.GamesPlayed() != 1 {
		t.Errorf("games played = %d, want 1", g.GamesPlayed())
	}

	g.PointerDown(100, 100)
	if s.Reticle.Active {
		t.Error("pointer accepted after game over")
	}

	frames := g.Frames()
	g.Frame(2000)
	if g.Frames() != frames {
		t.Error("Frame ran in game over")
	}
}

func TestTouchingIsNotOverlap(t *testing.T) {
	g, sched, _ := newTestGame(t, testConfig(t), Options{Seed: 7})
	s := g.State()
	// Centres exactly r1+r2 apart
	onlyEnemy(g, systems.EnemyParams{X: s.Player.X + 30, Y: s.Player.Y, Radius: 10})

	sched.Fire(1000)
	if g.Mode() != ModePlaying {
		t.Errorf("mode = %v, want playing", g.Mode())
	}
	if !near(s.Player.Stress, 1, 1e-6) {
		t.Errorf("stress = %v, want 1", s.Player.Stress)
	}
}

func TestExtinguishScores(t *testing.T) {
	g, sched, _ := newTestGame(t, testConfig(t), Options{Seed: 8})
	s := g.State()
	onlyEnemy(g, systems.EnemyParams{X: 500, Y: 300, Radius: 4.5})
	shot := systems.DropletParams{X: 500, Y: 300, Radius: 2}

	s.Droplets.Add(shot)
	sched.Fire(1000) // hit: 4.5 -> 3.5
	if s.Steam.Len() < 15 || s.Steam.Len() >= 20 {
		t.Errorf("steam puffs = %d, want within [15,20)", s.Steam.Len())
	}

	s.Droplets.Add(shot)
	sched.Fire(1016) // still above the kill radius, hit: 3.5 -> 2.5
	if g.Score() != 0 {
		t.Fatalf("score = %d before the enemy burned out", g.Score())
	}

	sched.Fire(1032)
	if g.Score() != 1 {
		t.Errorf("score = %d, want 1", g.Score())
	}
	if s.Enemies.Len() != 0 {
		t.Errorf("enemies = %d, want 0 until the next frame", s.Enemies.Len())
	}

	sched.Fire(1048)
	if s.Enemies.Len() != 1 {
		t.Errorf("enemies = %d, want a replacement", s.Enemies.Len())
	}
	if g.totals.Hits != 2 || g.totals.Extinguished != 1 {
		t.Errorf("totals = %+v, want 2 hits and 1 extinguished", g.totals)
	}
}

func TestEscapeScoring(t *testing.T) {
	tests := []struct {
		name         string
		countEscapes bool
		want         int
	}{
		{"escapes count", true, 1},
		{"escapes ignored", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Scoring.CountEscapes = tt.countEscapes
			g, sched, _ := newTestGame(t, cfg, Options{Seed: 9})
			onlyEnemy(g, systems.EnemyParams{X: 1, Y: 100, VX: -200, Radius: 10})

			sched.Fire(1000)
			sched.Fire(1016)

			if g.Score() != tt.want {
				t.Errorf("score = %d, want %d", g.Score(), tt.want)
			}
			if g.totals.Escaped != 1 {
				t.Errorf("escaped = %d, want 1", g.totals.Escaped)
			}
		})
	}
}

func TestRestart(t *testing.T) {
	tests := []struct {
		name  string
		reset bool
		want  int
	}{
		{"score carries over", false, 5},
		{"score resets", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			cfg.Scoring.ResetOnRestart = tt.reset
			g, sched, _ := newTestGame(t, cfg, Options{Seed: 10})
			s := g.State()

			onlyEnemy(g, systems.EnemyParams{X: s.Player.X, Y: s.Player.Y, Radius: 10})
			g.PointerDown(400, 300)
			sched.Fire(1000)
			if g.Mode() != ModeGameOver {
				t.Fatalf("mode = %v, want game_over", g.Mode())
			}
			s.Score = 5

			g.KeyPressed(RestartKey)

			if g.Mode() != ModePlaying {
				t.Errorf("mode = %v, want playing", g.Mode())
			}
			if g.Score() != tt.want {
				t.Errorf("score = %d, want %d", g.Score(), tt.want)
			}
			if s.Enemies.Len() != 1 || s.Droplets.Len() != 0 || s.Steam.Len() != 0 {
				t.Errorf("pools = %d enemies, %d droplets, %d steam; want 1, 0, 0",
					s.Enemies.Len(), s.Droplets.Len(), s.Steam.Len())
			}
			if !s.InputEnabled {
				t.Error("input not re-enabled")
			}
			if !sched.Pending() {
				t.Fatal("restart did not schedule a frame")
			}

			// The frame after a restart has no delta to the old game
			x0 := enemyX(g)
			sched.Fire(60000)
			if x := enemyX(g); x != x0 {
				t.Errorf("enemy moved across the restart: %v -> %v", x0, x)
			}
		})
	}
}

func TestPointerAiming(t *testing.T) {
	g, sched, _ := newTestGame(t, testConfig(t), Options{Seed: 11})
	s := g.State()

	g.PointerMove(200, 200)
	if s.Reticle.Active {
		t.Fatal("move without press activated the reticle")
	}

	g.PointerDown(400, 300)
	sched.Fire(1000)
	if s.Droplets.Len() != 1 {
		t.Errorf("droplets = %d, want 1", s.Droplets.Len())
	}

	g.PointerMove(400, 250)
	if s.Reticle.X != 400 || s.Reticle.Y != 250 {
		t.Errorf("reticle at (%v,%v), want (400,250)", s.Reticle.X, s.Reticle.Y)
	}
	sched.Fire(1016)
	if s.Droplets.Len() != 2 {
		t.Errorf("droplets = %d, want 2", s.Droplets.Len())
	}

	g.PointerUp()
	sched.Fire(1032)
	if s.Droplets.Len() != 2 {
		t.Errorf("droplets = %d after release, want 2", s.Droplets.Len())
	}

	// Aiming at the player's centre fires nothing
	g.PointerDown(s.Player.X, s.Player.Y)
	sched.Fire(1048)
	if s.Droplets.Len() != 2 {
		t.Errorf("droplets = %d with zero aim, want 2", s.Droplets.Len())
	}
	if g.totals.Shots != 2 {
		t.Errorf("shots = %d, want 2", g.totals.Shots)
	}
}

func TestResizeRecentresPlayer(t *testing.T) {
	g, sched, surf := newTestGame(t, testConfig(t), Options{Seed: 12})
	surf.W, surf.H = 1200, 800

	sched.Fire(1000)

	s := g.State()
	if s.Bounds.Width != 1200 || s.Bounds.Height != 800 {
		t.Errorf("bounds = %+v, want 1200x800", s.Bounds)
	}
	if !near(s.Player.X, 60, 1e-4) || !near(s.Player.Y, 400, 1e-4) {
		t.Errorf("player at (%v,%v), want (60,400)", s.Player.X, s.Player.Y)
	}
}

func TestGiveUp(t *testing.T) {
	g, _, _ := newTestGame(t, testConfig(t), Options{Seed: 13})
	g.GiveUp()
	if !g.Quit() {
		t.Error("expected Quit after GiveUp")
	}
}

func TestModeString(t *testing.T) {
	if ModePlaying.String() != "playing" || ModeGameOver.String() != "game_over" {
		t.Errorf("mode names = %q, %q", ModePlaying, ModeGameOver)
	}
}
