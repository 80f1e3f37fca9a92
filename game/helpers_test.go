package game

import (
	"math"
	"testing"

	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/config"
	"github.com/pthm-cable/cloudburst/renderer"
	"github.com/pthm-cable/cloudburst/systems"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

// newTestGame builds a started game on a 960x600 blank surface.
func newTestGame(t *testing.T, cfg *config.Config, opts Options) (*Game, *FrameScheduler, *renderer.BlankSurface) {
	t.Helper()
	surf := &renderer.BlankSurface{W: 960, H: 600}
	sched := &FrameScheduler{}
	g, err := NewGame(cfg, opts, surf, sched)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	g.Start()
	return g, sched, surf
}

// onlyEnemy replaces every enemy with one built from p.
func onlyEnemy(g *Game, p systems.EnemyParams) {
	g.State().Enemies.Clear()
	g.State().Enemies.Add(p)
}

func enemyX(g *Game) float32 {
	var x float32
	g.State().Enemies.Each(func(pos components.Position, _ components.Velocity, _ components.Body) {
		x = pos.X
	})
	return x
}

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}
