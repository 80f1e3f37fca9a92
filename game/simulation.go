package game

import (
	"github.com/pthm-cable/cloudburst/systems"
	"github.com/pthm-cable/cloudburst/telemetry"
)

// Frame runs one frame at timestampMs and schedules the next one unless the
// game ended or single-step mode is on.
func (g *Game) Frame(timestampMs float64) {
	if g.state.Mode != ModePlaying {
		return
	}
	dt, ok := g.clock.Advance(timestampMs)
	g.runFrame(dt, ok)
	g.afterFrame()
}

// afterFrame ends the game if an enemy got through, otherwise schedules the next frame.
func (g *Game) afterFrame() {
	if g.state.Terminal {
		g.endGame()
		return
	}
	g.schedule()
}

// Step runs a single frame one debug step after the last timestamp.
func (g *Game) Step() {
	last, _ := g.clock.Last()
	g.Frame(last + g.cfg.Debug.StepMS)
}

// runFrame advances the simulation and draws it. Physics only runs when hasDT
// is true; spawning, collisions and the game-over check always run.
func (g *Game) runFrame(dt float32, hasDT bool) {
	cfg := g.cfg
	s := &g.state

	g.perf.StartFrame()
	g.syncSize()

	// 1. Spawn
	g.perf.StartPhase(telemetry.PhaseSpawn)
	if s.Enemies.Len() == 0 {
		s.Enemies.Spawn(g.rng, cfg.Enemy, s.Bounds, &s.Player)
	}
	if s.Reticle.Active {
		if shot, ok := s.Droplets.Fire(g.rng, cfg.Droplet, &s.Player, s.Reticle.X, s.Reticle.Y); ok {
			g.record(telemetry.NewShotEvent(g.frame, systems.Speed(shot.VX, shot.VY)))
		}
	}

	// 2. Integrate and cull
	g.perf.StartPhase(telemetry.PhaseIntegrate)
	if hasDT {
		s.Enemies.Integrate(dt)
		g.scoreCull(s.Enemies.Cull(float32(cfg.Enemy.KillRadius)))

		s.Droplets.Integrate(dt, float32(cfg.Droplet.Gravity))
		s.Droplets.Cull(s.Bounds)

		s.Steam.Integrate(dt, cfg.Steam)
		s.Steam.Cull()

		s.Tufts.Integrate(dt, g.rng, cfg.Tuft, s.Player.Radius)
	}

	// 3. Droplet hits
	g.perf.StartPhase(telemetry.PhaseCollide)
	hits := systems.CollideDroplets(s.Droplets, s.Enemies, s.Steam, g.rng, cfg.Enemy, cfg.Steam)
	for _, h := range hits {
		g.record(telemetry.NewHitEvent(g.frame, h.Serial))
		g.record(telemetry.NewSteamEvent(g.frame, h.Puffs))
	}

	// 4. Game over and stress
	g.perf.StartPhase(telemetry.PhaseGameOver)
	if systems.CheckPlayer(&s.Player, s.Enemies, float32(cfg.Player.StressRange)) {
		s.Terminal = true
	}

	// 5. Render and HUD
	g.perf.StartPhase(telemetry.PhaseRender)
	g.render()

	g.perf.StartPhase(telemetry.PhaseTelemetry)
	g.observe(dt, hasDT)
	g.perf.EndFrame()

	g.frame++
	g.gameFrames++
}

// scoreCull credits the player for removed enemies.
func (g *Game) scoreCull(c systems.EnemyCull) {
	if g.cfg.Scoring.CountEscapes {
		g.state.Score += c.Total()
	} else {
		g.state.Score += c.Extinguished
	}
	for _, e := range telemetry.NewCullEvents(g.frame, c.Extinguished, c.Escaped) {
		g.record(e)
	}
}

// syncSize picks up surface resizes.
func (g *Game) syncSize() {
	w, h := g.surface.Size()
	if w != g.state.Bounds.Width || h != g.state.Bounds.Height {
		g.Resize(w, h)
	}
}
