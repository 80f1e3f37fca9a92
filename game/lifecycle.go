package game

import (
	"github.com/pthm-cable/cloudburst/telemetry"
)

// Start sets up the first game, draws it and schedules the frame loop.
func (g *Game) Start() {
	g.begin()
	g.logger().Info("game_start",
		"seed", g.opts.Seed,
		"debug", g.opts.Debug,
		"width", g.state.Bounds.Width,
		"height", g.state.Bounds.Height,
	)
	g.runFrame(0, false)
	g.afterFrame()
}

// Restart leaves the game-over screen and starts a new game.
// The score carries over unless scoring.reset_on_restart is set.
func (g *Game) Restart() {
	if g.cfg.Scoring.ResetOnRestart {
		g.state.Score = 0
	}
	g.begin()
	g.logger().Info("restart", "score", g.state.Score)

	// One render-only frame; the clock was reset so the next frame skips physics too.
	g.runFrame(0, false)
	g.afterFrame()
}

// GiveUp ends the session.
func (g *Game) GiveUp() {
	g.logger().Info("gave_up", "score", g.state.Score, "games", g.gamesPlayed)
	g.quit = true
}

// begin resets the world for a new game.
func (g *Game) begin() {
	cfg := g.cfg
	s := &g.state

	g.syncSize()
	s.Player.Radius = cfg.Derived.PlayerRadius
	s.Player.Place(cfg.Player, s.Bounds)
	s.Tufts.Fill(g.rng, cfg.Tuft, s.Player.Radius, cfg.Derived.TuftCount)

	s.Enemies.Clear()
	s.Enemies.Spawn(g.rng, cfg.Enemy, s.Bounds, &s.Player)
	s.Droplets.Clear()
	s.Steam.Clear()

	s.Reticle = Reticle{}
	s.InputEnabled = true
	s.Terminal = false
	s.Mode = ModePlaying

	g.clock.Reset()
	g.gameNumber++
	g.gameFrames = 0
	g.gameStart = g.collector.SimTime()
	g.peakStress = 0
	g.totals = telemetry.Counters{}
}

// endGame moves to the game-over state. No further frames are scheduled.
func (g *Game) endGame() {
	s := &g.state
	s.Reticle = Reticle{}
	s.InputEnabled = false
	s.Enemies.Clear()
	s.Mode = ModeGameOver
	g.gamesPlayed++

	summary := telemetry.NewGameSummary(
		g.gameNumber,
		s.Score,
		g.gameFrames,
		g.collector.SimTime()-g.gameStart,
		g.totals,
		g.peakStress,
	)
	g.logger().Info("game_over", "summary", summary)
	if err := g.output.WriteGame(summary); err != nil {
		g.logger().Error("failed to write game summary", "error", err)
	}
}
