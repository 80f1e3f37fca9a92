package game

import (
	"github.com/pthm-cable/cloudburst/components"
	"github.com/pthm-cable/cloudburst/telemetry"
)

// record counts an event toward the current window and the current game.
func (g *Game) record(e telemetry.Event) {
	g.collector.Record(e)
	g.totals.Add(e)
}

// observe samples the frame for telemetry and flushes the window when due.
// Frames without a delta add no simulated time.
func (g *Game) observe(dt float32, hasDT bool) {
	stress := g.state.Player.Stress
	if stress > g.peakStress {
		g.peakStress = stress
	}
	if !hasDT {
		return
	}
	g.collector.Advance(float64(dt), stress)
	g.flushTelemetry()
}

// flushTelemetry writes the stats window once it has covered its duration.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush() {
		return
	}

	s := &g.state
	var radii []float64
	s.Enemies.Each(func(_ components.Position, _ components.Velocity, body components.Body) {
		radii = append(radii, float64(body.Radius))
	})

	stats := g.collector.Flush(g.frame, telemetry.Samples{
		Enemies:    len(radii),
		Droplets:   s.Droplets.Len(),
		Steam:      s.Steam.Len(),
		Score:      s.Score,
		EnemyRadii: radii,
	})
	perfStats := g.perf.Stats()

	if g.opts.LogStats {
		g.logger().Info("stats", "window", stats)
		g.logger().Info("perf", "stats", perfStats)
	}

	if err := g.output.WriteStats(stats); err != nil {
		g.logger().Error("failed to write stats", "error", err)
	}
	if err := g.output.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
		g.logger().Error("failed to write perf", "error", err)
	}
}
