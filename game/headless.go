package game

import "log/slog"

// HeadlessRunner drives a game without a window: it fires the frame
// scheduler with synthetic timestamps, lets the autopilot aim, and restarts
// finished games.
type HeadlessRunner struct {
	game    *Game
	sched   *FrameScheduler
	pilot   *Autopilot
	frameMS float64
	now     float64
}

// NewHeadlessRunner creates a runner advancing frameMS milliseconds per frame.
// pilot may be nil, in which case nothing is fired.
func NewHeadlessRunner(g *Game, sched *FrameScheduler, pilot *Autopilot, frameMS float64) *HeadlessRunner {
	if frameMS <= 0 {
		frameMS = 1000.0 / 60
	}
	return &HeadlessRunner{game: g, sched: sched, pilot: pilot, frameMS: frameMS}
}

// Run plays until maxGames games have ended or maxFrames frames have run.
// Zero means no limit; with both zero it runs until the game quits.
func (r *HeadlessRunner) Run(maxGames, maxFrames int) {
	g := r.game
	for !g.Quit() {
		if maxFrames > 0 && int(g.Frames()) >= maxFrames {
			slog.Info("max frames reached", "frames", g.Frames(), "games", g.GamesPlayed())
			return
		}

		if g.Mode() == ModeGameOver {
			if maxGames > 0 && g.GamesPlayed() >= maxGames {
				return
			}
			g.Restart()
			continue
		}

		if r.pilot != nil {
			r.pilot.Drive(g)
		}
		r.now += r.frameMS
		if !r.sched.Fire(r.now) {
			// Single-step mode never schedules
			g.Step()
		}
	}
}
