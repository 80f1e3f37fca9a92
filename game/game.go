// Package game runs the frame loop and state machine around the simulation
// systems. It has no graphics dependencies; a host supplies the surface,
// the frame scheduler and pointer events.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cloudburst/config"
	"github.com/pthm-cable/cloudburst/renderer"
	"github.com/pthm-cable/cloudburst/systems"
	"github.com/pthm-cable/cloudburst/telemetry"
)

// StepKey triggers a single frame in debug mode.
const StepKey = ' '

// RestartKey starts a new game from the game-over screen.
const RestartKey = 'R'

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	opts  Options
	rng   *rand.Rand
	world *ecs.World

	state   GameState
	surface renderer.Surface
	scene   *renderer.SceneRenderer
	sched   Scheduler
	clock   FrameClock

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	// Current game bookkeeping
	totals      telemetry.Counters
	gameNumber  int
	gameFrames  int32
	gameStart   float64 // Collector sim time at game start
	peakStress  float32
	gamesPlayed int

	frame int32 // Frames run since construction
	quit  bool
}

// NewGame creates a game drawing to surface and scheduling through sched.
// Call Start to begin the first game.
func NewGame(cfg *config.Config, opts Options, surface renderer.Surface, sched Scheduler) (*Game, error) {
	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	world := ecs.NewWorld()
	w, h := surface.Size()

	g := &Game{
		cfg:       cfg,
		opts:      opts,
		rng:       rand.New(rand.NewSource(opts.Seed)),
		world:     world,
		state:     NewGameState(world, cfg, systems.Bounds{Width: w, Height: h}),
		surface:   surface,
		scene:     renderer.NewSceneRenderer(),
		sched:     sched,
		collector: telemetry.NewCollector(statsWindow),
		perf:      telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		output:    output,
	}
	return g, nil
}

// Close flushes and closes telemetry output.
func (g *Game) Close() error {
	return g.output.Close()
}

// State returns the live game state.
func (g *Game) State() *GameState {
	return &g.state
}

// Mode returns the current state machine state.
func (g *Game) Mode() Mode {
	return g.state.Mode
}

// Score returns the running score.
func (g *Game) Score() int {
	return g.state.Score
}

// Debug reports whether the game runs in single-step mode.
func (g *Game) Debug() bool {
	return g.opts.Debug
}

// Quit reports whether the player gave up.
func (g *Game) Quit() bool {
	return g.quit
}

// Frames returns the number of frames run so far.
func (g *Game) Frames() int32 {
	return g.frame
}

// GamesPlayed returns the number of games that have ended.
func (g *Game) GamesPlayed() int {
	return g.gamesPlayed
}

// RecordPresent marks that a frame reached the screen.
func (g *Game) RecordPresent() {
	g.perf.RecordPresent()
}

// schedule requests the next frame unless single-stepping.
func (g *Game) schedule() {
	if g.opts.Debug {
		return
	}
	g.sched.RequestFrame(g.Frame)
}

// logger returns a logger tagged with the current game.
func (g *Game) logger() *slog.Logger {
	return slog.With("game", g.gameNumber)
}
