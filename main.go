package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cloudburst/config"
	"github.com/pthm-cable/cloudburst/game"
	"github.com/pthm-cable/cloudburst/renderer"
	"github.com/pthm-cable/cloudburst/ui"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics, aiming with the autopilot")
	debug := flag.Bool("debug", false, "Single-step mode: Space advances one frame")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxFrames := flag.Int("max-frames", 0, "Stop after N frames (0 = unlimited)")
	frameMS := flag.Float64("frame-ms", 1000.0/60, "Headless frame step in milliseconds")
	games := flag.Int("games", 1, "Headless: stop after N games (0 = unlimited)")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	opts := game.Options{
		Seed:           rngSeed,
		Debug:          *debug,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
	}

	if *headless {
		runHeadless(cfg, opts, *games, *maxFrames, *frameMS)
		return
	}
	runWindow(cfg, opts, *maxFrames)
}

// runHeadless plays games on a blank surface with the autopilot holding the pointer.
func runHeadless(cfg *config.Config, opts game.Options, games, maxFrames int, frameMS float64) {
	sched := &game.FrameScheduler{}
	surface := &renderer.BlankSurface{W: cfg.Derived.ScreenW32, H: cfg.Derived.ScreenH32}

	g, err := game.NewGame(cfg, opts, surface, sched)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	slog.Info("starting headless run",
		"seed", opts.Seed,
		"games", games,
		"max_frames", maxFrames,
		"frame_ms", frameMS,
	)

	g.Start()
	runner := game.NewHeadlessRunner(g, sched, game.NewAutopilot(cfg.Autopilot, cfg.Droplet), frameMS)
	runner.Run(games, maxFrames)

	slog.Info("headless run complete",
		"games", g.GamesPlayed(),
		"frames", g.Frames(),
		"score", g.Score(),
	)
}

// runWindow opens a raylib window and fires scheduled frames once per display frame.
func runWindow(cfg *config.Config, opts game.Options, maxFrames int) {
	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	sched := &game.FrameScheduler{}
	g, err := game.NewGame(cfg, opts, ui.RaylibSurface{}, sched)
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	defer g.Close()

	overlay := ui.NewOverlay()
	debugPanel := ui.NewDebugPanel(200)

	rl.BeginDrawing()
	g.Start()
	rl.EndDrawing()

	for !rl.WindowShouldClose() && !g.Quit() {
		rl.BeginDrawing()

		ui.PollInput(g)
		if !sched.Fire(rl.GetTime() * 1000) {
			g.Redraw()
		}

		switch overlay.Draw(g) {
		case ui.ActionPlayAgain:
			g.Restart()
		case ui.ActionGiveUp:
			g.GiveUp()
		}

		if g.Debug() {
			debugPanel.Draw(ui.NewDebugData(g, rl.GetFPS()))
		}
		ui.DrawControls(g.Debug())

		rl.EndDrawing()
		g.RecordPresent()

		if maxFrames > 0 && int(g.Frames()) >= maxFrames {
			break
		}
	}
}
