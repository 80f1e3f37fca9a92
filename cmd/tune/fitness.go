package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/cloudburst/config"
	"github.com/pthm-cable/cloudburst/game"
	"github.com/pthm-cable/cloudburst/renderer"
)

// FitnessEvaluator plays headless games with candidate autopilot settings.
type FitnessEvaluator struct {
	params      *ParamVector
	maxFrames   int
	frameMS     float64
	seeds       []int64
	baseConfig  *config.Config
	lossPenalty float64 // Score deducted per game lost

	mu        sync.Mutex
	lastScore float64 // Mean score per seed from the most recent Evaluate call
	lastLoss  float64 // Mean games lost per seed from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxFrames int, seeds []int64, baseCfg *config.Config, lossPenalty float64) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		maxFrames:   maxFrames,
		frameMS:     1000.0 / 60,
		seeds:       seeds,
		baseConfig:  baseCfg,
		lossPenalty: lossPenalty,
	}
}

// LastResult returns the mean score and games lost from the most recent evaluation.
func (fe *FitnessEvaluator) LastResult() (score, lost float64) {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastScore, fe.lastLoss
}

// runResult holds the results from a single seed.
type runResult struct {
	score int
	lost  int
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness is the negated mean of score minus lossPenalty per game lost.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSeed(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var score, lost float64
	for _, r := range results {
		score += float64(r.score)
		lost += float64(r.lost)
	}
	n := float64(len(fe.seeds))
	score /= n
	lost /= n

	fe.mu.Lock()
	fe.lastScore = score
	fe.lastLoss = lost
	fe.mu.Unlock()

	fitness := -(score - fe.lossPenalty*lost)
	if math.IsNaN(fitness) {
		return math.Inf(1)
	}
	return fitness
}

// runSeed plays games back to back for maxFrames frames.
func (fe *FitnessEvaluator) runSeed(cfg *config.Config, seed int64) runResult {
	sched := &game.FrameScheduler{}
	surface := &renderer.BlankSurface{W: cfg.Derived.ScreenW32, H: cfg.Derived.ScreenH32}

	g, err := game.NewGame(cfg, game.Options{Seed: seed}, surface, sched)
	if err != nil {
		return runResult{}
	}
	defer g.Close()

	g.Start()
	pilot := game.NewAutopilot(cfg.Autopilot, cfg.Droplet)
	game.NewHeadlessRunner(g, sched, pilot, fe.frameMS).Run(0, fe.maxFrames)

	return runResult{score: g.Score(), lost: g.GamesPlayed()}
}

// copyConfig copies the base config. Score must carry across restarts for the
// final score to cover every game.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	cfg.Scoring.ResetOnRestart = false
	return &cfg
}
