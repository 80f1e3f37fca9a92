// Package main tunes the headless autopilot with CMA-ES so that it scores as
// many kills as possible while losing few games.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/cloudburst/config"
)

// EvalRecord is one row of tune_log.csv.
type EvalRecord struct {
	Eval      int     `csv:"eval"`
	Fitness   float64 `csv:"fitness"`
	Score     float64 `csv:"score"`
	Lost      float64 `csv:"lost"`
	Lead      float64 `csv:"lead"`
	Lift      float64 `csv:"lift"`
	Reach     float64 `csv:"reach"`
	Threshold float64 `csv:"threshold"`
}

// formatDuration formats a duration as HH:MM:SS or MM:SS for shorter durations.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxFrames := flag.Int("max-frames", 36000, "Frames played per seed")
	seeds := flag.Int("seeds", 3, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 100, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	lossPenalty := flag.Float64("loss-penalty", 5, "Score deducted per game lost")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Per-game logs from the evaluations would drown the progress output
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()

	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}

	evaluator := NewFitnessEvaluator(params, *maxFrames, evalSeeds, baseCfg, *lossPenalty)

	dim := params.Dim()
	initX := params.Normalize(params.ExtractFromConfig(baseCfg))

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(dim)/2.0)
	}
	method := &optimize.CmaEsChol{
		InitStepSize: 0.3,
		Population:   popSize,
	}
	settings := &optimize.Settings{
		FuncEvaluations: *maxEvals,
		Concurrent:      0, // Seeds already run in parallel
	}

	logPath := filepath.Join(*outputDir, "tune_log.csv")
	logFile, err := os.Create(logPath)
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer logFile.Close()

	evalCount := 0
	bestFitness := 1e9
	var bestParams []float64
	startTime := time.Now()

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			raw := params.Denormalize(x)
			fitness := evaluator.Evaluate(raw)
			evalCount++

			clamped := params.Clamp(raw)
			if fitness < bestFitness {
				bestFitness = fitness
				bestParams = clamped
			}

			score, lost := evaluator.LastResult()
			record := []EvalRecord{{
				Eval:      evalCount,
				Fitness:   fitness,
				Score:     score,
				Lost:      lost,
				Lead:      clamped[0],
				Lift:      clamped[1],
				Reach:     clamped[2],
				Threshold: clamped[3],
			}}
			if evalCount == 1 {
				err = gocsv.Marshal(record, logFile)
			} else {
				err = gocsv.MarshalWithoutHeaders(record, logFile)
			}
			if err != nil {
				log.Printf("failed to write eval %d: %v", evalCount, err)
			}

			elapsed := time.Since(startTime)
			avgPerEval := elapsed / time.Duration(evalCount)
			remaining := time.Duration(*maxEvals-evalCount) * avgPerEval
			fmt.Printf("Eval %d/%d: score=%.1f lost=%.1f (best=%.1f) | elapsed: %s, ETA: %s\n",
				evalCount, *maxEvals, score, lost, -bestFitness,
				formatDuration(elapsed), formatDuration(remaining))

			return fitness
		},
	}

	fmt.Printf("Starting CMA-ES tuning with %d parameters, population=%d, max_evals=%d\n",
		dim, popSize, *maxEvals)
	fmt.Printf("Seeds per evaluation: %d, frames per seed: %d\n", *seeds, *maxFrames)

	result, err := optimize.Minimize(problem, initX, settings, method)
	if err != nil {
		log.Printf("tuning ended: %v", err)
	}
	bestParams, err = pickBest(params, bestParams, result)
	if err != nil {
		log.Fatalf("no parameters to save: %v", err)
	}

	fmt.Printf("\nTuning complete after %d evaluations in %s\n", evalCount, formatDuration(time.Since(startTime)))
	fmt.Println("\nBest parameters:")
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.4f\n", spec.Path, bestParams[i])
	}

	configOutPath := filepath.Join(*outputDir, "best_config.yaml")
	if err := writeBestConfig(*configPath, configOutPath, params, bestParams); err != nil {
		log.Fatalf("failed to write best config: %v", err)
	}
	fmt.Printf("\nBest config saved to: %s\n", configOutPath)
}

// pickBest returns the best evaluated parameters, falling back to the
// optimizer's final point when no evaluation completed.
func pickBest(params *ParamVector, best []float64, result *optimize.Result) ([]float64, error) {
	if best != nil {
		return best, nil
	}
	if result == nil || len(result.X) != params.Dim() {
		return nil, errors.New("optimizer returned no result")
	}
	return params.Clamp(params.Denormalize(result.X)), nil
}

// writeBestConfig loads the base config, applies best and saves it to outPath.
func writeBestConfig(basePath, outPath string, params *ParamVector, best []float64) error {
	cfg, err := config.Load(basePath)
	if err != nil {
		return fmt.Errorf("reloading base config: %w", err)
	}
	params.ApplyToConfig(cfg, best)
	return cfg.WriteYAML(outPath)
}
