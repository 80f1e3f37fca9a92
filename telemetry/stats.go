package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartFrame int32   `csv:"-"`
	WindowEndFrame   int32   `csv:"window_end"`
	SimTimeSec       float64 `csv:"sim_time"`
	WindowSec        float64 `csv:"window_sec"`

	// Pool sizes and score at window end
	Enemies  int `csv:"enemies"`
	Droplets int `csv:"droplets"`
	Steam    int `csv:"steam"`
	Score    int `csv:"score"`

	// Events during window
	Shots        int     `csv:"shots"`
	Hits         int     `csv:"hits"`
	Extinguished int     `csv:"extinguished"`
	Escaped      int     `csv:"escaped"`
	SteamPuffs   int     `csv:"steam_puffs"`
	HitRate      float64 `csv:"hit_rate"`

	// Enemy size (sampled at window end)
	EnemyRadiusMean float64 `csv:"enemy_radius_mean"`
	EnemyRadiusP50  float64 `csv:"enemy_radius_p50"`

	// Player stress (sampled every frame)
	StressMean float64 `csv:"stress_mean"`
	StressStd  float64 `csv:"stress_std"`
	StressP90  float64 `csv:"stress_p90"`

	// Droplet launch speed
	ShotSpeedMean float64 `csv:"shot_speed_mean"`
	ShotSpeedP10  float64 `csv:"shot_speed_p10"`
	ShotSpeedP90  float64 `csv:"shot_speed_p90"`
}

// Summary holds the distribution of a sample.
type Summary struct {
	Mean, Std     float64
	P10, P50, P90 float64
}

// Summarize computes mean, standard deviation and empirical percentiles.
// Returns zeros for an empty sample; Std is zero for a single value.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	s := Summary{
		Mean: stat.Mean(sorted, nil),
		P10:  stat.Quantile(0.10, stat.Empirical, sorted, nil),
		P50:  stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P90:  stat.Quantile(0.90, stat.Empirical, sorted, nil),
	}
	if len(sorted) > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartFrame)),
		slog.Int("window_end", int(s.WindowEndFrame)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("enemies", s.Enemies),
		slog.Int("droplets", s.Droplets),
		slog.Int("steam", s.Steam),
		slog.Int("score", s.Score),
		slog.Int("shots", s.Shots),
		slog.Int("hits", s.Hits),
		slog.Int("extinguished", s.Extinguished),
		slog.Int("escaped", s.Escaped),
		slog.Float64("hit_rate", s.HitRate),
		slog.Float64("enemy_radius_mean", s.EnemyRadiusMean),
		slog.Float64("stress_mean", s.StressMean),
		slog.Float64("stress_p90", s.StressP90),
		slog.Float64("shot_speed_mean", s.ShotSpeedMean),
	)
}

// GameSummary describes one finished game.
type GameSummary struct {
	Game         int     `csv:"game"`
	Score        int     `csv:"score"` // Running score; persists across games unless reset
	Frames       int32   `csv:"frames"`
	DurationSec  float64 `csv:"duration_sec"`
	Shots        int     `csv:"shots"`
	Hits         int     `csv:"hits"`
	Extinguished int     `csv:"extinguished"`
	Escaped      int     `csv:"escaped"`
	Accuracy     float64 `csv:"accuracy"`
	PeakStress   float64 `csv:"peak_stress"`
}

// NewGameSummary builds a summary from the game's event totals.
func NewGameSummary(game, score int, frames int32, durationSec float64, totals Counters, peakStress float32) GameSummary {
	var accuracy float64
	if totals.Shots > 0 {
		accuracy = float64(totals.Hits) / float64(totals.Shots)
	}
	return GameSummary{
		Game:         game,
		Score:        score,
		Frames:       frames,
		DurationSec:  durationSec,
		Shots:        totals.Shots,
		Hits:         totals.Hits,
		Extinguished: totals.Extinguished,
		Escaped:      totals.Escaped,
		Accuracy:     accuracy,
		PeakStress:   float64(peakStress),
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (g GameSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("game", g.Game),
		slog.Int("score", g.Score),
		slog.Int("frames", int(g.Frames)),
		slog.Float64("duration_sec", g.DurationSec),
		slog.Int("shots", g.Shots),
		slog.Int("hits", g.Hits),
		slog.Int("extinguished", g.Extinguished),
		slog.Int("escaped", g.Escaped),
		slog.Float64("accuracy", g.Accuracy),
		slog.Float64("peak_stress", g.PeakStress),
	)
}
