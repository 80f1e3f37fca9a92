package game

// Options holds run settings that are not part of the game config file.
type Options struct {
	Seed           int64
	Debug          bool    // Single-step mode: frames run only on Step()
	LogStats       bool    // Log window and perf stats via slog
	StatsWindowSec float64 // 0 = use config
	OutputDir      string  // Empty disables CSV output
}
