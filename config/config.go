// Package config provides configuration loading and access for the game.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all game configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Player    PlayerConfig    `yaml:"player"`
	Tuft      TuftConfig      `yaml:"tuft"`
	Enemy     EnemyConfig     `yaml:"enemy"`
	Droplet   DropletConfig   `yaml:"droplet"`
	Steam     SteamConfig     `yaml:"steam"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Debug     DebugConfig     `yaml:"debug"`
	Autopilot AutopilotConfig `yaml:"autopilot"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// PlayerConfig holds player placement and stress parameters.
type PlayerConfig struct {
	Radius      float64 `yaml:"radius"`
	XFraction   float64 `yaml:"x_fraction"`   // Spawn X as a fraction of surface width
	YFraction   float64 `yaml:"y_fraction"`   // Spawn Y as a fraction of surface height
	StressRange float64 `yaml:"stress_range"` // Gap (px) beyond which stress is zero
}

// TuftConfig holds the decorative cloud particle parameters.
type TuftConfig struct {
	PerRadius    float64 `yaml:"per_radius"` // Tufts per pixel of player radius
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	Opacity      float64 `yaml:"opacity"`
	MinSpeed     float64 `yaml:"min_speed"` // px/s per axis
	MaxSpeed     float64 `yaml:"max_speed"`
	FadePerFrame float64 `yaml:"fade_per_frame"`
}

// EnemyConfig holds enemy spawn and removal parameters.
type EnemyConfig struct {
	MinSpeed   float64 `yaml:"min_speed"` // Leftward px/s
	MaxSpeed   float64 `yaml:"max_speed"`
	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
	KillRadius float64 `yaml:"kill_radius"` // Removed once radius drops to this or below
	HitShrink  float64 `yaml:"hit_shrink"`  // Radius lost per droplet hit
}

// DropletConfig holds droplet firing parameters.
type DropletConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`
	PressureRange float64 `yaml:"pressure_range"` // Aim distance at which pressure saturates
	PressureBoost float64 `yaml:"pressure_boost"` // Speed multiplier is 1 + boost*pressure
	Radius        float64 `yaml:"radius"`
	Gravity       float64 `yaml:"gravity"` // px/s^2
	HueMin        float64 `yaml:"hue_min"`
	HueMax        float64 `yaml:"hue_max"`
}

// SteamConfig holds hit effect parameters.
type SteamConfig struct {
	MinCount       int     `yaml:"min_count"`
	MaxCount       int     `yaml:"max_count"` // Exclusive
	JitterMin      float64 `yaml:"jitter_min"`
	JitterMax      float64 `yaml:"jitter_max"`
	MinRise        float64 `yaml:"min_rise"` // Upward px/s
	MaxRise        float64 `yaml:"max_rise"`
	Opacity        float64 `yaml:"opacity"`
	Radius         float64 `yaml:"radius"`
	FadePerFrame   float64 `yaml:"fade_per_frame"`
	ShrinkPerFrame float64 `yaml:"shrink_per_frame"`
}

// ScoringConfig selects how enemies score and whether the score survives a restart.
type ScoringConfig struct {
	CountEscapes   bool `yaml:"count_escapes"`    // Enemies leaving the left edge also score
	ResetOnRestart bool `yaml:"reset_on_restart"` // Zero the score when a new game starts
}

// DebugConfig holds single-step debug parameters.
type DebugConfig struct {
	StepMS float64 `yaml:"step_ms"` // Timestamp advance per single step
}

// AutopilotConfig holds the headless aiming parameters.
type AutopilotConfig struct {
	Lead      float64 `yaml:"lead"`      // Fraction of target motion to lead by
	Lift      float64 `yaml:"lift"`      // Fraction of gravity drop to aim above the target
	Reach     float64 `yaml:"reach"`     // Minimum reticle distance from the player
	Threshold float64 `yaml:"threshold"` // Only fire at enemies closer than this (0 = always)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // Seconds of simulated time per window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32    float32 // Screen.Width as float32
	ScreenH32    float32 // Screen.Height as float32
	TuftCount    int     // floor(Player.Radius * Tuft.PerRadius)
	PlayerRadius float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects settings the simulation cannot run with.
func (c *Config) validate() error {
	if c.Player.Radius <= 0 {
		return fmt.Errorf("player.radius must be positive, got %v", c.Player.Radius)
	}
	if c.Enemy.MaxSpeed < c.Enemy.MinSpeed || c.Enemy.MinSpeed <= 0 {
		return fmt.Errorf("enemy speed range [%v,%v] is invalid", c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	}
	if c.Steam.MaxCount < c.Steam.MinCount {
		return fmt.Errorf("steam count range [%d,%d) is invalid", c.Steam.MinCount, c.Steam.MaxCount)
	}
	if c.Droplet.PressureRange <= 0 {
		return fmt.Errorf("droplet.pressure_range must be positive, got %v", c.Droplet.PressureRange)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	c.Derived.TuftCount = int(math.Floor(c.Player.Radius * c.Tuft.PerRadius))
	c.Derived.PlayerRadius = float32(c.Player.Radius)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
