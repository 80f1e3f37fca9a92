package telemetry

// Counters holds event totals.
type Counters struct {
	Shots        int
	Hits         int
	Extinguished int
	Escaped      int
	SteamPuffs   int
}

// Add folds an event into the totals.
func (c *Counters) Add(e Event) {
	switch e.Type {
	case EventShot:
		c.Shots += e.Count
	case EventHit:
		c.Hits += e.Count
	case EventExtinguished:
		c.Extinguished += e.Count
	case EventEscaped:
		c.Escaped += e.Count
	case EventSteam:
		c.SteamPuffs += e.Count
	}
}

// Samples holds state sampled at window end.
type Samples struct {
	Enemies    int
	Droplets   int
	Steam      int
	Score      int
	EnemyRadii []float64
}

// Collector accumulates events within time windows and produces WindowStats.
// Frames are free-running, so windows are measured in simulated seconds
// summed from frame deltas rather than in frame counts.
type Collector struct {
	windowDurationSec float64

	simTime     float64
	windowStart float64
	startFrame  int32

	window Counters
	stress []float64 // Per-frame player stress for the current window
	shots  []float64 // Droplet speeds fired in the current window
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulated seconds.
func NewCollector(windowDurationSec float64) *Collector {
	if windowDurationSec <= 0 {
		windowDurationSec = 10
	}
	return &Collector{windowDurationSec: windowDurationSec}
}

// Record folds an event into the current window.
func (c *Collector) Record(e Event) {
	c.window.Add(e)
	if e.Type == EventShot {
		c.shots = append(c.shots, float64(e.Amount))
	}
}

// Advance adds a frame's simulated time and its player stress sample.
func (c *Collector) Advance(dt float64, stress float32) {
	c.simTime += dt
	c.stress = append(c.stress, float64(stress))
}

// SimTime returns the total simulated seconds seen by the collector.
func (c *Collector) SimTime() float64 {
	return c.simTime
}

// ShouldFlush returns true once the current window has covered its duration.
func (c *Collector) ShouldFlush() bool {
	return c.simTime-c.windowStart >= c.windowDurationSec
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(frame int32, s Samples) WindowStats {
	var hitRate float64
	if c.window.Shots > 0 {
		hitRate = float64(c.window.Hits) / float64(c.window.Shots)
	}

	radius := Summarize(s.EnemyRadii)
	stress := Summarize(c.stress)
	speed := Summarize(c.shots)

	stats := WindowStats{
		WindowStartFrame: c.startFrame,
		WindowEndFrame:   frame,
		SimTimeSec:       c.simTime,
		WindowSec:        c.simTime - c.windowStart,

		Enemies:  s.Enemies,
		Droplets: s.Droplets,
		Steam:    s.Steam,
		Score:    s.Score,

		Shots:        c.window.Shots,
		Hits:         c.window.Hits,
		Extinguished: c.window.Extinguished,
		Escaped:      c.window.Escaped,
		SteamPuffs:   c.window.SteamPuffs,
		HitRate:      hitRate,

		EnemyRadiusMean: radius.Mean,
		EnemyRadiusP50:  radius.P50,

		StressMean: stress.Mean,
		StressStd:  stress.Std,
		StressP90:  stress.P90,

		ShotSpeedMean: speed.Mean,
		ShotSpeedP10:  speed.P10,
		ShotSpeedP90:  speed.P90,
	}

	c.windowStart = c.simTime
	c.startFrame = frame
	c.window = Counters{}
	c.stress = c.stress[:0]
	c.shots = c.shots[:0]

	return stats
}
