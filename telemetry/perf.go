package telemetry

import (
	"log/slog"
	"time"

	"gonum.org/v1/gonum/floats"
)

// Phase is one timed section of a game frame.
type Phase int

const (
	PhaseSpawn Phase = iota
	PhaseIntegrate
	PhaseCollide
	PhaseGameOver
	PhaseRender
	PhaseTelemetry
	numPhases
)

var phaseNames = [numPhases]string{"spawn", "integrate", "collide", "gameover", "render", "telemetry"}

func (p Phase) String() string {
	if p < 0 || p >= numPhases {
		return "unknown"
	}
	return phaseNames[p]
}

// frameTiming is the wall time of one frame split by phase.
type frameTiming struct {
	total  time.Duration
	phases [numPhases]time.Duration
}

// PerfCollector times frame phases and keeps the last windowSize frames.
type PerfCollector struct {
	now func() time.Time

	frames []frameTiming // Ring buffer
	next   int
	count  int

	cur        frameTiming
	frameStart time.Time
	phaseStart time.Time
	phase      Phase
	inPhase    bool

	lastPresent     time.Time
	presentInterval time.Duration
}

// NewPerfCollector creates a collector averaging over windowSize frames.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		now:    time.Now,
		frames: make([]frameTiming, windowSize),
	}
}

// StartFrame begins timing a new frame.
func (p *PerfCollector) StartFrame() {
	p.cur = frameTiming{}
	p.frameStart = p.now()
	p.inPhase = false
}

// StartPhase closes the running phase, if any, and opens phase.
func (p *PerfCollector) StartPhase(phase Phase) {
	now := p.now()
	p.closePhase(now)
	p.phase, p.phaseStart, p.inPhase = phase, now, true
}

// EndFrame closes the frame and pushes it into the window.
func (p *PerfCollector) EndFrame() {
	now := p.now()
	p.closePhase(now)
	p.inPhase = false
	p.cur.total = now.Sub(p.frameStart)

	p.frames[p.next] = p.cur
	p.next = (p.next + 1) % len(p.frames)
	p.count = min(p.count+1, len(p.frames))
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.inPhase {
		p.cur.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// RecordPresent marks a frame reaching the screen; the gap to the previous
// one gives the FPS.
func (p *PerfCollector) RecordPresent() {
	now := p.now()
	if !p.lastPresent.IsZero() {
		p.presentInterval = now.Sub(p.lastPresent)
	}
	p.lastPresent = now
}

// PerfStats summarises the frames in the window.
type PerfStats struct {
	Frames     int
	FrameUS    Summary // Frame wall time in microseconds
	MaxFrameUS float64
	PhasePct   [numPhases]float64 // Share of total frame time
	FPS        float64            // 0 until two frames were presented
}

// Stats summarises the current window.
func (p *PerfCollector) Stats() PerfStats {
	var s PerfStats
	if p.presentInterval > 0 {
		s.FPS = float64(time.Second) / float64(p.presentInterval)
	}
	if p.count == 0 {
		return s
	}

	totals := make([]float64, p.count)
	var sum time.Duration
	var phaseSum [numPhases]time.Duration
	for i, f := range p.frames[:p.count] {
		totals[i] = float64(f.total) / float64(time.Microsecond)
		sum += f.total
		for ph, d := range f.phases {
			phaseSum[ph] += d
		}
	}

	s.Frames = p.count
	s.FrameUS = Summarize(totals)
	s.MaxFrameUS = floats.Max(totals)
	if sum > 0 {
		for ph, d := range phaseSum {
			s.PhasePct[ph] = float64(d) / float64(sum) * 100
		}
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("frames", s.Frames),
		slog.Float64("frame_us_mean", s.FrameUS.Mean),
		slog.Float64("frame_us_p90", s.FrameUS.P90),
		slog.Float64("frame_us_max", s.MaxFrameUS),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for ph := Phase(0); ph < numPhases; ph++ {
		attrs = append(attrs, slog.Float64(ph.String()+"_pct", s.PhasePct[ph]))
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd    int32   `csv:"window_end"`
	Frames       int     `csv:"frames"`
	MeanFrameUS  float64 `csv:"frame_us_mean"`
	P50FrameUS   float64 `csv:"frame_us_p50"`
	P90FrameUS   float64 `csv:"frame_us_p90"`
	MaxFrameUS   float64 `csv:"frame_us_max"`
	FPS          float64 `csv:"fps"`
	SpawnPct     float64 `csv:"spawn_pct"`
	IntegratePct float64 `csv:"integrate_pct"`
	CollidePct   float64 `csv:"collide_pct"`
	GameOverPct  float64 `csv:"gameover_pct"`
	RenderPct    float64 `csv:"render_pct"`
	TelemetryPct float64 `csv:"telemetry_pct"`
}

// ToCSV flattens s into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:    windowEnd,
		Frames:       s.Frames,
		MeanFrameUS:  s.FrameUS.Mean,
		P50FrameUS:   s.FrameUS.P50,
		P90FrameUS:   s.FrameUS.P90,
		MaxFrameUS:   s.MaxFrameUS,
		FPS:          s.FPS,
		SpawnPct:     s.PhasePct[PhaseSpawn],
		IntegratePct: s.PhasePct[PhaseIntegrate],
		CollidePct:   s.PhasePct[PhaseCollide],
		GameOverPct:  s.PhasePct[PhaseGameOver],
		RenderPct:    s.PhasePct[PhaseRender],
		TelemetryPct: s.PhasePct[PhaseTelemetry],
	}
}
