package systems

import (
	"math"
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/cloudburst/config"
)

// seqRNG replays a fixed sequence of values, cycling when exhausted.
type seqRNG struct {
	vals  []float32
	i     int
	draws int
}

func newSeqRNG(vals ...float32) *seqRNG {
	return &seqRNG{vals: vals}
}

func (r *seqRNG) Float32() float32 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	r.draws++
	return v
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("loading defaults: %v", err)
	}
	return cfg
}

func testBounds() Bounds {
	return Bounds{Width: 960, Height: 600}
}

func near(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func newWorld() *ecs.World {
	return ecs.NewWorld()
}
