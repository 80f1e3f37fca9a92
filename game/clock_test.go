package game

import (
	"math"
	"testing"
)

func TestFrameClock(t *testing.T) {
	type tick struct {
		ts     float64
		reset  bool // Reset before this tick
		wantDT float32
		wantOK bool
	}
	tests := []struct {
		name  string
		ticks []tick
	}{
		{
			name: "first tick has no delta",
			ticks: []tick{
				{ts: 1000, wantOK: false},
				{ts: 1016, wantDT: 0.016, wantOK: true},
				{ts: 1050, wantDT: 0.034, wantOK: true},
			},
		},
		{
			name: "reset drops the delta",
			ticks: []tick{
				{ts: 1000},
				{ts: 9000, reset: true, wantOK: false},
				{ts: 9017, wantDT: 0.017, wantOK: true},
			},
		},
		{
			name: "non-finite timestamps",
			ticks: []tick{
				{ts: 1000},
				{ts: math.NaN(), wantOK: false},
				{ts: 1016, wantOK: false}, // delta from NaN
				{ts: 1032, wantDT: 0.016, wantOK: true},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c FrameClock
			for i, tk := range tt.ticks {
				if tk.reset {
					c.Reset()
				}
				dt, ok := c.Advance(tk.ts)
				if ok != tk.wantOK {
					t.Fatalf("tick %d: ok = %v, want %v", i, ok, tk.wantOK)
				}
				if ok && !near(dt, tk.wantDT, 1e-6) {
					t.Errorf("tick %d: dt = %v, want %v", i, dt, tk.wantDT)
				}
			}
		})
	}
}

func TestFrameScheduler(t *testing.T) {
	var s FrameScheduler
	if s.Fire(1) {
		t.Fatal("Fire with nothing pending reported a run")
	}

	var got []float64
	var frame FrameFunc
	frame = func(ts float64) {
		got = append(got, ts)
		if len(got) < 2 {
			s.RequestFrame(frame)
		}
	}
	s.RequestFrame(frame)

	for _, ts := range []float64{10, 20, 30} {
		s.Fire(ts)
	}
	if len(got) != 2 || got[0] != 10 || got[1] != 20 {
		t.Errorf("frames ran at %v, want [10 20]", got)
	}
	if s.Pending() {
		t.Error("scheduler still pending after the callback stopped requesting")
	}
}
