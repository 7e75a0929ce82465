package systems

import (
	"testing"
	"time"
)

func TestTickDelta(t *testing.T) {
	cases := []struct {
		tps      int
		scale    float64
		maxDelta float64
		want     float64
	}{
		{60, 1, 0, 1.0 / 60},
		{30, 2, 0, 2.0 / 30},
		{60, 0, 0.25, 0},
		{1, 1, 0.25, 0.25},
		{0, 1, 0, 0},
	}
	for _, c := range cases {
		if got := tickDelta(c.tps, c.scale, c.maxDelta); got != c.want {
			t.Fatalf("tickDelta(%d, %v, %v) = %v, want %v", c.tps, c.scale, c.maxDelta, got, c.want)
		}
	}
}

func TestGameTimingRealTime(t *testing.T) {
	start := time.Unix(100, 0)
	now := start
	timing := &GameTiming{start: start, now: func() time.Time { return now }}

	now = start.Add(1500 * time.Millisecond)
	timing.Tick(nil)
	if timing.RealTime() != 1.5 {
		t.Fatalf("RealTime = %v", timing.RealTime())
	}
	if timing.FrameDelta() <= 0 {
		t.Fatalf("FrameDelta = %v", timing.FrameDelta())
	}
}
