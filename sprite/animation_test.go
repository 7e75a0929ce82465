package sprite

import (
	"math"
	"testing"

	"github.com/automoto/spriteanim/assets/rsi"
)

func startedLayer(state *rsi.State) *Layer {
	return &Layer{visible: true, autoAnimated: true, AnimationTimeLeft: state.Delay(0)}
}

func TestAdvance(t *testing.T) {
	walk := testState(t, "walk", 0.1, 0.2)

	cases := []struct {
		name  string
		steps []float64
		frame int
		left  float64
	}{
		{"inside first frame", []float64{0.05}, 0, 0.05},
		{"exact boundary moves on", []float64{0.1}, 1, 0.2},
		{"crosses one boundary", []float64{0.25}, 1, 0.05},
		{"wraps to start", []float64{0.1, 0.2}, 0, 0.1},
		{"lag spike skips cycles", []float64{0.65}, 0, 0.05},
		{"huge lag spike", []float64{3000.05}, 0, 0.05},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := startedLayer(walk)
			var total float64
			for _, dt := range c.steps {
				l.Advance(walk, dt)
				total += dt
			}
			if l.AnimationFrame != c.frame || !nearTol(l.AnimationTimeLeft, c.left, 1e-6) {
				t.Fatalf("got frame %d left %v, want frame %d left %v",
					l.AnimationFrame, l.AnimationTimeLeft, c.frame, c.left)
			}
			if !near(l.AnimationTime, total) {
				t.Fatalf("AnimationTime = %v, want %v", l.AnimationTime, total)
			}
		})
	}
}

func TestAdvanceDegenerateTables(t *testing.T) {
	for _, state := range []*rsi.State{
		testState(t, "empty"),
		testState(t, "zero", 0, 0),
		testState(t, "single", 0.5),
	} {
		l := startedLayer(state)
		l.Advance(state, 10)
		if l.AnimationFrame != 0 {
			t.Fatalf("%s: frame = %d", state.ID(), l.AnimationFrame)
		}
		l.Sync(state, 10)
		if l.AnimationFrame != 0 {
			t.Fatalf("%s: synced frame = %d", state.ID(), l.AnimationFrame)
		}
	}
}

func TestSync(t *testing.T) {
	walk := testState(t, "walk", 0.1, 0.2)
	total := walk.TotalDelay()

	cases := []struct {
		name  string
		rt    float64
		frame int
		left  float64
	}{
		{"start of cycle", 0, 1, 0.2},
		{"inside first frame", 0.05, 1, 0.15},
		{"first boundary", 0.1, 1, 0.1},
		{"second frame", 0.25, 0, 0.05},
		{"later cycle", total*40 + 0.05, 1, 0.15},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			l := startedLayer(walk)
			l.Sync(walk, c.rt)
			if l.AnimationFrame != c.frame || !nearTol(l.AnimationTimeLeft, c.left, 1e-6) {
				t.Fatalf("got frame %d left %v, want frame %d left %v",
					l.AnimationFrame, l.AnimationTimeLeft, c.frame, c.left)
			}
			if !nearTol(l.AnimationTime, math.Mod(c.rt, total), 1e-9) {
				t.Fatalf("AnimationTime = %v", l.AnimationTime)
			}
		})
	}
}

func TestSyncIsPureFunctionOfRealTime(t *testing.T) {
	walk := testState(t, "walk", 0.1, 0.2)
	a := startedLayer(walk)
	b := startedLayer(walk)
	b.Advance(walk, 0.17)

	for _, rt := range []float64{0, 0.05, 0.1, 0.25, 12.34} {
		a.Sync(walk, rt)
		first, left := a.AnimationFrame, a.AnimationTimeLeft
		a.Sync(walk, rt)
		b.Sync(walk, rt)
		if a.AnimationFrame != first || b.AnimationFrame != first {
			t.Fatalf("rt=%v: frames %d/%d/%d differ", rt, first, a.AnimationFrame, b.AnimationFrame)
		}
		if a.AnimationTimeLeft != left || b.AnimationTimeLeft != left {
			t.Fatalf("rt=%v: time left %v/%v/%v differs", rt, left, a.AnimationTimeLeft, b.AnimationTimeLeft)
		}
	}
}

func TestFrameAt(t *testing.T) {
	walk := testState(t, "walk", 0.1, 0.2)
	total := walk.TotalDelay()
	cases := []struct {
		name  string
		t     float64
		loop  bool
		frame int
	}{
		{"start", 0, true, 0},
		{"boundary belongs to next frame", 0.1, true, 1},
		{"end of cycle wraps", total, true, 0},
		{"looped past total", total*35 + 0.05, true, 0},
		{"looped mid cycle", 10.15, true, 1},
		{"clamped past total", total + 10, false, 1},
		{"clamped at total", total, false, 1},
		{"not looped before total", 0.05, false, 0},
		{"negative time", -1, true, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got, _ := FrameAt(walk, c.t, c.loop); got != c.frame {
				t.Fatalf("FrameAt(%v, %v) = %d, want %d", c.t, c.loop, got, c.frame)
			}
		})
	}

	for _, state := range []*rsi.State{testState(t, "empty"), testState(t, "zero", 0, 0)} {
		if got, _ := FrameAt(state, 5, true); got != 0 {
			t.Fatalf("%s: FrameAt = %d", state.ID(), got)
		}
	}
}

func nearTol(a, b, tol float64) bool {
	d := a - b
	return d < tol && d > -tol
}
