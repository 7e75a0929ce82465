package sprite

import (
	"math"

	"github.com/automoto/spriteanim/assets/rsi"
)

// Advance moves the layer's clock forward by dt seconds and steps frames,
// wrapping past the last one.
func (l *Layer) Advance(state *rsi.State, dt float64) {
	l.AnimationTime += dt
	l.AnimationTimeLeft -= dt
	l.stepFrames(state)
}

// Sync derives the layer's frame from realTime alone, so every synced layer
// on the same state shows the same frame. The cycle position is charged
// against frame 0 as already elapsed time, then frames are stepped.
func (l *Layer) Sync(state *rsi.State, realTime float64) {
	total := state.TotalDelay()
	if total <= 0 {
		l.AnimationTime = 0
		l.AnimationFrame = 0
		l.AnimationTimeLeft = state.Delay(0)
		return
	}
	l.AnimationTime = math.Mod(realTime, total)
	l.AnimationFrame = 0
	l.AnimationTimeLeft = -l.AnimationTime
	l.stepFrames(state)
}

func (l *Layer) stepFrames(state *rsi.State) {
	if !state.IsAnimated() {
		return
	}
	count := state.DelayCount()
	if l.AnimationFrame < 0 || l.AnimationFrame >= count {
		l.AnimationFrame = 0
	}

	// Whole cycles leave the frame index unchanged.
	total := state.TotalDelay()
	if l.AnimationTimeLeft <= -total {
		l.AnimationTimeLeft += math.Floor(-l.AnimationTimeLeft/total) * total
	}
	for l.AnimationTimeLeft <= 0 {
		l.AnimationFrame = (l.AnimationFrame + 1) % count
		l.AnimationTimeLeft += state.Delay(l.AnimationFrame)
	}
}

// FrameAt resolves which frame of state is showing t seconds after the cycle
// started, and how long that frame has left. With loop unset the result
// clamps to the last frame once t reaches the total delay. Frames end at the
// boundary: a t equal to the end of frame i resolves to frame i+1. Tables
// with no positive total resolve to frame 0.
func FrameAt(state *rsi.State, t float64, loop bool) (frame int, left float64) {
	count := state.DelayCount()
	if count == 0 {
		return 0, 0
	}
	total := state.TotalDelay()
	if total <= 0 {
		return 0, state.Delay(0)
	}
	if t < 0 {
		t = 0
	}
	if t >= total {
		if !loop {
			return count - 1, 0
		}
		t = math.Mod(t, total)
	}
	for i, d := range state.Delays() {
		if t < d {
			return i, d - t
		}
		t -= d
	}
	// Rounding can leave t past the last boundary.
	return 0, state.Delay(0)
}
