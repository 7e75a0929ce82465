package systems

import (
	"time"

	cfg "github.com/automoto/spriteanim/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GameTiming is the Timing used by the viewer. Real time is wall-clock
// seconds since the timing was created; the frame delta is one tick at the
// current TPS, scaled by config.Animation.TimeScale.
type GameTiming struct {
	start time.Time
	now   func() time.Time

	realTime float64
	delta    float64
}

func NewGameTiming() *GameTiming {
	return &GameTiming{start: time.Now(), now: time.Now}
}

// Tick samples the clocks. It runs first in the system order so every system
// in a tick sees the same values.
func (t *GameTiming) Tick(_ *ecs.ECS) {
	t.realTime = t.now().Sub(t.start).Seconds()

	tps := ebiten.TPS()
	if tps <= 0 {
		tps = cfg.C.TPS
	}
	t.delta = tickDelta(tps, cfg.Animation.TimeScale, cfg.Animation.MaxDelta)
}

func (t *GameTiming) RealTime() float64   { return t.realTime }
func (t *GameTiming) FrameDelta() float64 { return t.delta }

func tickDelta(tps int, scale, maxDelta float64) float64 {
	if tps <= 0 {
		return 0
	}
	d := scale / float64(tps)
	if maxDelta > 0 && d > maxDelta {
		d = maxDelta
	}
	return d
}

// FixedTiming is a Timing with values set by hand.
type FixedTiming struct {
	Real  float64
	Delta float64
}

func (t *FixedTiming) RealTime() float64   { return t.Real }
func (t *FixedTiming) FrameDelta() float64 { return t.Delta }
