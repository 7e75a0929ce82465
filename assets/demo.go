package assets

import (
	"image"
	"image/color"

	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/hajimehoshi/ebiten/v2"
)

// DemoRSIPath is the path the generated demo RSI is registered under.
const DemoRSIPath = "demo/generated.rsi"

const demoFrameSize = 32

var demoStates = []struct {
	id     rsi.StateID
	base   color.RGBA
	delays []float64
}{
	{"idle", color.RGBA{R: 90, G: 90, B: 110, A: 255}, nil},
	{"spin", color.RGBA{R: 220, G: 80, B: 60, A: 255}, []float64{0.1, 0.1, 0.1, 0.1}},
	{"pulse", color.RGBA{R: 60, G: 180, B: 90, A: 255}, []float64{0.2, 0.1, 0.3}},
	{"blink", color.RGBA{R: 230, G: 200, B: 60, A: 255}, []float64{0.5, 0.05}},
	{"stuck", color.RGBA{R: 120, G: 60, B: 200, A: 255}, []float64{0, 0}},
}

// DemoRSI generates a small RSI in memory so the viewer has something to
// animate without an asset directory. "stuck" has an all-zero delay table.
func DemoRSI() *rsi.RSI {
	states := make([]*rsi.State, 0, len(demoStates))
	for _, d := range demoStates {
		n := len(d.delays)
		if n == 0 {
			n = 1
		}
		dirs := make([][]*ebiten.Image, 4)
		for dir := range dirs {
			dirs[dir] = make([]*ebiten.Image, n)
			for i := 0; i < n; i++ {
				dirs[dir][i] = demoFrame(d.base, dir, i, n)
			}
		}
		state, err := rsi.NewState(d.id, dirs, d.delays)
		if err != nil {
			panic(err)
		}
		states = append(states, state)
	}
	return rsi.New(DemoRSIPath, image.Pt(demoFrameSize, demoFrameSize), states...)
}

// demoFrame draws a filled square with a marker that walks clockwise around
// the edge, one step per frame, offset by direction.
func demoFrame(base color.RGBA, dir, frame, frames int) *ebiten.Image {
	img := ebiten.NewImage(demoFrameSize, demoFrameSize)
	img.Fill(base)

	const marker = 8
	steps := []image.Point{
		{0, 0},
		{demoFrameSize - marker, 0},
		{demoFrameSize - marker, demoFrameSize - marker},
		{0, demoFrameSize - marker},
	}
	p := steps[(frame*len(steps)/frames+dir)%len(steps)]
	img.SubImage(image.Rect(p.X, p.Y, p.X+marker, p.Y+marker)).(*ebiten.Image).Fill(color.White)
	return img
}
