package ui

import (
	"testing"

	"github.com/automoto/spriteanim/fonts"
	"github.com/automoto/spriteanim/sprite"
	"github.com/automoto/spriteanim/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type frameCall struct {
	spec sprite.Specifier
	t    float64
	loop bool
}

type recordingFrames struct {
	img   *ebiten.Image
	calls []frameCall
}

func (r *recordingFrames) MustGetFrame(spec sprite.Specifier, curTime float64, loop bool) *ebiten.Image {
	r.calls = append(r.calls, frameCall{spec, curTime, loop})
	return r.img
}

type fixedClock float64

func (c fixedClock) FrameDelta() float64 { return float64(c) }

func TestIconPanelRefresh(t *testing.T) {
	if err := fonts.LoadDefaults(12); err != nil {
		t.Fatal(err)
	}
	frames := &recordingFrames{img: ebiten.NewImage(2, 2)}
	walk := sprite.RsiSpecifier{RsiPath: "mobs/test.rsi", State: "walk"}
	idle := sprite.RsiSpecifier{RsiPath: "mobs/test.rsi", State: "idle"}

	p := NewIconPanel(frames, fixedClock(0.5), []Icon{{"walk", walk}, {"idle", idle}}, 0.3)
	if len(p.icons) != 2 || p.scrub.graphic == nil {
		t.Fatalf("want 2 icons and a scrub icon, got %d", len(p.icons))
	}
	for _, ic := range p.icons {
		if ic.graphic.Image != frames.img {
			t.Fatalf("icon image not set")
		}
	}

	frames.calls = nil
	p.elapsed = 1.25
	p.refresh(0.2)
	want := []frameCall{
		{walk, 1.25, true},
		{idle, 1.25, true},
		{walk, 0.2, false},
	}
	if len(frames.calls) != len(want) {
		t.Fatalf("got %d calls, want %d", len(frames.calls), len(want))
	}
	for i, c := range want {
		if frames.calls[i] != c {
			t.Fatalf("call %d: got %+v, want %+v", i, frames.calls[i], c)
		}
	}
}

func TestIconPanelEmpty(t *testing.T) {
	if err := fonts.LoadDefaults(12); err != nil {
		t.Fatal(err)
	}
	frames := &recordingFrames{}
	p := NewIconPanel(frames, fixedClock(0), nil, 1)
	if p.scrub.graphic != nil || len(frames.calls) != 0 {
		t.Fatalf("empty panel should resolve nothing")
	}
}

func TestIconPanelPanicsOnUnsupportedSpecifier(t *testing.T) {
	if err := fonts.LoadDefaults(12); err != nil {
		t.Fatal(err)
	}
	sys := systems.NewSpriteSystem(nil, &systems.FixedTiming{})

	defer func() {
		if recover() == nil {
			t.Fatalf("unsupported specifier should panic")
		}
	}()
	NewIconPanel(sys, fixedClock(0), []Icon{{"bad", &sprite.TextureSpecifier{Path: "icons/tex.png"}}}, 1)
}
