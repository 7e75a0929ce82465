package systems_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/automoto/spriteanim/sprite"
	"github.com/automoto/spriteanim/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type fakeResources struct {
	rsis     map[string]*rsi.RSI
	textures map[string]*ebiten.Image
}

func (f *fakeResources) RSI(path string) (*rsi.RSI, error) {
	if r, ok := f.rsis[path]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("rsi %s: %w", path, fs.ErrNotExist)
}

func (f *fakeResources) Texture(path string) (*ebiten.Image, error) {
	if img, ok := f.textures[path]; ok {
		return img, nil
	}
	return nil, fmt.Errorf("texture %s: %w", path, fs.ErrNotExist)
}

func TestGetFrame(t *testing.T) {
	r := testRSI(t, "mobs/test.rsi")
	tex := ebiten.NewImage(4, 4)
	sys := systems.NewSpriteSystem(&fakeResources{
		rsis:     map[string]*rsi.RSI{"mobs/test.rsi": r},
		textures: map[string]*ebiten.Image{"icons/tex.png": tex},
	}, &systems.FixedTiming{})

	walk, _ := r.TryGetState("walk")
	zero, _ := r.TryGetState("zero")
	idle, _ := r.TryGetState("idle")
	fallback := rsi.FallbackState().Frame0(rsi.South)
	total := walk.TotalDelay()
	walkSpec := sprite.RsiSpecifier{RsiPath: "mobs/test.rsi", State: "walk"}

	cases := []struct {
		name string
		spec sprite.Specifier
		t    float64
		loop bool
		want *ebiten.Image
	}{
		{"texture", sprite.TextureSpecifier{Path: "icons/tex.png"}, 99, true, tex},
		{"missing texture", sprite.TextureSpecifier{Path: "icons/nope.png"}, 0, true, fallback},
		{"first frame", walkSpec, 0.05, true, walk.Frame(rsi.South, 0)},
		{"boundary goes to next frame", walkSpec, 0.1, true, walk.Frame(rsi.South, 1)},
		{"looped", walkSpec, total + 10.05, true, walk.Frame(rsi.South, 1)},
		{"looped into second frame", walkSpec, total*20 + 0.15, true, walk.Frame(rsi.South, 1)},
		{"clamped", walkSpec, total + 10, false, walk.Frame(rsi.South, 1)},
		{"not yet clamped", walkSpec, 0.05, false, walk.Frame(rsi.South, 0)},
		{"zero delays", sprite.RsiSpecifier{RsiPath: "mobs/test.rsi", State: "zero"}, 5, true, zero.Frame0(rsi.South)},
		{"static", sprite.RsiSpecifier{RsiPath: "mobs/test.rsi", State: "idle"}, 5, false, idle.Frame0(rsi.South)},
		{"missing state", sprite.RsiSpecifier{RsiPath: "mobs/test.rsi", State: "nope"}, 0, true, fallback},
		{"missing rsi", sprite.RsiSpecifier{RsiPath: "mobs/nope.rsi", State: "walk"}, 0, true, fallback},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := sys.GetFrame(c.spec, c.t, c.loop)
			if err != nil {
				t.Fatalf("GetFrame: %v", err)
			}
			if got != c.want {
				t.Fatalf("wrong frame")
			}
		})
	}
}

func TestGetFrameUnsupportedSpecifier(t *testing.T) {
	sys := systems.NewSpriteSystem(&fakeResources{}, &systems.FixedTiming{})

	for _, spec := range []sprite.Specifier{nil, &sprite.RsiSpecifier{}, &sprite.TextureSpecifier{}} {
		img, err := sys.GetFrame(spec, 0, true)
		if !errors.Is(err, systems.ErrUnsupportedSpecifier) || img != nil {
			t.Fatalf("%T: got (%v, %v), want ErrUnsupportedSpecifier", spec, img, err)
		}
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("MustGetFrame should panic")
		}
	}()
	sys.MustGetFrame(nil, 0, true)
}

func TestGetFrameDoesNotTouchSprites(t *testing.T) {
	h := newHarness(t)
	sys := systems.NewSpriteSystem(&fakeResources{rsis: map[string]*rsi.RSI{"test.rsi": h.rsi}}, h.timing)
	e := h.spawn(sprite.LayerSpec{State: "walk"})
	h.tick(e)
	before := *layer(e, 0)

	if _, err := sys.GetFrame(sprite.RsiSpecifier{RsiPath: "test.rsi", State: "walk"}, 7.5, true); err != nil {
		t.Fatal(err)
	}
	after := layer(e, 0)
	if after.AnimationFrame != before.AnimationFrame || after.AnimationTime != before.AnimationTime {
		t.Fatalf("GetFrame changed layer state")
	}
}
