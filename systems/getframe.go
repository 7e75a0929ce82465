package systems

import (
	"errors"
	"fmt"

	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/automoto/spriteanim/sprite"
	"github.com/hajimehoshi/ebiten/v2"
)

// ErrUnsupportedSpecifier is returned by GetFrame for specifiers other than
// sprite.RsiSpecifier and sprite.TextureSpecifier.
var ErrUnsupportedSpecifier = errors.New("unsupported sprite specifier")

// GetFrame returns the south-facing image spec shows curTime seconds after
// its animation started. Without loop the last frame is held once the cycle
// ends. It reads no per-entity state and changes nothing, so it can be called
// outside the tick. Missing assets resolve to the fallback frame.
func (s *SpriteSystem) GetFrame(spec sprite.Specifier, curTime float64, loop bool) (*ebiten.Image, error) {
	switch spec := spec.(type) {
	case sprite.TextureSpecifier:
		tex, err := s.loadTexture(spec.Path)
		if err != nil {
			Logger().Debug("texture unavailable, using fallback", "path", spec.Path, "err", err)
			return rsi.FallbackState().Frame0(rsi.South), nil
		}
		return tex, nil
	case sprite.RsiSpecifier:
		r, err := s.loadRSI(spec.RsiPath)
		if err != nil {
			Logger().Debug("rsi unavailable, using fallback", "path", spec.RsiPath, "err", err)
		}
		state, _ := rsi.Resolve(r, spec.State)
		frame, _ := sprite.FrameAt(state, curTime, loop)
		return state.Frame(rsi.South, frame), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSpecifier, spec)
	}
}

// MustGetFrame is GetFrame for call sites where an unsupported specifier is a
// programming error.
func (s *SpriteSystem) MustGetFrame(spec sprite.Specifier, curTime float64, loop bool) *ebiten.Image {
	img, err := s.GetFrame(spec, curTime, loop)
	if err != nil {
		panic(err)
	}
	return img
}

func (s *SpriteSystem) loadRSI(path string) (*rsi.RSI, error) {
	if s.resources == nil {
		return nil, fmt.Errorf("no resources for %s", path)
	}
	return s.resources.RSI(path)
}

func (s *SpriteSystem) loadTexture(path string) (*ebiten.Image, error) {
	if s.resources == nil {
		return nil, fmt.Errorf("no resources for %s", path)
	}
	return s.resources.Texture(path)
}
