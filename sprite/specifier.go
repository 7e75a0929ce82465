package sprite

import "github.com/automoto/spriteanim/assets/rsi"

// Specifier names something that can be drawn: an RSI state or a plain
// texture. RsiSpecifier and TextureSpecifier are the only implementations.
type Specifier interface {
	isSpecifier()
}

type RsiSpecifier struct {
	RsiPath string
	State   rsi.StateID
}

type TextureSpecifier struct {
	Path string
}

func (RsiSpecifier) isSpecifier()     {}
func (TextureSpecifier) isSpecifier() {}
