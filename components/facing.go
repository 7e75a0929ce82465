package components

import (
	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/yohamta/donburi"
)

// FacingData selects which direction of each layer's state is drawn.
type FacingData struct {
	Direction rsi.Direction
}

var Facing = donburi.NewComponentType[FacingData]()
