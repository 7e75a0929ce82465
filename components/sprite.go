package components

import (
	"github.com/automoto/spriteanim/sprite"
	"github.com/yohamta/donburi"
)

// SpriteData points at the sprite so layer back-references survive donburi
// moving the entity between archetypes.
type SpriteData struct {
	*sprite.Sprite
}

var Sprite = donburi.NewComponentType[SpriteData]()
