package tags

import "github.com/yohamta/donburi"

var (
	// SyncSprite derives a sprite's frames from the global clock
	SyncSprite = donburi.NewTag().SetName("SyncSprite")
	// Paused stops frame advance for the entity
	Paused = donburi.NewTag().SetName("Paused")
)

// Resolv tags for the sprite space
const (
	ResolvSprite = "sprite"
)
