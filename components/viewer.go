package components

import "github.com/yohamta/donburi"

// ViewerSettingsData stores viewer toggles that survive restarts
type ViewerSettingsData struct {
	ShowDebug bool
	Paused    bool // Every sprite carries tags.Paused
	SyncAll   bool // Every sprite carries tags.SyncSprite
	Dirty     bool // Changed since the last save
}

var ViewerSettings = donburi.NewComponentType[ViewerSettingsData]()
