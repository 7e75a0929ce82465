package systems

import (
	"github.com/automoto/spriteanim/archetypes"
	"github.com/automoto/spriteanim/components"
	cfg "github.com/automoto/spriteanim/config"
	"github.com/automoto/spriteanim/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton ViewerSettings component.
func GetOrCreateSettings(ecs *ecs.ECS) *components.ViewerSettingsData {
	entry, ok := components.ViewerSettings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
	}
	return components.ViewerSettings.Get(entry)
}

// UpdatePause handles the viewer toggles: pause, debug overlay and sync.
// This system should run AFTER UpdateInput.
func UpdatePause(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionPause).JustPressed {
		settings.Paused = !settings.Paused
		settings.Dirty = true
		ApplySettings(ecs)
	}
	if GetAction(input, cfg.ActionToggleSync).JustPressed {
		settings.SyncAll = !settings.SyncAll
		settings.Dirty = true
		ApplySettings(ecs)
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowDebug = !settings.ShowDebug
		settings.Dirty = true
	}
}

// ApplySettings tags every sprite entity to match the pause and sync toggles.
func ApplySettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)

	// Tag changes move entities between archetypes, so collect first.
	var entries []*donburi.Entry
	components.Sprite.Each(ecs.World, func(entry *donburi.Entry) {
		entries = append(entries, entry)
	})
	for _, entry := range entries {
		SetPaused(entry, settings.Paused)
		SetSynced(entry, settings.SyncAll)
	}
}

// SetPaused stops or resumes frame advance for a single entity.
func SetPaused(entry *donburi.Entry, paused bool) {
	setTag(entry, tags.Paused, paused)
}

// SetSynced switches an entity between synchronized and free-running time.
func SetSynced(entry *donburi.Entry, synced bool) {
	setTag(entry, tags.SyncSprite, synced)
}

func setTag(entry *donburi.Entry, tag donburi.IComponentType, on bool) {
	has := entry.HasComponent(tag)
	switch {
	case on && !has:
		entry.AddComponent(tag)
	case !on && has:
		entry.RemoveComponent(tag)
	}
}
