package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/spriteanim/components"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// SavedSettings represents the viewer settings stored on disk
type SavedSettings struct {
	ShowDebug bool    `json:"showDebug"`
	Paused    bool    `json:"paused"`
	SyncAll   bool    `json:"syncAll"`
	CameraX   float64 `json:"cameraX"`
	CameraY   float64 `json:"cameraY"`
}

// ItemStore is the subset of *gdata.Manager used for settings.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store ItemStore

// InitPersistence opens the gdata store for settings under appName
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// UseStore replaces the settings store; nil disables persistence.
func UseStore(s ItemStore) {
	store = s
}

// LoadSettings loads settings from disk. It returns nil, nil when nothing is saved.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings copies saved settings into the world and re-tags sprites.
func ApplySavedSettings(e *ecs.ECS, saved *SavedSettings) {
	if saved == nil {
		return
	}
	settings := GetOrCreateSettings(e)
	settings.ShowDebug = saved.ShowDebug
	settings.Paused = saved.Paused
	settings.SyncAll = saved.SyncAll

	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		camera.Position.X = saved.CameraX
		camera.Position.Y = saved.CameraY
	}
	ApplySettings(e)
}

// CurrentSettings snapshots the world's settings for saving.
func CurrentSettings(e *ecs.ECS) *SavedSettings {
	settings := GetOrCreateSettings(e)
	saved := &SavedSettings{
		ShowDebug: settings.ShowDebug,
		Paused:    settings.Paused,
		SyncAll:   settings.SyncAll,
	}
	if entry, ok := components.Camera.First(e.World); ok {
		camera := components.Camera.Get(entry)
		saved.CameraX = camera.Position.X
		saved.CameraY = camera.Position.Y
	}
	return saved
}

// SaveSettingsIfDirty writes the settings after a toggle changed them.
func SaveSettingsIfDirty(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if !settings.Dirty {
		return
	}
	settings.Dirty = false
	_ = SaveSettings(CurrentSettings(e))
}
