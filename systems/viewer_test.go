package systems_test

import (
	"testing"

	"github.com/automoto/spriteanim/components"
	cfg "github.com/automoto/spriteanim/config"
	"github.com/automoto/spriteanim/sprite"
	"github.com/automoto/spriteanim/systems"
	"github.com/automoto/spriteanim/systems/factory"
	"github.com/automoto/spriteanim/tags"
	"github.com/yohamta/donburi"
)

func TestQueueVisibleSprites(t *testing.T) {
	h := newHarness(t)
	factory.CreateSpace(h.ecs, 10000, 10000, 64, 64)
	factory.CreateCamera(h.ecs, 0, 0)

	spawnAt := func(x, y float64, layers ...sprite.LayerSpec) *donburi.Entry {
		return factory.CreateSprite(h.ecs, h.sys, factory.SpriteParams{
			X: x, Y: y, W: 16, H: 16,
			BaseRSI: h.rsi,
			Layers:  layers,
		})
	}
	visible := spawnAt(0, 0, sprite.LayerSpec{State: "walk"})
	edge := spawnAt(float64(cfg.C.Width)/2+cfg.Viewer.CullPadding-1, 0, sprite.LayerSpec{State: "walk"})
	far := spawnAt(5000, 5000, sprite.LayerSpec{State: "walk"})
	static := spawnAt(20, 20, sprite.LayerSpec{State: "idle"})
	h.sys.DrainInertQueue()

	queue := systems.QueueVisibleSprites(h.sys)
	queue(h.ecs)
	if h.sys.PendingUpdates() != 2 {
		t.Fatalf("pending = %d, want 2", h.sys.PendingUpdates())
	}
	h.sys.Update(h.ecs)

	if layer(visible, 0).AnimationTime == 0 || layer(edge, 0).AnimationTime == 0 {
		t.Fatalf("sprites in view should advance")
	}
	if layer(far, 0).AnimationTime != 0 || layer(static, 0).AnimationTime != 0 {
		t.Fatalf("off-screen and inert sprites should not advance")
	}

	components.Camera.Get(mustFirstCamera(t, h)).Position.X = 5000
	components.Camera.Get(mustFirstCamera(t, h)).Position.Y = 5000
	queue(h.ecs)
	h.sys.Update(h.ecs)
	if layer(far, 0).AnimationTime == 0 {
		t.Fatalf("sprite should advance once the camera reaches it")
	}
}

func mustFirstCamera(t *testing.T, h *harness) *donburi.Entry {
	t.Helper()
	e, ok := components.Camera.First(h.ecs.World)
	if !ok {
		t.Fatalf("no camera")
	}
	return e
}

func TestQueueVisibleSpritesWithoutObject(t *testing.T) {
	h := newHarness(t)
	e := h.spawn(sprite.LayerSpec{State: "walk"})
	components.Object.Get(e).Object = nil

	systems.QueueVisibleSprites(h.sys)(h.ecs)
	if h.sys.PendingUpdates() != 1 {
		t.Fatalf("sprites outside the space should always be queued")
	}
}

func TestApplySettings(t *testing.T) {
	h := newHarness(t)
	a := h.spawn(sprite.LayerSpec{State: "walk"})
	b := h.spawn(sprite.LayerSpec{State: "walk"})

	settings := systems.GetOrCreateSettings(h.ecs)
	settings.Paused = true
	settings.SyncAll = true
	systems.ApplySettings(h.ecs)

	for _, e := range []*donburi.Entry{a, b} {
		if !e.HasComponent(tags.Paused) || !e.HasComponent(tags.SyncSprite) {
			t.Fatalf("settings were not applied")
		}
	}
	st := systems.CollectSpriteStats(h.ecs.World)
	if st.Total != 2 || st.Paused != 2 || st.Synced != 2 {
		t.Fatalf("stats = %+v", st)
	}

	settings.Paused = false
	systems.ApplySettings(h.ecs)
	if a.HasComponent(tags.Paused) {
		t.Fatalf("pause tag should be removed")
	}
	systems.SetPaused(a, false)
}

type memoryStore map[string][]byte

func (m memoryStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m memoryStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func TestSettingsPersistence(t *testing.T) {
	store := memoryStore{}
	systems.UseStore(store)
	defer systems.UseStore(nil)

	if saved, err := systems.LoadSettings(); saved != nil || err != nil {
		t.Fatalf("empty store should load nothing, got %v %v", saved, err)
	}

	h := newHarness(t)
	factory.CreateCamera(h.ecs, 10, 20)
	settings := systems.GetOrCreateSettings(h.ecs)
	settings.ShowDebug = true
	settings.SyncAll = true
	settings.Dirty = true
	systems.SaveSettingsIfDirty(h.ecs)
	if settings.Dirty {
		t.Fatalf("dirty flag should clear after saving")
	}

	saved, err := systems.LoadSettings()
	if err != nil || saved == nil {
		t.Fatalf("LoadSettings: %v %v", saved, err)
	}
	if !saved.ShowDebug || !saved.SyncAll || saved.CameraX != 10 || saved.CameraY != 20 {
		t.Fatalf("saved = %+v", saved)
	}

	other := newHarness(t)
	factory.CreateCamera(other.ecs, 0, 0)
	e := other.spawn(sprite.LayerSpec{State: "walk"})
	systems.ApplySavedSettings(other.ecs, saved)
	if !e.HasComponent(tags.SyncSprite) || !systems.GetOrCreateSettings(other.ecs).ShowDebug {
		t.Fatalf("saved settings were not applied")
	}

	store["settings"] = []byte("{not json")
	if _, err := systems.LoadSettings(); err == nil {
		t.Fatalf("expected parse error")
	}
}
