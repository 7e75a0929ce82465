package systems

import (
	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/automoto/spriteanim/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// RsiReloadedEvent announces that the RSI at Path was replaced.
type RsiReloadedEvent struct {
	Path string
	Old  *rsi.RSI
	New  *rsi.RSI
}

var RsiReloaded = events.NewEventType[RsiReloadedEvent]()

// Reloader loads RSIs again after their files changed.
type Reloader interface {
	RSI(path string) (*rsi.RSI, error)
	Reload(path string) (*rsi.RSI, error)
}

// ReloadSystem turns changed-path notifications into RsiReloaded events.
// It does not subscribe anything; the world owner subscribes RebindSprites
// once so any number of reload systems can share the world.
type ReloadSystem struct {
	reloader Reloader
	changed  <-chan string
	errs     <-chan error
}

func NewReloadSystem(reloader Reloader, changed <-chan string, errs <-chan error) *ReloadSystem {
	return &ReloadSystem{
		reloader: reloader,
		changed:  changed,
		errs:     errs,
	}
}

// Update handles every notification that arrived since the last tick.
func (r *ReloadSystem) Update(e *ecs.ECS) {
	for {
		select {
		case path := <-r.changed:
			r.reload(e.World, path)
		case err := <-r.errs:
			Logger().Warn("asset watcher error", "err", err)
		default:
			RsiReloaded.ProcessEvents(e.World)
			return
		}
	}
}

func (r *ReloadSystem) reload(world donburi.World, path string) {
	old, _ := r.reloader.RSI(path)
	fresh, err := r.reloader.Reload(path)
	if err != nil {
		Logger().Warn("reload failed, keeping previous rsi", "path", path, "err", err)
		return
	}
	Logger().Info("rsi reloaded", "path", path, "states", len(fresh.StateIDs()))
	RsiReloaded.Publish(world, RsiReloadedEvent{Path: path, Old: old, New: fresh})
}

// RebindSprites points every sprite and layer that used ev.Old at ev.New.
// Sprites are re-bound through their setters, which queues them for an
// inertness check.
func RebindSprites(w donburi.World, ev RsiReloadedEvent) {
	if ev.Old == nil || ev.Old == ev.New {
		return
	}
	components.Sprite.Each(w, func(entry *donburi.Entry) {
		if sp := components.Sprite.Get(entry).Sprite; sp != nil {
			sp.ReplaceRSI(ev.Old, ev.New)
		}
	})
}
