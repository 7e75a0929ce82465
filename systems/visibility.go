package systems

import (
	"github.com/automoto/spriteanim/components"
	cfg "github.com/automoto/spriteanim/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Viewport is a world-space rectangle.
type Viewport struct {
	X, Y, W, H float64
}

func (v Viewport) Overlaps(o *resolv.Object) bool {
	return o.X+o.W >= v.X && o.X <= v.X+v.W && o.Y+o.H >= v.Y && o.Y <= v.Y+v.H
}

// CameraViewport returns the area the camera shows on a screen of the given
// size, grown by padding on every side.
func CameraViewport(camera *components.CameraData, width, height int, padding float64) Viewport {
	return Viewport{
		X: camera.Position.X - float64(width)/2 - padding,
		Y: camera.Position.Y - float64(height)/2 - padding,
		W: float64(width) + 2*padding,
		H: float64(height) + 2*padding,
	}
}

// QueueVisibleSprites returns the system that refills the frame-advance set
// every tick: each sprite whose object lies in or near the viewport is passed
// to ForceUpdate. Sprites without an object are always queued.
func QueueVisibleSprites(sys *SpriteSystem) ecs.System {
	return func(e *ecs.ECS) {
		view, hasCamera := currentViewport(e)

		if spaceEntry, ok := components.Space.First(e.World); ok {
			space := components.Space.Get(spaceEntry)
			for _, obj := range space.Objects() {
				if hasCamera && !view.Overlaps(obj) {
					continue
				}
				entry, ok := obj.Data.(*donburi.Entry)
				if !ok || !entry.Valid() || !entry.HasComponent(components.Sprite) {
					continue
				}
				queueIfAnimating(sys, entry)
			}
		}

		components.Sprite.Each(e.World, func(entry *donburi.Entry) {
			if entry.HasComponent(components.Object) && components.Object.Get(entry).Object != nil {
				return
			}
			queueIfAnimating(sys, entry)
		})
	}
}

// queueIfAnimating skips sprites known to be inert. A sprite with a pending
// inertness check is queued since it may turn active this tick.
func queueIfAnimating(sys *SpriteSystem, entry *donburi.Entry) {
	sp := components.Sprite.Get(entry).Sprite
	if sp == nil || sp.IsInert && !sp.InertUpdateQueued {
		return
	}
	sys.ForceUpdate(entry.Entity())
}

func currentViewport(e *ecs.ECS) (Viewport, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return Viewport{}, false
	}
	camera := components.Camera.Get(cameraEntry)
	return CameraViewport(camera, cfg.C.Width, cfg.C.Height, cfg.Viewer.CullPadding), true
}
