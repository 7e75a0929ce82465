package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/spriteanim/components"
	cfg "github.com/automoto/spriteanim/config"
	"github.com/automoto/spriteanim/fonts"
	"github.com/automoto/spriteanim/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpriteStats summarizes the sprites in a world.
type SpriteStats struct {
	Total, Inert, Paused, Synced int
}

func CollectSpriteStats(world donburi.World) SpriteStats {
	var st SpriteStats
	components.Sprite.Each(world, func(e *donburi.Entry) {
		st.Total++
		if sp := components.Sprite.Get(e).Sprite; sp == nil || sp.IsInert {
			st.Inert++
		}
		if e.HasComponent(tags.Paused) {
			st.Paused++
		}
		if e.HasComponent(tags.SyncSprite) {
			st.Synced++
		}
	})
	return st
}

// DrawDebug returns the overlay renderer: sprite bounds colored by
// inertness plus engine counters.
func DrawDebug(sys *SpriteSystem, timing Timing) ecs.Renderer {
	return func(ecs *ecs.ECS, screen *ebiten.Image) {
		settings := GetOrCreateSettings(ecs)
		if !settings.ShowDebug && !cfg.Debug.Overlay {
			return
		}

		drawSpriteBounds(ecs, screen)

		st := CollectSpriteStats(ecs.World)
		lines := []string{
			fmt.Sprintf("TPS %.0f  t=%.2fs  dt=%.4f", ebiten.ActualTPS(), timing.RealTime(), timing.FrameDelta()),
			fmt.Sprintf("sprites %d  inert %d  active %d", st.Total, st.Inert, st.Total-st.Inert),
			fmt.Sprintf("paused %d  synced %d", st.Paused, st.Synced),
			fmt.Sprintf("advanced %d  inert queue %d", sys.LastAdvanced(), sys.PendingInert()),
		}

		face := fonts.Mono.Get()
		lineHeight := face.Metrics().Height.Ceil()
		boxH := float32(lineHeight*len(lines) + 8)
		vector.FillRect(screen, 4, 4, 300, boxH, cfg.Debug.BoxColor, false)
		for i, line := range lines {
			text.Draw(screen, line, face, 10, 4+lineHeight*(i+1), cfg.Debug.TextColor)
		}
	}
}

func drawSpriteBounds(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := CameraViewport(camera, width, height, 0)
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	for _, obj := range space.Objects() {
		if !view.Overlaps(obj) {
			continue
		}
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Sprite) {
			continue
		}

		var c color.Color = cfg.LightGreen
		if sp := components.Sprite.Get(entry).Sprite; sp == nil || sp.IsInert {
			c = cfg.Debug.InertTint
		}
		if entry.HasComponent(tags.Paused) {
			c = color.RGBA{150, 150, 150, 255} // Grey
		}

		x := float32(obj.X + camX)
		y := float32(obj.Y + camY)
		w, h := float32(obj.W), float32(obj.H)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}
}
