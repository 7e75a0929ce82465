package systems

import (
	"github.com/automoto/spriteanim/assets"
	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/automoto/spriteanim/components"
	cfg "github.com/automoto/spriteanim/config"
	"github.com/automoto/spriteanim/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp   = &ebiten.DrawImageOptions{}
	shaderOp = &ebiten.DrawRectShaderOptions{}
)

const pausedDim = 0.75

// DrawSprites renders every sprite in view, layers bottom to top. Each layer
// is centered on its object; blank and hidden layers draw nothing. Paused
// sprites are dimmed once shaders are loaded.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := CameraViewport(camera, width, height, cfg.Viewer.CullPadding)
	camX := float64(width)/2 - camera.Position.X
	camY := float64(height)/2 - camera.Position.Y

	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)
		if o.Object == nil || !view.Overlaps(o.Object) {
			return
		}
		sp := components.Sprite.Get(e).Sprite
		if sp == nil {
			return
		}

		paused := e.HasComponent(tags.Paused)
		dir := rsi.South
		if e.HasComponent(components.Facing) {
			dir = components.Facing.Get(e).Direction
		}

		for _, l := range sp.Layers() {
			img := l.CurrentFrame(dir)
			if img == nil {
				continue
			}
			b := img.Bounds()
			x := o.X + o.W/2 + camX - float64(b.Dx())/2
			y := o.Y + o.H/2 + camY - float64(b.Dy())/2
			if paused && assets.DimShader != nil {
				drawDimmed(screen, img, x, y)
				continue
			}
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Translate(x, y)
			screen.DrawImage(img, drawOp)
		}
	})
}

func drawDimmed(screen, img *ebiten.Image, x, y float64) {
	b := img.Bounds()
	shaderOp.GeoM.Reset()
	shaderOp.GeoM.Translate(x, y)
	shaderOp.Images[0] = img
	shaderOp.Uniforms = map[string]any{
		"Amount": float32(pausedDim),
		"Tint":   []float32{0.8, 0.8, 0.9},
	}
	screen.DrawRectShader(b.Dx(), b.Dy(), assets.DimShader, shaderOp)
}
