package systems

import (
	"math"

	"github.com/automoto/spriteanim/components"
	"github.com/automoto/spriteanim/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera pans the camera with the pan actions and snaps it home on reset.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	input := getOrCreateInput(e)

	if GetAction(input, config.ActionResetCamera).JustPressed {
		camera.Position = camera.Home
		return
	}

	var dx, dy float64
	if GetAction(input, config.ActionPanLeft).Pressed {
		dx--
	}
	if GetAction(input, config.ActionPanRight).Pressed {
		dx++
	}
	if GetAction(input, config.ActionPanUp).Pressed {
		dy--
	}
	if GetAction(input, config.ActionPanDown).Pressed {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}
	step := config.Viewer.CameraSpeed
	if dx != 0 && dy != 0 {
		step /= math.Sqrt2
	}
	camera.Position.X += dx * step
	camera.Position.Y += dy * step
}
