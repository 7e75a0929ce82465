package factory

import (
	"github.com/automoto/spriteanim/archetypes"
	"github.com/automoto/spriteanim/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centered on (x, y), which is also where the
// reset action returns it.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	home := math.NewVec2(x, y)
	components.Camera.Set(camera, &components.CameraData{Position: home, Home: home})
	return camera
}
