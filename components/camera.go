package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position math.Vec2 // Center of the viewport in world space
	Home     math.Vec2 // Position restored by the reset action
}

var Camera = donburi.NewComponentType[CameraData]()
