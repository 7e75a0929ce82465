package factory

import (
	"github.com/automoto/spriteanim/archetypes"
	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/automoto/spriteanim/components"
	"github.com/automoto/spriteanim/sprite"
	"github.com/automoto/spriteanim/systems"
	"github.com/automoto/spriteanim/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpriteParams describes a sprite entity to spawn.
type SpriteParams struct {
	X, Y, W, H float64
	BaseRSI    *rsi.RSI
	Layers     []sprite.LayerSpec
	Direction  rsi.Direction
	Sync       bool
	Paused     bool
}

// CreateSprite spawns an animated sprite, places its object in the space and
// registers it with sys, which queues its first inertness check.
func CreateSprite(ecs *ecs.ECS, sys *systems.SpriteSystem, p SpriteParams) *donburi.Entry {
	entry := archetypes.AnimatedSprite.Spawn(ecs, components.Facing)

	sp := sprite.New(p.BaseRSI, nil)
	for _, spec := range p.Layers {
		sp.AddLayer(spec)
	}
	components.Sprite.SetValue(entry, components.SpriteData{Sprite: sp})
	components.Facing.SetValue(entry, components.FacingData{Direction: p.Direction})

	obj := resolv.NewObject(p.X, p.Y, p.W, p.H, tags.ResolvSprite)
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	sys.AddSprite(entry)
	systems.SetSynced(entry, p.Sync)
	systems.SetPaused(entry, p.Paused)
	return entry
}

// DestroySprite removes the entity, its object and any pending frame advance.
func DestroySprite(ecs *ecs.ECS, sys *systems.SpriteSystem, entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	if entry.HasComponent(components.Object) {
		if obj := components.Object.Get(entry).Object; obj != nil {
			if spaceEntry, ok := components.Space.First(ecs.World); ok {
				components.Space.Get(spaceEntry).Remove(obj)
			}
		}
	}
	sys.RemoveSprite(entry.Entity())
	ecs.World.Remove(entry.Entity())
}
