package systems

import (
	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/automoto/spriteanim/components"
	"github.com/automoto/spriteanim/sprite"
	"github.com/automoto/spriteanim/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Resources resolves asset paths for GetFrame.
type Resources interface {
	RSI(path string) (*rsi.RSI, error)
	Texture(path string) (*ebiten.Image, error)
}

// Timing supplies the clocks frame advance runs on, in seconds.
type Timing interface {
	RealTime() float64
	FrameDelta() float64
}

// SpriteSystem advances sprite animations once per tick.
//
// Sprites whose inertness may have changed sit in a FIFO until the next
// Update drains it. Entities to advance are collected with ForceUpdate;
// the set is consumed by the Update that follows and never carries over.
type SpriteSystem struct {
	resources Resources
	timing    Timing

	inertQueue []*sprite.Sprite

	updates   []donburi.Entity
	updateSet map[donburi.Entity]struct{}
	spare     []donburi.Entity

	// advanced counts the entities whose layers were stepped by the last Update.
	advanced int
}

func NewSpriteSystem(resources Resources, timing Timing) *SpriteSystem {
	return &SpriteSystem{
		resources: resources,
		timing:    timing,
		updateSet: make(map[donburi.Entity]struct{}),
	}
}

// QueueUpdateInert schedules s for inertness recomputation. A sprite is held
// at most once.
func (s *SpriteSystem) QueueUpdateInert(sp *sprite.Sprite) {
	if sp.InertUpdateQueued {
		return
	}
	sp.InertUpdateQueued = true
	s.inertQueue = append(s.inertQueue, sp)
}

// DrainInertQueue recomputes IsInert for every queued sprite, including any
// queued while draining.
func (s *SpriteSystem) DrainInertQueue() {
	for i := 0; i < len(s.inertQueue); i++ {
		sp := s.inertQueue[i]
		s.inertQueue[i] = nil
		DoUpdateIsInert(sp)
		sp.InertUpdateQueued = false
	}
	s.inertQueue = s.inertQueue[:0]
}

// DoUpdateIsInert recomputes sp.IsInert from scratch. A sprite is inert
// unless some visible, auto-animated, non-blank layer resolves to an
// animated state; the scan stops at the first such layer.
func DoUpdateIsInert(sp *sprite.Sprite) {
	inert := true
	for _, l := range sp.Layers() {
		if !l.CanAnimate() {
			continue
		}
		state, ok := sp.ResolveState(l)
		if !ok {
			Logger().Debug("sprite layer uses fallback state",
				"entity", sp.Entity, "state", l.State())
		}
		if state.IsAnimated() {
			inert = false
			break
		}
	}
	sp.IsInert = inert
}

// ForceUpdate adds entity to the set advanced by the next Update.
func (s *SpriteSystem) ForceUpdate(entity donburi.Entity) {
	if _, ok := s.updateSet[entity]; ok {
		return
	}
	s.updateSet[entity] = struct{}{}
	s.updates = append(s.updates, entity)
}

// AddSprite attaches the entry's sprite to this system and queues its first
// inertness check.
func (s *SpriteSystem) AddSprite(entry *donburi.Entry) {
	sp := components.Sprite.Get(entry).Sprite
	sp.Entity = entry.Entity()
	sp.SetQueue(s)
	s.QueueUpdateInert(sp)
}

// RemoveSprite drops any pending frame advance for entity. Call it before the
// entity is removed from the world.
func (s *SpriteSystem) RemoveSprite(entity donburi.Entity) {
	if _, ok := s.updateSet[entity]; !ok {
		return
	}
	delete(s.updateSet, entity)
	for i, e := range s.updates {
		if e == entity {
			s.updates = append(s.updates[:i], s.updates[i+1:]...)
			break
		}
	}
}

// PendingInert is the number of sprites waiting for an inertness check.
func (s *SpriteSystem) PendingInert() int {
	return len(s.inertQueue)
}

// PendingUpdates is the number of entities queued for the next frame advance.
func (s *SpriteSystem) PendingUpdates() int {
	return len(s.updates)
}

// LastAdvanced is the number of entities the last Update advanced.
func (s *SpriteSystem) LastAdvanced() int {
	return s.advanced
}

// Update runs one tick: the inert queue is drained completely, then every
// queued entity has its layers advanced.
func (s *SpriteSystem) Update(e *ecs.ECS) {
	s.DrainInertQueue()

	batch := s.updates
	s.updates = s.spare[:0]
	clear(s.updateSet)

	realTime := s.timing.RealTime()
	delta := s.timing.FrameDelta()
	s.advanced = 0
	for _, entity := range batch {
		if s.advance(e.World, entity, realTime, delta) {
			s.advanced++
		}
	}
	s.spare = batch[:0]
}

func (s *SpriteSystem) advance(world donburi.World, entity donburi.Entity, realTime, delta float64) bool {
	if !world.Valid(entity) {
		return false
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(components.Sprite) || entry.HasComponent(tags.Paused) {
		return false
	}
	sp := components.Sprite.Get(entry).Sprite
	if sp == nil || sp.IsInert {
		return false
	}

	sync := entry.HasComponent(tags.SyncSprite)
	for _, l := range sp.Layers() {
		// Blank layers keep their clock running.
		if !l.Advances() {
			continue
		}
		state, _ := sp.ResolveState(l)
		if !state.IsAnimated() {
			continue
		}
		if sync {
			l.Sync(state, realTime)
		} else {
			l.Advance(state, delta)
		}
	}
	return true
}
