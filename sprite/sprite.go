// Package sprite is the data model of layered, animated sprites.
//
// A Sprite owns an ordered list of layers. Fields that decide whether a layer
// can animate are only reachable through setters; every setter that changes
// one of them hands the sprite to its InertQueuer so the cached IsInert flag
// gets recomputed before the next frame advance.
package sprite

import (
	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// InertQueuer receives sprites whose inertness must be recomputed.
type InertQueuer interface {
	QueueUpdateInert(s *Sprite)
}

type Sprite struct {
	// Entity is the owner, set when the sprite is attached to the world.
	Entity donburi.Entity

	// IsInert is true when no layer can currently animate.
	IsInert bool
	// InertUpdateQueued is set while the sprite sits in an inert queue.
	InertUpdateQueued bool

	baseRSI *rsi.RSI
	layers  []*Layer
	queue   InertQueuer
}

// LayerSpec describes a layer to add. The zero value is a visible,
// auto-animated layer without state.
type LayerSpec struct {
	State   rsi.StateID
	RSI     *rsi.RSI
	Texture *ebiten.Image
	Hidden  bool
	Static  bool
	Blank   bool
}

// New creates an empty sprite. It starts inert until its first recomputation.
func New(base *rsi.RSI, queue InertQueuer) *Sprite {
	return &Sprite{
		IsInert: true,
		baseRSI: base,
		queue:   queue,
	}
}

// SetQueue attaches the sprite to an inert queue.
func (s *Sprite) SetQueue(q InertQueuer) {
	s.queue = q
}

// QueueUpdateInert asks the owning queue to recompute IsInert.
func (s *Sprite) QueueUpdateInert() {
	if s.queue != nil {
		s.queue.QueueUpdateInert(s)
	}
}

func (s *Sprite) BaseRSI() *rsi.RSI {
	return s.baseRSI
}

// SetBaseRSI swaps the fallback image strip. Layers without their own RSI
// restart their animation.
func (s *Sprite) SetBaseRSI(r *rsi.RSI) {
	if s.baseRSI == r {
		return
	}
	s.baseRSI = r
	for _, l := range s.layers {
		if l.rsi == nil {
			l.resetAnimation()
		}
	}
	s.QueueUpdateInert()
}

func (s *Sprite) Layers() []*Layer {
	return s.layers
}

func (s *Sprite) LayerCount() int {
	return len(s.layers)
}

func (s *Sprite) Layer(i int) (*Layer, bool) {
	if i < 0 || i >= len(s.layers) {
		return nil, false
	}
	return s.layers[i], true
}

// AddLayer appends a layer on top of the existing ones and returns its index.
func (s *Sprite) AddLayer(spec LayerSpec) int {
	l := &Layer{
		sprite:       s,
		state:        spec.State,
		rsi:          spec.RSI,
		texture:      spec.Texture,
		visible:      !spec.Hidden,
		autoAnimated: !spec.Static,
		blank:        spec.Blank,
	}
	l.resetAnimation()
	s.layers = append(s.layers, l)
	s.QueueUpdateInert()
	return len(s.layers) - 1
}

// RemoveLayer deletes layer i, shifting the layers above it down.
func (s *Sprite) RemoveLayer(i int) bool {
	if i < 0 || i >= len(s.layers) {
		return false
	}
	s.layers[i].sprite = nil
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.QueueUpdateInert()
	return true
}

// EffectiveRSI is the layer's own RSI, or the sprite's base RSI.
func (s *Sprite) EffectiveRSI(l *Layer) *rsi.RSI {
	if l.rsi != nil {
		return l.rsi
	}
	return s.baseRSI
}

// ResolveState looks up the layer's state in its effective RSI. On failure
// the fallback state is returned and ok is false.
func (s *Sprite) ResolveState(l *Layer) (state *rsi.State, ok bool) {
	return rsi.Resolve(s.EffectiveRSI(l), l.state)
}

// ReplaceRSI swaps every reference to old, on the sprite and its layers,
// for r. It reports whether anything changed.
func (s *Sprite) ReplaceRSI(old, r *rsi.RSI) bool {
	changed := false
	if s.baseRSI == old {
		s.SetBaseRSI(r)
		changed = true
	}
	for _, l := range s.layers {
		if l.rsi == old {
			l.SetRSI(r)
			changed = true
		}
	}
	return changed
}
