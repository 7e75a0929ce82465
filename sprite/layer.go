package sprite

import (
	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/hajimehoshi/ebiten/v2"
)

// Layer is one drawable stratum of a sprite. AnimationTime, AnimationTimeLeft
// and AnimationFrame are the layer's playback position and may be written
// freely; everything else goes through setters.
type Layer struct {
	sprite *Sprite

	state        rsi.StateID
	rsi          *rsi.RSI
	texture      *ebiten.Image
	visible      bool
	autoAnimated bool
	blank        bool

	// AnimationTime is seconds elapsed since the state began, modulo cycle length under sync.
	AnimationTime float64
	// AnimationTimeLeft is seconds remaining on the current frame.
	AnimationTimeLeft float64
	AnimationFrame    int
}

func (l *Layer) Sprite() *Sprite { return l.sprite }

func (l *Layer) State() rsi.StateID { return l.state }

func (l *Layer) RSI() *rsi.RSI { return l.rsi }

func (l *Layer) Texture() *ebiten.Image { return l.texture }

func (l *Layer) Visible() bool { return l.visible }

func (l *Layer) AutoAnimated() bool { return l.autoAnimated }

func (l *Layer) Blank() bool { return l.blank }

func (l *Layer) queueUpdateInert() {
	if l.sprite != nil {
		l.sprite.QueueUpdateInert()
	}
}

// SetState switches the layer's animation state and restarts playback.
func (l *Layer) SetState(id rsi.StateID) {
	if l.state == id {
		return
	}
	l.state = id
	l.resetAnimation()
	l.queueUpdateInert()
}

// SetRSI overrides the sprite's base RSI for this layer; nil clears the
// override. Playback restarts.
func (l *Layer) SetRSI(r *rsi.RSI) {
	if l.rsi == r {
		return
	}
	l.rsi = r
	l.resetAnimation()
	l.queueUpdateInert()
}

func (l *Layer) SetTexture(img *ebiten.Image) {
	if l.texture == img {
		return
	}
	l.texture = img
	l.queueUpdateInert()
}

func (l *Layer) SetVisible(v bool) {
	if l.visible == v {
		return
	}
	l.visible = v
	l.queueUpdateInert()
}

func (l *Layer) SetAutoAnimated(v bool) {
	if l.autoAnimated == v {
		return
	}
	l.autoAnimated = v
	l.queueUpdateInert()
}

// SetBlank hides the layer's pixels without stopping its clock.
func (l *Layer) SetBlank(v bool) {
	if l.blank == v {
		return
	}
	l.blank = v
	l.queueUpdateInert()
}

// Advances reports whether frame advance touches this layer: it has a state,
// is visible and is auto-animated. Blank layers still advance.
func (l *Layer) Advances() bool {
	return l.state.IsValid() && l.visible && l.autoAnimated
}

// CanAnimate reports whether the layer keeps its sprite out of the inert set.
// Unlike Advances it also requires the layer not to be blank.
func (l *Layer) CanAnimate() bool {
	return l.Advances() && !l.blank
}

// ResolveState resolves the layer's state through its sprite.
func (l *Layer) ResolveState() (*rsi.State, bool) {
	if l.sprite == nil {
		return rsi.Resolve(l.rsi, l.state)
	}
	return l.sprite.ResolveState(l)
}

// CurrentFrame is the image the layer shows right now facing dir, or nil
// when nothing should be drawn.
func (l *Layer) CurrentFrame(dir rsi.Direction) *ebiten.Image {
	if !l.visible || l.blank {
		return nil
	}
	if !l.state.IsValid() {
		return l.texture
	}
	state, _ := l.ResolveState()
	return state.Frame(dir, l.AnimationFrame)
}

func (l *Layer) resetAnimation() {
	state, _ := l.ResolveState()
	l.AnimationTime = 0
	l.AnimationFrame = 0
	l.AnimationTimeLeft = state.Delay(0)
}
