package rsi

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// FallbackStateID is the id carried by the fallback state.
const FallbackStateID StateID = "error"

var fallbackState = sync.OnceValue(func() *State {
	img := ebiten.NewImage(1, 1)
	img.Fill(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	return &State{
		id:     FallbackStateID,
		frames: [][]*ebiten.Image{{img}},
	}
})

// FallbackState is substituted whenever a state lookup fails. It is a single
// magenta frame, never animated, and is shared read-only by every caller.
func FallbackState() *State {
	return fallbackState()
}

// Resolve looks id up in r and returns the fallback state when that fails.
func Resolve(r *RSI, id StateID) (*State, bool) {
	if s, ok := r.TryGetState(id); ok {
		return s, true
	}
	return FallbackState(), false
}
