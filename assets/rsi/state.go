package rsi

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	ErrStateNotFound = errors.New("rsi: state not found")
	ErrBadState      = errors.New("rsi: malformed state")
)

// StateID names an animation clip inside an RSI. The empty id is invalid.
type StateID string

func (s StateID) IsValid() bool {
	return s != ""
}

func (s StateID) String() string {
	return string(s)
}

// Direction is a facing direction inside a state. Frames for South are always present.
type Direction int

const (
	South Direction = iota
	North
	East
	West
)

// State is one animation clip: frames per direction plus per-frame delays in seconds.
// A State never changes after construction.
type State struct {
	id         StateID
	frames     [][]*ebiten.Image
	delays     []float64
	totalDelay float64
}

// NewState validates frames and delays and builds a State.
// Each direction must carry one frame per delay (or exactly one frame when delays is empty).
func NewState(id StateID, frames [][]*ebiten.Image, delays []float64) (*State, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %q has no directions", ErrBadState, id)
	}

	want := len(delays)
	if want == 0 {
		want = 1
	}
	for dir, list := range frames {
		if len(list) != want {
			return nil, fmt.Errorf("%w: %q direction %d has %d frames, want %d", ErrBadState, id, dir, len(list), want)
		}
	}

	total := 0.0
	for i, d := range delays {
		if d < 0 {
			return nil, fmt.Errorf("%w: %q delay %d is negative", ErrBadState, id, i)
		}
		total += d
	}

	return &State{
		id:         id,
		frames:     frames,
		delays:     append([]float64(nil), delays...),
		totalDelay: total,
	}, nil
}

func (s *State) ID() StateID {
	return s.id
}

// IsAnimated reports whether the state can advance at all.
// Single-frame and zero-length delay tables are not animated.
func (s *State) IsAnimated() bool {
	return len(s.delays) > 1 && s.totalDelay > 0
}

func (s *State) Delays() []float64 {
	return s.delays
}

func (s *State) DelayCount() int {
	return len(s.delays)
}

func (s *State) Delay(i int) float64 {
	if i < 0 || i >= len(s.delays) {
		return 0
	}
	return s.delays[i]
}

func (s *State) TotalDelay() float64 {
	return s.totalDelay
}

func (s *State) DirectionCount() int {
	return len(s.frames)
}

// Frames returns the frames for dir, falling back to South when the state
// has fewer directions.
func (s *State) Frames(dir Direction) []*ebiten.Image {
	if int(dir) < 0 || int(dir) >= len(s.frames) {
		dir = South
	}
	return s.frames[dir]
}

// Frame returns frame i for dir, or frame zero when i is out of range.
func (s *State) Frame(dir Direction, i int) *ebiten.Image {
	frames := s.Frames(dir)
	if i < 0 || i >= len(frames) {
		return frames[0]
	}
	return frames[i]
}

func (s *State) Frame0(dir Direction) *ebiten.Image {
	return s.Frames(dir)[0]
}
