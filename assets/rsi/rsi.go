// Package rsi holds rasterized sprite images: bundles of named animation
// states, each with frames per facing direction and per-frame delays.
package rsi

import (
	"fmt"
	"image"
	"sort"
)

// RSI is an immutable set of states sharing one frame size.
type RSI struct {
	Path   string
	Size   image.Point
	states map[StateID]*State
}

func New(path string, size image.Point, states ...*State) *RSI {
	r := &RSI{
		Path:   path,
		Size:   size,
		states: make(map[StateID]*State, len(states)),
	}
	for _, s := range states {
		r.states[s.ID()] = s
	}
	return r
}

// TryGetState looks up a state by id.
func (r *RSI) TryGetState(id StateID) (*State, bool) {
	if r == nil || !id.IsValid() {
		return nil, false
	}
	s, ok := r.states[id]
	return s, ok
}

func (r *RSI) State(id StateID) (*State, error) {
	s, ok := r.TryGetState(id)
	if !ok {
		path := "<nil>"
		if r != nil {
			path = r.Path
		}
		return nil, fmt.Errorf("%w: %q in %s", ErrStateNotFound, id, path)
	}
	return s, nil
}

// StateIDs returns all state ids sorted by name.
func (r *RSI) StateIDs() []StateID {
	if r == nil {
		return nil
	}
	ids := make([]StateID, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
