package rsi

import (
	"bytes"
	"fmt"
	"image"
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"
)

// TiledStateProperty is the tile property naming the state a tile provides.
const TiledStateProperty = "state"

// LoadTiled builds an RSI from the tilesets of a Tiled map. Every tile with a
// "state" property becomes a single-direction state; its tile animation
// supplies frames and delays (milliseconds in Tiled, seconds here).
func LoadTiled(fsys fs.FS, tmxPath string) (*RSI, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load tiled rsi %s: %w", tmxPath, err)
	}

	var size image.Point
	var states []*State
	for _, ts := range levelMap.Tilesets {
		if ts.Image == nil {
			return nil, fmt.Errorf("load tiled rsi %s: tileset %q has no sheet image", tmxPath, ts.Name)
		}
		if size == (image.Point{}) {
			size = image.Pt(ts.TileWidth, ts.TileHeight)
		}

		sheetPath := filepath.ToSlash(ts.GetFileFullPath(ts.Image.Source))
		sheetBytes, err := fs.ReadFile(fsys, sheetPath)
		if err != nil {
			return nil, fmt.Errorf("load tiled rsi %s: read sheet %s: %w", tmxPath, sheetPath, err)
		}
		sheet, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(sheetBytes))
		if err != nil {
			return nil, fmt.Errorf("load tiled rsi %s: decode sheet %s: %w", tmxPath, sheetPath, err)
		}

		for _, tile := range ts.Tiles {
			name := tile.Properties.GetString(TiledStateProperty)
			if name == "" {
				continue
			}
			state, err := tiledState(ts, sheet, tile, StateID(name))
			if err != nil {
				return nil, fmt.Errorf("load tiled rsi %s: %w", tmxPath, err)
			}
			states = append(states, state)
		}
	}

	return New(tmxPath, size, states...), nil
}

func tiledState(ts *tiled.Tileset, sheet *ebiten.Image, tile *tiled.TilesetTile, id StateID) (*State, error) {
	if len(tile.Animation) == 0 {
		frame := sheet.SubImage(ts.GetTileRect(tile.ID)).(*ebiten.Image)
		return NewState(id, [][]*ebiten.Image{{frame}}, nil)
	}

	frames := make([]*ebiten.Image, len(tile.Animation))
	delays := make([]float64, len(tile.Animation))
	for i, af := range tile.Animation {
		frames[i] = sheet.SubImage(ts.GetTileRect(af.TileID)).(*ebiten.Image)
		delays[i] = float64(af.Duration) / 1000
	}
	return NewState(id, [][]*ebiten.Image{frames}, delays)
}
