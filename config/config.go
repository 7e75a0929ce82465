package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Config holds general window configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	TPS    int `yaml:"tps"`
	Title  string
}

// AnimationConfig contains frame advance configuration values
type AnimationConfig struct {
	TimeScale float64 `yaml:"timeScale"` // Multiplier applied to the tick delta
	SyncAll   bool    `yaml:"syncAll"`   // Tag every spawned sprite for synchronized animation
	MaxDelta  float64 `yaml:"maxDelta"`  // Upper bound on a single tick delta, seconds (0 = unbounded)
}

// ViewerConfig contains layout and camera values for the sprite viewer
type ViewerConfig struct {
	CellSize        int        `yaml:"cellSize"`    // Grid cell edge in pixels
	CellPadding     int        `yaml:"cellPadding"` // Gap between cells
	Columns         int        `yaml:"columns"`     // Sprites per grid row
	Copies          int        `yaml:"copies"`      // Sprites spawned per state
	CullPadding     float64    `yaml:"cullPadding"` // Extra pixels around the viewport that still animate
	CameraSpeed     float64    `yaml:"cameraSpeed"` // Pixels per tick
	SpaceCellSize   int        `yaml:"spaceCellSize"`
	BackgroundColor color.RGBA `yaml:"backgroundColor"`

	IconSize      int     `yaml:"iconSize"`
	IconSpacing   int     `yaml:"iconSpacing"`
	ScrubDuration float64 `yaml:"scrubDuration"` // Seconds the scrub tween takes to cover one cycle

	AppName string `yaml:"appName"` // gdata application name for persisted settings
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Overlay   bool       `yaml:"overlay"`
	FontSize  float64    `yaml:"fontSize"`
	TextColor color.RGBA `yaml:"textColor"`
	BoxColor  color.RGBA `yaml:"boxColor"`
	InertTint color.RGBA `yaml:"inertTint"` // Outline drawn around inert sprites
}

// Global configuration instances
var C *Config
var Animation AnimationConfig
var Viewer ViewerConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DarkBlue     = color.RGBA{R: 24, G: 28, B: 44, A: 255}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "spriteanim",
	}

	Animation = AnimationConfig{
		TimeScale: 1.0,
		SyncAll:   false,
		MaxDelta:  0.25, // Clamp lag spikes to a quarter second
	}

	Viewer = ViewerConfig{
		CellSize:        48,
		CellPadding:     16,
		Columns:         12,
		Copies:          6,
		CullPadding:     32,
		CameraSpeed:     6,
		SpaceCellSize:   64,
		BackgroundColor: DarkBlue,

		IconSize:      32,
		IconSpacing:   8,
		ScrubDuration: 3.0,

		AppName: "spriteanim",
	}

	Debug = DebugConfig{
		Overlay:   false,
		FontSize:  12,
		TextColor: White,
		BoxColor:  BlackOverlay,
		InertTint: LightRed,
	}
}
