package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideFile mirrors the sections a YAML override file may contain.
// Keys that are absent keep their current value.
type overrideFile struct {
	Window    Config          `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Viewer    ViewerConfig    `yaml:"viewer"`
	Debug     DebugConfig     `yaml:"debug"`
}

// LoadOverrides reads a YAML file and overlays its values onto the global
// configuration.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides overlays YAML data onto the global configuration. Nothing is
// changed when the data fails to parse or validate.
func ApplyOverrides(data []byte) error {
	f := overrideFile{
		Window:    *C,
		Animation: Animation,
		Viewer:    Viewer,
		Debug:     Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}
	if err := f.validate(); err != nil {
		return err
	}

	*C = f.Window
	Animation = f.Animation
	Viewer = f.Viewer
	Debug = f.Debug
	return nil
}

func (f *overrideFile) validate() error {
	switch {
	case f.Window.Width <= 0 || f.Window.Height <= 0:
		return fmt.Errorf("config: window size must be positive, got %dx%d", f.Window.Width, f.Window.Height)
	case f.Window.TPS <= 0:
		return fmt.Errorf("config: tps must be positive, got %d", f.Window.TPS)
	case f.Animation.TimeScale < 0:
		return fmt.Errorf("config: timeScale must not be negative, got %v", f.Animation.TimeScale)
	case f.Animation.MaxDelta < 0:
		return fmt.Errorf("config: maxDelta must not be negative, got %v", f.Animation.MaxDelta)
	case f.Viewer.CellSize <= 0 || f.Viewer.Columns <= 0 || f.Viewer.SpaceCellSize <= 0:
		return fmt.Errorf("config: viewer cellSize, columns and spaceCellSize must be positive")
	}
	return nil
}
