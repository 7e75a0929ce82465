package rsi

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrBadMeta = errors.New("rsi: malformed meta")

// Meta mirrors an RSI meta file.
type Meta struct {
	Version   int         `json:"version" yaml:"version"`
	License   string      `json:"license,omitempty" yaml:"license,omitempty"`
	Copyright string      `json:"copyright,omitempty" yaml:"copyright,omitempty"`
	Size      MetaSize    `json:"size" yaml:"size"`
	States    []MetaState `json:"states" yaml:"states"`
}

type MetaSize struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type MetaState struct {
	Name       string      `json:"name" yaml:"name"`
	Directions int         `json:"directions,omitempty" yaml:"directions,omitempty"`
	Delays     [][]float64 `json:"delays,omitempty" yaml:"delays,omitempty"`
}

// MetaFileNames lists the meta file names probed inside an RSI directory, in order.
var MetaFileNames = []string{"meta.json", "meta.yml", "meta.yaml"}

// ParseMeta decodes meta data. name selects the decoder by extension;
// .yml and .yaml use YAML, everything else JSON.
func ParseMeta(name string, data []byte) (*Meta, error) {
	var m Meta
	switch strings.ToLower(path.Ext(name)) {
	case ".yml", ".yaml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadMeta, name, err)
		}
	default:
		if err := json.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadMeta, name, err)
		}
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrBadMeta, name, err)
	}
	return &m, nil
}

func (m *Meta) validate() error {
	if m.Size.X <= 0 || m.Size.Y <= 0 {
		return fmt.Errorf("invalid size %dx%d", m.Size.X, m.Size.Y)
	}
	seen := make(map[string]bool, len(m.States))
	for _, s := range m.States {
		if s.Name == "" {
			return errors.New("state without name")
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate state %q", s.Name)
		}
		seen[s.Name] = true
		switch s.DirectionCount() {
		case 1, 4, 8:
		default:
			return fmt.Errorf("state %q: unsupported direction count %d", s.Name, s.Directions)
		}
		if len(s.Delays) > 0 && len(s.Delays) != s.DirectionCount() {
			return fmt.Errorf("state %q: %d delay lists for %d directions", s.Name, len(s.Delays), s.DirectionCount())
		}
		for i := 1; i < len(s.Delays); i++ {
			if len(s.Delays[i]) != len(s.Delays[0]) {
				return fmt.Errorf("state %q: direction %d has %d delays, want %d", s.Name, i, len(s.Delays[i]), len(s.Delays[0]))
			}
		}
	}
	return nil
}

func (s MetaState) DirectionCount() int {
	if s.Directions == 0 {
		return 1
	}
	return s.Directions
}

// FrameDelays returns the delays shared by every direction. Nil means a
// single static frame.
func (s MetaState) FrameDelays() []float64 {
	if len(s.Delays) == 0 {
		return nil
	}
	return s.Delays[0]
}

// FrameCount is the number of frames stored per direction.
func (s MetaState) FrameCount() int {
	if n := len(s.FrameDelays()); n > 0 {
		return n
	}
	return 1
}
