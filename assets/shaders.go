package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// DimShader greys out sprites whose animation is paused
	DimShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	dimSrc, err := shaderFS.ReadFile("shaders/dim.kage")
	if err != nil {
		return err
	}
	DimShader, err = ebiten.NewShader(dimSrc)
	if err != nil {
		return err
	}
	return nil
}
