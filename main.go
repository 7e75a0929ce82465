package main

import (
	"flag"
	"image"
	"log"
	"log/slog"

	"github.com/automoto/spriteanim/assets"
	"github.com/automoto/spriteanim/config"
	"github.com/automoto/spriteanim/fonts"
	"github.com/automoto/spriteanim/scenes"
	"github.com/automoto/spriteanim/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	assetsDir := flag.String("assets", "", "directory scanned for RSIs (empty shows the demo RSI)")
	configPath := flag.String("config", "", "YAML file overriding the built-in configuration")
	syncAll := flag.Bool("sync", false, "start with every sprite synchronized")
	debug := flag.Bool("debug", false, "start with the debug overlay shown")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverrides(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *syncAll {
		config.Animation.SyncAll = true
	}
	if *debug {
		config.Debug.Overlay = true
	}

	systems.SetLogger(slog.Default())

	if err := fonts.LoadDefaults(config.Debug.FontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	if err := assets.LoadShaders(); err != nil {
		log.Printf("Warning: paused sprites will not be dimmed: %v", err)
	}

	// Settings still work without persistence, they are just not saved.
	if err := systems.InitPersistence(config.Viewer.AppName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	scene := scenes.NewViewerScene(*assetsDir)
	defer scene.Close()

	if err := ebiten.RunGame(NewGame(scene)); err != nil {
		log.Fatal(err)
	}
}
