package scenes

import (
	"io/fs"
	"log"
	"os"
	"sync"

	"github.com/automoto/spriteanim/assets"
	"github.com/automoto/spriteanim/assets/rsi"
	cfg "github.com/automoto/spriteanim/config"
	"github.com/automoto/spriteanim/sprite"
	"github.com/automoto/spriteanim/systems"
	"github.com/automoto/spriteanim/systems/factory"
	"github.com/automoto/spriteanim/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerScene lays every state of every RSI out on a grid and animates it.
type ViewerScene struct {
	ecs     *ecs.ECS
	root    string
	cache   *assets.Cache
	timing  *systems.GameTiming
	sprites *systems.SpriteSystem
	panel   *ui.IconPanel
	watcher *assets.Watcher
	once    sync.Once
}

// NewViewerScene shows the RSIs found under root. An empty root shows the
// generated demo RSI.
func NewViewerScene(root string) *ViewerScene {
	var fsys fs.FS
	if root != "" {
		fsys = os.DirFS(root)
	}
	return &ViewerScene{
		root:  root,
		cache: assets.NewCache(fsys),
	}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Viewer.BackgroundColor)
	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)
}

// Close stops the file watcher.
func (vs *ViewerScene) Close() error {
	if vs.watcher == nil {
		return nil
	}
	return vs.watcher.Close()
}

func (vs *ViewerScene) configure() {
	paths := vs.findRSIs()

	vs.timing = systems.NewGameTiming()
	vs.sprites = systems.NewSpriteSystem(vs.cache, vs.timing)
	vs.ecs = ecs.NewECS(donburi.NewWorld())

	var changed <-chan string
	var errs <-chan error
	if vs.root != "" && len(paths) > 0 {
		w, err := assets.NewWatcher(vs.root, paths...)
		if err != nil {
			log.Printf("Warning: hot reload disabled: %v", err)
		} else {
			vs.watcher = w
			changed, errs = w.Events, w.Errors
		}
	}
	systems.RsiReloaded.Subscribe(vs.ecs.World, systems.RebindSprites)
	reload := systems.NewReloadSystem(vs.cache, changed, errs)

	icons := vs.spawnGrid(paths)
	vs.panel = ui.NewIconPanel(vs.sprites, vs.timing, icons, vs.scrubLength(icons))

	vs.ecs.AddSystem(vs.timing.Tick)
	vs.ecs.AddSystem(systems.UpdateInput)
	vs.ecs.AddSystem(systems.UpdatePause)
	vs.ecs.AddSystem(systems.UpdateCamera)
	vs.ecs.AddSystem(reload.Update)
	vs.ecs.AddSystem(systems.QueueVisibleSprites(vs.sprites))
	vs.ecs.AddSystem(vs.sprites.Update)
	vs.ecs.AddSystem(vs.panel.Update)
	vs.ecs.AddSystem(systems.SaveSettingsIfDirty)

	vs.ecs.AddRenderer(cfg.Default, systems.DrawSprites)
	vs.ecs.AddRenderer(cfg.Overlay, vs.panel.Draw)
	vs.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug(vs.sprites, vs.timing))

	settings := systems.GetOrCreateSettings(vs.ecs)
	settings.SyncAll = cfg.Animation.SyncAll
	settings.ShowDebug = cfg.Debug.Overlay
	saved, err := systems.LoadSettings()
	if err != nil {
		log.Printf("Warning: ignoring saved settings: %v", err)
	}
	if saved != nil {
		systems.ApplySavedSettings(vs.ecs, saved)
		return
	}
	systems.ApplySettings(vs.ecs)
}

func (vs *ViewerScene) findRSIs() []string {
	paths, err := vs.cache.FindRSIs()
	if err != nil {
		log.Printf("Warning: could not scan %s: %v", vs.root, err)
	}
	if len(paths) == 0 {
		vs.cache.Add(assets.DemoRSI())
		paths = []string{assets.DemoRSIPath}
	}
	return paths
}

// spawnGrid creates Copies sprites per state, row-major, and returns one icon
// per state.
func (vs *ViewerScene) spawnGrid(paths []string) []ui.Icon {
	type cell struct {
		r     *rsi.RSI
		state rsi.StateID
	}
	var cells []cell
	var icons []ui.Icon
	for _, p := range paths {
		r, err := vs.cache.RSI(p)
		if err != nil {
			log.Printf("Warning: skipping %s: %v", p, err)
			continue
		}
		for _, id := range r.StateIDs() {
			cells = append(cells, cell{r, id})
			icons = append(icons, ui.Icon{
				Label: string(id),
				Spec:  sprite.RsiSpecifier{RsiPath: p, State: id},
			})
		}
	}

	copies := max(cfg.Viewer.Copies, 1)
	columns := max(cfg.Viewer.Columns, 1)
	pitch := cfg.Viewer.CellSize + cfg.Viewer.CellPadding
	count := len(cells) * copies
	rows := (count + columns - 1) / columns

	width := max(columns*pitch, cfg.C.Width)
	height := max(rows*pitch, cfg.C.Height)
	cellSize := max(cfg.Viewer.SpaceCellSize, 1)
	factory.CreateSpace(vs.ecs, width, height, cellSize, cellSize)

	center := func(n int) float64 { return float64(n) / 2 }
	factory.CreateCamera(vs.ecs, center(min(columns*pitch, width)), center(min(rows*pitch, height)))

	i := 0
	for _, c := range cells {
		for n := 0; n < copies; n++ {
			col, row := i%columns, i/columns
			factory.CreateSprite(vs.ecs, vs.sprites, factory.SpriteParams{
				X:         float64(col*pitch + cfg.Viewer.CellPadding/2),
				Y:         float64(row*pitch + cfg.Viewer.CellPadding/2),
				W:         float64(cfg.Viewer.CellSize),
				H:         float64(cfg.Viewer.CellSize),
				BaseRSI:   c.r,
				Layers:    []sprite.LayerSpec{{State: c.state}},
				Direction: rsi.Direction(n % 4),
			})
			i++
		}
	}
	return icons
}

// scrubLength is the cycle length of the first icon's state.
func (vs *ViewerScene) scrubLength(icons []ui.Icon) float64 {
	if len(icons) == 0 {
		return 0
	}
	spec := icons[0].Spec.(sprite.RsiSpecifier)
	r, err := vs.cache.RSI(spec.RsiPath)
	if err != nil {
		return 0
	}
	state, _ := rsi.Resolve(r, spec.State)
	return state.TotalDelay()
}
