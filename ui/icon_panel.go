package ui

import (
	"image/color"

	cfg "github.com/automoto/spriteanim/config"
	"github.com/automoto/spriteanim/fonts"
	"github.com/automoto/spriteanim/sprite"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// FrameSource resolves an icon frame from a specifier and a time. An
// unsupported specifier panics.
type FrameSource interface {
	MustGetFrame(spec sprite.Specifier, curTime float64, loop bool) *ebiten.Image
}

// Clock supplies the per-tick delta the panel plays icons with.
type Clock interface {
	FrameDelta() float64
}

// Icon is one entry in the panel.
type Icon struct {
	Label string
	Spec  sprite.Specifier
}

type iconWidget struct {
	spec    sprite.Specifier
	graphic *widget.Graphic
}

// IconPanel is a strip of icons along the bottom of the screen. Icons are
// drawn through MustGetFrame, so they animate without any entity behind them.
// The last icon plays its first entry once per scrub tween without looping.
type IconPanel struct {
	UI *ebitenui.UI

	frames FrameSource
	clock  Clock

	icons   []iconWidget
	scrub   iconWidget
	tween   *gween.Tween
	elapsed float64

	labelFace text.Face
}

// NewIconPanel builds the panel for icons. scrubLength is the cycle length
// the scrub icon covers, in seconds of animation time.
func NewIconPanel(frames FrameSource, clock Clock, icons []Icon, scrubLength float64) *IconPanel {
	p := &IconPanel{
		frames:    frames,
		clock:     clock,
		labelFace: fonts.Small.Face(),
	}
	duration := cfg.Viewer.ScrubDuration
	if duration <= 0 {
		duration = 1
	}
	p.tween = gween.New(0, float32(scrubLength), float32(duration), ease.Linear)
	p.buildUI(icons)
	p.refresh(0)
	return p
}

func (p *IconPanel) buildUI(icons []Icon) {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Debug.BoxColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(cfg.Viewer.IconSpacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	for _, ic := range icons {
		w := p.addIcon(row, ic.Label, ic.Spec)
		p.icons = append(p.icons, w)
	}
	if len(icons) > 0 {
		p.scrub = p.addIcon(row, "scrub", icons[0].Spec)
	}

	root.AddChild(row)
	p.UI = &ebitenui.UI{Container: root}
}

func (p *IconPanel) addIcon(row *widget.Container, label string, spec sprite.Specifier) iconWidget {
	cell := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(2),
		)),
	)
	graphic := widget.NewGraphic(
		widget.GraphicOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(cfg.Viewer.IconSize, cfg.Viewer.IconSize),
		),
	)
	cell.AddChild(graphic)
	cell.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(label, &p.labelFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 200, 255},
		}),
	))
	row.AddChild(cell)
	return iconWidget{spec: spec, graphic: graphic}
}

// Update advances the panel clock and re-resolves every icon.
func (p *IconPanel) Update(_ *ecs.ECS) {
	dt := p.clock.FrameDelta()
	p.elapsed += dt

	pos, finished := p.tween.Update(float32(dt))
	if finished {
		p.tween.Reset()
	}
	p.refresh(float64(pos))
	p.UI.Update()
}

// Draw renders the panel on top of the scene.
func (p *IconPanel) Draw(_ *ecs.ECS, screen *ebiten.Image) {
	p.UI.Draw(screen)
}

// Elapsed is the time the looping icons are shown at.
func (p *IconPanel) Elapsed() float64 {
	return p.elapsed
}

func (p *IconPanel) refresh(scrubTime float64) {
	for _, ic := range p.icons {
		ic.graphic.Image = p.frames.MustGetFrame(ic.spec, p.elapsed, true)
	}
	if p.scrub.graphic != nil {
		p.scrub.graphic.Image = p.frames.MustGetFrame(p.scrub.spec, scrubTime, false)
	}
}
