package rsi

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// IsRSIDir reports whether dir contains a meta file.
func IsRSIDir(fsys fs.FS, dir string) bool {
	_, _, err := readMeta(fsys, dir)
	return err == nil
}

// Load reads an RSI directory: a meta file plus one PNG sheet per state.
// Frames are laid out row-major with all frames of a direction before the next direction.
func Load(fsys fs.FS, dir string) (*RSI, error) {
	metaName, data, err := readMeta(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("load rsi %s: %w", dir, err)
	}
	meta, err := ParseMeta(metaName, data)
	if err != nil {
		return nil, fmt.Errorf("load rsi %s: %w", dir, err)
	}

	size := image.Pt(meta.Size.X, meta.Size.Y)
	states := make([]*State, 0, len(meta.States))
	for _, ms := range meta.States {
		sheetPath := path.Join(dir, ms.Name+".png")
		sheetBytes, err := fs.ReadFile(fsys, sheetPath)
		if err != nil {
			return nil, fmt.Errorf("load rsi %s: read sheet %s: %w", dir, sheetPath, err)
		}
		sheet, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(sheetBytes))
		if err != nil {
			return nil, fmt.Errorf("load rsi %s: decode sheet %s: %w", dir, sheetPath, err)
		}

		frames, err := sliceSheet(sheet, size, ms.DirectionCount(), ms.FrameCount())
		if err != nil {
			return nil, fmt.Errorf("load rsi %s: state %q: %w", dir, ms.Name, err)
		}
		state, err := NewState(StateID(ms.Name), frames, ms.FrameDelays())
		if err != nil {
			return nil, fmt.Errorf("load rsi %s: %w", dir, err)
		}
		states = append(states, state)
	}

	return New(dir, size, states...), nil
}

func readMeta(fsys fs.FS, dir string) (string, []byte, error) {
	for _, name := range MetaFileNames {
		p := path.Join(dir, name)
		data, err := fs.ReadFile(fsys, p)
		if err == nil {
			return p, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, err
		}
	}
	return "", nil, fmt.Errorf("no meta file: %w", fs.ErrNotExist)
}

func sliceSheet(sheet *ebiten.Image, size image.Point, directions, perDirection int) ([][]*ebiten.Image, error) {
	bounds := sheet.Bounds()
	cols := bounds.Dx() / size.X
	rows := bounds.Dy() / size.Y
	need := directions * perDirection
	if cols == 0 || cols*rows < need {
		return nil, fmt.Errorf("sheet %dx%d holds %d frames of %dx%d, need %d",
			bounds.Dx(), bounds.Dy(), cols*rows, size.X, size.Y, need)
	}

	frames := make([][]*ebiten.Image, directions)
	for dir := 0; dir < directions; dir++ {
		list := make([]*ebiten.Image, perDirection)
		for i := 0; i < perDirection; i++ {
			k := dir*perDirection + i
			x := bounds.Min.X + (k%cols)*size.X
			y := bounds.Min.Y + (k/cols)*size.Y
			list[i] = sheet.SubImage(image.Rect(x, y, x+size.X, y+size.Y)).(*ebiten.Image)
		}
		frames[dir] = list
	}
	return frames, nil
}
