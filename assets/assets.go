package assets

import (
	"bytes"
	"fmt"
	_ "image/png"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/spriteanim/assets/rsi"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Cache loads RSIs and textures from a file system and keeps them by path.
// Failed loads are not cached so a later fix on disk is picked up.
// Cache is not safe for concurrent use; it belongs to the game loop.
type Cache struct {
	fsys     fs.FS
	rsis     map[string]*rsi.RSI
	textures map[string]*ebiten.Image
}

func NewCache(fsys fs.FS) *Cache {
	return &Cache{
		fsys:     fsys,
		rsis:     make(map[string]*rsi.RSI),
		textures: make(map[string]*ebiten.Image),
	}
}

// FS returns the file system the cache reads from.
func (c *Cache) FS() fs.FS {
	return c.fsys
}

// Add registers an RSI that was built in memory under its own path.
func (c *Cache) Add(r *rsi.RSI) {
	c.rsis[cleanPath(r.Path)] = r
}

// RSI returns the RSI at p. Directories holding a meta file load as RSI
// directories, .tmx files load through Tiled.
func (c *Cache) RSI(p string) (*rsi.RSI, error) {
	p = cleanPath(p)
	if r, ok := c.rsis[p]; ok {
		return r, nil
	}
	r, err := c.load(p)
	if err != nil {
		return nil, err
	}
	c.rsis[p] = r
	return r, nil
}

func (c *Cache) MustRSI(p string) *rsi.RSI {
	r, err := c.RSI(p)
	if err != nil {
		panic(fmt.Sprintf("Failed to load rsi %s: %v", p, err))
	}
	return r
}

// Texture returns the decoded image at p.
func (c *Cache) Texture(p string) (*ebiten.Image, error) {
	p = cleanPath(p)
	if img, ok := c.textures[p]; ok {
		return img, nil
	}
	if c.fsys == nil {
		return nil, fmt.Errorf("load texture %s: %w", p, fs.ErrNotExist)
	}
	data, err := fs.ReadFile(c.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", p, err)
	}
	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", p, err)
	}
	c.textures[p] = img
	return img, nil
}

// Invalidate drops any cached RSI or texture at p.
func (c *Cache) Invalidate(p string) {
	p = cleanPath(p)
	delete(c.rsis, p)
	delete(c.textures, p)
}

// Reload loads p again and replaces the cached RSI only on success.
func (c *Cache) Reload(p string) (*rsi.RSI, error) {
	p = cleanPath(p)
	r, err := c.load(p)
	if err != nil {
		return nil, err
	}
	c.rsis[p] = r
	return r, nil
}

// FindRSIs walks the file system and returns every RSI path, sorted.
func (c *Cache) FindRSIs() ([]string, error) {
	if c.fsys == nil {
		return nil, nil
	}
	var found []string
	err := fs.WalkDir(c.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && rsi.IsRSIDir(c.fsys, p) {
				found = append(found, p)
				return fs.SkipDir
			}
			return nil
		}
		if isTiledMap(p) {
			found = append(found, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find rsis: %w", err)
	}
	sort.Strings(found)
	return found, nil
}

func (c *Cache) load(p string) (*rsi.RSI, error) {
	if c.fsys == nil {
		return nil, fmt.Errorf("load rsi %s: %w", p, fs.ErrNotExist)
	}
	if isTiledMap(p) {
		return rsi.LoadTiled(c.fsys, p)
	}
	return rsi.Load(c.fsys, p)
}

func isTiledMap(p string) bool {
	return strings.EqualFold(path.Ext(p), ".tmx")
}

func cleanPath(p string) string {
	return path.Clean(strings.TrimPrefix(p, "/"))
}
