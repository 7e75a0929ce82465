package assets

import (
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reports RSI paths whose files changed on disk. Paths on Events are
// relative to the watched root, in the same form Cache uses. A path is
// reported once its files have been quiet for the debounce delay, so a file
// saved in several writes is reloaded after the last one.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	owners  map[string][]string
	delay   time.Duration

	fsEvents <-chan fsnotify.Event
	fsErrors <-chan error

	Events  chan string
	Errors  chan error
	ready   chan string
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches the directories backing rsiPaths under root.
func NewWatcher(root string, rsiPaths ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	owners := ownerDirs(rsiPaths)
	for dir := range owners {
		if err := w.Add(filepath.Join(root, filepath.FromSlash(dir))); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := newWatcher(root, owners, w.Events, w.Errors, reloadDebounce)
	watcher.watcher = w
	go watcher.run()
	return watcher, nil
}

func newWatcher(root string, owners map[string][]string, events <-chan fsnotify.Event, errs <-chan error, delay time.Duration) *Watcher {
	return &Watcher{
		root:     root,
		owners:   owners,
		delay:    delay,
		fsEvents: events,
		fsErrors: errs,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		ready:    make(chan string),
		closeCh:  make(chan struct{}),
	}
}

// ownerDirs maps each watched directory to the RSI paths it backs. A Tiled
// map is owned by the directory it sits in.
func ownerDirs(rsiPaths []string) map[string][]string {
	owners := make(map[string][]string)
	for _, p := range rsiPaths {
		p = cleanPath(p)
		dir := p
		if isTiledMap(p) {
			dir = path.Dir(p)
		}
		owners[dir] = append(owners[dir], p)
	}
	return owners
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		if w.watcher != nil {
			err = w.watcher.Close()
		}
	})
	return err
}

func (w *Watcher) run() {
	pending := make(map[string]*time.Timer)
	defer func() {
		for _, t := range pending {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fsEvents:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			for _, owner := range w.ownersOf(event.Name) {
				if t, ok := pending[owner]; ok {
					t.Reset(w.delay)
					continue
				}
				pending[owner] = time.AfterFunc(w.delay, func() {
					select {
					case w.ready <- owner:
					case <-w.closeCh:
					}
				})
			}
		case owner := <-w.ready:
			delete(pending, owner)
			select {
			case w.Events <- owner:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.fsErrors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) ownersOf(name string) []string {
	rel, err := filepath.Rel(w.root, name)
	if err != nil || strings.HasPrefix(rel, "..") {
		return nil
	}
	return w.owners[path.Dir(filepath.ToSlash(rel))]
}
