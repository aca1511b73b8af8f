package config

import (
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
)

// Watcher reloads only the stick-mapper and guidance tuning scalars
// from a profile file on change, for in-season driver-feel tuning
// without redeploying. It never touches drivebase geometry, inversion
// flags, or plant wiring — those are read once at startup via Load and
// are not reachable through Watcher at all, honoring "no dynamic
// hardware reconfiguration mid-run."
type Watcher struct {
	path string
	fsw  *fsnotify.Watcher

	mu       sync.RWMutex
	stick    StickTuning
	guidance GuidanceTuning

	onError func(error)
}

// NewWatcher starts watching path for changes, seeding its tuning
// values from seed (typically the Profile returned by Load). onError, if non-nil, receives decode and
// filesystem errors encountered after the initial load; a malformed
// write is logged, not fatal, and the previous good tuning is retained.
func NewWatcher(path string, seed Profile, onError func(error)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		fsw:      fsw,
		stick:    seed.Stick,
		guidance: seed.Guidance,
		onError:  onError,
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.reload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			if w.onError != nil {
				w.onError(err)
			}
		}
	}
}

func (w *Watcher) reload() {
	var tuning struct {
		Stick    StickTuning    `toml:"stick"`
		Guidance GuidanceTuning `toml:"guidance"`
	}
	if _, err := toml.DecodeFile(w.path, &tuning); err != nil {
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.mu.Lock()
	w.stick = tuning.Stick
	w.guidance = tuning.Guidance
	w.mu.Unlock()
}

// Stick returns the most recently loaded stick-mapper tuning.
func (w *Watcher) Stick() StickTuning {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stick
}

// Guidance returns the most recently loaded guidance tuning.
func (w *Watcher) Guidance() GuidanceTuning {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.guidance
}

// Close stops watching and releases the underlying fsnotify handle.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}
