// Package watch reloads the mode registry when definition files change.
package watch

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/modekit/modekit/internal/event"
	"github.com/modekit/modekit/internal/logging"
	"github.com/modekit/modekit/internal/mode"
)

// debounceDelay coalesces bursts of fsnotify events (editors write a file
// several times per save) into a single reload.
const debounceDelay = 250 * time.Millisecond

// Watcher monitors mode definition directories and swaps the registry
// contents wholesale when they change.
type Watcher struct {
	watcher  *fsnotify.Watcher
	loader   *mode.Loader
	registry *mode.Registry
	dirs     []string
	stopCh   chan struct{}
	doneCh   chan struct{}
	started  bool
	mu       sync.RWMutex
}

// NewWatcher creates a watcher over the given source directories. Directories
// that do not exist yet are skipped; the parent is watched instead so a later
// mkdir is still noticed. Returns nil if nothing can be watched.
func NewWatcher(loader *mode.Loader, registry *mode.Registry, dirs ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		loader:   loader,
		registry: registry,
		dirs:     dirs,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}

	watched := w.addTargets()
	if watched == 0 {
		_ = fw.Close()
		logging.Debug().Msg("no mode directories to watch, watcher disabled")
		return nil, nil
	}

	logging.Info().Int("dirs", watched).Msg("mode watcher initialized")

	return w, nil
}

// addTargets registers every existing source directory and its modes/
// subdirectory with fsnotify. Adding a target twice is a no-op, so this is
// called again on each reload to pick up directories created after startup.
func (w *Watcher) addTargets() int {
	watched := 0
	for _, dir := range w.dirs {
		if dir == "" {
			continue
		}
		for _, target := range []string{dir, filepath.Join(dir, "modes")} {
			if _, statErr := os.Stat(target); statErr != nil {
				continue
			}
			if addErr := w.watcher.Add(target); addErr != nil {
				logging.Warn().Str("dir", target).Err(addErr).Msg("cannot watch mode directory")
				continue
			}
			watched++
		}
	}
	return watched
}

// Start begins watching for definition changes.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	w.mu.Unlock()
	go w.run()
}

func (w *Watcher) run() {
	defer close(w.doneCh)

	var debounce *time.Timer
	var debounceCh <-chan time.Time

	for {
		select {
		case <-w.stopCh:
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !relevant(ev) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(debounceDelay)
				debounceCh = debounce.C
			} else {
				debounce.Reset(debounceDelay)
			}
		case <-debounceCh:
			debounce = nil
			debounceCh = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Error().Err(err).Msg("mode watcher error")
			event.Publish(event.Event{Type: event.WatchError, Data: err.Error()})
		}
	}
}

// relevant reports whether an fsnotify event can affect the registry.
func relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Base(ev.Name)
	return strings.HasSuffix(name, ".md") ||
		name == "modes.json" || name == "modes.jsonc" || name == "modes"
}

// reload rebuilds the registry from scratch and publishes the result. The
// mode set is static per checkout, so a change means a wholesale reload.
func (w *Watcher) reload() {
	// A modes/ directory created after startup must start being watched now
	w.addTargets()

	fresh, issues := w.loader.Load()
	w.registry.SetModes(fresh.List())

	logging.Info().
		Int("modes", w.registry.Count()).
		Int("issues", len(issues)).
		Msg("mode registry reloaded")

	for _, issue := range issues {
		event.PublishSync(event.Event{
			Type: event.ModeInvalid,
			Data: event.ModeInvalidData{Path: issue.Path, Slug: issue.Slug, Reason: issue.Err.Error()},
		})
	}

	event.PublishSync(event.Event{
		Type: event.RegistryReloaded,
		Data: event.RegistryReloadedData{Modes: w.registry.Count(), Issues: len(issues)},
	})
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()

	select {
	case <-w.stopCh:
		// Already stopped
	default:
		close(w.stopCh)
	}

	if started {
		<-w.doneCh
	}

	return w.watcher.Close()
}
