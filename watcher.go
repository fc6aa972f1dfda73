package waveguide

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// ConfigWatcher reloads a config file when it changes on disk and delivers
// each successfully parsed config on Updates. Invalid files are logged and
// skipped, keeping the last good config in effect.
//
// The watcher runs its own goroutine but never touches the scene: the
// render loop drains Updates between frames.
type ConfigWatcher struct {
	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	path     string
	logger   *log.Logger
	debounce time.Duration
	pending  time.Time // zero when no change is waiting
	updates  chan Config
	stopCh   chan struct{}
	doneCh   chan struct{}
	running  bool
}

// NewConfigWatcher creates a watcher for path. The containing directory is
// watched so that editors replacing the file atomically are noticed.
func NewConfigWatcher(path string, logger *log.Logger) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ConfigWatcher{
		watcher:  w,
		path:     abs,
		logger:   logger,
		debounce: 200 * time.Millisecond,
		updates:  make(chan Config, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Updates returns the channel of reloaded configs. Only the newest pending
// config is kept.
func (cw *ConfigWatcher) Updates() <-chan Config {
	return cw.updates
}

// Start begins watching. It is non-blocking.
func (cw *ConfigWatcher) Start(ctx context.Context) error {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return nil
	}
	cw.running = true
	cw.mu.Unlock()

	if err := cw.watcher.Add(filepath.Dir(cw.path)); err != nil {
		cw.mu.Lock()
		cw.running = false
		cw.mu.Unlock()
		return fmt.Errorf("watch %s: %w", filepath.Dir(cw.path), err)
	}
	cw.logger.Debug("watching config", "path", cw.path)

	go cw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine to exit.
func (cw *ConfigWatcher) Stop() {
	cw.mu.Lock()
	wasRunning := cw.running
	cw.running = false
	cw.mu.Unlock()

	if wasRunning {
		close(cw.stopCh)
		<-cw.doneCh
	}
	if err := cw.watcher.Close(); err != nil {
		cw.logger.Warn("close config watcher", "err", err)
	}
}

func (cw *ConfigWatcher) run(ctx context.Context) {
	defer close(cw.doneCh)

	ticker := time.NewTicker(cw.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-cw.stopCh:
			return
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)
		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			cw.logger.Warn("config watcher", "err", err)
		case <-ticker.C:
			cw.flush()
		}
	}
}

func (cw *ConfigWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != cw.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	cw.pending = time.Now()
}

// flush reloads the config once changes have settled for the debounce window.
func (cw *ConfigWatcher) flush() {
	if cw.pending.IsZero() || time.Since(cw.pending) < cw.debounce {
		return
	}
	cw.pending = time.Time{}

	cfg, err := LoadConfig(cw.path)
	if err != nil {
		cw.logger.Warn("config reload rejected", "err", err)
		return
	}

	// Replace any config the render loop has not picked up yet.
	select {
	case <-cw.updates:
	default:
	}
	cw.updates <- cfg
	cw.logger.Info("config reloaded", "path", cw.path, "layers", cfg.Layers)
}
