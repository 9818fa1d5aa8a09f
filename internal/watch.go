package internal

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const defaultSettle = 100 * time.Millisecond

// Watcher calls onChange whenever the watched file is written.
type Watcher struct {
	path     string
	logger   *zap.Logger
	onChange func(context.Context)
	settle   time.Duration

	watcher    *fsnotify.Watcher
	mu         sync.Mutex
	isWatching bool
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewWatcher(path string, logger *zap.Logger, onChange func(context.Context)) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{
		path:     abs,
		logger:   logger,
		onChange: onChange,
		settle:   defaultSettle,
	}, nil
}

// StartWatching watches the directory holding the file, so editors that
// replace the file on save are still seen.
func (w *Watcher) StartWatching(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isWatching {
		return errors.New("already watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.watcher = watcher
	w.done = make(chan struct{})
	w.isWatching = true
	go w.watchLoop(ctx)
	return nil
}

func (w *Watcher) StopWatching() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isWatching {
		w.logger.Debug("not watching")
		return nil
	}

	w.isWatching = false
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.done)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleFileEvent(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(ctx context.Context, event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	select {
	case <-ctx.Done():
		return
	case <-time.After(w.settle):
	}
	w.drain()

	w.logger.Info("config changed", zap.String("file", w.path))
	w.onChange(ctx)
}

// drain discards events queued during the settle period.
func (w *Watcher) drain() {
	for {
		select {
		case _, ok := <-w.watcher.Events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
