// Package watch delivers settled file-change notifications for the
// exercises tree. Rapid saves from editors are debounced so one save
// yields one event.
package watch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const (
	settleInterval = 100 * time.Millisecond
	debounceWindow = 300 * time.Millisecond
)

// Watcher emits the path of every exercise file that changed and settled.
type Watcher struct {
	fs  *fsnotify.Watcher
	log zerolog.Logger

	mu      sync.Mutex
	pending map[string]time.Time
	running bool

	events chan string
	stopCh chan struct{}
	doneCh chan struct{}
}

// New creates a watcher over the given directories. Only .go and .md
// files produce events.
func New(dirs []string, log zerolog.Logger) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := fs.Add(dir); err != nil {
			fs.Close()
			return nil, err
		}
	}
	return &Watcher{
		fs:      fs,
		log:     log,
		pending: make(map[string]time.Time),
		events:  make(chan string, 16),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Events returns the settled-change channel.
func (w *Watcher) Events() <-chan string { return w.events }

// Start launches the event loop. It is non-blocking.
func (w *Watcher) Start(ctx context.Context) {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mu.Unlock()

	go w.run(ctx)
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		w.fs.Close()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	if err := w.fs.Close(); err != nil {
		w.log.Error().Err(err).Msg("closing fsnotify watcher")
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	settle := time.NewTicker(settleInterval)
	defer settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Error().Err(err).Msg("watch error")
		case <-settle.C:
			w.flush()
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !strings.HasSuffix(event.Name, ".go") && !strings.HasSuffix(event.Name, ".md") {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	w.log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("file event")

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *Watcher) flush() {
	now := time.Now()

	w.mu.Lock()
	var settled []string
	for path, last := range w.pending {
		if now.Sub(last) >= debounceWindow {
			settled = append(settled, path)
			delete(w.pending, path)
		}
	}
	w.mu.Unlock()

	for _, path := range settled {
		select {
		case w.events <- path:
		default:
			// a slow consumer drops stale notifications, the next save
			// will trigger another run anyway
		}
	}
}
