package content

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nfrund/landing/internal/pubsub"
)

// TopicReloaded is published after content on disk changed and was reloaded.
const TopicReloaded = "content.reloaded"

const defaultDebounce = 150 * time.Millisecond

// Watcher reloads the Store when YAML files in a content directory change.
// Editors tend to emit several events per save, so reloads are debounced.
type Watcher struct {
	dir       string
	store     *Store
	publisher pubsub.Publisher
	debounce  time.Duration
}

// NewWatcher creates a watcher for dir. publisher may be nil.
func NewWatcher(dir string, store *Store, publisher pubsub.Publisher) *Watcher {
	return &Watcher{dir: dir, store: store, publisher: publisher, debounce: defaultDebounce}
}

// WithDebounce overrides the quiet period between the last event and the reload.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	w.debounce = d
	return w
}

// Start begins watching in the background until ctx is canceled.
func (w *Watcher) Start(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if err := fw.Add(w.dir); err != nil {
		fw.Close()
		return fmt.Errorf("failed to watch content directory %s: %w", w.dir, err)
	}

	go w.run(ctx, fw)
	slog.Info("Watching content directory for changes", "dir", w.dir)
	return nil
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher) {
	defer func() {
		fw.Close()
		slog.Info("Content watcher stopped", "dir", w.dir)
	}()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			if !isContentFile(event.Name) || event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			slog.Debug("Content file event", "event", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context) {
	if err := w.store.Reload(); err != nil {
		return
	}
	if w.publisher == nil {
		return
	}
	msg := pubsub.Message{
		Topic:    TopicReloaded,
		Payload:  []byte(w.dir),
		Metadata: map[string]string{"reloaded_at": time.Now().UTC().Format(time.RFC3339)},
	}
	if err := w.publisher.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish content reload", "error", err)
	}
}

func isContentFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
