package file

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/veldworks/boeka-cli/internal/core/domain"
	"github.com/veldworks/boeka-cli/internal/core/ports/driven"
	"github.com/veldworks/boeka-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.CatalogWatcher = (*Watcher)(nil)

// reloadInterval caps how often file events trigger a reload. Editors
// tend to emit bursts of writes for a single save.
const reloadInterval = 500 * time.Millisecond

// Watcher reloads the catalog file whenever it changes on disk.
type Watcher struct {
	source  *Source
	limiter *rate.Limiter
}

// NewWatcher creates a watcher over the given catalog source.
func NewWatcher(source *Source) *Watcher {
	return &Watcher{
		source:  source,
		limiter: rate.NewLimiter(rate.Every(reloadInterval), 1),
	}
}

// Watch blocks until ctx is cancelled, invoking onChange with the newly
// loaded catalog after each change to the file. The parent directory is
// watched rather than the file itself, because editors commonly replace
// the file on save which would invalidate a direct watch.
func (w *Watcher) Watch(ctx context.Context, onChange func([]domain.Service)) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer fsWatcher.Close()

	dir := filepath.Dir(w.source.Path())
	if err := fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	target := filepath.Clean(w.source.Path())
	logger.Debug("Watching catalog file %s", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.limiter.Allow() {
				continue
			}

			services, err := w.source.Load(ctx)
			if err != nil {
				logger.Warn("Catalog reload failed: %v", err)
				continue
			}
			logger.Debug("Catalog reloaded: %d services", len(services))
			onChange(services)
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Catalog watch error: %v", err)
		}
	}
}
