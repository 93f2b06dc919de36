package server

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/nutrikit/trophe/pkg/defaults"
	"github.com/nutrikit/trophe/pkg/food"
	"github.com/nutrikit/trophe/pkg/plan"
	"github.com/nutrikit/trophe/pkg/usda"
)

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithStoreLoader sets the dataset loader. Default is usda.NewLoader().
func WithStoreLoader(l plan.Loader) StoreOption {
	return func(s *Store) {
		s.loader = l
	}
}

// Store holds the server's dataset as an immutable snapshot. Refresh and the
// file watcher replace the snapshot pointer under the lock; readers get a
// fixed slice that selection never mutates.
type Store struct {
	source string
	loader plan.Loader

	mu       sync.RWMutex
	records  food.List
	loadedAt time.Time
}

// NewStore creates a Store for the given source. An empty source means the
// embedded sample dataset.
func NewStore(source string, opts ...StoreOption) *Store {
	s := &Store{source: source}

	// Apply options
	for _, opt := range opts {
		opt(s)
	}

	if s.loader == nil {
		s.loader = usda.NewLoader()
	}
	return s
}

// Source returns the configured dataset source.
func (s *Store) Source() string {
	return s.source
}

// Records returns the current snapshot. Callers share the slice and must
// not modify it; a reload swaps in a fresh one instead of touching this.
func (s *Store) Records() food.List {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records
}

// Refresh loads the configured source and swaps the snapshot. On failure
// the previous snapshot stays in place.
func (s *Store) Refresh(ctx context.Context) error {
	records, err := s.loader.Load(ctx, s.source)
	if err != nil {
		datasetReloads.WithLabelValues("error").Inc()
		return fmt.Errorf("failed to refresh dataset: %w", err)
	}

	s.mu.Lock()
	s.records = records
	s.loadedAt = time.Now()
	s.mu.Unlock()

	datasetReloads.WithLabelValues("success").Inc()
	slog.Info("dataset snapshot refreshed",
		"source", displaySource(s.source),
		"records", len(records),
	)
	return nil
}

// Load implements plan.Loader. Requests for the store's own source are
// served from the snapshot; anything else goes to the underlying loader.
func (s *Store) Load(ctx context.Context, source string) (food.List, error) {
	if source == "" || source == s.source {
		if records := s.Records(); records != nil {
			return records, nil
		}
	}
	return s.loader.Load(ctx, source)
}

// Watchable reports whether the source is a plain file the store can watch.
func (s *Store) Watchable() bool {
	return s.source != "" &&
		s.source != usda.SourceEmbedded &&
		!strings.Contains(s.source, "://")
}

// Watch blocks watching the dataset file for changes, reloading after a
// quiet period. Editors and atomic-rename writers fire several events per
// save; the debounce coalesces them into one reload. Returns when ctx is
// done. Non-file sources are not watchable and return immediately.
func (s *Store) Watch(ctx context.Context) error {
	if !s.Watchable() {
		slog.Debug("dataset hot reload unavailable for source", "source", displaySource(s.source))
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create dataset watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: replace-by-rename recreates the file, which
	// drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(s.source)); err != nil {
		return fmt.Errorf("failed to watch dataset directory: %w", err)
	}

	base := filepath.Base(s.source)
	slog.Debug("watching dataset file", "source", s.source)

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Op.Has(fsnotify.Write | fsnotify.Create | fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(defaults.StoreReloadDebounce)
				pending = timer.C
			} else {
				timer.Reset(defaults.StoreReloadDebounce)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("dataset watcher error", "error", err)

		case <-pending:
			timer = nil
			pending = nil
			if err := s.Refresh(ctx); err != nil {
				slog.Error("dataset reload failed, keeping previous snapshot", "error", err)
			}
		}
	}
}

// displaySource names the source in logs, making the embedded default
// explicit.
func displaySource(source string) string {
	if source == "" {
		return usda.SourceEmbedded
	}
	return source
}
