package domain

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ammo.dev/pkg/ammo/internal/adapter"
	"ammo.dev/pkg/ammo/internal/controller"
	m "ammo.dev/pkg/ammo/internal/model"
)

// DefaultWatchInterval is how long the tree must stay quiet before a rebuild.
const DefaultWatchInterval = 2 * time.Second

// Cycle is one rebuild triggered by the watcher.
type Cycle func(ctx context.Context) error

// Watcher reruns a cycle whenever the project tree changes.
type Watcher interface {
	// Watch runs cycle once immediately and again after every burst of
	// changes. It returns nil when ctx is cancelled.
	Watch(ctx context.Context, cycle Cycle) error
}

// WatchSettings configures a Watcher.
type WatchSettings struct {
	Interval time.Duration
	Ignore   []string
}

type watcher struct {
	adapter.WatchAdapter
	controller.UI

	project  m.Project
	settings WatchSettings
}

// NewWatcher constructs a Watcher for the tree under the project root.
func NewWatcher(watchAdapter adapter.WatchAdapter, ui controller.UI, project m.Project, settings WatchSettings) Watcher {
	if settings.Interval <= 0 {
		settings.Interval = DefaultWatchInterval
	}

	if settings.Ignore == nil {
		settings.Ignore = adapter.DefaultWatchIgnore
	}

	return &watcher{
		WatchAdapter: watchAdapter,
		UI:           ui,
		project:      project,
		settings:     settings,
	}
}

// running tracks the single in-flight cycle.
type running struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (r *running) stop() {
	if r == nil {
		return
	}

	r.cancel()
	<-r.done
}

func (w *watcher) Watch(ctx context.Context, cycle Cycle) error {
	events, errs, err := w.WatchAdapter.Watch(ctx, w.project.Root, w.settings.Ignore)
	if err != nil {
		return err
	}

	slog.Info("Watching project", "root", w.project.Root, "interval", w.settings.Interval, "ignore", w.settings.Ignore)

	current := w.start(ctx, cycle)
	defer func() {
		current.stop()
	}()

	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-events:
			if !ok {
				events = nil
				continue
			}

			w.DisplayChange(ctx, path)

			debounce = time.After(w.settings.Interval)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			slog.Error("Watcher error", "error", err)
		case <-debounce:
			debounce = nil

			current.stop()
			current = w.start(ctx, cycle)
		}

		if events == nil && errs == nil {
			<-ctx.Done()
			return nil
		}
	}
}

// start launches cycle in the background under a cancellable context.
func (w *watcher) start(ctx context.Context, cycle Cycle) *running {
	cycleCtx, cancel := context.WithCancel(ctx)
	r := &running{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(r.done)

		err := cycle(cycleCtx)

		switch {
		case err == nil:
		case cycleCtx.Err() != nil && errors.Is(err, context.Canceled):
			slog.Info("Rebuild superseded")
		default:
			slog.Error("Rebuild failed", "error", err)
		}

		if ctx.Err() == nil {
			w.DisplayStage(ctx, m.StageWatching, w.project.Identity)
		}
	}()

	return r
}
