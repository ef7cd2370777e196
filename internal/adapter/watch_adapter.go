package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	m "ammo.dev/pkg/ammo/internal/model"
)

// DefaultWatchIgnore lists the entries never watched for changes. Relative
// entries match any path element below the root, absolute entries match the
// path itself and everything below it. Both may be filepath.Match patterns.
var DefaultWatchIgnore = []string{".git", ".gitignore", "target"}

// WatchAdapter reports changes below a project root.
type WatchAdapter interface {
	// Watch starts watching root recursively. Entries matched by ignore are
	// skipped along with everything below them. Both channels are closed once
	// ctx is done.
	Watch(ctx context.Context, root m.Path, ignore []string) (<-chan m.Path, <-chan error, error)
}

// FSNotifyWatchAdapter implements WatchAdapter with fsnotify. fsnotify does
// not recurse, so every directory is added individually and directories
// created later are added as they appear.
type FSNotifyWatchAdapter struct {
	fs     ProjectFSAdapter
	buffer int
}

// NewFSNotifyWatchAdapter constructs a FSNotifyWatchAdapter.
func NewFSNotifyWatchAdapter(fs ProjectFSAdapter) *FSNotifyWatchAdapter {
	return &FSNotifyWatchAdapter{fs: fs, buffer: 64}
}

// Watch implements WatchAdapter.
func (a *FSNotifyWatchAdapter) Watch(ctx context.Context, root m.Path, ignore []string) (<-chan m.Path, <-chan error, error) {
	info, err := a.fs.FileInfo(ctx, root)
	if err != nil {
		return nil, nil, fmt.Errorf("watch %s: %w", root, err)
	}

	if !info.IsDir() {
		return nil, nil, fmt.Errorf("watch %s: not a directory", root)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &treeWatcher{fs: a.fs, watcher: watcher, root: root}
	for _, pattern := range ignore {
		if filepath.IsAbs(pattern) {
			w.ignoredPaths = append(w.ignoredPaths, filepath.Clean(pattern))
		} else {
			w.ignoredNames = append(w.ignoredNames, pattern)
		}
	}

	if err := w.addTree(ctx, root); err != nil {
		_ = watcher.Close()
		return nil, nil, err
	}

	events := make(chan m.Path, a.buffer)
	errs := make(chan error, 1)

	go w.loop(ctx, events, errs)

	return events, errs, nil
}

type treeWatcher struct {
	fs      ProjectFSAdapter
	watcher *fsnotify.Watcher
	root    m.Path

	ignoredNames []string
	ignoredPaths []string
}

func (w *treeWatcher) loop(ctx context.Context, events chan<- m.Path, errs chan<- error) {
	defer close(errs)
	defer close(events)
	defer func() {
		_ = w.watcher.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			path := m.Path(event.Name)
			if w.isIgnored(path) {
				continue
			}

			if event.Has(fsnotify.Create) {
				if info, err := w.fs.LinkInfo(ctx, path); err == nil && info.IsDir() {
					if err := w.addTree(ctx, path); err != nil {
						slog.Error("Failed to watch new directory", "path", path, "error", err)
					}
				}
			}

			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}

			slog.Debug("Change detected", "path", path, "op", event.Op.String())

			select {
			case events <- path:
			case <-ctx.Done():
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}

			select {
			case errs <- err:
			default:
				slog.Error("Dropped watcher error", "error", err)
			}
		}
	}
}

func (w *treeWatcher) addTree(ctx context.Context, dir m.Path) error {
	return w.fs.Walk(ctx, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			// Entries can vanish between the event and the walk.
			if os.IsNotExist(err) {
				return nil
			}

			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path != string(w.root) && w.isIgnored(m.Path(path)) {
			return filepath.SkipDir
		}

		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}

// isIgnored reports whether path, or any of its elements below the root, is
// ignored.
func (w *treeWatcher) isIgnored(path m.Path) bool {
	for _, pattern := range w.ignoredPaths {
		if matchPath(pattern, string(path)) {
			return true
		}
	}

	rel, err := filepath.Rel(string(w.root), string(path))
	if err != nil || rel == "." {
		return false
	}

	for _, elem := range strings.Split(rel, string(filepath.Separator)) {
		for _, pattern := range w.ignoredNames {
			if ok, _ := filepath.Match(pattern, elem); ok {
				return true
			}
		}
	}

	return false
}

// matchPath reports whether path or one of its parents matches pattern.
func matchPath(pattern, path string) bool {
	for p := filepath.Clean(path); ; p = filepath.Dir(p) {
		if ok, _ := filepath.Match(pattern, p); ok {
			return true
		}

		if parent := filepath.Dir(p); parent == p {
			return false
		}
	}
}
