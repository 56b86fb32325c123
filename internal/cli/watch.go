package cli

import (
	"context"
	"io"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch solves paths once, then again after every write to one of them,
// until ctx is done. Solve errors are logged and do not stop the loop.
//
// Directories are watched rather than files so that editors which replace a
// file on save keep triggering events.
func (a *app) watch(ctx context.Context, w io.Writer, paths []string, o solveOptions) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err = watcher.Add(dir); err != nil {
			return err
		}
		dirs[dir] = true
	}

	a.solveWatched(ctx, w, paths, o)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !targets[abs] || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			a.log.WithField("file", ev.Name).Info("change detected")
			a.solveWatched(ctx, w, paths, o)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			a.log.WithError(err).Warn("watcher error")
		}
	}
}

// solveWatched solves paths and announces that the watch resumes.
func (a *app) solveWatched(ctx context.Context, w io.Writer, paths []string, o solveOptions) {
	if err := a.solveFiles(ctx, nil, w, paths, o); err != nil {
		a.log.WithError(err).Error("solve failed")
	}
	a.log.Info("watching for changes")
}
