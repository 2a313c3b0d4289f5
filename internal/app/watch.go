package app

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"github.com/philipparndt/stlpick/internal/logger"
	"github.com/philipparndt/stlpick/pkg/watcher"
)

func (a *App) setupFileWatcher() error {
	fw, err := watcher.NewFileWatcher(a.cfg.Watch.Debounce, logger.Sugar)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	fw.Start()
	a.FileWatch.fileWatcher = fw
	return nil
}

// watchFile moves the watch to path. The callback runs on a timer goroutine
// and hands the reload to the UI goroutine.
func (a *App) watchFile(path string) {
	fw := a.FileWatch.fileWatcher
	if fw == nil {
		return
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		logger.Sugar.Warnw("cannot watch file", "file", path, "error", err)
		return
	}
	if abs == a.FileWatch.watched {
		return
	}

	if a.FileWatch.watched != "" {
		if err := fw.Unwatch(a.FileWatch.watched); err != nil {
			logger.Sugar.Warnw("unwatch failed", "file", a.FileWatch.watched, "error", err)
		}
	}

	err = fw.Watch(abs, func(changed string) {
		fyne.Do(func() {
			a.reloadFile(changed)
		})
	})
	if err != nil {
		logger.Sugar.Warnw("cannot watch file", "file", abs, "error", err)
		a.FileWatch.watched = ""
		return
	}
	a.FileWatch.watched = abs
	logger.Sugar.Infow("watching file for changes", "file", abs)
}
