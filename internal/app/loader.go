package app

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/philipparndt/stlpick/internal/logger"
	"github.com/philipparndt/stlpick/pkg/loader"
)

// showOpenDialog asks for a model file. Fyne dialogs take a single filter,
// so the combined STL/3MF group is used.
func (a *App) showOpenDialog() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			a.showError(err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		if err := reader.Close(); err != nil {
			logger.Sugar.Debugw("closing dialog reader", "error", err)
		}

		a.loadFile(path)
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter(loader.FilterGroups[0].Extensions))
	d.Show()
}

// loadFile loads path into the session. On failure the error is shown and
// the previous model stays displayed.
func (a *App) loadFile(path string) bool {
	if err := a.session.LoadFile(path); err != nil {
		a.showError(err)
		return false
	}
	a.watchFile(path)
	return true
}

// reloadFile is called on the UI goroutine when the watched file changed
func (a *App) reloadFile(path string) {
	if path != a.FileWatch.watched {
		return
	}
	logger.Sugar.Infow("reloading changed file", "file", path)
	if err := a.session.LoadFile(path); err != nil {
		a.showError(err)
	}
}

func (a *App) showError(err error) {
	dialog.ShowError(err, a.window)
}
