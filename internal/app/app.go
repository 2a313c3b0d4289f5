// Package app is the desktop shell: window, toolbar, viewport and file
// watching around a selection.Session.
package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/stlpick/internal/config"
	"github.com/philipparndt/stlpick/internal/logger"
	"github.com/philipparndt/stlpick/internal/selection"
	"github.com/philipparndt/stlpick/pkg/viewer"
	"github.com/philipparndt/stlpick/pkg/watcher"
)

// AppID identifies the application to Fyne preferences and storage
const AppID = "io.github.philipparndt.stlpick"

// Options configures Run
type Options struct {
	Config *config.Config
	File   string // optional file to open at startup
}

type App struct {
	window    fyne.Window
	cfg       *config.Config
	viewport  *viewer.Viewport
	session   *selection.Session
	UI        UIState
	FileWatch FileWatchState
}

// UIState holds the widgets that follow session state
type UIState struct {
	openButton  *widget.Button
	modelCheck  *widget.Check
	faceCheck   *widget.Check
	statusLabel *widget.Label
	faceLabel   *widget.Label
}

// FileWatchState tracks auto-reload of the loaded file
type FileWatchState struct {
	fileWatcher *watcher.FileWatcher
	watched     string
}

// Run opens the main window and blocks until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	a := New(fyneapp.NewWithID(AppID), cfg)
	defer a.Close()

	if cfg.Watch.Enabled {
		if err := a.setupFileWatcher(); err != nil {
			logger.Sugar.Warnw("auto-reload not available", "error", err)
		}
	}

	if opts.File != "" {
		a.loadFile(opts.File)
	}

	a.window.ShowAndRun()
	return nil
}

// New builds the main window on fyneApp without showing it
func New(fyneApp fyne.App, cfg *config.Config) *App {
	a := &App{
		window:   fyneApp.NewWindow(cfg.Window.Title),
		cfg:      cfg,
		viewport: viewer.NewViewport(),
	}
	a.session = selection.NewSession(a.viewport, selection.Options{Style: styleFromConfig(cfg)})

	a.window.SetContent(a.buildUI())
	a.window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))

	a.session.OnModeChange(a.syncToggles)
	a.session.OnChange(a.updateStatus)
	a.updateStatus()
	return a
}

// Close releases the file watcher
func (a *App) Close() {
	if a.FileWatch.fileWatcher != nil {
		if err := a.FileWatch.fileWatcher.Close(); err != nil {
			logger.Sugar.Warnw("closing file watcher", "error", err)
		}
		a.FileWatch.fileWatcher = nil
	}
}

func styleFromConfig(cfg *config.Config) selection.Style {
	return selection.Style{
		Background:    config.MustColor(cfg.Viewer.Background),
		Neutral:       config.MustColor(cfg.Viewer.ModelColor),
		Highlight:     config.MustColor(cfg.Viewer.Highlight),
		FaceHighlight: config.MustColor(cfg.Viewer.FaceHighlight),
		ShowEdges:     cfg.Viewer.ShowEdges,
		ShowAxes:      cfg.Viewer.ShowAxes,
	}
}

func (a *App) title() string {
	if src := a.session.Source(); src != "" {
		return fmt.Sprintf("%s - %s", a.cfg.Window.Title, src)
	}
	return a.cfg.Window.Title
}
