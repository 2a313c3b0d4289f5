package app

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/stlpick/internal/selection"
	"github.com/philipparndt/stlpick/pkg/analysis"
)

func (a *App) buildUI() fyne.CanvasObject {
	a.UI.openButton = widget.NewButtonWithIcon("Open 3D file (.stl, .3mf)", theme.FolderOpenIcon(), a.showOpenDialog)

	// The toggles only forward user input; their state is resynced from the
	// session in syncToggles.
	a.UI.modelCheck = widget.NewCheck("Select model", func(on bool) {
		a.session.RequestModelSelect(on)
	})
	a.UI.faceCheck = widget.NewCheck("Select face", func(on bool) {
		a.session.RequestFaceSelect(on)
	})

	a.UI.statusLabel = widget.NewLabel("")
	a.UI.statusLabel.Truncation = fyne.TextTruncateEllipsis
	a.UI.faceLabel = widget.NewLabel("")

	toolbar := container.NewHBox(
		a.UI.openButton,
		widget.NewSeparator(),
		a.UI.modelCheck,
		a.UI.faceCheck,
	)
	status := container.NewVBox(widget.NewSeparator(), a.UI.statusLabel, a.UI.faceLabel)

	return container.NewBorder(toolbar, status, nil, nil, a.viewport)
}

// syncToggles mirrors the session mode in the check boxes without firing
// their OnChanged handlers.
func (a *App) syncToggles(mode selection.Mode) {
	setChecked(a.UI.modelCheck, mode == selection.ModelSelect)
	setChecked(a.UI.faceCheck, mode == selection.FaceSelect)
}

func setChecked(check *widget.Check, on bool) {
	if check.Checked == on {
		return
	}
	check.Checked = on
	check.Refresh()
}

func (a *App) updateStatus() {
	a.UI.statusLabel.SetText(a.session.Status())
	a.window.SetTitle(a.title())

	poly, cell := a.session.Mesh(), a.session.SelectedFace()
	if poly == nil || cell < 0 {
		a.UI.faceLabel.SetText("")
		return
	}
	info := analysis.Face(poly, cell)
	a.UI.faceLabel.SetText(fmt.Sprintf("Face #%d: area %.4f, normal %s, center %s",
		info.Cell, info.Area, analysis.FormatVector(info.Normal), analysis.FormatVector(info.Center)))
}
