// Main application window wiring the editor core to the Fyne UI
package gui

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-editor/internal/core"
	appio "image-editor/internal/io"
)

// Application is the editor's main window. It owns one document session and
// the thin orchestration layer around it: menus, controls, canvas and
// status bar. All engine calls happen serially on the Fyne event loop.
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *logrus.Logger

	// Core components
	document *core.Document
	loader   *appio.ImageLoader

	// GUI components
	canvas      *ImageCanvas
	controls    *ControlPanel
	menuHandler *MenuHandler
	status      *widget.Label
}

// NewApplication creates the window and wires all components together.
func NewApplication(app fyne.App, logger *logrus.Logger) *Application {
	window := app.NewWindow("Image Editor")
	window.Resize(fyne.NewSize(1000, 600))
	window.CenterOnScreen()

	a := &Application{
		app:    app,
		window: window,
		logger: logger,
	}

	a.document = core.NewDocument(logger)
	a.loader = appio.NewImageLoader(logger)

	a.canvas = NewImageCanvas(a.document, logger)
	a.controls = NewControlPanel(window, a.document, logger, a.refresh)
	a.menuHandler = NewMenuHandler(window, a.document, a.loader, logger, a.refresh)
	a.status = widget.NewLabel("No image loaded")

	a.setupLayout()
	return a
}

func (a *Application) setupLayout() {
	rightPanel := container.NewVScroll(a.controls.Container())
	rightPanel.SetMinSize(fyne.NewSize(220, 0))

	content := container.NewBorder(
		nil,      // top
		a.status, // bottom
		nil,      // left
		rightPanel,
		a.canvas.Container(),
	)

	a.window.SetMainMenu(a.menuHandler.MainMenu())
	a.window.SetContent(content)
}

// refresh re-renders the canvas and status bar after any document change.
func (a *Application) refresh() {
	a.canvas.Refresh()
	a.updateStatus()
}

func (a *Application) updateStatus() {
	mat, ok := a.document.Image()
	if !ok {
		a.status.SetText("No image loaded")
		return
	}

	name := "Unsaved"
	if path := a.menuHandler.CurrentPath(); path != "" {
		name = filepath.Base(path)
	}
	a.status.SetText(fmt.Sprintf("%s - %dx%d", name, mat.Cols(), mat.Rows()))
}

// ShowAndRun shows the window and blocks until the application exits.
func (a *Application) ShowAndRun() {
	defer a.document.Close()
	a.window.ShowAndRun()
}
