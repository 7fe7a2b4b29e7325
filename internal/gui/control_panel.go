// Transformation controls: buttons for discrete edits, sliders for
// continuously adjusted parameters
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"image-editor/internal/core"
)

// ControlPanel wires the transformation controls to the document. Button
// edits commit one history entry each; slider drags run as preview gestures
// so a whole drag costs exactly one entry.
type ControlPanel struct {
	window   fyne.Window
	document *core.Document
	logger   *logrus.Logger

	// onChanged is invoked after every successful edit so the owner can
	// refresh the canvas and status bar.
	onChanged func()

	blurSlider       *widget.Slider
	brightnessSlider *widget.Slider
	contrastSlider   *widget.Slider

	container *fyne.Container
}

// NewControlPanel builds the panel. onChanged must not be nil.
func NewControlPanel(window fyne.Window, document *core.Document, logger *logrus.Logger, onChanged func()) *ControlPanel {
	cp := &ControlPanel{
		window:    window,
		document:  document,
		logger:    logger,
		onChanged: onChanged,
	}
	cp.buildUI()
	return cp
}

// Container returns the panel widget tree.
func (cp *ControlPanel) Container() *fyne.Container {
	return cp.container
}

func (cp *ControlPanel) buildUI() {
	grayscaleBtn := widget.NewButton("Grayscale", func() {
		cp.commit(func() error { return cp.document.Grayscale() })
	})
	edgeBtn := widget.NewButton("Edge Detection", func() {
		cp.commit(func() error { return cp.document.EdgeDetect() })
	})

	cp.blurSlider = cp.newPreviewSlider(1, 31, 1, core.PreviewBlur)
	cp.brightnessSlider = cp.newPreviewSlider(-100, 100, 1, core.PreviewBrightness)
	// Start centered without firing the change callback.
	cp.brightnessSlider.Value = 0
	cp.contrastSlider = cp.newPreviewSlider(1, 5, 0.1, core.PreviewContrast)

	rotate90 := widget.NewButton("Rotate 90", func() { cp.rotate(90) })
	rotate180 := widget.NewButton("Rotate 180", func() { cp.rotate(180) })
	rotate270 := widget.NewButton("Rotate 270", func() { cp.rotate(270) })

	flipH := widget.NewButton("Flip Horizontal", func() { cp.flip("h") })
	flipV := widget.NewButton("Flip Vertical", func() { cp.flip("v") })

	resizeHalf := widget.NewButton("Resize 50%", func() { cp.resize(0.5) })
	resizeLarger := widget.NewButton("Resize 150%", func() { cp.resize(1.5) })

	cp.container = container.NewVBox(
		widget.NewCard("Filters", "",
			container.NewVBox(grayscaleBtn, edgeBtn)),
		widget.NewCard("Adjustments", "",
			container.NewVBox(
				widget.NewLabel("Blur"),
				cp.blurSlider,
				widget.NewLabel("Brightness"),
				cp.brightnessSlider,
				widget.NewLabel("Contrast"),
				cp.contrastSlider,
			)),
		widget.NewCard("Geometry", "",
			container.NewVBox(
				rotate90, rotate180, rotate270,
				flipH, flipV,
				resizeHalf, resizeLarger,
			)),
	)
}

// newPreviewSlider creates a slider whose drag is one preview gesture:
// every change event replays the op from the gesture baseline, and
// releasing the slider ends the gesture.
func (cp *ControlPanel) newPreviewSlider(min, max, step float64, op core.PreviewOp) *widget.Slider {
	slider := widget.NewSlider(min, max)
	slider.Step = step

	slider.OnChanged = func(value float64) {
		if !cp.guard() {
			return
		}
		if err := cp.document.PreviewApply(op, value); err != nil {
			cp.showError(err)
			return
		}
		cp.onChanged()
	}
	slider.OnChangeEnded = func(value float64) {
		cp.document.PreviewEnd()
	}

	return slider
}

func (cp *ControlPanel) rotate(angle int) {
	cp.commit(func() error { return cp.document.Rotate(angle) })
}

func (cp *ControlPanel) flip(mode string) {
	cp.commit(func() error { return cp.document.Flip(mode) })
}

func (cp *ControlPanel) resize(scale float64) {
	cp.commit(func() error { return cp.document.Resize(scale) })
}

// commit runs a discrete edit behind the image-present guard.
func (cp *ControlPanel) commit(edit func() error) {
	if !cp.guard() {
		return
	}
	if err := edit(); err != nil {
		cp.showError(err)
		return
	}
	cp.onChanged()
}

// guard enforces the open-an-image-first contract: the engine is never
// called without a loaded image.
func (cp *ControlPanel) guard() bool {
	if cp.document.HasImage() {
		return true
	}
	dialog.ShowError(fmt.Errorf("please open an image first"), cp.window)
	return false
}

func (cp *ControlPanel) showError(err error) {
	cp.logger.WithError(err).Error("Edit failed")
	dialog.ShowError(err, cp.window)
}
