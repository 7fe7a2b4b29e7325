// Image display canvas for the editor window
package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/sirupsen/logrus"

	"image-editor/internal/core"
)

// ImageCanvas renders the document's current image.
type ImageCanvas struct {
	document *core.Document
	logger   *logrus.Logger

	view      *canvas.Image
	container *fyne.Container
}

// NewImageCanvas creates the canvas with a neutral placeholder until an
// image is loaded.
func NewImageCanvas(document *core.Document, logger *logrus.Logger) *ImageCanvas {
	placeholder := image.NewRGBA(image.Rect(0, 0, 400, 300))
	for y := 0; y < 300; y++ {
		for x := 0; x < 400; x++ {
			placeholder.Set(x, y, color.RGBA{200, 200, 200, 255})
		}
	}

	view := canvas.NewImageFromImage(placeholder)
	view.FillMode = canvas.ImageFillContain
	view.SetMinSize(fyne.NewSize(400, 300))

	return &ImageCanvas{
		document:  document,
		logger:    logger,
		view:      view,
		container: container.NewPadded(view),
	}
}

// Container returns the canvas widget tree.
func (ic *ImageCanvas) Container() *fyne.Container {
	return ic.container
}

// Refresh re-renders the document's current image. A no-op when nothing is
// loaded.
func (ic *ImageCanvas) Refresh() {
	mat, ok := ic.document.Image()
	if !ok {
		return
	}

	img, err := mat.ToImage()
	if err != nil {
		ic.logger.WithError(err).Error("Failed to convert image for display")
		return
	}

	ic.view.Image = img
	ic.view.Refresh()
}
