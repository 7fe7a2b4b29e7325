// Document session: current image, edit history and preview coordination
package core

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// ErrNoImage is returned when an edit is requested before an image has been
// loaded. The GUI layer is expected to guard with HasImage and surface a
// user-facing message instead of calling into the engine.
var ErrNoImage = errors.New("no image loaded")

// PreviewOp identifies a continuously adjustable transformation, the kind
// driven by a slider rather than a button.
type PreviewOp int

const (
	PreviewBlur PreviewOp = iota
	PreviewBrightness
	PreviewContrast
)

func (op PreviewOp) String() string {
	switch op {
	case PreviewBlur:
		return "blur"
	case PreviewBrightness:
		return "brightness"
	case PreviewContrast:
		return "contrast"
	}
	return fmt.Sprintf("preview_op(%d)", int(op))
}

// apply recomputes a preview frame from a baseline matrix.
func (op PreviewOp) apply(src gocv.Mat, value float64) gocv.Mat {
	switch op {
	case PreviewBlur:
		return Blur(src, int(value))
	case PreviewBrightness:
		return Brightness(src, int(value))
	case PreviewContrast:
		return Contrast(src, value)
	}
	return src.Clone()
}

// previewState is the snapshot captured when a slider gesture begins. While
// armed, every frame of the gesture is recomputed from baseline so repeated
// slider events never compound.
type previewState struct {
	baseline gocv.Mat
	op       PreviewOp
}

// Document owns exactly one current image together with its edit history
// and preview state. All externally visible state transitions of the image
// go through Document methods; history snapshots are always deep copies,
// never aliases of the current matrix.
//
// A nil preview field means no slider gesture is in progress.
type Document struct {
	logger  *logrus.Logger
	current gocv.Mat
	history *History
	preview *previewState
}

// NewDocument creates an empty document session.
func NewDocument(logger *logrus.Logger) *Document {
	return &Document{
		logger:  logger,
		current: gocv.NewMat(),
		history: NewHistory(),
	}
}

// SetImage replaces the current image with a deep copy of mat, resets the
// edit history and disarms any preview gesture. History never spans two
// unrelated images.
func (d *Document) SetImage(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("cannot set empty image")
	}
	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d", mat.Cols(), mat.Rows())
	}

	d.PreviewEnd()
	d.history.Reset()
	d.current.Close()
	d.current = mat.Clone()

	d.logger.WithFields(logrus.Fields{
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Document image set, history cleared")

	return nil
}

// Image returns the current matrix. The matrix stays owned by the document;
// callers needing an independent copy must Clone it. ok is false when no
// image has been loaded.
func (d *Document) Image() (gocv.Mat, bool) {
	if d.current.Empty() {
		return d.current, false
	}
	return d.current, true
}

// HasImage reports whether an image is loaded. Callers must check this
// before requesting edits.
func (d *Document) HasImage() bool {
	return !d.current.Empty()
}

// History exposes the undo/redo state for menu enablement and tests.
func (d *Document) History() *History {
	return d.history
}

// Close releases the current image, any armed baseline and all history
// snapshots.
func (d *Document) Close() {
	d.PreviewEnd()
	d.history.Reset()
	d.current.Close()
}

// apply performs a committing edit: it ends any preview gesture, snapshots
// the pre-edit image onto the undo stack and replaces the current image
// with the transform result.
func (d *Document) apply(name string, fn func(gocv.Mat) gocv.Mat) error {
	if !d.HasImage() {
		return ErrNoImage
	}

	d.PreviewEnd()
	d.history.Push(d.current)

	next := fn(d.current)
	d.current.Close()
	d.current = next

	d.logger.WithFields(logrus.Fields{
		"op":    name,
		"depth": d.history.Depth(),
	}).Debug("Applied edit")

	return nil
}

// Grayscale converts the image to luminance, keeping three channels.
func (d *Document) Grayscale() error {
	return d.apply("grayscale", Grayscale)
}

// EdgeDetect replaces the image with its Canny edge map.
func (d *Document) EdgeDetect() error {
	return d.apply("edge_detect", EdgeDetect)
}

// Blur applies a committing Gaussian blur with kernel size k.
func (d *Document) Blur(k int) error {
	return d.apply("blur", func(src gocv.Mat) gocv.Mat {
		return Blur(src, k)
	})
}

// Brightness applies a committing brightness adjustment.
func (d *Document) Brightness(value int) error {
	return d.apply("brightness", func(src gocv.Mat) gocv.Mat {
		return Brightness(src, value)
	})
}

// Contrast applies a committing contrast adjustment.
func (d *Document) Contrast(value float64) error {
	return d.apply("contrast", func(src gocv.Mat) gocv.Mat {
		return Contrast(src, value)
	})
}

// Rotate rotates the image clockwise by 90, 180 or 270 degrees.
// Unsupported angles leave the pixels unchanged but still commit.
func (d *Document) Rotate(angle int) error {
	return d.apply("rotate", func(src gocv.Mat) gocv.Mat {
		return Rotate(src, angle)
	})
}

// Flip mirrors the image, mode "h" for left-right, anything else for
// top-bottom.
func (d *Document) Flip(mode string) error {
	return d.apply("flip", func(src gocv.Mat) gocv.Mat {
		return Flip(src, mode)
	})
}

// Resize scales the image by the given positive factor.
func (d *Document) Resize(scale float64) error {
	return d.apply("resize", func(src gocv.Mat) gocv.Mat {
		return Resize(src, scale)
	})
}

// Undo restores the most recent history snapshot. Returns false when there
// is nothing to undo. An undo always ends any preview gesture first.
func (d *Document) Undo() bool {
	d.PreviewEnd()

	restored, ok := d.history.Undo(d.current)
	if !ok {
		return false
	}
	d.current.Close()
	d.current = restored

	d.logger.WithField("depth", d.history.Depth()).Debug("Undo")
	return true
}

// Redo restores the most recently undone snapshot. Returns false when there
// is nothing to redo.
func (d *Document) Redo() bool {
	d.PreviewEnd()

	restored, ok := d.history.Redo(d.current)
	if !ok {
		return false
	}
	d.current.Close()
	d.current = restored

	d.logger.WithField("depth", d.history.Depth()).Debug("Redo")
	return true
}

// PreviewBegin arms a preview gesture for op: the current image becomes the
// gesture baseline and is pushed to history once. Calling PreviewBegin while
// a gesture for the same op is armed is a no-op.
func (d *Document) PreviewBegin(op PreviewOp) error {
	if !d.HasImage() {
		return ErrNoImage
	}
	if d.preview != nil {
		if d.preview.op == op {
			return nil
		}
		// Switching the adjusted parameter ends the old gesture and
		// starts a fresh one from the last committed frame.
		d.PreviewEnd()
	}

	d.history.Push(d.current)
	d.preview = &previewState{
		baseline: d.current.Clone(),
		op:       op,
	}

	d.logger.WithField("op", op.String()).Debug("Preview gesture armed")
	return nil
}

// PreviewApply recomputes the current image from the gesture baseline with
// the given parameter value. The first event of a gesture arms the baseline
// automatically, so a whole slider drag costs exactly one history entry.
func (d *Document) PreviewApply(op PreviewOp, value float64) error {
	if !d.HasImage() {
		return ErrNoImage
	}
	if err := d.PreviewBegin(op); err != nil {
		return err
	}

	next := op.apply(d.preview.baseline, value)
	d.current.Close()
	d.current = next

	return nil
}

// PreviewEnd disarms the current gesture and releases its baseline. Safe to
// call when no gesture is armed.
func (d *Document) PreviewEnd() {
	if d.preview == nil {
		return
	}
	d.preview.baseline.Close()
	d.preview = nil
}
