// Undo/redo history of image snapshots
package core

import "gocv.io/x/gocv"

// History keeps two stacks of deep-copied image snapshots. Every matrix on
// either stack is owned by the History and released on Reset; matrices
// returned by Undo and Redo transfer ownership to the caller.
type History struct {
	undoStack []gocv.Mat
	redoStack []gocv.Mat
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{}
}

// Push records a deep copy of img on the undo stack and invalidates the
// redo stack. Pushing an empty matrix is a no-op.
func (h *History) Push(img gocv.Mat) {
	if img.Empty() {
		return
	}
	h.undoStack = append(h.undoStack, img.Clone())
	h.clearRedo()
}

// Undo pops the most recent snapshot, recording a deep copy of current on
// the redo stack first. Returns false when there is nothing to undo; the
// caller keeps its current matrix in that case.
func (h *History) Undo(current gocv.Mat) (gocv.Mat, bool) {
	if len(h.undoStack) == 0 {
		return current, false
	}
	h.redoStack = append(h.redoStack, current.Clone())

	top := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	return top, true
}

// Redo is the inverse of Undo: it pops the most recently undone snapshot,
// recording a deep copy of current on the undo stack first.
func (h *History) Redo(current gocv.Mat) (gocv.Mat, bool) {
	if len(h.redoStack) == 0 {
		return current, false
	}
	h.undoStack = append(h.undoStack, current.Clone())

	top := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	return top, true
}

// CanUndo reports whether an Undo would change state.
func (h *History) CanUndo() bool {
	return len(h.undoStack) > 0
}

// CanRedo reports whether a Redo would change state.
func (h *History) CanRedo() bool {
	return len(h.redoStack) > 0
}

// Depth returns the number of snapshots on the undo stack.
func (h *History) Depth() int {
	return len(h.undoStack)
}

// Reset releases every snapshot and empties both stacks. Called whenever a
// new image is loaded so history never spans two documents.
func (h *History) Reset() {
	for i := range h.undoStack {
		h.undoStack[i].Close()
	}
	h.undoStack = h.undoStack[:0]
	h.clearRedo()
}

func (h *History) clearRedo() {
	for i := range h.redoStack {
		h.redoStack[i].Close()
	}
	h.redoStack = h.redoStack[:0]
}
