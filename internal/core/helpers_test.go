package core

import (
	"bytes"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// newTestMat creates a rows x cols BGR matrix filled with a deterministic
// gradient so every pixel is distinguishable.
func newTestMat(t *testing.T, rows, cols int) gocv.Mat {
	t.Helper()

	mat := gocv.NewMatWithSize(rows, cols, gocv.MatTypeCV8UC3)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			mat.SetUCharAt(y, x*3, uint8((x*7+y*13)%256))
			mat.SetUCharAt(y, x*3+1, uint8((x*3+y*5)%256))
			mat.SetUCharAt(y, x*3+2, uint8((x*11+y*2)%256))
		}
	}

	t.Cleanup(func() { mat.Close() })
	return mat
}

// newSolidMat creates a rows x cols BGR matrix with every channel set to v.
func newSolidMat(t *testing.T, rows, cols int, v float64) gocv.Mat {
	t.Helper()

	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(v, v, v, 0), rows, cols, gocv.MatTypeCV8UC3)
	t.Cleanup(func() { mat.Close() })
	return mat
}

// emptyMat returns an unallocated matrix, the "no image" value.
func emptyMat(t *testing.T) gocv.Mat {
	t.Helper()

	mat := gocv.NewMat()
	t.Cleanup(func() { mat.Close() })
	return mat
}

// matsEqual reports whether two matrices have identical shape and bytes.
func matsEqual(a, b gocv.Mat) bool {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() || a.Channels() != b.Channels() {
		return false
	}
	return bytes.Equal(a.ToBytes(), b.ToBytes())
}

// newTestLogger returns a silenced logger for core tests.
func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestDocument creates a document session whose resources are released
// when the test finishes.
func newTestDocument(t *testing.T) *Document {
	t.Helper()

	doc := NewDocument(newTestLogger())
	t.Cleanup(doc.Close)
	return doc
}
