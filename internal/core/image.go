// Image validation helpers
package core

import (
	"fmt"

	"gocv.io/x/gocv"
)

// ValidateImage checks that mat is a usable editor image: non-empty,
// positive dimensions, three channels. The loader reads everything as BGR,
// so anything else indicates a caller bug.
func ValidateImage(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("image is empty")
	}
	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("invalid image dimensions: %dx%d", mat.Cols(), mat.Rows())
	}
	if mat.Channels() != 3 {
		return fmt.Errorf("unsupported number of channels: %d", mat.Channels())
	}
	return nil
}
