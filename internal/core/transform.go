// Pixel transformations over BGR image matrices
package core

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

// Canny hysteresis thresholds used for edge detection.
const (
	edgeThresholdLow  = 100
	edgeThresholdHigh = 200
)

// Grayscale converts src to luminance and re-expands it to three channels,
// so every matrix in the system keeps the same BGR shape.
func Grayscale(src gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	out := gocv.NewMat()
	gocv.CvtColor(gray, &out, gocv.ColorGrayToBGR)
	return out
}

// Blur applies a Gaussian blur with a k x k kernel. The kernel size is
// coerced to an odd value >= 1; sigma is derived from the kernel size.
func Blur(src gocv.Mat, k int) gocv.Mat {
	k = normalizeKernel(k)

	out := gocv.NewMat()
	gocv.GaussianBlur(src, &out, image.Pt(k, k), 0, 0, gocv.BorderDefault)
	return out
}

// normalizeKernel coerces a kernel size to the next valid value.
// GaussianBlur requires an odd, positive kernel.
func normalizeKernel(k int) int {
	if k < 1 {
		k = 1
	}
	if k%2 == 0 {
		k++
	}
	return k
}

// EdgeDetect runs Canny edge detection and re-expands the binary edge map
// to three channels. Output pixels are either 0 or 255.
func EdgeDetect(src gocv.Mat) gocv.Mat {
	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(src, &gray, gocv.ColorBGRToGray)

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(gray, &edges, edgeThresholdLow, edgeThresholdHigh)

	out := gocv.NewMat()
	gocv.CvtColor(edges, &out, gocv.ColorGrayToBGR)
	return out
}

// Brightness adds value to every channel of every pixel, saturating at the
// 0..255 bounds rather than wrapping.
func Brightness(src gocv.Mat, value int) gocv.Mat {
	out := gocv.NewMat()
	src.ConvertToWithParams(&out, src.Type(), 1, float32(value))
	return out
}

// Contrast multiplies every channel by value, saturating at the 0..255
// bounds.
func Contrast(src gocv.Mat, value float64) gocv.Mat {
	out := gocv.NewMat()
	src.ConvertToWithParams(&out, src.Type(), float32(value), 0)
	return out
}

// Rotate rotates src clockwise by 90, 180 or 270 degrees. Any other angle
// returns an unmodified copy.
func Rotate(src gocv.Mat, angle int) gocv.Mat {
	var code gocv.RotateFlag
	switch angle {
	case 90:
		code = gocv.Rotate90Clockwise
	case 180:
		code = gocv.Rotate180Clockwise
	case 270:
		code = gocv.Rotate90CounterClockwise
	default:
		return src.Clone()
	}

	out := gocv.NewMat()
	gocv.Rotate(src, &out, code)
	return out
}

// Flip mirrors src left-right for mode "h", top-bottom for any other mode.
func Flip(src gocv.Mat, mode string) gocv.Mat {
	flipCode := 0
	if mode == "h" {
		flipCode = 1
	}

	out := gocv.NewMat()
	gocv.Flip(src, &out, flipCode)
	return out
}

// Resize scales src by the given factor using bilinear interpolation.
// Target dimensions are rounded and never fall below 1x1, so the operation
// stays total for any positive scale.
func Resize(src gocv.Mat, scale float64) gocv.Mat {
	w := int(math.Round(float64(src.Cols()) * scale))
	h := int(math.Round(float64(src.Rows()) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	out := gocv.NewMat()
	gocv.Resize(src, &out, image.Pt(w, h), 0, 0, gocv.InterpolationLinear)
	return out
}
