// Image loading and saving through the OpenCV codec boundary
package io

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gocv.io/x/gocv"
)

// supportedExtensions lists the file extensions the editor opens and saves.
// The codec is negotiated from the extension by OpenCV.
var supportedExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tif", ".tiff"}

// ImageLoader handles image file operations for the editor.
type ImageLoader struct {
	logger *logrus.Logger
}

// NewImageLoader creates a loader writing through the given logger.
func NewImageLoader(logger *logrus.Logger) *ImageLoader {
	return &ImageLoader{
		logger: logger,
	}
}

// Load reads the image at path as a 3-channel BGR matrix. The caller owns
// the returned matrix and must Close it.
func (il *ImageLoader) Load(path string) (gocv.Mat, error) {
	il.logger.WithField("filepath", path).Debug("Loading image")

	if !il.IsSupportedFormat(path) {
		return gocv.NewMat(), fmt.Errorf("unsupported image format: %s", path)
	}

	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		return gocv.NewMat(), fmt.Errorf("failed to load image: %s", path)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
		"channels": mat.Channels(),
	}).Info("Image loaded")

	return mat, nil
}

// Save writes mat to path, format negotiated by file extension.
func (il *ImageLoader) Save(path string, mat gocv.Mat) error {
	il.logger.WithField("filepath", path).Debug("Saving image")

	if mat.Empty() {
		return fmt.Errorf("cannot save empty image")
	}
	if !il.IsSupportedFormat(path) {
		return fmt.Errorf("unsupported image format: %s", path)
	}

	if ok := gocv.IMWrite(path, mat); !ok {
		return fmt.Errorf("failed to save image: %s", path)
	}

	il.logger.WithFields(logrus.Fields{
		"filepath": path,
		"width":    mat.Cols(),
		"height":   mat.Rows(),
	}).Info("Image saved")

	return nil
}

// IsSupportedFormat reports whether path carries an extension the editor
// can decode and encode.
func (il *ImageLoader) IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range supportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the extension allowlist for file dialogs.
func (il *ImageLoader) SupportedExtensions() []string {
	out := make([]string, len(supportedExtensions))
	copy(out, supportedExtensions)
	return out
}
