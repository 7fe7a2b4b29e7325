// Menu handler for file and edit actions
package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"github.com/sirupsen/logrus"

	"image-editor/internal/core"
	appio "image-editor/internal/io"
)

// MenuHandler owns the main menu and the current file path used by Save.
type MenuHandler struct {
	window   fyne.Window
	document *core.Document
	loader   *appio.ImageLoader
	logger   *logrus.Logger

	// currentPath is the file backing the document, empty until an image
	// has been opened or saved.
	currentPath string

	// onChanged is invoked after any action that altered the document so
	// the owner can refresh the canvas and status bar.
	onChanged func()
}

// NewMenuHandler creates the handler. onChanged must not be nil.
func NewMenuHandler(window fyne.Window, document *core.Document, loader *appio.ImageLoader, logger *logrus.Logger, onChanged func()) *MenuHandler {
	return &MenuHandler{
		window:    window,
		document:  document,
		loader:    loader,
		logger:    logger,
		onChanged: onChanged,
	}
}

// MainMenu builds the application menu bar.
func (mh *MenuHandler) MainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", mh.openImage),
		fyne.NewMenuItem("Save", mh.saveImage),
		fyne.NewMenuItem("Save As...", mh.saveImageAs),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			mh.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", mh.undo),
		fyne.NewMenuItem("Redo", mh.redo),
	)

	return fyne.NewMainMenu(fileMenu, editMenu)
}

// CurrentPath returns the file backing the document, empty when unsaved.
func (mh *MenuHandler) CurrentPath() string {
	return mh.currentPath
}

func (mh *MenuHandler) openImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		mh.logger.WithField("filepath", path).Info("Opening image")

		mat, err := mh.loader.Load(path)
		if err != nil {
			mh.showError("Failed to Load Image", err)
			return
		}
		defer mat.Close()

		if err := core.ValidateImage(mat); err != nil {
			mh.showError("Invalid Image", err)
			return
		}
		if err := mh.document.SetImage(mat); err != nil {
			mh.showError("Failed to Set Image", err)
			return
		}

		mh.currentPath = path
		mh.onChanged()
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(mh.loader.SupportedExtensions()))
	fileDialog.Show()
}

// saveImage writes to the path of the last open or save-as. Falls back to
// the save-as dialog for an unsaved document.
func (mh *MenuHandler) saveImage() {
	if !mh.document.HasImage() {
		mh.showError("No Image", fmt.Errorf("please open an image first"))
		return
	}
	if mh.currentPath == "" {
		mh.saveImageAs()
		return
	}

	mat, _ := mh.document.Image()
	if err := mh.loader.Save(mh.currentPath, mat); err != nil {
		mh.showError("Failed to Save Image", err)
		return
	}
	dialog.ShowInformation("Saved", "Image saved!", mh.window)
}

func (mh *MenuHandler) saveImageAs() {
	if !mh.document.HasImage() {
		mh.showError("No Image", fmt.Errorf("please open an image first"))
		return
	}

	fileDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		path := writer.URI().Path()
		mat, _ := mh.document.Image()
		if err := mh.loader.Save(path, mat); err != nil {
			mh.showError("Failed to Save Image", err)
			return
		}

		// Subsequent plain saves go to the new path.
		mh.currentPath = path
		mh.onChanged()
	}, mh.window)

	fileDialog.SetFileName("untitled.jpg")
	fileDialog.SetFilter(storage.NewExtensionFileFilter(mh.loader.SupportedExtensions()))
	fileDialog.Show()
}

func (mh *MenuHandler) undo() {
	if !mh.document.HasImage() {
		mh.showError("No Image", fmt.Errorf("please open an image first"))
		return
	}
	if mh.document.Undo() {
		mh.onChanged()
	}
}

func (mh *MenuHandler) redo() {
	if !mh.document.HasImage() {
		mh.showError("No Image", fmt.Errorf("please open an image first"))
		return
	}
	if mh.document.Redo() {
		mh.onChanged()
	}
}

func (mh *MenuHandler) showError(title string, err error) {
	mh.logger.WithError(err).Error(title)
	dialog.ShowError(err, mh.window)
}
