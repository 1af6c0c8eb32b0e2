package ui

import (
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/model"
)

// FilePicker is the upload form's file chooser: a button opening a file
// dialog filtered to the accepted extensions and a label with the selection.
type FilePicker struct {
	window       fyne.Window
	localization *Localization
	log          logrus.FieldLogger

	button *widget.Button
	label  *widget.Label
	files  []model.UploadFile
}

// NewFilePicker creates a picker with nothing selected
func NewFilePicker(window fyne.Window, localization *Localization, log logrus.FieldLogger) *FilePicker {
	fp := &FilePicker{
		window:       window,
		localization: localization,
		log:          log.WithField("component", "file_picker"),
	}
	fp.label = widget.NewLabel(localization.GetText(KeyNoFileChosen))
	fp.label.Truncation = fyne.TextTruncateEllipsis
	fp.button = widget.NewButton(IconFile+" "+localization.GetText(KeyChooseFile), fp.onBrowse)
	return fp
}

// Container returns the picker row
func (fp *FilePicker) Container() fyne.CanvasObject {
	return container.NewBorder(nil, nil, fp.button, nil, fp.label)
}

// Files returns the current selection
func (fp *FilePicker) Files() []model.UploadFile {
	return append([]model.UploadFile(nil), fp.files...)
}

// Select replaces the selection with file
func (fp *FilePicker) Select(file model.UploadFile) {
	fp.files = []model.UploadFile{file}
	text := file.Name
	if file.Size > 0 {
		text += MiddleDotSeparator + humanize.Bytes(uint64(file.Size))
	}
	fp.label.SetText(text)
}

// Clear empties the selection
func (fp *FilePicker) Clear() {
	fp.files = nil
	fp.label.SetText(fp.localization.GetText(KeyNoFileChosen))
}

// refreshTexts re-reads labels after a language change
func (fp *FilePicker) refreshTexts() {
	fp.button.SetText(IconFile + " " + fp.localization.GetText(KeyChooseFile))
	if len(fp.files) == 0 {
		fp.label.SetText(fp.localization.GetText(KeyNoFileChosen))
	}
}

func (fp *FilePicker) onBrowse() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			fp.log.WithError(err).Warn("file dialog failed")
			return
		}
		if reader == nil {
			return
		}
		uri := reader.URI()
		reader.Close()

		file, err := uploadFileFromURI(uri)
		if err != nil {
			fp.log.WithError(err).WithField("uri", uri.String()).Warn("cannot use selected file")
			return
		}
		fp.Select(file)
	}, fp.window)
	d.SetFilter(storage.NewExtensionFileFilter(AllowedUploadExtensions))
	d.Show()
}

// uploadFileFromURI describes a picked file. Local files are stat'ed for their
// size; other URIs are read through the storage repository.
func uploadFileFromURI(uri fyne.URI) (model.UploadFile, error) {
	if uri.Scheme() == "file" {
		return model.NewLocalUploadFile(uri.Path())
	}
	return model.UploadFile{
		Name: uri.Name(),
		Open: func() (io.ReadCloser, error) {
			return storage.Reader(uri)
		},
	}, nil
}
