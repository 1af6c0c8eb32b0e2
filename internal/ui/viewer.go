package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/report-summarizer/internal/config"
	"github.com/ytget/report-summarizer/internal/platform"
)

// SummaryViewer shows a stored summary in a read-only dialog
type SummaryViewer struct {
	window       fyne.Window
	localization *Localization
}

// NewSummaryViewer creates a viewer bound to window
func NewSummaryViewer(window fyne.Window, localization *Localization) *SummaryViewer {
	return &SummaryViewer{window: window, localization: localization}
}

// ShowSummary opens the dialog
func (v *SummaryViewer) ShowSummary(title, text string) {
	output := widget.NewMultiLineEntry()
	output.SetText(text)
	output.Wrapping = fyne.TextWrapWord
	output.Disable()

	d := dialog.NewCustom(title, v.localization.GetText(KeyClose), output, v.window)
	d.Resize(fyne.NewSize(ViewerWidth, ViewerHeight))
	d.Show()
}

// DownloadsSaver writes summaries into the configured downloads directory
type DownloadsSaver struct {
	settings *config.Settings
}

// NewDownloadsSaver creates a saver reading the directory from settings on every save
func NewDownloadsSaver(settings *config.Settings) *DownloadsSaver {
	return &DownloadsSaver{settings: settings}
}

// Save writes text to a new file and returns its path
func (s *DownloadsSaver) Save(name, text string) (string, error) {
	return platform.SaveTextFile(s.settings.GetDownloadDirectory(), name, text)
}
