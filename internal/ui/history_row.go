package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/report-summarizer/internal/app"
	"github.com/ytget/report-summarizer/internal/model"
)

// HistoryRow is one row of the history list: file name, preview, creation
// time and the view/download buttons. A placeholder row has no buttons.
type HistoryRow struct {
	widget.BaseWidget

	entryID      string
	placeholder  bool
	localization *Localization

	// UI components
	titleLabel   *widget.Label
	previewLabel *widget.Label
	createdLabel *widget.Label

	viewBtn     *widget.Button
	downloadBtn *widget.Button

	// onAction is owned by the list and shared by every row
	onAction func(action app.RowAction, id string)
}

// NewHistoryRow creates an empty row. Buttons report through onAction using
// whatever entry the row shows at tap time.
func NewHistoryRow(localization *Localization, onAction func(app.RowAction, string)) *HistoryRow {
	hr := &HistoryRow{
		localization: localization,
		onAction:     onAction,
	}
	hr.ExtendBaseWidget(hr)
	hr.createUI()
	return hr
}

// SetEntry shows entry in the row
func (hr *HistoryRow) SetEntry(entry model.HistoryEntry) {
	hr.entryID = entry.ID
	hr.placeholder = false

	hr.titleLabel.SetText(entry.GetDisplayName())
	hr.previewLabel.SetText(entry.Preview(HistoryPreviewRunes))
	created := entry.CreatedAt
	if created == "" {
		created = DashPlaceholder
	}
	hr.createdLabel.SetText(created)

	hr.viewBtn.Show()
	hr.downloadBtn.Show()
	hr.Refresh()
}

// SetPlaceholder turns the row into the "no summaries" message
func (hr *HistoryRow) SetPlaceholder(text string) {
	hr.entryID = ""
	hr.placeholder = true

	hr.titleLabel.SetText(text)
	hr.previewLabel.SetText("")
	hr.createdLabel.SetText("")

	hr.viewBtn.Hide()
	hr.downloadBtn.Hide()
	hr.Refresh()
}

// EntryID returns the id of the shown entry, empty for the placeholder
func (hr *HistoryRow) EntryID() string {
	return hr.entryID
}

// IsPlaceholder reports whether the row shows the empty-list message
func (hr *HistoryRow) IsPlaceholder() bool {
	return hr.placeholder
}

// refreshTexts re-reads the button labels after a language change
func (hr *HistoryRow) refreshTexts() {
	hr.viewBtn.SetText(hr.localization.GetText(KeyView))
	hr.downloadBtn.SetText(hr.localization.GetText(KeyDownload))
}

func (hr *HistoryRow) createUI() {
	hr.titleLabel = widget.NewLabel("")
	hr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	hr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	hr.previewLabel = widget.NewLabel("")
	hr.previewLabel.TextStyle = fyne.TextStyle{Italic: true}
	hr.previewLabel.Truncation = fyne.TextTruncateEllipsis

	hr.createdLabel = widget.NewLabel("")
	hr.createdLabel.Alignment = fyne.TextAlignTrailing
	hr.createdLabel.TextStyle = fyne.TextStyle{Monospace: true}

	hr.viewBtn = widget.NewButton(hr.localization.GetText(KeyView), func() {
		hr.fire(app.ActionView)
	})
	hr.viewBtn.Importance = widget.MediumImportance

	hr.downloadBtn = widget.NewButton(hr.localization.GetText(KeyDownload), func() {
		hr.fire(app.ActionDownload)
	})
	hr.downloadBtn.Importance = widget.LowImportance
}

func (hr *HistoryRow) fire(action app.RowAction) {
	if hr.placeholder || hr.entryID == "" || hr.onAction == nil {
		return
	}
	hr.onAction(action, hr.entryID)
}

// CreateRenderer creates the widget renderer
func (hr *HistoryRow) CreateRenderer() fyne.WidgetRenderer {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(0, HistoryRowMinHeight))

	actions := container.NewHBox(hr.createdLabel, hr.viewBtn, hr.downloadBtn)
	text := container.NewVBox(hr.titleLabel, hr.previewLabel)
	row := container.NewVBox(
		container.NewStack(spacer, container.NewBorder(nil, nil, nil, actions, text)),
		widget.NewSeparator(),
	)
	return widget.NewSimpleRenderer(row)
}
