package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/report-summarizer/internal/app"
	"github.com/ytget/report-summarizer/internal/model"
)

// HistoryList renders history entries. The action handler is registered once
// and every row reports through it, so replacing the entries never adds
// handlers.
type HistoryList struct {
	list         *widget.List
	entries      []model.HistoryEntry
	localization *Localization
	onAction     func(app.RowAction, string)
}

// NewHistoryList creates an empty list
func NewHistoryList(localization *Localization) *HistoryList {
	hl := &HistoryList{localization: localization}
	hl.list = widget.NewList(hl.length, hl.createRow, hl.updateRow)
	return hl
}

// SetActionHandler sets the single handler for row buttons
func (hl *HistoryList) SetActionHandler(onAction func(app.RowAction, string)) {
	hl.onAction = onAction
}

// Widget returns the list widget
func (hl *HistoryList) Widget() fyne.CanvasObject {
	return hl.list
}

// ShowEntries replaces every row. Runs on the UI thread.
func (hl *HistoryList) ShowEntries(entries []model.HistoryEntry) {
	hl.entries = append([]model.HistoryEntry(nil), entries...)
	hl.list.UnselectAll()
	hl.list.Refresh()
	hl.list.ScrollToTop()
}

// Entries returns the rendered entries
func (hl *HistoryList) Entries() []model.HistoryEntry {
	return hl.entries
}

// Refresh redraws the rows, e.g. after a language change
func (hl *HistoryList) Refresh() {
	hl.list.Refresh()
}

func (hl *HistoryList) length() int {
	if len(hl.entries) == 0 {
		return 1
	}
	return len(hl.entries)
}

func (hl *HistoryList) createRow() fyne.CanvasObject {
	return NewHistoryRow(hl.localization, hl.dispatchAction)
}

func (hl *HistoryList) updateRow(id widget.ListItemID, item fyne.CanvasObject) {
	row, ok := item.(*HistoryRow)
	if !ok {
		return
	}
	row.refreshTexts()
	if len(hl.entries) == 0 {
		row.SetPlaceholder(hl.localization.GetText(KeyNoSummaries))
		return
	}
	if id < 0 || id >= len(hl.entries) {
		return
	}
	row.SetEntry(hl.entries[id])
}

func (hl *HistoryList) dispatchAction(action app.RowAction, id string) {
	if hl.onAction != nil {
		hl.onAction(action, id)
	}
}
