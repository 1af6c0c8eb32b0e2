package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/model"
)

// RowAction is a per-row history action
type RowAction string

const (
	ActionView     RowAction = "view"
	ActionDownload RowAction = "download"
)

// HistoryDeps groups the history loader's collaborators
type HistoryDeps struct {
	Backend  api.Backend
	View     HistoryView
	Viewer   SummaryViewer
	Saver    Saver
	Notifier *Notifier
	Dispatch Dispatcher
	Messages *MessageStore
	Log      logrus.FieldLogger
}

// HistoryLoader fetches past summaries and serves the row actions through
// one handler. Rows carry only their entry id.
type HistoryLoader struct {
	d   HistoryDeps
	log logrus.FieldLogger
	seq atomic.Uint64

	mu      sync.RWMutex
	entries map[string]model.HistoryEntry
}

// NewHistoryLoader creates a history loader
func NewHistoryLoader(d HistoryDeps) *HistoryLoader {
	return &HistoryLoader{
		d:       d,
		log:     d.Log.WithField("component", "history"),
		entries: make(map[string]model.HistoryEntry),
	}
}

// Refresh refetches the whole list and replaces every row. On failure the
// previous rows stay. A refresh finishing after a newer one is dropped.
func (h *HistoryLoader) Refresh(ctx context.Context) error {
	seq := h.seq.Add(1)

	entries, err := h.d.Backend.ListSummaries(ctx)
	if seq != h.seq.Load() {
		h.log.WithError(err).Debug("stale history response dropped")
		return nil
	}
	if err != nil {
		h.log.WithError(err).Error("loading history failed")
		h.d.Notifier.Notify(h.d.Messages.Get().HistoryFailed, model.SeverityDanger)
		return err
	}
	if entries == nil {
		entries = []model.HistoryEntry{}
	}

	byID := make(map[string]model.HistoryEntry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	h.mu.Lock()
	h.entries = byID
	h.mu.Unlock()

	h.log.WithField("count", len(entries)).Info("history loaded")
	h.d.Dispatch(func() { h.d.View.ShowEntries(entries) })
	return nil
}

// Entry returns a loaded entry by id
func (h *HistoryLoader) Entry(id string) (model.HistoryEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	e, ok := h.entries[id]
	return e, ok
}

// HandleAction runs a row action for id. It fetches the full text once and
// blocks, so call it off the UI thread.
func (h *HistoryLoader) HandleAction(ctx context.Context, action RowAction, id string) error {
	log := h.log.WithFields(logrus.Fields{"action": action, "id": id})

	var failure string
	switch action {
	case ActionView:
		failure = h.d.Messages.Get().LoadSummaryFailed
	case ActionDownload:
		failure = h.d.Messages.Get().DownloadFailed
	default:
		return errors.Errorf("unknown history action %q", action)
	}

	text, err := h.d.Backend.GetSummary(ctx, id)
	if err != nil {
		log.WithError(err).Error("fetching summary failed")
		h.d.Notifier.Notify(failure, model.SeverityDanger)
		return err
	}

	if action == ActionView {
		title := id
		if e, ok := h.Entry(id); ok {
			title = e.GetDisplayName()
		}
		h.d.Dispatch(func() { h.d.Viewer.ShowSummary(title, text) })
		return nil
	}

	path, err := h.d.Saver.Save(id, text)
	if err != nil {
		log.WithError(err).Error("saving summary failed")
		h.d.Notifier.Notify(failure, model.SeverityDanger)
		return errors.Wrap(err, "save summary")
	}
	log.WithField("path", path).Info("summary downloaded")
	h.d.Notifier.Notify(fmt.Sprintf(h.d.Messages.Get().Saved, path), model.SeveritySuccess)
	return nil
}
