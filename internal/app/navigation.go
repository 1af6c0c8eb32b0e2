package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/model"
)

// Navigator switches between the home and history sections
type Navigator struct {
	ctx     context.Context
	state   *State
	view    NavView
	history *HistoryLoader
	run     Runner
	log     logrus.FieldLogger
}

// NewNavigator creates a navigator. History refreshes run through run with ctx.
func NewNavigator(ctx context.Context, state *State, view NavView, history *HistoryLoader, run Runner, log logrus.FieldLogger) *Navigator {
	return &Navigator{
		ctx:     ctx,
		state:   state,
		view:    view,
		history: history,
		run:     run,
		log:     log.WithField("component", "navigation"),
	}
}

// Activate shows view and hides the other one. Entering history reloads it.
// Runs on the UI thread.
func (n *Navigator) Activate(view model.ViewState) {
	n.state.setView(view)

	// hide first so two sections are never visible together
	for _, other := range model.Views() {
		if other != view {
			n.view.SetSectionVisible(other, false)
			n.view.SetNavActive(other, false)
		}
	}
	n.view.SetSectionVisible(view, true)
	n.view.SetNavActive(view, true)

	n.log.WithField("view", view).Debug("view activated")

	if view == model.ViewHistory {
		n.run(func() {
			_ = n.history.Refresh(n.ctx)
		})
	}
}
