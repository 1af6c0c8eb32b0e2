package app

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/model"
)

// requestController is the lifecycle shared by the text and upload
// controllers: busy gate, trigger handling, result surface claim and
// error reporting.
type requestController struct {
	state     *State
	presenter *Presenter
	notifier  *Notifier
	trigger   Trigger
	messages  *MessageStore
	label     func(Messages) string
	failure   func(Messages) string
	dispatch  Dispatcher
	log       logrus.FieldLogger
	gate      *semaphore.Weighted

	mu     sync.Mutex
	status model.RequestStatus
}

func newRequestController(name string, state *State, presenter *Presenter, notifier *Notifier,
	trigger Trigger, msgs *MessageStore, label, failure func(Messages) string, dispatch Dispatcher, log logrus.FieldLogger) *requestController {
	return &requestController{
		state:     state,
		presenter: presenter,
		notifier:  notifier,
		trigger:   trigger,
		messages:  msgs,
		label:     label,
		failure:   failure,
		dispatch:  dispatch,
		log:       log.WithField("component", name),
		gate:      semaphore.NewWeighted(1),
		status:    model.RequestStatusIdle,
	}
}

// Status returns the current lifecycle state
func (c *requestController) Status() model.RequestStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

func (c *requestController) setStatus(status model.RequestStatus) {
	c.mu.Lock()
	c.status = status
	c.mu.Unlock()
	c.log.WithField("status", status).Debug("request status changed")
}

// swapStatus moves from one status to another only if nothing else changed it
// in between.
func (c *requestController) swapStatus(from, to model.RequestStatus) {
	c.mu.Lock()
	if c.status != from {
		c.mu.Unlock()
		return
	}
	c.status = to
	c.mu.Unlock()
	c.log.WithField("status", to).Debug("request status changed")
}

// execute runs call once with the trigger disabled. onSuccess runs on the UI
// thread right after the result is presented.
func (c *requestController) execute(ctx context.Context,
	call func(context.Context) (*model.SummaryResult, error),
	onSuccess func(*model.SummaryResult)) error {

	if !c.gate.TryAcquire(1) {
		return ErrBusy
	}

	c.setStatus(model.RequestStatusPending)
	c.dispatch(func() {
		c.trigger.Disable()
		c.trigger.SetText(c.messages.Get().BusyLabel)
	})
	defer func() {
		c.dispatch(func() {
			c.trigger.SetText(c.label(c.messages.Get()))
			c.trigger.Enable()
		})
		if c.Status() == model.RequestStatusPending {
			c.setStatus(model.RequestStatusFailed)
		}
		c.gate.Release(1)
	}()

	reqCtx, token, done := c.state.Claim(ctx)
	defer done()
	log := c.log.WithField("token", token)

	result, err := call(reqCtx)

	if !c.state.Current(token) {
		log.Info("request superseded, result dropped")
		c.setStatus(model.RequestStatusFailed)
		return ErrSuperseded
	}

	if err != nil {
		c.setStatus(model.RequestStatusFailed)
		c.report(log, err)
		return err
	}

	// Settled before dispatch; the closure downgrades it when the result is dropped.
	c.setStatus(model.RequestStatusSucceeded)
	c.dispatch(func() {
		if !c.state.Current(token) {
			c.swapStatus(model.RequestStatusSucceeded, model.RequestStatusFailed)
			log.Info("request superseded before presentation, result dropped")
			return
		}
		c.presenter.Present(result)
		if onSuccess != nil {
			onSuccess(result)
		}
		log.WithField("summary_chars", result.SummaryRunes()).Info("request succeeded")
	})
	return nil
}

// report shows a backend error message verbatim and anything else as the
// generic failure message
func (c *requestController) report(log logrus.FieldLogger, err error) {
	if appErr, ok := api.AsApplicationError(err); ok {
		log.WithField("status_code", appErr.StatusCode).Warnf("backend error: %s", appErr.Message)
		c.notifier.Notify(appErr.Message, model.SeverityDanger)
		return
	}
	log.WithError(err).Error("request failed")
	c.notifier.Notify(c.failure(c.messages.Get()), model.SeverityDanger)
}
