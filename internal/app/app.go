package app

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/model"
)

// Views are the widgets the controllers drive
type Views struct {
	Result          ResultView
	CopyButton      Labeler
	History         HistoryView
	Viewer          SummaryViewer
	Notifications   NotificationView
	Nav             NavView
	FileInput       FileInput
	SummarizeButton Trigger
	UploadButton    Trigger
}

// Deps are everything New needs
type Deps struct {
	Backend   api.Backend
	Views     Views
	Clipboard Clipboard
	Saver     Saver
	Dispatch  Dispatcher
	Run       Runner
	AfterFunc AfterFunc
	Messages  Messages
	Now       func() time.Time
	Log       logrus.FieldLogger
}

// App wires the controllers around one State
type App struct {
	ctx context.Context
	run Runner
	log logrus.FieldLogger

	State     *State
	Messages  *MessageStore
	Notifier  *Notifier
	Presenter *Presenter
	Summary   *SummaryController
	Upload    *UploadController
	History   *HistoryLoader
	Nav       *Navigator
	Health    *HealthChecker
}

// New builds the controllers. ctx bounds every request started through App.
func New(ctx context.Context, d Deps) *App {
	if d.AfterFunc == nil {
		d.AfterFunc = SystemAfterFunc
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Run == nil {
		d.Run = NewRunner(d.Log)
	}

	state := NewState()
	msgs := NewMessageStore(d.Messages)
	notifier := NewNotifier(d.Views.Notifications, d.AfterFunc, d.Dispatch, d.Log)
	presenter := NewPresenter(PresenterDeps{
		View:       d.Views.Result,
		CopyButton: d.Views.CopyButton,
		Clipboard:  d.Clipboard,
		Saver:      d.Saver,
		Notifier:   notifier,
		AfterFunc:  d.AfterFunc,
		Dispatch:   d.Dispatch,
		Messages:   msgs,
		Now:        d.Now,
		Log:        d.Log,
	})
	history := NewHistoryLoader(HistoryDeps{
		Backend:  d.Backend,
		View:     d.Views.History,
		Viewer:   d.Views.Viewer,
		Saver:    d.Saver,
		Notifier: notifier,
		Dispatch: d.Dispatch,
		Messages: msgs,
		Log:      d.Log,
	})

	return &App{
		ctx:       ctx,
		run:       d.Run,
		log:       d.Log.WithField("component", "app"),
		State:     state,
		Messages:  msgs,
		Notifier:  notifier,
		Presenter: presenter,
		Summary: NewSummaryController(d.Backend, state, presenter, notifier,
			d.Views.SummarizeButton, d.Dispatch, msgs, d.Log),
		Upload: NewUploadController(d.Backend, state, presenter, notifier,
			d.Views.UploadButton, d.Views.FileInput, d.Dispatch, msgs, d.Log),
		History: history,
		Nav:     NewNavigator(ctx, state, d.Views.Nav, history, d.Run, d.Log),
		Health:  NewHealthChecker(d.Backend, notifier, msgs, d.Log),
	}
}

// SubmitText starts a text summarization in the background
func (a *App) SubmitText(req model.SummaryRequest) {
	a.run(func() {
		if err := a.Summary.Submit(a.ctx, req); err != nil {
			a.log.WithError(err).Debug("text summarization ended with error")
		}
	})
}

// SubmitUpload starts an upload in the background
func (a *App) SubmitUpload(req model.UploadRequest) {
	a.run(func() {
		if err := a.Upload.Submit(a.ctx, req); err != nil {
			a.log.WithError(err).Debug("upload ended with error")
		}
	})
}

// RowAction is the single handler for every history row button
func (a *App) RowAction(action RowAction, id string) {
	a.run(func() {
		_ = a.History.HandleAction(a.ctx, action, id)
	})
}

// CheckHealth runs the startup probe in the background
func (a *App) CheckHealth() {
	a.run(func() {
		_ = a.Health.CheckHealth(a.ctx)
	})
}

// SetMessages switches every controller to new texts, e.g. after a language change
func (a *App) SetMessages(m Messages) {
	a.Messages.Set(m)
}
