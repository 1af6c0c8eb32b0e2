package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/model"
)

// SummaryController drives "summarize raw text"
type SummaryController struct {
	*requestController
	backend api.Backend
}

// NewSummaryController creates the text summarization controller
func NewSummaryController(backend api.Backend, state *State, presenter *Presenter, notifier *Notifier,
	trigger Trigger, dispatch Dispatcher, msgs *MessageStore, log logrus.FieldLogger) *SummaryController {
	return &SummaryController{
		requestController: newRequestController("summarize", state, presenter, notifier,
			trigger, msgs, summarizeLabel, summarizeFailed, dispatch, log),
		backend: backend,
	}
}

// Submit sends req once. It blocks until the response is handled, so call it
// off the UI thread.
func (c *SummaryController) Submit(ctx context.Context, req model.SummaryRequest) error {
	req = req.Normalize()
	if err := req.Validate(); err != nil {
		c.notifier.Notify(c.messages.Get().EmptyText, model.SeverityWarning)
		return err
	}

	c.log.WithFields(logrus.Fields{
		"method":     req.Method,
		"max_length": req.MaxLength,
		"min_length": req.MinLength,
		"chars":      len([]rune(req.Text)),
	}).Info("summarizing text")

	return c.execute(ctx, func(ctx context.Context) (*model.SummaryResult, error) {
		return c.backend.Summarize(ctx, req)
	}, nil)
}

func summarizeLabel(m Messages) string  { return m.SummarizeLabel }
func summarizeFailed(m Messages) string { return m.SummarizeFailed }
