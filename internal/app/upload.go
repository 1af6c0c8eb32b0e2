package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/model"
)

// UploadController drives "upload file and summarize"
type UploadController struct {
	*requestController
	backend   api.Backend
	fileInput FileInput
}

// NewUploadController creates the upload controller
func NewUploadController(backend api.Backend, state *State, presenter *Presenter, notifier *Notifier,
	trigger Trigger, fileInput FileInput, dispatch Dispatcher, msgs *MessageStore, log logrus.FieldLogger) *UploadController {
	return &UploadController{
		requestController: newRequestController("upload", state, presenter, notifier,
			trigger, msgs, uploadLabel, uploadFailed, dispatch, log),
		backend:   backend,
		fileInput: fileInput,
	}
}

// Submit uploads the single selected file. The file input is cleared only on
// success. Call it off the UI thread.
func (c *UploadController) Submit(ctx context.Context, req model.UploadRequest) error {
	if err := req.Validate(); err != nil {
		c.notifier.Notify(c.messages.Get().NoFile, model.SeverityWarning)
		return err
	}

	file := req.File()
	c.log.WithFields(logrus.Fields{
		"file":   file.Name,
		"size":   file.Size,
		"method": req.Method,
	}).Info("uploading file")

	return c.execute(ctx, func(ctx context.Context) (*model.SummaryResult, error) {
		return c.backend.Upload(ctx, req)
	}, func(*model.SummaryResult) {
		c.fileInput.Clear()
		c.notifier.Notify(c.messages.Get().UploadSucceeded, model.SeveritySuccess)
	})
}

func uploadLabel(m Messages) string  { return m.UploadLabel }
func uploadFailed(m Messages) string { return m.UploadFailed }
