package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/model"
)

// HealthChecker probes the backend once at startup
type HealthChecker struct {
	backend  api.Backend
	notifier *Notifier
	messages *MessageStore
	log      logrus.FieldLogger
}

// NewHealthChecker creates a health checker
func NewHealthChecker(backend api.Backend, notifier *Notifier, msgs *MessageStore, log logrus.FieldLogger) *HealthChecker {
	return &HealthChecker{
		backend:  backend,
		notifier: notifier,
		messages: msgs,
		log:      log.WithField("component", "health"),
	}
}

// CheckHealth warns when the backend is unreachable or not healthy
func (h *HealthChecker) CheckHealth(ctx context.Context) error {
	status, err := h.backend.Health(ctx)
	if err != nil {
		h.log.WithError(err).Warn("backend unreachable")
		h.notifier.Notify(h.messages.Get().BackendUnreachable, model.SeverityWarning)
		return err
	}
	if !status.IsHealthy() {
		h.log.WithFields(logrus.Fields{"status": status.Status, "message": status.Message}).Warn("backend unhealthy")
		h.notifier.Notify(h.messages.Get().BackendUnhealthy, model.SeverityWarning)
		return ErrUnhealthy
	}
	h.log.WithField("message", status.Message).Info("backend healthy")
	return nil
}
