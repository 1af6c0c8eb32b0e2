package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ytget/report-summarizer/internal/api"
	"github.com/ytget/report-summarizer/internal/logging"
	"github.com/ytget/report-summarizer/internal/model"
)

func TestCheckHealth(t *testing.T) {
	msgs := DefaultMessages()

	tests := []struct {
		name     string
		status   model.HealthStatus
		err      error
		wantErr  bool
		expected []string
	}{
		{"healthy", model.HealthStatus{Status: "healthy", Message: "API is running"}, nil, false, nil},
		{"unhealthy", model.HealthStatus{Status: "degraded"}, nil, true, []string{msgs.BackendUnhealthy}},
		{"unreachable", model.HealthStatus{}, &api.TransportError{Op: api.OpHealth, Err: errors.New("refused")}, true, []string{msgs.BackendUnreachable}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			f := newFixture()
			f.backend.On("Health", mock.Anything).Return(test.status, test.err).Once()

			err := f.app.Health.CheckHealth(context.Background())
			if test.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, test.expected, f.notifications.Messages())
			for _, n := range f.notifications.Shown() {
				assert.Equal(t, model.SeverityWarning, n.Severity)
			}
		})
	}
}

func TestCheckHealth_UnhealthyError(t *testing.T) {
	f := newFixture()
	f.backend.On("Health", mock.Anything).Return(model.HealthStatus{Status: "starting"}, nil)

	assert.ErrorIs(t, f.app.Health.CheckHealth(context.Background()), ErrUnhealthy)
}

func TestCheckHealth_DegradedBackendAnsweringServiceUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"status":"degraded","message":"model not loaded"}`))
	}))
	t.Cleanup(srv.Close)

	f := newFixture()
	client := api.NewClient(srv.URL, api.NewHTTPClient(time.Second), logging.Discard())
	checker := NewHealthChecker(client, f.app.Notifier, f.app.Messages, logging.Discard())

	assert.ErrorIs(t, checker.CheckHealth(context.Background()), ErrUnhealthy)
	assert.Equal(t, []string{DefaultMessages().BackendUnhealthy}, f.notifications.Messages())
}
