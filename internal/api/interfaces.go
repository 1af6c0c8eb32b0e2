package api

import (
	"context"

	"github.com/ytget/report-summarizer/internal/model"
)

// Backend defines the REST contract consumed by the controllers.
type Backend interface {
	Health(ctx context.Context) (model.HealthStatus, error)
	Summarize(ctx context.Context, req model.SummaryRequest) (*model.SummaryResult, error)
	Upload(ctx context.Context, req model.UploadRequest) (*model.SummaryResult, error)
	ListSummaries(ctx context.Context) ([]model.HistoryEntry, error)
	GetSummary(ctx context.Context, id string) (string, error)
}
