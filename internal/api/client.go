package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/model"
)

// Endpoint paths relative to the base URL
const (
	PathHealth    = "/health"
	PathSummarize = "/summarize"
	PathUpload    = "/upload"
	PathSummaries = "/summaries"
)

// HTTP constants
const (
	HeaderRequestID   = "X-Request-ID"
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	ContentTypeJSON   = "application/json"
	MaxResponseBytes  = 32 << 20
)

// Operation names used in errors and logs
const (
	OpHealth        = "health"
	OpSummarize     = "summarize"
	OpUpload        = "upload"
	OpListSummaries = "list summaries"
	OpGetSummary    = "get summary"
)

// Client talks to the summarization backend over HTTP
type Client struct {
	baseURL      string
	http         *http.Client
	log          logrus.FieldLogger
	newRequestID func() string
}

// NewHTTPClient returns a pooled client. A zero timeout means none.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			Proxy:               http.ProxyFromEnvironment,
			MaxIdleConns:        20,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// NewClient creates a backend client for baseURL, e.g. http://localhost:5000/api
func NewClient(baseURL string, httpClient *http.Client, log logrus.FieldLogger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		http:         httpClient,
		log:          log.WithField("component", "api"),
		newRequestID: uuid.NewString,
	}
}

// BaseURL returns the configured base URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health calls GET /health
func (c *Client) Health(ctx context.Context) (model.HealthStatus, error) {
	var status model.HealthStatus
	data, code, err := c.do(ctx, OpHealth, http.MethodGet, PathHealth, nil, "")
	if err != nil {
		return status, err
	}
	// A backend that is up but not ready answers non-2xx with a status body.
	if !isSuccess(code) && json.Unmarshal(data, &status) == nil && status.Status != "" {
		return status, nil
	}
	status = model.HealthStatus{}
	if err := decodeJSON(OpHealth, code, data, &status); err != nil {
		return status, err
	}
	return status, nil
}

// Summarize posts the request as JSON to /summarize
func (c *Client) Summarize(ctx context.Context, req model.SummaryRequest) (*model.SummaryResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode summarize request")
	}

	data, code, err := c.do(ctx, OpSummarize, http.MethodPost, PathSummarize, bytes.NewReader(body), ContentTypeJSON)
	if err != nil {
		return nil, err
	}

	var result model.SummaryResult
	if err := decodeJSON(OpSummarize, code, data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Upload posts the single selected file and parameters as multipart/form-data
func (c *Client) Upload(ctx context.Context, req model.UploadRequest) (*model.SummaryResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	file := req.File()

	body, contentType, err := buildUploadBody(req)
	if err != nil {
		return nil, err
	}

	data, code, err := c.do(ctx, OpUpload, http.MethodPost, PathUpload, body, contentType)
	if err != nil {
		return nil, err
	}

	var result model.SummaryResult
	if err := decodeJSON(OpUpload, code, data, &result); err != nil {
		return nil, err
	}
	result.Filename = file.Name
	return &result, nil
}

// ListSummaries calls GET /summaries
func (c *Client) ListSummaries(ctx context.Context) ([]model.HistoryEntry, error) {
	data, code, err := c.do(ctx, OpListSummaries, http.MethodGet, PathSummaries, nil, "")
	if err != nil {
		return nil, err
	}

	entries := make([]model.HistoryEntry, 0)
	if err := decodeJSON(OpListSummaries, code, data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// GetSummary returns the raw text of one stored summary
func (c *Client) GetSummary(ctx context.Context, id string) (string, error) {
	if strings.TrimSpace(id) == "" {
		return "", errors.New("summary id is empty")
	}

	data, code, err := c.do(ctx, OpGetSummary, http.MethodGet, PathSummaries+"/"+url.PathEscape(id), nil, "")
	if err != nil {
		return "", err
	}
	if !isSuccess(code) {
		if appErr := parseErrorPayload(OpGetSummary, code, data); appErr != nil {
			return "", appErr
		}
		return "", &TransportError{Op: OpGetSummary, StatusCode: code, Err: errors.New("unexpected status")}
	}
	return string(data), nil
}

// do sends one request and returns the full body. Only network-level problems
// are returned as errors here; status handling is up to the caller.
func (c *Client) do(ctx context.Context, op, method, path string, body io.Reader, contentType string) ([]byte, int, error) {
	requestID := c.newRequestID()
	log := c.log.WithFields(logrus.Fields{
		"op":         op,
		"request_id": requestID,
	})

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, 0, &TransportError{Op: op, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set(HeaderRequestID, requestID)
	req.Header.Set(HeaderAccept, ContentTypeJSON+", text/plain;q=0.9, */*;q=0.1")
	if contentType != "" {
		req.Header.Set(HeaderContentType, contentType)
	}

	started := time.Now()
	log.Debugf("%s %s", method, req.URL.Redacted())

	resp, err := c.http.Do(req)
	if err != nil {
		log.WithError(err).Warn("request failed")
		return nil, 0, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		log.WithError(err).Warn("reading response failed")
		return nil, resp.StatusCode, &TransportError{Op: op, StatusCode: resp.StatusCode, Err: errors.Wrap(err, "read body")}
	}

	log.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"bytes":    len(data),
		"duration": time.Since(started).Round(time.Millisecond),
	}).Debug("response received")

	return data, resp.StatusCode, nil
}

type errorPayload struct {
	Error string `json:"error"`
}

// decodeJSON classifies a JSON response: an error field wins regardless of
// status, then non-2xx is a transport failure, then out is decoded.
func decodeJSON(op string, status int, data []byte, out any) error {
	if appErr := parseErrorPayload(op, status, data); appErr != nil {
		return appErr
	}
	if !isSuccess(status) {
		return &TransportError{Op: op, StatusCode: status, Err: errors.New("unexpected status")}
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &TransportError{Op: op, StatusCode: status, Err: errors.Wrap(err, "decode response")}
	}
	return nil
}

func parseErrorPayload(op string, status int, data []byte) *ApplicationError {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}
	var payload errorPayload
	if err := json.Unmarshal(trimmed, &payload); err != nil || payload.Error == "" {
		return nil
	}
	return &ApplicationError{Op: op, StatusCode: status, Message: payload.Error}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
