package model

import (
	"math"
	"unicode/utf8"
)

// SummaryResult is the unified result of a text or file summarization.
// OriginalLength and SummaryLength are only reported for text requests;
// Filename is only set for uploads.
type SummaryResult struct {
	Summary        string `json:"summary"`
	OriginalLength *int   `json:"original_length,omitempty"`
	SummaryLength  *int   `json:"summary_length,omitempty"`
	SummaryPath    string `json:"summary_path,omitempty"`
	Filename       string `json:"-"`
}

// HasLengths reports whether both backend lengths are present
func (r *SummaryResult) HasLengths() bool {
	return r.OriginalLength != nil && r.SummaryLength != nil
}

// CompressionRatio returns round(summary/original*100). ok is false when the
// original length is missing or zero.
func (r *SummaryResult) CompressionRatio() (ratio int, ok bool) {
	if !r.HasLengths() || *r.OriginalLength == 0 {
		return 0, false
	}
	return int(math.Round(float64(*r.SummaryLength) / float64(*r.OriginalLength) * 100)), true
}

// SummaryRunes returns the number of characters in the summary
func (r *SummaryResult) SummaryRunes() int {
	return utf8.RuneCountInString(r.Summary)
}

// HealthStatus is the body of GET /health
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthyStatus is the only status value treated as healthy
const HealthyStatus = "healthy"

// IsHealthy returns true when the backend reports itself healthy
func (h HealthStatus) IsHealthy() bool {
	return h.Status == HealthyStatus
}

// IntPtr is a helper for building results with optional lengths
func IntPtr(v int) *int {
	return &v
}
