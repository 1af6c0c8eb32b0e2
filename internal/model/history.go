package model

import (
	"strings"
)

// Preview sizing for history rows
const (
	DefaultPreviewRunes = 120
	PreviewEllipsis     = "…"
)

// HistoryEntry is one row of GET /summaries
type HistoryEntry struct {
	ID               string `json:"id"`
	OriginalFilename string `json:"original_filename"`
	Summary          string `json:"summary"`
	CreatedAt        string `json:"created_at"`
}

// Preview returns the summary collapsed to a single line and truncated to max runes
func (e HistoryEntry) Preview(max int) string {
	text := strings.Join(strings.Fields(e.Summary), " ")
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return strings.TrimSpace(string(runes[:max])) + PreviewEllipsis
}

// GetDisplayName returns filename, or the id when the backend has no filename
func (e HistoryEntry) GetDisplayName() string {
	if name := strings.TrimSpace(e.OriginalFilename); name != "" {
		return name
	}
	return e.ID
}
