package app

import "sync/atomic"

// Messages holds every user-visible string the controllers produce.
// Format strings are documented on the field.
type Messages struct {
	SummarizeLabel string
	UploadLabel    string
	BusyLabel      string
	CopyLabel      string
	CopiedLabel    string

	EmptyText          string
	NoFile             string
	SummarizeFailed    string
	UploadFailed       string
	UploadSucceeded    string
	HistoryFailed      string
	LoadSummaryFailed  string
	DownloadFailed     string
	SaveFailed         string
	BackendUnhealthy   string
	BackendUnreachable string

	// Saved takes the saved path
	Saved string
	// TextStats takes original length, summary length and ratio percent
	TextStats string
	// LengthStats takes original and summary length
	LengthStats string
	// UploadStats takes the file name and summary length
	UploadStats string
	// SummaryStats takes the summary length
	SummaryStats string
}

// DefaultMessages returns the English strings
func DefaultMessages() Messages {
	return Messages{
		SummarizeLabel: "Summarize",
		UploadLabel:    "Upload & Summarize",
		BusyLabel:      "Processing...",
		CopyLabel:      "Copy",
		CopiedLabel:    "Copied!",

		EmptyText:          "Please enter some text to summarize.",
		NoFile:             "Please select a file to upload.",
		SummarizeFailed:    "Failed to summarize text. Please try again.",
		UploadFailed:       "Failed to upload and summarize file. Please try again.",
		UploadSucceeded:    "File uploaded and summarized successfully.",
		HistoryFailed:      "Failed to load summary history.",
		LoadSummaryFailed:  "Failed to load summary.",
		DownloadFailed:     "Failed to download summary.",
		SaveFailed:         "Failed to save summary.",
		BackendUnhealthy:   "API is not responding properly. Some features may not work.",
		BackendUnreachable: "Cannot connect to the backend API. Please make sure the server is running.",

		Saved:        "Summary saved to %s",
		TextStats:    "Original: %d chars | Summary: %d chars (%d%%)",
		LengthStats:  "Original: %d chars | Summary: %d chars",
		UploadStats:  "File: %s | Summary length: %d chars",
		SummaryStats: "Summary length: %d chars",
	}
}

// MessageStore holds the current Messages and is safe for concurrent use
type MessageStore struct {
	p atomic.Pointer[Messages]
}

// NewMessageStore creates a store holding m
func NewMessageStore(m Messages) *MessageStore {
	s := &MessageStore{}
	s.Set(m)
	return s
}

// Get returns the current messages
func (s *MessageStore) Get() Messages {
	return *s.p.Load()
}

// Set replaces the messages, e.g. after a language change
func (s *MessageStore) Set(m Messages) {
	s.p.Store(&m)
}
