package app

import (
	"time"

	"github.com/ytget/report-summarizer/internal/model"
)

// Dispatcher runs fn on the UI thread
type Dispatcher func(fn func())

// Runner runs fn away from the UI thread
type Runner func(fn func())

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d. Callbacks may run on any goroutine.
type AfterFunc func(d time.Duration, fn func()) Timer

// SystemAfterFunc is AfterFunc backed by time.AfterFunc
func SystemAfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Labeler is anything showing a single text label
type Labeler interface {
	SetText(text string)
}

// Trigger is the control that starts a request
type Trigger interface {
	Labeler
	Disable()
	Enable()
}

// ResultView is the result card shared by both request controllers
type ResultView interface {
	SetSummary(text string)
	Summary() string
	SetStats(line string)
	Show()
	ScrollIntoView()
}

// HistoryView renders history rows. An empty slice renders the placeholder row.
type HistoryView interface {
	ShowEntries(entries []model.HistoryEntry)
}

// SummaryViewer shows a stored summary read-only
type SummaryViewer interface {
	ShowSummary(title, text string)
}

// Saver stores text under name and returns where it went
type Saver interface {
	Save(name, text string) (string, error)
}

// Clipboard receives copied text
type Clipboard interface {
	SetContent(content string)
}

// Notification is one message in the notification stack
type Notification struct {
	ID       string
	Message  string
	Severity model.Severity
	// Dismiss removes the notification early; wired to its close button
	Dismiss func()
}

// NotificationView renders the notification stack
type NotificationView interface {
	AddNotification(n Notification)
	FadeNotification(id string)
	RemoveNotification(id string)
}

// NavView owns the two section containers and their navigation controls
type NavView interface {
	SetSectionVisible(view model.ViewState, visible bool)
	SetNavActive(view model.ViewState, active bool)
}

// FileInput is the upload form's file chooser
type FileInput interface {
	Clear()
}
