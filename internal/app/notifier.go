package app

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/model"
)

// Notification timings
const (
	NotificationTimeout = 5 * time.Second
	NotificationFade    = 300 * time.Millisecond
)

// Notifier shows transient messages. Each message owns its own timers.
type Notifier struct {
	view     NotificationView
	after    AfterFunc
	dispatch Dispatcher
	log      logrus.FieldLogger

	mu     sync.Mutex
	timers map[string]Timer
}

// NewNotifier creates a notifier rendering into view
func NewNotifier(view NotificationView, after AfterFunc, dispatch Dispatcher, log logrus.FieldLogger) *Notifier {
	return &Notifier{
		view:     view,
		after:    after,
		dispatch: dispatch,
		log:      log.WithField("component", "notifier"),
		timers:   make(map[string]Timer),
	}
}

// Notify appends a message and returns its id. An empty severity means danger.
// Safe to call from any goroutine.
func (n *Notifier) Notify(message string, severity model.Severity) string {
	if severity == "" {
		severity = model.SeverityDanger
	}
	id := uuid.NewString()

	n.log.WithFields(logrus.Fields{"id": id, "severity": severity}).Debug(message)

	n.dispatch(func() {
		n.view.AddNotification(Notification{
			ID:       id,
			Message:  message,
			Severity: severity,
			Dismiss:  func() { n.Dismiss(id) },
		})
	})

	n.mu.Lock()
	n.timers[id] = n.after(NotificationTimeout, func() { n.fade(id) })
	n.mu.Unlock()

	return id
}

// Dismiss removes one message immediately and cancels its timers
func (n *Notifier) Dismiss(id string) {
	n.mu.Lock()
	timer, ok := n.timers[id]
	if ok {
		timer.Stop()
		delete(n.timers, id)
	}
	n.mu.Unlock()

	if ok {
		n.dispatch(func() { n.view.RemoveNotification(id) })
	}
}

// Len returns the number of messages still on screen
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.timers)
}

func (n *Notifier) fade(id string) {
	n.mu.Lock()
	if _, ok := n.timers[id]; !ok {
		n.mu.Unlock()
		return
	}
	n.timers[id] = n.after(NotificationFade, func() { n.remove(id) })
	n.mu.Unlock()

	n.dispatch(func() { n.view.FadeNotification(id) })
}

func (n *Notifier) remove(id string) {
	n.mu.Lock()
	_, ok := n.timers[id]
	delete(n.timers, id)
	n.mu.Unlock()

	if ok {
		n.dispatch(func() { n.view.RemoveNotification(id) })
	}
}
