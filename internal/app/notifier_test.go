package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/report-summarizer/internal/logging"
	"github.com/ytget/report-summarizer/internal/model"
)

func newTestNotifier() (*Notifier, *fakeNotifications, *fakeClock) {
	view := &fakeNotifications{}
	clock := &fakeClock{}
	return NewNotifier(view, clock.AfterFunc, syncDispatch, logging.Discard()), view, clock
}

func TestNotifier_FadesThenRemoves(t *testing.T) {
	n, view, clock := newTestNotifier()

	id := n.Notify("Failed to load summary.", "")
	shown := view.Shown()
	require.Len(t, shown, 1)
	assert.Equal(t, id, shown[0].ID)
	assert.Equal(t, model.SeverityDanger, shown[0].Severity, "empty severity defaults to danger")

	clock.Advance(NotificationTimeout - time.Millisecond)
	assert.Empty(t, view.faded)

	clock.Advance(time.Millisecond)
	assert.Equal(t, []string{id}, view.faded)
	assert.Empty(t, view.removed)

	clock.Advance(NotificationFade)
	assert.Equal(t, []string{id}, view.removed)
	assert.Equal(t, 0, n.Len())
}

func TestNotifier_IndependentTimers(t *testing.T) {
	n, view, clock := newTestNotifier()

	first := n.Notify("first", model.SeverityWarning)
	clock.Advance(2 * time.Second)
	second := n.Notify("second", model.SeverityInfo)
	assert.Equal(t, 2, n.Len())

	n.Dismiss(first)
	assert.Equal(t, []string{first}, view.removed)
	assert.Equal(t, 1, n.Len())

	clock.Advance(3 * time.Second)
	assert.Empty(t, view.faded, "dismissed message must not fade later")

	clock.Advance(2*time.Second + NotificationFade)
	assert.Equal(t, []string{second}, view.faded)
	assert.Equal(t, []string{first, second}, view.removed)
}

func TestNotifier_DismissFromView(t *testing.T) {
	n, view, clock := newTestNotifier()

	n.Notify("closable", model.SeverityDanger)
	view.Shown()[0].Dismiss()
	assert.Equal(t, 0, n.Len())

	clock.Advance(NotificationTimeout + NotificationFade)
	assert.Len(t, view.removed, 1)
	assert.Empty(t, view.faded)
}

func TestNotifier_DismissDuringFade(t *testing.T) {
	n, view, clock := newTestNotifier()

	id := n.Notify("fading", model.SeverityDanger)
	clock.Advance(NotificationTimeout)
	n.Dismiss(id)
	clock.Advance(NotificationFade)

	assert.Equal(t, []string{id}, view.removed)
}

func TestNotifier_UniqueIDs(t *testing.T) {
	n, _, _ := newTestNotifier()

	assert.NotEqual(t, n.Notify("a", ""), n.Notify("a", ""))
}
