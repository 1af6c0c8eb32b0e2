package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/ytget/report-summarizer/internal/logging"
	"github.com/ytget/report-summarizer/internal/model"
)

func syncDispatch(fn func()) { fn() }

func syncRun(fn func()) { fn() }

// fakeClock fires timers only when Advance is called
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now + d
	c.mu.Unlock()

	for {
		c.mu.Lock()
		var due []*fakeTimer
		for _, t := range c.timers {
			if !t.stopped && !t.fired && t.at <= target {
				due = append(due, t)
			}
		}
		if len(due) == 0 {
			c.now = target
			c.mu.Unlock()
			return
		}
		sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
		next := due[0]
		next.fired = true
		c.now = next.at
		c.mu.Unlock()

		next.fn()
	}
}

type fakeTrigger struct {
	mu       sync.Mutex
	text     string
	disabled bool
	history  []string
}

func newFakeTrigger(text string) *fakeTrigger {
	return &fakeTrigger{text: text}
}

func (b *fakeTrigger) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.text = text
	b.history = append(b.history, text)
}

func (b *fakeTrigger) Disable() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = true
}

func (b *fakeTrigger) Enable() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.disabled = false
}

func (b *fakeTrigger) Text() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.text
}

func (b *fakeTrigger) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

type fakeResultView struct {
	mu       sync.Mutex
	summary  string
	stats    string
	visible  bool
	scrolled int
}

func (v *fakeResultView) SetSummary(text string) { v.mu.Lock(); v.summary = text; v.mu.Unlock() }
func (v *fakeResultView) Summary() string        { v.mu.Lock(); defer v.mu.Unlock(); return v.summary }
func (v *fakeResultView) SetStats(line string)   { v.mu.Lock(); v.stats = line; v.mu.Unlock() }
func (v *fakeResultView) Show()                  { v.mu.Lock(); v.visible = true; v.mu.Unlock() }
func (v *fakeResultView) ScrollIntoView()        { v.mu.Lock(); v.scrolled++; v.mu.Unlock() }

func (v *fakeResultView) Visible() bool { v.mu.Lock(); defer v.mu.Unlock(); return v.visible }
func (v *fakeResultView) Stats() string { v.mu.Lock(); defer v.mu.Unlock(); return v.stats }

type fakeNotifications struct {
	mu      sync.Mutex
	shown   []Notification
	faded   []string
	removed []string
}

func (v *fakeNotifications) AddNotification(n Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = append(v.shown, n)
}

func (v *fakeNotifications) FadeNotification(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.faded = append(v.faded, id)
}

func (v *fakeNotifications) RemoveNotification(id string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.removed = append(v.removed, id)
}

func (v *fakeNotifications) Shown() []Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]Notification(nil), v.shown...)
}

func (v *fakeNotifications) Messages() []string {
	var out []string
	for _, n := range v.Shown() {
		out = append(out, n.Message)
	}
	return out
}

type fakeHistoryView struct {
	mu      sync.Mutex
	renders [][]model.HistoryEntry
}

func (v *fakeHistoryView) ShowEntries(entries []model.HistoryEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.renders = append(v.renders, entries)
}

func (v *fakeHistoryView) Renders() [][]model.HistoryEntry {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.renders
}

type fakeViewer struct {
	title string
	text  string
	calls int
}

func (v *fakeViewer) ShowSummary(title, text string) {
	v.title, v.text = title, text
	v.calls++
}

type fakeSaver struct {
	err   error
	names []string
	texts []string
}

func (s *fakeSaver) Save(name, text string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.names = append(s.names, name)
	s.texts = append(s.texts, text)
	return "/downloads/" + name, nil
}

type fakeClipboard struct {
	content string
}

func (c *fakeClipboard) SetContent(content string) { c.content = content }

type fakeNav struct {
	visible map[model.ViewState]bool
	active  map[model.ViewState]bool
	// maxVisible records the most sections ever visible at once
	maxVisible int
}

func newFakeNav() *fakeNav {
	return &fakeNav{visible: map[model.ViewState]bool{}, active: map[model.ViewState]bool{}}
}

func (n *fakeNav) SetSectionVisible(view model.ViewState, visible bool) {
	n.visible[view] = visible
	count := 0
	for _, v := range n.visible {
		if v {
			count++
		}
	}
	if count > n.maxVisible {
		n.maxVisible = count
	}
}

func (n *fakeNav) SetNavActive(view model.ViewState, active bool) {
	n.active[view] = active
}

type fakeFileInput struct {
	cleared int
}

func (f *fakeFileInput) Clear() { f.cleared++ }

// mockBackend is a testify mock of api.Backend
type mockBackend struct {
	mock.Mock
}

func (m *mockBackend) Health(ctx context.Context) (model.HealthStatus, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.HealthStatus), args.Error(1)
}

func (m *mockBackend) Summarize(ctx context.Context, req model.SummaryRequest) (*model.SummaryResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*model.SummaryResult)
	return res, args.Error(1)
}

func (m *mockBackend) Upload(ctx context.Context, req model.UploadRequest) (*model.SummaryResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*model.SummaryResult)
	return res, args.Error(1)
}

func (m *mockBackend) ListSummaries(ctx context.Context) ([]model.HistoryEntry, error) {
	args := m.Called(ctx)
	entries, _ := args.Get(0).([]model.HistoryEntry)
	return entries, args.Error(1)
}

func (m *mockBackend) GetSummary(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

// fixture is a fully wired App on fakes
type fixture struct {
	backend       *mockBackend
	clock         *fakeClock
	result        *fakeResultView
	copyButton    *fakeTrigger
	history       *fakeHistoryView
	viewer        *fakeViewer
	notifications *fakeNotifications
	nav           *fakeNav
	fileInput     *fakeFileInput
	summarize     *fakeTrigger
	upload        *fakeTrigger
	clipboard     *fakeClipboard
	saver         *fakeSaver
	app           *App
}

var fixedNow = time.Date(2024, 5, 1, 9, 30, 15, 0, time.UTC)

func newFixture() *fixture {
	msgs := DefaultMessages()
	f := &fixture{
		backend:       &mockBackend{},
		clock:         &fakeClock{},
		result:        &fakeResultView{},
		copyButton:    newFakeTrigger(msgs.CopyLabel),
		history:       &fakeHistoryView{},
		viewer:        &fakeViewer{},
		notifications: &fakeNotifications{},
		nav:           newFakeNav(),
		fileInput:     &fakeFileInput{},
		summarize:     newFakeTrigger(msgs.SummarizeLabel),
		upload:        newFakeTrigger(msgs.UploadLabel),
		clipboard:     &fakeClipboard{},
		saver:         &fakeSaver{},
	}
	f.app = New(context.Background(), Deps{
		Backend: f.backend,
		Views: Views{
			Result:          f.result,
			CopyButton:      f.copyButton,
			History:         f.history,
			Viewer:          f.viewer,
			Notifications:   f.notifications,
			Nav:             f.nav,
			FileInput:       f.fileInput,
			SummarizeButton: f.summarize,
			UploadButton:    f.upload,
		},
		Clipboard: f.clipboard,
		Saver:     f.saver,
		Dispatch:  syncDispatch,
		Run:       syncRun,
		AfterFunc: f.clock.AfterFunc,
		Messages:  msgs,
		Now:       func() time.Time { return fixedNow },
		Log:       logging.Discard(),
	})
	return f
}
