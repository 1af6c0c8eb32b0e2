package app

import (
	"fmt"
	"sync"
	"time"

	"github.com/ncruces/go-strftime"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/ytget/report-summarizer/internal/model"
)

// CopyFeedbackDelay is how long the copy button shows the copied label
const CopyFeedbackDelay = 2 * time.Second

// DownloadNameLayout is the strftime layout of the default download name
const DownloadNameLayout = "summary_%Y%m%d_%H%M%S.txt"

// PresenterDeps groups the presenter's collaborators
type PresenterDeps struct {
	View       ResultView
	CopyButton Labeler
	Clipboard  Clipboard
	Saver      Saver
	Notifier   *Notifier
	AfterFunc  AfterFunc
	Dispatch   Dispatcher
	Messages   *MessageStore
	Now        func() time.Time
	Log        logrus.FieldLogger
}

// Presenter renders the most recent result and offers copy and download.
// Present, Copy and Download run on the UI thread.
type Presenter struct {
	d   PresenterDeps
	log logrus.FieldLogger

	mu         sync.Mutex
	result     *model.SummaryResult
	revert     Timer
	copyRounds int
}

// NewPresenter creates a presenter
func NewPresenter(d PresenterDeps) *Presenter {
	if d.Now == nil {
		d.Now = time.Now
	}
	return &Presenter{d: d, log: d.Log.WithField("component", "presenter")}
}

// Present shows result in the result card and scrolls it into view
func (p *Presenter) Present(result *model.SummaryResult) {
	p.mu.Lock()
	p.result = result
	p.mu.Unlock()

	p.d.View.SetSummary(result.Summary)
	p.d.View.SetStats(p.Stats(result))
	p.d.View.Show()
	p.d.View.ScrollIntoView()
}

// Result returns the last presented result, or nil
func (p *Presenter) Result() *model.SummaryResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.result
}

// Stats builds the statistics line from whichever fields the result carries
func (p *Presenter) Stats(result *model.SummaryResult) string {
	msgs := p.d.Messages.Get()
	switch {
	case result.HasLengths():
		if ratio, ok := result.CompressionRatio(); ok {
			return fmt.Sprintf(msgs.TextStats, *result.OriginalLength, *result.SummaryLength, ratio)
		}
		return fmt.Sprintf(msgs.LengthStats, *result.OriginalLength, *result.SummaryLength)
	case result.Filename != "":
		return fmt.Sprintf(msgs.UploadStats, result.Filename, result.SummaryRunes())
	default:
		return fmt.Sprintf(msgs.SummaryStats, result.SummaryRunes())
	}
}

// Copy puts the output text on the clipboard and flips the copy button label
// for CopyFeedbackDelay. Copying again restarts the delay.
func (p *Presenter) Copy() {
	p.d.Clipboard.SetContent(p.d.View.Summary())
	p.d.CopyButton.SetText(p.d.Messages.Get().CopiedLabel)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.revert != nil {
		p.revert.Stop()
	}
	p.copyRounds++
	round := p.copyRounds
	p.revert = p.d.AfterFunc(CopyFeedbackDelay, func() {
		p.d.Dispatch(func() {
			p.mu.Lock()
			stale := round != p.copyRounds
			p.mu.Unlock()
			if !stale {
				p.d.CopyButton.SetText(p.d.Messages.Get().CopyLabel)
			}
		})
	})
}

// DefaultDownloadName returns the timestamped name used when none is given
func DefaultDownloadName(now time.Time) string {
	return strftime.Format(DownloadNameLayout, now)
}

// Download saves the output text. An empty name means DefaultDownloadName.
func (p *Presenter) Download(name string) (string, error) {
	if name == "" {
		name = DefaultDownloadName(p.d.Now())
	}

	path, err := p.d.Saver.Save(name, p.d.View.Summary())
	if err != nil {
		p.log.WithError(err).WithField("name", name).Warn("saving summary failed")
		p.d.Notifier.Notify(p.d.Messages.Get().SaveFailed, model.SeverityDanger)
		return "", errors.Wrap(err, "save summary")
	}

	p.log.WithField("path", path).Info("summary saved")
	p.d.Notifier.Notify(fmt.Sprintf(p.d.Messages.Get().Saved, path), model.SeveritySuccess)
	return path, nil
}
