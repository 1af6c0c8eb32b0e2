package app

import (
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/panics"
)

// NewRunner returns a Runner starting each fn on its own goroutine. A panic
// is logged instead of taking the window down.
func NewRunner(log logrus.FieldLogger) Runner {
	log = log.WithField("component", "runner")
	return func(fn func()) {
		go func() {
			var catcher panics.Catcher
			catcher.Try(fn)
			if r := catcher.Recovered(); r != nil {
				log.WithError(r.AsError()).Error("background task panicked")
			}
		}()
	}
}
