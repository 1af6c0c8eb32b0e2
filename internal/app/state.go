package app

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/report-summarizer/internal/model"
)

// State is the application state shared by the controllers: the visible view
// and the claim on the single result surface.
type State struct {
	mu     sync.Mutex
	view   model.ViewState
	token  string
	cancel context.CancelFunc
}

// NewState creates state showing the home view
func NewState() *State {
	return &State{view: model.ViewHome}
}

// View returns the visible view
func (s *State) View() model.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *State) setView(view model.ViewState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = view
}

// Claim takes the result surface for a new request. The previous claim's
// context is cancelled and its completion will no longer be current.
// done releases the returned context and must always be called.
func (s *State) Claim(parent context.Context) (ctx context.Context, token string, done func()) {
	ctx, cancel := context.WithCancel(parent)
	token = uuid.NewString()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.token = token
	s.cancel = cancel
	s.mu.Unlock()

	return ctx, token, cancel
}

// Current reports whether token is the latest claim
func (s *State) Current(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token != "" && s.token == token
}
