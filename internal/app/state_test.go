package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ytget/report-summarizer/internal/model"
)

func TestState_StartsAtHome(t *testing.T) {
	assert.Equal(t, model.ViewHome, NewState().View())
}

func TestState_ClaimSupersedes(t *testing.T) {
	s := NewState()

	firstCtx, first, firstDone := s.Claim(context.Background())
	defer firstDone()
	assert.True(t, s.Current(first))
	assert.NoError(t, firstCtx.Err())

	secondCtx, second, secondDone := s.Claim(context.Background())
	defer secondDone()

	assert.False(t, s.Current(first))
	assert.True(t, s.Current(second))
	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
	assert.NoError(t, secondCtx.Err())
	assert.False(t, s.Current(""))
}

func TestState_DoneKeepsClaim(t *testing.T) {
	s := NewState()

	ctx, token, done := s.Claim(context.Background())
	done()

	assert.Error(t, ctx.Err())
	assert.True(t, s.Current(token), "finishing a request does not give up the surface")
}
