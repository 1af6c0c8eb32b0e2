package app

import (
	"github.com/pkg/errors"
)

var (
	// ErrBusy is returned when a controller is triggered while its request is pending
	ErrBusy = errors.New("request already in progress")

	// ErrSuperseded is returned when a newer request claimed the result surface
	ErrSuperseded = errors.New("request superseded by a newer one")

	// ErrUnhealthy is returned when /health answers with a non-healthy status
	ErrUnhealthy = errors.New("backend reported unhealthy status")
)
