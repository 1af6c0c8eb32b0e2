package api

import (
	"fmt"

	"github.com/pkg/errors"
)

// ApplicationError is an explicit {"error": "..."} payload from the backend.
// Message is shown to the user verbatim.
type ApplicationError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// TransportError covers network failures, unexpected status codes and bodies
// that cannot be decoded.
type TransportError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Cause lets errors.Cause reach the underlying failure
func (e *TransportError) Cause() error {
	return e.Err
}

// AsApplicationError extracts the backend-provided error, if any
func AsApplicationError(err error) (*ApplicationError, bool) {
	var appErr *ApplicationError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsTransportError reports whether err is a transport-level failure
func IsTransportError(err error) bool {
	var tErr *TransportError
	return errors.As(err, &tErr)
}
