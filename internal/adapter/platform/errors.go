package platform

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Error is a failed attempt against the platform API. StatusCode is zero for
// transport failures.
type Error struct {
	Operation  string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("platform %s: %v", e.Operation, e.Err)
	}
	return fmt.Sprintf("platform %s: status %d: %s", e.Operation, e.StatusCode, e.Body)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Temporary reports whether a retry may succeed.
func (e *Error) Temporary() bool {
	if e.StatusCode == 0 {
		return !errors.Is(e.Err, context.Canceled)
	}
	switch {
	case e.StatusCode == http.StatusRequestTimeout,
		e.StatusCode == http.StatusTooManyRequests,
		e.StatusCode >= 500:
		return true
	default:
		return false
	}
}

// RetryError is returned once a logical call gives up. It carries the last
// underlying failure.
type RetryError struct {
	Operation string
	Attempts  int
	Err       error
}

func (e *RetryError) Error() string {
	return fmt.Sprintf("platform %s failed after %d attempt(s): %v", e.Operation, e.Attempts, e.Err)
}

func (e *RetryError) Unwrap() error {
	return e.Err
}

func isTemporary(err error) bool {
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Temporary()
	}
	return false
}
