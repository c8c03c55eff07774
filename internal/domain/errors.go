package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMenuItemNotFound        = errors.New("menu item not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrItemUnavailable         = errors.New("menu item is not available")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)

// ValidationError reports a single malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// wrappedError pairs a human-readable detail with a sentinel so
// callers can match with errors.Is while surfacing the detail
// verbatim.
type wrappedError struct {
	detail string
	err    error
}

func (w *wrappedError) Error() string { return w.detail }
func (w *wrappedError) Unwrap() error { return w.err }

func WrapError(err error, format string, args ...interface{}) error {
	return &wrappedError{
		detail: fmt.Sprintf(format, args...),
		err:    err,
	}
}
