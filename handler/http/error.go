package http

import (
	"errors"
	"fmt"

	"github.com/hitbadge/hitbadge/service/counter"
)

// Errors used for protocol control flow.
var (
	ErrBadRequest         = errors.New("bad request")
	ErrLimitExceeded      = errors.New("limit exceeded")
	ErrNotFound           = errors.New("not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Error is used to carry additional error information reported back to
// clients.
type Error struct {
	Err     error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func wrapError(err error, format string, args ...interface{}) *Error {
	return &Error{
		Err:     err,
		Message: fmt.Sprintf("%s: %s", err, fmt.Sprintf(format, args...)),
	}
}

func unwrapError(err error) error {
	if counter.IsStorageUnavailable(err) {
		return ErrStorageUnavailable
	}

	switch e := err.(type) {
	case *Error:
		return e.Err
	}

	return err
}
