package counter

import (
	"errors"
	"fmt"
)

const errFmt = "%s: %s"

// Common errors for counter Service and Store implementations.
var (
	ErrKeyNotFound        = errors.New("key not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Error wraps common counter errors.
type Error struct {
	err error
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// IsKeyNotFound indicates if err is ErrKeyNotFound.
func IsKeyNotFound(err error) bool {
	return unwrapError(err) == ErrKeyNotFound
}

// IsStorageUnavailable indicates if err is ErrStorageUnavailable.
func IsStorageUnavailable(err error) bool {
	return unwrapError(err) == ErrStorageUnavailable
}

func unwrapError(err error) error {
	switch e := err.(type) {
	case *Error:
		return e.err
	}

	return err
}

func wrapError(err error, format string, args ...interface{}) error {
	return &Error{
		err: err,
		msg: fmt.Sprintf(
			errFmt,
			err,
			fmt.Sprintf(format, args...),
		),
	}
}
