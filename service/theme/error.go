package theme

import (
	"errors"
	"fmt"
)

const errFmt = "%s: %s"

// Common errors for theme loading and registry construction.
var (
	ErrIncompleteTheme = errors.New("incomplete theme")
	ErrThemeNotFound   = errors.New("theme not found")
)

// Error wraps common theme errors.
type Error struct {
	err error
	msg string
}

func (e *Error) Error() string {
	return e.msg
}

// IsIncompleteTheme indicates if err is ErrIncompleteTheme.
func IsIncompleteTheme(err error) bool {
	return unwrapError(err) == ErrIncompleteTheme
}

// IsThemeNotFound indicates if err is ErrThemeNotFound.
func IsThemeNotFound(err error) bool {
	return unwrapError(err) == ErrThemeNotFound
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
