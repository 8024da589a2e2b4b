// Package errorsx extends the standard errors package with frame capture
// and a couple of helpers for combining errors from cleanup paths.
package errorsx

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Errorf formats an error, supports %w, and records the caller's frame.
func Errorf(format string, args ...any) error {
	return xerrors.Errorf(format, args...)
}

// Wrapf annotates cause with a formatted message. returns nil if cause is nil.
func Wrapf(cause error, format string, args ...any) error {
	if cause == nil {
		return nil
	}

	return xerrors.Errorf("%s: %w", fmt.Sprintf(format, args...), cause)
}

// WithStack records the caller's frame without altering the message.
func WithStack(cause error) error {
	if cause == nil {
		return nil
	}

	return stacked{cause: cause, frame: xerrors.Caller(1)}
}

type stacked struct {
	cause error
	frame xerrors.Frame
}

func (t stacked) Error() string {
	return t.cause.Error()
}

func (t stacked) Unwrap() error {
	return t.cause
}

func (t stacked) Format(s fmt.State, v rune) {
	xerrors.FormatError(t, s, v)
}

func (t stacked) FormatError(p xerrors.Printer) error {
	p.Print(t.cause.Error())
	t.frame.Format(p)
	return nil
}

// Compact returns the first non-nil error.
func Compact(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	return nil
}
