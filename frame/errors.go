package frame

import (
	"github.com/pkg/errors"
)

var (
	// ErrClosed is returned by Read when the input ends exactly on a frame
	// boundary. It is a terminal signal, not a fault.
	ErrClosed = errors.New("frame input closed")

	ErrTruncated     = errors.New("frame truncated")
	ErrReadFailed    = errors.New("unable to read frame")
	ErrWriteFailed   = errors.New("unable to write frame")
	ErrFrameTooLarge = errors.New("frame exceeds max size")

	ErrNilReader        = errors.New("reader cannot be nil")
	ErrNilWriter        = errors.New("writer cannot be nil")
	ErrUnknownByteOrder = errors.New("unknown byte order")
)

// Error pairs one of the package sentinels with the underlying cause.
// errors.Is matches against the sentinel; the cause is kept in the chain.
type Error struct {
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}

	return e.Kind.Error() + ": " + e.Err.Error()
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind, err error) error {
	return &Error{Kind: kind, Err: err}
}
