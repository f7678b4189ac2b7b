package bus

import (
	"github.com/pkg/errors"
)

var (
	ErrConnectFailed   = errors.New("unable to connect to broker")
	ErrTopologyFailed  = errors.New("unable to set up exchange/queue topology")
	ErrSubscribeFailed = errors.New("unable to start consumer")
	ErrPublishFailed   = errors.New("unable to publish message")
	ErrDeliveryFailed  = errors.New("consumer error")

	// ErrClosed is returned by Next once the subscription has ended without
	// a broker-reported error. It is a terminal signal, not a fault.
	ErrClosed = errors.New("subscription closed")

	ErrMissingConfig       = errors.New("config cannot be nil")
	ErrMissingAddress      = errors.New("Address cannot be empty")
	ErrMissingServiceName  = errors.New("ServiceName cannot be empty")
	ErrMissingExchangeName = errors.New("ExchangeName cannot be empty")
	ErrMissingIdentity     = errors.New("Identity cannot be empty")
)

// Error pairs one of the package sentinels with the underlying cause so that
// errors.Is(err, ErrTopologyFailed) holds while the broker's reason is kept.
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

func newError(kind error, err error, msg string) error {
	if msg != "" {
		err = errors.Wrap(err, msg)
	}

	return &Error{Kind: kind, Err: err}
}
