// Package relay moves frames between the local native messaging peer and the
// bus. Frames read from the local side are published; deliveries from the
// bus are written back as frames.
//
// Two producer goroutines, one per side, hand events to a single loop over an
// unbuffered channel. A producer does not read again until the loop re-arms
// it, so every event is handled (publish or write) before the next one from
// the same side is read, and nothing is read once the relay has terminated.
package relay

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/batchcorp/nativebus/bus"
	"github.com/batchcorp/nativebus/frame"
	"github.com/batchcorp/nativebus/prometheus"
)

var (
	ErrMissingConfig    = errors.New("relay config cannot be nil")
	ErrMissingBusConfig = errors.New("Bus config cannot be nil")
	ErrMissingTransport = errors.New("Transport cannot be nil")
)

// ConnectFunc establishes a bus session
type ConnectFunc func(cfg *bus.Config) (bus.ISession, error)

type Config struct {
	Bus       *bus.Config
	Transport frame.ITransport

	// Connect defaults to bus.Connect
	Connect ConnectFunc
}

type Relay struct {
	*Config

	state int32
	log   *logrus.Entry
}

type side int

const (
	sideLocal side = iota
	sideBus
)

func (s side) String() string {
	if s == sideLocal {
		return "local"
	}

	return "bus"
}

type event struct {
	source  side
	payload []byte
	err     error
}

func New(cfg *Config) (*Relay, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to validate config")
	}

	if cfg.Connect == nil {
		cfg.Connect = defaultConnect
	}

	return &Relay{
		Config: cfg,
		state:  int32(StateStarting),
		log:    logrus.WithField("pkg", "relay"),
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return ErrMissingConfig
	}

	if cfg.Bus == nil {
		return ErrMissingBusConfig
	}

	if cfg.Transport == nil {
		return ErrMissingTransport
	}

	return nil
}

func defaultConnect(cfg *bus.Config) (bus.ISession, error) {
	s, err := bus.Connect(cfg)
	if err != nil {
		return nil, err
	}

	return s, nil
}

// State returns the current lifecycle state
func (r *Relay) State() State {
	return State(atomic.LoadInt32(&r.state))
}

func (r *Relay) setState(s State) {
	atomic.StoreInt32(&r.state, int32(s))
}

// Run establishes the bus session and relays until one side closes, an error
// occurs or ctx is cancelled. The session is closed exactly once before Run
// returns, whichever way it exits. A nil error is returned for clean closes;
// Status tells them apart.
func (r *Relay) Run(ctx context.Context) (Status, error) {
	r.setState(StateStarting)

	session, err := r.Connect(r.Bus)
	if err != nil {
		r.setState(StateTerminated)
		prometheus.IncrPromErrorCounter(sideBus.String())

		return StatusFault, errors.Wrap(err, "unable to establish bus session")
	}

	defer func() {
		session.Close()
		r.setState(StateTerminated)
	}()

	events := make(chan event)
	done := make(chan struct{})
	defer close(done)

	rearm := map[side]chan struct{}{
		sideLocal: make(chan struct{}),
		sideBus:   make(chan struct{}),
	}

	r.setState(StateRunning)

	r.log.Infof("relaying as '%s' via exchange '%s'", r.Bus.Identity, r.Bus.ExchangeName)

	go pump(sideLocal, r.Transport.Read, events, rearm[sideLocal], done)
	go pump(sideBus, session.Next, events, rearm[sideBus], done)

	for {
		select {
		case <-ctx.Done():
			r.log.Info("context cancelled")
			return StatusCancelled, nil
		case ev := <-events:
			status, err := r.handle(session, ev)
			if status != StatusRunning {
				r.logTermination(status, err)
				return status, err
			}

			rearm[ev.source] <- struct{}{}
		}
	}
}

// pump reads from one side and hands each result to the relay loop, waiting
// to be re-armed before reading again. It exits after handing over an error
// or once done is closed.
func pump(source side, next func() ([]byte, error), events chan<- event, rearm <-chan struct{}, done <-chan struct{}) {
	for {
		payload, err := next()

		select {
		case events <- event{source: source, payload: payload, err: err}:
		case <-done:
			return
		}

		if err != nil {
			return
		}

		select {
		case <-rearm:
		case <-done:
			return
		}
	}
}

// handle performs the write for one event inline. StatusRunning means keep
// going; anything else is terminal.
func (r *Relay) handle(session bus.ISession, ev event) (Status, error) {
	switch ev.source {
	case sideLocal:
		if ev.err != nil {
			if errors.Is(ev.err, frame.ErrClosed) {
				return StatusLocalClosed, nil
			}

			prometheus.IncrPromErrorCounter(sideLocal.String())

			return StatusFault, errors.Wrap(ev.err, "unable to read frame from local side")
		}

		if err := session.Publish(ev.payload); err != nil {
			prometheus.IncrPromErrorCounter(sideBus.String())
			return StatusFault, errors.Wrap(err, "unable to relay frame to bus")
		}

		r.log.Debugf("published %d byte frame", len(ev.payload))

		prometheus.Incr("relay-local-to-bus", 1)
		prometheus.IncrPromCounter(prometheus.FramesPublished, 1)
	case sideBus:
		if ev.err != nil {
			if errors.Is(ev.err, bus.ErrClosed) {
				return StatusBusClosed, nil
			}

			prometheus.IncrPromErrorCounter(sideBus.String())

			return StatusFault, errors.Wrap(ev.err, "unable to receive delivery from bus")
		}

		if err := r.Transport.Write(ev.payload); err != nil {
			prometheus.IncrPromErrorCounter(sideLocal.String())
			return StatusFault, errors.Wrap(err, "unable to relay delivery to local side")
		}

		r.log.Debugf("forwarded %d byte delivery", len(ev.payload))

		prometheus.Incr("relay-bus-to-local", 1)
		prometheus.IncrPromCounter(prometheus.DeliveriesForwarded, 1)
	}

	return StatusRunning, nil
}

func (r *Relay) logTermination(status Status, err error) {
	if err != nil {
		r.log.Errorf("relay terminated (%s): %s", status, err)
		return
	}

	r.log.Infof("relay terminated (%s)", status)
}
