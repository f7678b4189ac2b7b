// Package frame implements the length-prefixed framing used by browser native
// messaging hosts: every message is a 4-byte unsigned length followed by
// exactly that many payload bytes.
//
// The byte order of the length prefix is part of the contract with the local
// peer. Browsers write it in the host's native order, which is little-endian
// on every platform they ship on, so ByteOrderLittle is the default.
package frame

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/pkg/errors"
)

const (
	// PrefixSize is the size of the length prefix in bytes
	PrefixSize = 4

	// DefaultMaxFrameSize matches the largest message a browser will send to
	// a native host (64 MiB).
	DefaultMaxFrameSize = 64 * 1024 * 1024

	ByteOrderLittle = "little"
	ByteOrderBig    = "big"
	ByteOrderNative = "native"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . ITransport
type ITransport interface {
	// Read returns the payload of the next frame
	Read() ([]byte, error)

	// Write encodes payload as one frame
	Write(payload []byte) error
}

type Config struct {
	Reader io.Reader
	Writer io.Writer

	// ByteOrder is one of ByteOrderLittle, ByteOrderBig or ByteOrderNative.
	// Empty means ByteOrderLittle.
	ByteOrder string

	// MaxFrameSize caps the payload size accepted by Read. 0 disables the check.
	MaxFrameSize uint32
}

// Transport reads and writes frames. A Transport is driven by a single reader
// and a single writer; Read and Write may run concurrently with each other but
// not with themselves.
type Transport struct {
	r       io.Reader
	w       io.Writer
	order   binary.ByteOrder
	maxSize uint32
}

func New(cfg *Config) (*Transport, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, errors.Wrap(err, "unable to validate config")
	}

	order, err := ParseByteOrder(cfg.ByteOrder)
	if err != nil {
		return nil, err
	}

	return &Transport{
		r:       cfg.Reader,
		w:       cfg.Writer,
		order:   order,
		maxSize: cfg.MaxFrameSize,
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("config cannot be nil")
	}

	if cfg.Reader == nil {
		return ErrNilReader
	}

	if cfg.Writer == nil {
		return ErrNilWriter
	}

	return nil
}

// ParseByteOrder maps a byte order name to its encoding/binary implementation
func ParseByteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "", ByteOrderLittle:
		return binary.LittleEndian, nil
	case ByteOrderBig:
		return binary.BigEndian, nil
	case ByteOrderNative:
		return binary.NativeEndian, nil
	}

	return nil, errors.Wrapf(ErrUnknownByteOrder, "'%s'", name)
}

// Read blocks until a full frame is available.
//
// io.EOF before any prefix byte yields ErrClosed; EOF anywhere later yields
// ErrTruncated.
func (t *Transport) Read() ([]byte, error) {
	var prefix [PrefixSize]byte

	if _, err := io.ReadFull(t.r, prefix[:]); err != nil {
		switch err {
		case io.EOF:
			return nil, ErrClosed
		case io.ErrUnexpectedEOF:
			return nil, newError(ErrTruncated, errors.New("stream ended inside length prefix"))
		}

		return nil, newError(ErrReadFailed, err)
	}

	size := t.order.Uint32(prefix[:])

	if t.maxSize > 0 && size > t.maxSize {
		return nil, newError(ErrFrameTooLarge, errors.Errorf("%d > %d bytes", size, t.maxSize))
	}

	payload := make([]byte, size)

	if _, err := io.ReadFull(t.r, payload); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, newError(ErrTruncated, errors.Errorf("stream ended inside %d byte payload", size))
		}

		return nil, newError(ErrReadFailed, err)
	}

	return payload, nil
}

// Write emits the prefix and payload with a single call to the underlying
// writer so a frame is never interleaved with other output.
func (t *Transport) Write(payload []byte) error {
	if uint64(len(payload)) > math.MaxUint32 {
		return newError(ErrWriteFailed, ErrFrameTooLarge)
	}

	buf := make([]byte, PrefixSize+len(payload))
	t.order.PutUint32(buf[:PrefixSize], uint32(len(payload)))
	copy(buf[PrefixSize:], payload)

	n, err := t.w.Write(buf)
	if err != nil {
		return newError(ErrWriteFailed, err)
	}

	if n != len(buf) {
		return newError(ErrWriteFailed, io.ErrShortWrite)
	}

	return nil
}
