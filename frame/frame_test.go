package frame

import (
	"bytes"
	"encoding/binary"
	"io"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
)

type failingWriter struct {
	err error
	n   int
}

func (f *failingWriter) Write(p []byte) (int, error) {
	return f.n, f.err
}

type failingReader struct {
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, f.err
}

func newTestTransport(in []byte, out io.Writer, order string) *Transport {
	t, err := New(&Config{
		Reader:       bytes.NewReader(in),
		Writer:       out,
		ByteOrder:    order,
		MaxFrameSize: DefaultMaxFrameSize,
	})

	Expect(err).ToNot(HaveOccurred())

	return t
}

var _ = Describe("Frame", func() {
	Context("New", func() {
		It("validates nil config", func() {
			_, err := New(nil)
			Expect(err).To(HaveOccurred())
		})

		It("validates nil reader", func() {
			_, err := New(&Config{Writer: &bytes.Buffer{}})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrNilReader)).To(BeTrue())
		})

		It("validates nil writer", func() {
			_, err := New(&Config{Reader: &bytes.Buffer{}})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrNilWriter)).To(BeTrue())
		})

		It("rejects an unknown byte order", func() {
			_, err := New(&Config{Reader: &bytes.Buffer{}, Writer: &bytes.Buffer{}, ByteOrder: "middle"})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrUnknownByteOrder)).To(BeTrue())
		})
	})

	Context("ParseByteOrder", func() {
		It("defaults to little endian", func() {
			order, err := ParseByteOrder("")
			Expect(err).ToNot(HaveOccurred())
			Expect(order).To(Equal(binary.LittleEndian))
		})

		It("parses big endian", func() {
			order, err := ParseByteOrder(ByteOrderBig)
			Expect(err).ToNot(HaveOccurred())
			Expect(order).To(Equal(binary.BigEndian))
		})

		It("parses native", func() {
			order, err := ParseByteOrder(ByteOrderNative)
			Expect(err).ToNot(HaveOccurred())
			Expect(order).ToNot(BeNil())
		})
	})

	Context("Write", func() {
		It("writes a little endian length prefix followed by the payload", func() {
			out := &bytes.Buffer{}
			t := newTestTransport(nil, out, ByteOrderLittle)

			err := t.Write([]byte("ack"))
			Expect(err).ToNot(HaveOccurred())
			Expect(out.Bytes()).To(Equal([]byte{0x03, 0x00, 0x00, 0x00, 'a', 'c', 'k'}))
		})

		It("writes a big endian length prefix followed by the payload", func() {
			out := &bytes.Buffer{}
			t := newTestTransport(nil, out, ByteOrderBig)

			err := t.Write([]byte("ack"))
			Expect(err).ToNot(HaveOccurred())
			Expect(out.Bytes()).To(Equal([]byte{0x00, 0x00, 0x00, 0x03, 'a', 'c', 'k'}))
		})

		It("writes an empty frame", func() {
			out := &bytes.Buffer{}
			t := newTestTransport(nil, out, ByteOrderLittle)

			Expect(t.Write([]byte{})).To(Succeed())
			Expect(out.Bytes()).To(Equal([]byte{0x00, 0x00, 0x00, 0x00}))
		})

		It("returns ErrWriteFailed when the sink errors", func() {
			t := newTestTransport(nil, &failingWriter{err: errors.New("broken pipe")}, ByteOrderLittle)

			err := t.Write([]byte("ack"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrWriteFailed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("broken pipe"))
		})

		It("returns ErrWriteFailed on a short write", func() {
			t := newTestTransport(nil, &failingWriter{n: 2}, ByteOrderLittle)

			err := t.Write([]byte("ack"))
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrWriteFailed)).To(BeTrue())
			Expect(errors.Is(err, io.ErrShortWrite)).To(BeTrue())
		})
	})

	Context("Read", func() {
		It("reads back what Write produced", func() {
			buf := &bytes.Buffer{}
			w := newTestTransport(nil, buf, ByteOrderLittle)

			payloads := [][]byte{[]byte("hello world"), {}, {0x00, 0xff, 0x10}}

			for _, p := range payloads {
				Expect(w.Write(p)).To(Succeed())
			}

			r := newTestTransport(buf.Bytes(), io.Discard, ByteOrderLittle)

			for _, p := range payloads {
				got, err := r.Read()
				Expect(err).ToNot(HaveOccurred())
				Expect(got).To(Equal(p))
			}

			_, err := r.Read()
			Expect(err).To(Equal(ErrClosed))
		})

		It("returns ErrClosed on an empty stream", func() {
			t := newTestTransport(nil, io.Discard, ByteOrderLittle)

			_, err := t.Read()
			Expect(err).To(Equal(ErrClosed))
		})

		It("returns ErrTruncated when the stream ends inside the prefix", func() {
			t := newTestTransport([]byte{0x03, 0x00}, io.Discard, ByteOrderLittle)

			_, err := t.Read()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrTruncated)).To(BeTrue())
		})

		It("returns ErrTruncated when the stream ends inside the payload", func() {
			t := newTestTransport([]byte{0x03, 0x00, 0x00, 0x00, 'a'}, io.Discard, ByteOrderLittle)

			_, err := t.Read()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrTruncated)).To(BeTrue())
		})

		It("returns ErrTruncated when the payload is missing entirely", func() {
			t := newTestTransport([]byte{0x03, 0x00, 0x00, 0x00}, io.Discard, ByteOrderLittle)

			_, err := t.Read()
			Expect(errors.Is(err, ErrTruncated)).To(BeTrue())
		})

		It("returns ErrFrameTooLarge without reading the payload", func() {
			t, err := New(&Config{
				Reader:       bytes.NewReader([]byte{0x10, 0x00, 0x00, 0x00}),
				Writer:       io.Discard,
				MaxFrameSize: 8,
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = t.Read()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrFrameTooLarge)).To(BeTrue())
		})

		It("returns ErrReadFailed on other reader errors", func() {
			t, err := New(&Config{
				Reader: &failingReader{err: errors.New("bad fd")},
				Writer: io.Discard,
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = t.Read()
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrReadFailed)).To(BeTrue())
			Expect(errors.Is(err, ErrClosed)).To(BeFalse())
		})
	})
})
