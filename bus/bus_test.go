package bus_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/streadway/amqp"

	"github.com/batchcorp/nativebus/bus"
	"github.com/batchcorp/nativebus/bus/busfakes"
)

var _ = Describe("Bus", func() {
	var (
		cfg        *bus.Config
		fakeConn   *busfakes.FakeIConnection
		fakeChan   *busfakes.FakeIChannel
		deliveries chan amqp.Delivery
		dialCount  int
	)

	BeforeEach(func() {
		dialCount = 0
		deliveries = make(chan amqp.Delivery, 10)

		fakeChan = &busfakes.FakeIChannel{}
		fakeChan.ConsumeReturns(deliveries, nil)
		fakeChan.NotifyCloseStub = func(c chan *amqp.Error) chan *amqp.Error { return c }
		fakeChan.NotifyCancelStub = func(c chan string) chan string { return c }

		fakeConn = &busfakes.FakeIConnection{}
		fakeConn.ChannelReturns(fakeChan, nil)

		cfg = &bus.Config{
			Address:      "amqp://localhost",
			ServiceName:  "chrome-ext",
			ExchangeName: "chrome-ext",
			Identity:     "abc-123",
			TagPublishes: true,
			Dialer: func(address string) (bus.IConnection, error) {
				dialCount++
				return fakeConn, nil
			},
		}
	})

	Context("Connect", func() {
		It("validates config", func() {
			_, err := bus.Connect(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, bus.ErrMissingConfig)).To(BeTrue())

			cfg.Identity = ""
			_, err = bus.Connect(cfg)
			Expect(errors.Is(err, bus.ErrMissingIdentity)).To(BeTrue())
			Expect(dialCount).To(Equal(0))
		})

		It("declares the topology and subscribes", func() {
			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(s).ToNot(BeNil())
			Expect(dialCount).To(Equal(1))

			Expect(fakeChan.ExchangeDeclareCallCount()).To(Equal(1))
			name, kind, durable, autoDelete, internal, noWait, _ := fakeChan.ExchangeDeclareArgsForCall(0)
			Expect(name).To(Equal("chrome-ext"))
			Expect(kind).To(Equal(amqp.ExchangeHeaders))
			Expect(durable).To(BeFalse())
			Expect(autoDelete).To(BeTrue())
			Expect(internal).To(BeFalse())
			Expect(noWait).To(BeFalse())

			Expect(fakeChan.QueueDeclareCallCount()).To(Equal(1))
			qName, qDurable, qAutoDelete, qExclusive, _, _ := fakeChan.QueueDeclareArgsForCall(0)
			Expect(qName).To(Equal("abc-123"))
			Expect(qDurable).To(BeFalse())
			Expect(qAutoDelete).To(BeTrue())
			Expect(qExclusive).To(BeTrue())

			Expect(fakeChan.QueueBindCallCount()).To(Equal(1))
			bName, key, exchange, _, args := fakeChan.QueueBindArgsForCall(0)
			Expect(bName).To(Equal("abc-123"))
			Expect(key).To(BeEmpty())
			Expect(exchange).To(Equal("chrome-ext"))
			Expect(args).To(Equal(amqp.Table{"service": "chrome-ext", "id": "abc-123", "x-match": "all"}))

			Expect(fakeChan.ConsumeCallCount()).To(Equal(1))
			queue, tag, autoAck, exclusive, _, _, _ := fakeChan.ConsumeArgsForCall(0)
			Expect(queue).To(Equal("abc-123"))
			Expect(tag).To(Equal("nativebus-abc-123"))
			Expect(autoAck).To(BeTrue())
			Expect(exclusive).To(BeTrue())
		})

		It("returns ErrConnectFailed when dial fails", func() {
			cfg.Dialer = func(string) (bus.IConnection, error) {
				return nil, errors.New("connection refused")
			}

			s, err := bus.Connect(cfg)
			Expect(s).To(BeNil())
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, bus.ErrConnectFailed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("connection refused"))
		})

		It("returns ErrConnectFailed and closes the connection when channel fails", func() {
			fakeConn.ChannelReturns(nil, errors.New("no channel"))

			s, err := bus.Connect(cfg)
			Expect(s).To(BeNil())
			Expect(errors.Is(err, bus.ErrConnectFailed)).To(BeTrue())
			Expect(fakeConn.CloseCallCount()).To(Equal(1))
		})

		It("returns ErrTopologyFailed when exchange declare fails", func() {
			fakeChan.ExchangeDeclareReturns(errors.New("precondition failed"))

			_, err := bus.Connect(cfg)
			Expect(errors.Is(err, bus.ErrTopologyFailed)).To(BeTrue())
			Expect(fakeChan.QueueDeclareCallCount()).To(Equal(0))
			Expect(fakeChan.ConsumeCallCount()).To(Equal(0))
		})

		It("returns ErrTopologyFailed and never subscribes when queue declare fails", func() {
			fakeChan.QueueDeclareReturns(amqp.Queue{}, errors.New("resource locked"))

			s, err := bus.Connect(cfg)
			Expect(s).To(BeNil())
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, bus.ErrTopologyFailed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("resource locked"))
			Expect(fakeChan.QueueBindCallCount()).To(Equal(0))
			Expect(fakeChan.ConsumeCallCount()).To(Equal(0))
			Expect(fakeChan.PublishCallCount()).To(Equal(0))

			// Nothing partial is left open
			Expect(fakeChan.CloseCallCount()).To(Equal(1))
			Expect(fakeConn.CloseCallCount()).To(Equal(1))
		})

		It("returns ErrTopologyFailed when bind fails", func() {
			fakeChan.QueueBindReturns(errors.New("no exchange"))

			_, err := bus.Connect(cfg)
			Expect(errors.Is(err, bus.ErrTopologyFailed)).To(BeTrue())
			Expect(fakeChan.ConsumeCallCount()).To(Equal(0))
		})

		It("returns ErrSubscribeFailed when consume fails", func() {
			fakeChan.ConsumeReturns(nil, errors.New("access refused"))

			_, err := bus.Connect(cfg)
			Expect(errors.Is(err, bus.ErrSubscribeFailed)).To(BeTrue())
			Expect(errors.Is(err, bus.ErrTopologyFailed)).To(BeFalse())
			Expect(fakeChan.CloseCallCount()).To(Equal(1))
			Expect(fakeConn.CloseCallCount()).To(Equal(1))
		})
	})

	Context("Publish", func() {
		It("publishes the payload with a from-id header", func() {
			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			err = s.Publish([]byte("hello world"))
			Expect(err).ToNot(HaveOccurred())

			Expect(fakeChan.PublishCallCount()).To(Equal(1))
			exchange, key, mandatory, immediate, msg := fakeChan.PublishArgsForCall(0)
			Expect(exchange).To(Equal("chrome-ext"))
			Expect(key).To(BeEmpty())
			Expect(mandatory).To(BeFalse())
			Expect(immediate).To(BeFalse())
			Expect(msg.Body).To(Equal([]byte("hello world")))
			Expect(msg.Headers).To(Equal(amqp.Table{"from-id": "abc-123"}))
		})

		It("publishes an empty payload", func() {
			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			Expect(s.Publish([]byte{})).To(Succeed())
			_, _, _, _, msg := fakeChan.PublishArgsForCall(0)
			Expect(msg.Body).To(BeEmpty())
		})

		It("omits headers when tagging is disabled", func() {
			cfg.TagPublishes = false

			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			Expect(s.Publish([]byte("x"))).To(Succeed())
			_, _, _, _, msg := fakeChan.PublishArgsForCall(0)
			Expect(msg.Headers).To(BeNil())
		})

		It("returns ErrPublishFailed", func() {
			fakeChan.PublishReturns(amqp.ErrClosed)

			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			err = s.Publish([]byte("x"))
			Expect(errors.Is(err, bus.ErrPublishFailed)).To(BeTrue())
			Expect(errors.Is(err, amqp.ErrClosed)).To(BeTrue())
			Expect(fakeChan.PublishCallCount()).To(Equal(1))
		})
	})

	Context("Next", func() {
		It("returns deliveries in order", func() {
			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			deliveries <- amqp.Delivery{Body: []byte("one")}
			deliveries <- amqp.Delivery{Body: []byte("two")}

			got, err := s.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal([]byte("one")))

			got, err = s.Next()
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal([]byte("two")))
		})

		It("returns ErrClosed on a graceful close", func() {
			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			close(deliveries)

			_, err = s.Next()
			Expect(err).To(Equal(bus.ErrClosed))
		})

		It("returns ErrDeliveryFailed when the channel closed with an error", func() {
			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			closeCh := fakeChan.NotifyCloseArgsForCall(0)
			closeCh <- &amqp.Error{Code: amqp.ConnectionForced, Reason: "broker shutdown"}
			close(deliveries)

			_, err = s.Next()
			Expect(errors.Is(err, bus.ErrDeliveryFailed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("broker shutdown"))
		})

		It("returns ErrDeliveryFailed when the broker cancels the consumer", func() {
			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			cancelCh := fakeChan.NotifyCancelArgsForCall(0)
			cancelCh <- "nativebus-abc-123"
			close(deliveries)

			_, err = s.Next()
			Expect(errors.Is(err, bus.ErrDeliveryFailed)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("cancelled"))
		})
	})

	Context("Close", func() {
		It("closes the channel then the connection exactly once", func() {
			var order []string

			fakeChan.CloseStub = func() error {
				order = append(order, "channel")
				return errors.New("already closed")
			}
			fakeConn.CloseStub = func() error {
				order = append(order, "connection")
				return nil
			}

			s, err := bus.Connect(cfg)
			Expect(err).ToNot(HaveOccurred())

			s.Close()
			s.Close()

			Expect(order).To(Equal([]string{"channel", "connection"}))
			Expect(fakeChan.CloseCallCount()).To(Equal(1))
			Expect(fakeConn.CloseCallCount()).To(Equal(1))
		})
	})

	Context("BindingArgs", func() {
		It("requires all headers to match", func() {
			args := bus.BindingArgs("svc", "id-1")
			Expect(args["x-match"]).To(Equal("all"))
			Expect(args["service"]).To(Equal("svc"))
			Expect(args["id"]).To(Equal("id-1"))
		})
	})
})
