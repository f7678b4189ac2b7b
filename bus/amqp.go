package bus

import (
	"github.com/streadway/amqp"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . IConnection
type IConnection interface {
	Channel() (IChannel, error)
	Close() error
}

// IChannel is the subset of *amqp.Channel used by Session
//
//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . IChannel
type IChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp.Table) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	NotifyClose(c chan *amqp.Error) chan *amqp.Error
	NotifyCancel(c chan string) chan string
	Close() error
}

// Dialer opens a broker connection
type Dialer func(address string) (IConnection, error)

type amqpConnection struct {
	*amqp.Connection
}

// DialAMQP is the default Dialer
func DialAMQP(address string) (IConnection, error) {
	conn, err := amqp.Dial(address)
	if err != nil {
		return nil, err
	}

	return &amqpConnection{Connection: conn}, nil
}

func (c *amqpConnection) Channel() (IChannel, error) {
	ch, err := c.Connection.Channel()
	if err != nil {
		return nil, err
	}

	return ch, nil
}
