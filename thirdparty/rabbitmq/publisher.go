package rabbitmq

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/classifieds/model"
	"github.com/rabbitmq/amqp091-go"
)

const (
	imageEventsExchange = "image_events_exchange"
	imageOrphanedQueue  = "image_orphaned_queue"
	imageOrphanedKey    = "image_orphaned"

	// attemptHeader counts deliveries of one orphan event, starting at 1.
	attemptHeader = "x-attempt"
)

// EventPublisher announces images that could not be removed in-request.
type EventPublisher interface {
	PublishImageOrphaned(msg model.ImageOrphanedMessage) error
}

// channelPublisher is the part of *amqp091.Channel used to publish.
type channelPublisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type Publisher struct {
	conn       *amqp091.Connection
	channel    *amqp091.Channel
	retryDelay time.Duration
}

// NewPublisher declares the delayed image exchange and the orphan queue.
// Messages become visible to consumers after retryDelay.
func NewPublisher(host string, port int, user, password string, retryDelay time.Duration) (*Publisher, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	return &Publisher{conn: conn, channel: channel, retryDelay: retryDelay}, nil
}

func (p *Publisher) PublishImageOrphaned(msg model.ImageOrphanedMessage) error {
	return publishOrphaned(p.channel, msg, p.retryDelay, 1)
}

// publishOrphaned routes msg through the delayed exchange so it is delivered after delay.
func publishOrphaned(ch channelPublisher, msg model.ImageOrphanedMessage, delay time.Duration, attempt int) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return ch.Publish(
		imageEventsExchange, // exchange
		imageOrphanedKey,    // routing key
		false,               // mandatory
		false,               // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    msg.OccurredAt,
			Body:         body,
			Headers: amqp091.Table{
				"x-delay":     delay.Milliseconds(),
				attemptHeader: int32(attempt),
			},
		},
	)
}

func (p *Publisher) Close() error {
	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		p.conn.Close()
	}
	return nil
}

// dial opens a channel with the image exchange, queue and binding declared.
func dial(host string, port int, user, password string) (*amqp091.Connection, *amqp091.Channel, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%d/", user, password, host, port)
	conn, err := amqp091.Dial(dsn)
	if err != nil {
		return nil, nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, nil, err
	}

	fail := func(err error) (*amqp091.Connection, *amqp091.Channel, error) {
		channel.Close()
		conn.Close()
		return nil, nil, err
	}

	err = channel.ExchangeDeclare(
		imageEventsExchange, // name
		"x-delayed-message", // type
		true,                // durable
		false,               // auto-delete
		false,               // internal
		false,               // no-wait
		amqp091.Table{"x-delayed-type": "direct"}, // arguments
	)
	if err != nil {
		return fail(err)
	}

	_, err = channel.QueueDeclare(
		imageOrphanedQueue, // name
		true,               // durable
		false,              // auto-delete
		false,              // exclusive
		false,              // no-wait
		nil,                // arguments
	)
	if err != nil {
		return fail(err)
	}

	err = channel.QueueBind(
		imageOrphanedQueue,  // queue name
		imageOrphanedKey,    // routing key
		imageEventsExchange, // exchange
		false,               // no-wait
		nil,                 // arguments
	)
	if err != nil {
		return fail(err)
	}

	return conn, channel, nil
}
