// Package events publishes operation lifecycle events to an AMQP exchange.
package events

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// Publisher sends operation events after the change has been committed.
type Publisher interface {
	Publish(ctx context.Context, event OperationEvent) error
	Close() error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, OperationEvent) error { return nil }

func (NopPublisher) Close() error { return nil }

// ErrPublisherClosed is returned by Publish after Close.
var ErrPublisherClosed = errors.New("publisher closed")

// AMQPPublisher publishes events to a durable topic exchange, routed by event kind.
// A lost connection is dialled again by the next Publish.
type AMQPPublisher struct {
	mu           sync.Mutex
	url          string
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	logger       *logrus.Logger
	closed       bool
}

func NewAMQPPublisher(url, exchangeName string, logger *logrus.Logger) (*AMQPPublisher, error) {
	p := &AMQPPublisher{
		url:          url,
		exchangeName: exchangeName,
		logger:       logger,
	}
	if err := p.connect(); err != nil {
		return nil, err
	}
	return p, nil
}

// connect dials the broker and declares the exchange. Callers hold mu.
func (p *AMQPPublisher) connect() error {
	conn, err := amqp091.Dial(p.url)
	if err != nil {
		return fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		p.exchangeName, // name
		"topic",        // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	p.conn = conn
	p.channel = channel
	return nil
}

// disconnect releases the current connection, if any. Callers hold mu.
func (p *AMQPPublisher) disconnect() {
	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		p.conn.Close()
		p.conn = nil
	}
}

// connected reports whether the channel can still publish. Callers hold mu.
func (p *AMQPPublisher) connected() bool {
	return p.channel != nil && !p.channel.IsClosed() && p.conn != nil && !p.conn.IsClosed()
}

func (p *AMQPPublisher) Publish(ctx context.Context, event OperationEvent) error {
	body, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPublisherClosed
	}
	if !p.connected() {
		p.disconnect()
		if err := p.connect(); err != nil {
			return fmt.Errorf("reconnect: %w", err)
		}
		p.logger.WithField("exchange", p.exchangeName).Info("Events.Publish.Reconnected")
	}

	err = p.channel.PublishWithContext(
		ctx,
		p.exchangeName,     // exchange
		string(event.Kind), // routing key
		false,              // mandatory
		false,              // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    event.OccurredAt,
			MessageId:    event.OperationID.String(),
			Body:         body,
		},
	)
	if err != nil {
		p.disconnect()
		return fmt.Errorf("publish event: %w", err)
	}

	p.logger.WithFields(logrus.Fields{
		"kind":        event.Kind,
		"operationID": event.OperationID.String(),
		"exchange":    p.exchangeName,
	}).Debug("Events.Publish.Complete")
	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	if p.channel != nil {
		p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		err := p.conn.Close()
		p.conn = nil
		return err
	}
	return nil
}
