package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"bioskop-ticket/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Publisher mengirim event booking setelah transaksi commit.
// Kegagalan publish tidak pernah menggagalkan request.
type Publisher interface {
	Publish(ctx context.Context, evt BookingEvent) error
	Close() error
}

// NewPublisher returns a no-op publisher when the URL is empty or the broker
// cannot be reached at startup.
func NewPublisher(config utils.RabbitMQConfig, log *zap.Logger) Publisher {
	log = log.With(zap.String("component", "event_publisher"))
	if config.URL == "" {
		log.Info("RabbitMQ URL not set, booking events disabled")
		return NopPublisher{}
	}

	p := &amqpPublisher{
		url:      config.URL,
		exchange: config.Exchange,
		log:      log,
	}
	if err := p.connect(); err != nil {
		log.Warn("RabbitMQ unreachable, booking events disabled", zap.Error(err))
		_ = p.Close()
		return NopPublisher{}
	}
	return p
}

type amqpPublisher struct {
	url      string
	exchange string
	log      *zap.Logger

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

// connect reuses the current connection when it is still open and only
// reopens the channel; a fresh connection is dialed otherwise.
func (p *amqpPublisher) connect() error {
	if p.conn == nil || p.conn.IsClosed() {
		if p.conn != nil {
			_ = p.conn.Close()
		}
		conn, err := amqp.Dial(p.url)
		if err != nil {
			p.conn, p.ch = nil, nil
			return fmt.Errorf("dial rabbitmq: %w", err)
		}
		p.conn = conn
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open channel: %w", err)
	}

	// durable topic exchange, consumer bind sendiri ke routing key booking.*
	if err := ch.ExchangeDeclare(p.exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		return fmt.Errorf("declare exchange %s: %w", p.exchange, err)
	}

	p.ch = ch
	return nil
}

// Publish marshals evt as persistent JSON, reconnecting once if the channel was closed.
func (p *amqpPublisher) Publish(ctx context.Context, evt BookingEvent) error {
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", evt.Type, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    evt.BookingID,
		Timestamp:    evt.OccurredAt,
		Type:         string(evt.Type),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ch == nil || p.ch.IsClosed() {
		if err := p.connect(); err != nil {
			p.log.Error("Failed to reconnect to RabbitMQ", zap.Error(err))
			return err
		}
	}

	pubCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := p.ch.PublishWithContext(pubCtx, p.exchange, string(evt.Type), false, false, msg); err != nil {
		p.log.Error("Failed to publish booking event",
			zap.String("type", string(evt.Type)),
			zap.String("booking_id", evt.BookingID),
			zap.Error(err),
		)
		return fmt.Errorf("publish %s: %w", evt.Type, err)
	}

	p.log.Debug("Booking event published",
		zap.String("type", string(evt.Type)),
		zap.String("booking_id", evt.BookingID),
	)
	return nil
}

func (p *amqpPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	var errs []error
	if p.ch != nil {
		errs = append(errs, p.ch.Close())
	}
	if p.conn != nil {
		errs = append(errs, p.conn.Close())
	}
	return errors.Join(errs...)
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, BookingEvent) error { return nil }
func (NopPublisher) Close() error                                { return nil }
