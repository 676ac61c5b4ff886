package broker

import (
	"context"
	"log/slog"
	"strconv"
	"sync"

	"parking-api/internal/pkg/errs"
	"parking-api/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

// AMQPPublisher publishes outbox messages to a durable topic exchange. The event type
// is the routing key, so consumers bind with patterns such as "payment.*".
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string

	mu sync.Mutex
	ch *amqp.Channel
}

func Dial(url, exchange string) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, errs.Wrap(err, "amqp dial")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp channel")
	}

	if err := ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp exchange declare")
	}

	return &AMQPPublisher{conn: conn, exchange: exchange, ch: ch}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, msg shared.OutboxMessage) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.ch.PublishWithContext(ctx,
		p.exchange,
		msg.Type,
		false, // mandatory
		false, // immediate
		toPublishing(msg),
	)
	return errs.Wrap(err, "amqp publish")
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.Close(); err != nil && !p.conn.IsClosed() {
		slog.Warn("amqp channel close failed", "error", err)
	}
	return p.conn.Close()
}

func toPublishing(msg shared.OutboxMessage) amqp.Publishing {
	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    strconv.FormatInt(msg.ID, 10),
		Type:         msg.Type,
		Timestamp:    msg.CreatedAt.UTC(),
		Headers: amqp.Table{
			"aggregate":    msg.Aggregate,
			"aggregate_id": msg.AggregateID,
		},
		Body: msg.Payload,
	}
}

// LogPublisher stands in for the broker when AMQP is not configured. Messages are
// logged and treated as delivered.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, msg shared.OutboxMessage) error {
	p.logger.Debug("outbox event",
		"id", msg.ID,
		"type", msg.Type,
		"aggregate", msg.Aggregate,
		"aggregate_id", msg.AggregateID)
	return nil
}

var (
	_ shared.Publisher = (*AMQPPublisher)(nil)
	_ shared.Publisher = (*LogPublisher)(nil)
)
