package broker

import (
	"context"
	"errors"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	prefetchCount = 50
	minBackoff    = time.Second
	maxBackoff    = 30 * time.Second
)

// Consumer читает события инвалидации из очереди и передает их обработчику
type Consumer struct {
	url     string
	queue   string
	handler Handler
	logger  Logger
}

// NewConsumer создает потребителя очереди queue
func NewConsumer(url, queue string, handler Handler, logger Logger) *Consumer {
	return &Consumer{
		url:     url,
		queue:   queue,
		handler: handler,
		logger:  logger,
	}
}

// Run читает очередь до отмены ctx, переподключаясь с экспоненциальной задержкой
func (c *Consumer) Run(ctx context.Context) error {
	backoff := minBackoff

	for {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.logger.Warn("Consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			backoff = min(backoff*2, maxBackoff)
			continue
		}
		backoff = minBackoff

		c.logger.Info("Consumer: listening on queue %s", c.queue)
		err = c.consume(ctx, conn)
		_ = conn.Close()

		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Warn("Consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func (c *Consumer) consume(ctx context.Context, conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: consume - open channel: %v", ErrConnect, err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(prefetchCount, 0, false); err != nil {
		c.logger.Warn("Consumer: set QoS failed: %v", err)
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("%w: consume - queue %s: %v", ErrConnect, c.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return errors.New("deliveries channel closed")
			}
			c.handle(ctx, d)
		}
	}
}

func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	err := c.process(ctx, d.Body)
	switch {
	case err == nil:
		_ = d.Ack(false)
	case errors.Is(err, ErrDecode):
		// повторная доставка не поможет
		c.logger.Error("Consumer: drop message %s: %v", d.MessageId, err)
		_ = d.Nack(false, false)
	default:
		c.logger.Error("Consumer: handle message %s failed: %v", d.MessageId, err)
		_ = d.Nack(false, !d.Redelivered)
	}
}

func (c *Consumer) process(ctx context.Context, body []byte) error {
	event, err := decodeEvent(body)
	if err != nil {
		return err
	}
	return c.handler.HandleInvalidation(ctx, event)
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
