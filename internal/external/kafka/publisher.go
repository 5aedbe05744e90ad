package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"CardCheckout/internal/messaging"
	"CardCheckout/pkg/correlation"

	"github.com/segmentio/kafka-go"
)

var _ messaging.Publisher = (*Publisher)(nil)

// Publisher implements messaging.Publisher using Kafka.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher returns an asynchronous publisher: Publish only queues the
// message and delivery failures are reported by completed.
func NewPublisher(brokers []string, topic string) *Publisher {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           5 * time.Second,
		MaxAttempts:            3,
		Completion:             completed,
	}

	return &Publisher{writer: writer}
}

func completed(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, m := range messages {
		ctx := correlation.WithID(context.Background(), header(m, correlation.HeaderName))
		slog.ErrorContext(ctx, "Failed to deliver message",
			"topic", m.Topic, "key", string(m.Key), "type", header(m, "type"), "error", err)
	}
}

func header(m kafka.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// Publish writes the envelope keyed by its Key, so events of one order stay ordered.
func (p *Publisher) Publish(ctx context.Context, env messaging.Envelope) error {
	value, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(env.Key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(env.Type)},
		},
	}
	if id := correlation.FromContext(ctx); id != "" {
		msg.Headers = append(msg.Headers, kafka.Header{Key: correlation.HeaderName, Value: []byte(id)})
	}

	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish message",
			"topic", p.writer.Topic, "key", env.Key, "error", err)
		return err
	}

	slog.DebugContext(ctx, "Message queued",
		"topic", p.writer.Topic, "key", env.Key, "event_id", env.EventID, "type", env.Type)
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
