package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -source types.go -destination mock_types.go -package messaging

// Envelope wraps an event with metadata for tracing and routing.
type Envelope struct {
	EventID   string          `json:"event_id"`
	Key       string          `json:"key"`
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

// NewEnvelope creates an envelope with a generated event ID. Key is used for partitioning.
func NewEnvelope(key, eventType string, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{
		EventID:   uuid.New().String(),
		Key:       key,
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().UTC(),
	}, nil
}

// Publisher sends events to a message broker.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
	Close() error
}

// NopPublisher drops every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Envelope) error { return nil }

func (NopPublisher) Close() error { return nil }
