package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"CardCheckout/internal/messaging"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher(t *testing.T) {
	t.Parallel()

	pub := NewPublisher([]string{"localhost:9092"}, "checkout-events")
	t.Cleanup(func() { _ = pub.Close() })

	assert.True(t, pub.writer.Async)
	assert.Equal(t, 10*time.Millisecond, pub.writer.BatchTimeout)
	assert.Equal(t, 3, pub.writer.MaxAttempts)
	assert.NotNil(t, pub.writer.Completion)
}

func TestPublisher_Publish(t *testing.T) {
	t.Parallel()

	t.Run("should return promptly when the broker is unreachable", func(t *testing.T) {
		t.Parallel()

		// given
		pub := NewPublisher([]string{"127.0.0.1:1"}, "checkout-events")
		t.Cleanup(func() { _ = pub.Close() })
		env, err := messaging.NewEnvelope("1001", "payment.completed", map[string]string{"transaction_id": "T-1"})
		require.NoError(t, err)

		// when
		began := time.Now()
		err = pub.Publish(context.Background(), env)

		// then
		require.NoError(t, err)
		assert.Less(t, time.Since(began), 500*time.Millisecond)
	})
}

func TestCompleted(t *testing.T) {
	t.Parallel()

	msgs := []kafka.Message{{
		Topic:   "checkout-events",
		Key:     []byte("1001"),
		Headers: []kafka.Header{{Key: "type", Value: []byte("payment.failed")}},
	}}

	assert.NotPanics(t, func() {
		completed(msgs, nil)
		completed(msgs, errors.New("broker down"))
	})
	assert.Equal(t, "payment.failed", header(msgs[0], "type"))
	assert.Empty(t, header(msgs[0], "missing"))
}
