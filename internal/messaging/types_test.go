package messaging

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	t.Parallel()

	// given
	payload := map[string]string{"order_id": "1001"}

	// when
	env, err := NewEnvelope("1001", "payment.completed", payload)

	// then
	require.NoError(t, err)
	assert.NotEmpty(t, env.EventID)
	assert.Equal(t, "1001", env.Key)
	assert.Equal(t, "payment.completed", env.Type)
	assert.False(t, env.Timestamp.IsZero())

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(env.Payload, &decoded))
	assert.Equal(t, payload, decoded)
}

func TestNewEnvelope_UnsupportedPayload(t *testing.T) {
	t.Parallel()

	_, err := NewEnvelope("k", "t", make(chan int))

	assert.Error(t, err)
}

func TestNopPublisher(t *testing.T) {
	t.Parallel()

	var p Publisher = NopPublisher{}

	assert.NoError(t, p.Publish(context.Background(), Envelope{}))
	assert.NoError(t, p.Close())
}
