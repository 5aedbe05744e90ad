package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("PG_URL", "postgres://localhost/checkout")

		cfg, err := New()

		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)
		assert.True(t, cfg.Gateway.Enabled)
		assert.False(t, cfg.Gateway.Sandbox)
		assert.Equal(t, "Credit Card", cfg.Gateway.Title)
		assert.Equal(t, 30*time.Second, cfg.Gateway.HTTPTimeout)
		assert.True(t, cfg.Gateway.LogEnabled)
		assert.Equal(t, "payments.events", cfg.EventsTopic)
		assert.Empty(t, cfg.KafkaBrokers)
	})

	t.Run("should read prefixed gateway settings", func(t *testing.T) {
		t.Setenv("PG_URL", "postgres://localhost/checkout")
		t.Setenv("GLOBALPAYMENTS_SANDBOX", "true")
		t.Setenv("GLOBALPAYMENTS_TEST_PUBLIC_KEY", "pk_test")
		t.Setenv("GLOBALPAYMENTS_TEST_SECRET_KEY", "sk_test")
		t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")

		cfg, err := New()

		require.NoError(t, err)
		assert.True(t, cfg.Gateway.Sandbox)
		assert.Equal(t, "pk_test", cfg.Gateway.TestPublicKey)
		assert.Equal(t, "sk_test", cfg.Gateway.TestSecretKey)
		assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	})

	t.Run("should fail without PG_URL", func(t *testing.T) {
		t.Setenv("PG_URL", "")

		_, err := New()

		assert.Error(t, err)
	})
}
