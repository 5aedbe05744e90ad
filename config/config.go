package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port      int    `env:"PORT" envDefault:"3000"`
	PgURL     string `env:"PG_URL,required,notEmpty"`
	PgPoolMax int    `env:"PG_POOL_MAX" envDefault:"10"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Base URL of the storefront, used to build receipt redirects.
	StoreBaseURL string `env:"STORE_BASE_URL" envDefault:"http://localhost:3000"`

	Gateway GatewaySettings `envPrefix:"GLOBALPAYMENTS_"`

	OpensearchUrls            []string `env:"OPENSEARCH_URLS" envSeparator:","`
	OpensearchIndexDiagnostic string   `env:"OPENSEARCH_INDEX_DIAGNOSTICS" envDefault:"checkout-diagnostics"`

	// Payment events are published only when brokers are configured.
	KafkaBrokers []string `env:"KAFKA_BROKERS" envSeparator:","`
	EventsTopic  string   `env:"GLOBALPAYMENTS_EVENTS_TOPIC" envDefault:"payments.events"`
}

// GatewaySettings is the persisted configuration of the card gateway.
type GatewaySettings struct {
	Enabled     bool   `env:"ENABLED" envDefault:"true"`
	Title       string `env:"TITLE" envDefault:"Credit Card"`
	Description string `env:"DESCRIPTION" envDefault:"We do not store any card details"`
	Sandbox     bool   `env:"SANDBOX" envDefault:"false"`

	TestPublicKey string `env:"TEST_PUBLIC_KEY"`
	TestSecretKey string `env:"TEST_SECRET_KEY"`
	LivePublicKey string `env:"LIVE_PUBLIC_KEY"`
	LiveSecretKey string `env:"LIVE_SECRET_KEY"`

	SandboxURL  string        `env:"SANDBOX_URL" envDefault:"https://cert.api2.heartlandportico.com"`
	LiveURL     string        `env:"LIVE_URL" envDefault:"https://api2.heartlandportico.com"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	LogEnabled bool   `env:"LOG_ENABLED" envDefault:"true"`
	LogPath    string `env:"LOG_PATH" envDefault:"debug.log"`
}

func New() (Config, error) {
	c, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
