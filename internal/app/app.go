package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"CardCheckout/config"
	controller "CardCheckout/internal/controller/http"
	"CardCheckout/internal/controller/http/handlers"
	"CardCheckout/internal/diagnostics"
	"CardCheckout/internal/domain/checkout"
	"CardCheckout/internal/domain/order"
	"CardCheckout/internal/domain/payment"
	"CardCheckout/internal/external/globalpayments"
	"CardCheckout/internal/external/kafka"
	"CardCheckout/internal/external/opensearch"
	"CardCheckout/internal/messaging"
	cart_repo "CardCheckout/internal/repo/cart"
	order_repo "CardCheckout/internal/repo/order"
	session_repo "CardCheckout/internal/repo/session"
	"CardCheckout/pkg/health"
	"CardCheckout/pkg/logger"
	"CardCheckout/pkg/postgres"

	"golang.org/x/sync/errgroup"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

const shutdownTimeout = 10 * time.Second

func Run(cfg config.Config) error {
	logger.Setup(logger.Options{
		Level:   cfg.LogLevel,
		Console: cfg.LogFormat == "console",
	})

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		return fmt.Errorf("app - Run - ApplyMigrations: %w", err)
	}

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		return fmt.Errorf("app - Run - postgres.New: %w", err)
	}
	defer pool.Close()

	handler, diag, closeDeps := NewHandler(ctx, cfg, pool)
	defer closeDeps()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Diagnostics outlive the server so entries from draining requests are flushed.
	diagCtx, stopDiag := context.WithCancel(context.Background())
	defer stopDiag()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return diag.Run(diagCtx)
	})
	g.Go(func() error {
		slog.Info("Starting checkout HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down checkout service gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		defer stopDiag()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// NewHandler wires repositories, the payment method, the checkout pipeline and
// the HTTP routes on top of an open pool. The caller runs the diagnostic log;
// the returned func flushes and releases the event publisher.
func NewHandler(ctx context.Context, cfg config.Config, pool *postgres.Postgres) (http.Handler, *diagnostics.Log, func()) {
	orderRepo := order_repo.NewPgOrderRepo(pool)
	sessionRepo := session_repo.NewPgSessionRepo(pool)
	cartRepo := cart_repo.NewPgCartRepo(pool)

	healthRegistry := health.NewRegistry(health.NewPostgresChecker(pool.Pool))

	var events messaging.Publisher = messaging.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		events = kafka.NewPublisher(cfg.KafkaBrokers, cfg.EventsTopic)
		healthRegistry.Register(health.NewKafkaChecker(cfg.KafkaBrokers))
	}

	diag := diagnostics.New(cfg.Gateway.LogEnabled, diagnosticSinks(ctx, cfg)...)

	gatewayClient := globalpayments.New(&http.Client{Timeout: cfg.Gateway.HTTPTimeout})
	card := payment.NewCardMethod(
		gatewaySettings(cfg.Gateway),
		gatewayClient,
		orderRepo,
		cartRepo,
		diag,
		events,
		cfg.StoreBaseURL,
	)
	if !card.IsAvailable() {
		slog.Warn("Card payments are not available: gateway disabled or keys missing",
			"sandbox", cfg.Gateway.Sandbox)
	}
	// Informational only: free orders still check out without the card method.
	healthRegistry.Register(health.NewCheckFunc(payment.MethodID, func(context.Context) health.Result {
		if card.IsAvailable() {
			return health.Result{Status: health.StatusUp}
		}
		return health.Result{Status: health.StatusUp, Message: "card payments unavailable"}
	}))

	appointmentGate := checkout.NewAppointmentGate(orderRepo, sessionRepo)
	pipeline := checkout.NewPipeline(checkout.NewRegistry(card), orderRepo, cfg.StoreBaseURL, appointmentGate)

	checkoutHandler := handlers.NewCheckoutHandler(pipeline, appointmentGate, sessionRepo)
	orderHandler := handlers.NewOrderHandler(order.NewOrderService(orderRepo), pipeline)

	engine := controller.NewGinEngine()
	controller.NewRouter(checkoutHandler, orderHandler, healthRegistry).SetUp(engine)

	return engine, diag, func() {
		if err := events.Close(); err != nil {
			slog.Warn("Failed to close event publisher", "error", err)
		}
	}
}

func gatewaySettings(c config.GatewaySettings) payment.Settings {
	return payment.Settings{
		Enabled:       c.Enabled,
		Title:         c.Title,
		Description:   c.Description,
		Sandbox:       c.Sandbox,
		TestPublicKey: c.TestPublicKey,
		TestSecretKey: c.TestSecretKey,
		LivePublicKey: c.LivePublicKey,
		LiveSecretKey: c.LiveSecretKey,
		SandboxURL:    c.SandboxURL,
		LiveURL:       c.LiveURL,
	}
}

// diagnosticSinks always writes the local debug file; OpenSearch is added when configured and reachable.
func diagnosticSinks(ctx context.Context, cfg config.Config) []diagnostics.Sink {
	sinks := []diagnostics.Sink{diagnostics.NewFileSink(cfg.Gateway.LogPath)}

	if len(cfg.OpensearchUrls) == 0 {
		return sinks
	}

	sink, err := opensearch.NewDiagnosticSink(ctx, cfg.OpensearchUrls, cfg.OpensearchIndexDiagnostic)
	if err != nil {
		slog.Warn("OpenSearch diagnostic sink disabled", "error", err)
		return sinks
	}
	return append(sinks, sink)
}
