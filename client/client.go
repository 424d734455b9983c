package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/fmpdata/fmpdata-go/errors"
	"github.com/fmpdata/fmpdata-go/logger"
	"github.com/fmpdata/fmpdata-go/resilience"
)

// Client executes calls against the FMP API. It validates parameters
// locally, paces calls against the plan's quota windows, retries transient
// failures with backoff, and reconciles response shapes into typed results.
//
// A Client is safe for concurrent use; all goroutines share its quota
// tracker.
type Client struct {
	httpClient *http.Client
	config     Config
	tracker    *resilience.Tracker
	policy     *resilience.Policy
	log        *logger.Logger
	metrics    *metrics
	tracer     trace.Tracer

	// sleep is swapped in tests to observe backoff waits without real time.
	sleep func(ctx context.Context, d time.Duration) error

	// requests counts completed calls for periodic quota logging.
	requests uint64
}

// New creates a client with the given configuration.
func New(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		config:     cfg,
		tracker:    resilience.NewTracker(cfg.RateLimit),
		policy:     resilience.NewPolicy(cfg.Retry),
		log:        logger.New(&cfg.Logging).WithComponent("fmp.client"),
		metrics:    m,
		tracer:     otel.Tracer(instrumentationName),
		sleep:      sleepContext,
	}, nil
}

// FromEnv creates a client configured from FMP_* environment variables,
// loading a .env file first when one is present.
func FromEnv() (*Client, error) {
	return New(ConfigFromEnv())
}

// Config returns a copy of the client's effective configuration.
func (c *Client) Config() Config {
	return c.config
}

// QuotaUsage snapshots the client's local quota windows: calls used,
// limit, and time until reset per window.
func (c *Client) QuotaUsage() []resilience.WindowUsage {
	return c.tracker.Usage()
}

// RequireEmbeddings reports whether the configured embedding provider can
// be used. Vector search ships in the separate fmpdata-lc module; this
// client only validates the configuration and names the prerequisite.
func (c *Client) RequireEmbeddings() error {
	if c.config.EmbeddingProvider == "" {
		return errors.NewConfigError("embedding provider not configured: set FMP_EMBEDDING_PROVIDER or Config.EmbeddingProvider")
	}
	return errors.NewDependencyError(
		fmt.Sprintf("embedding provider %q", c.config.EmbeddingProvider),
		"the fmpdata-lc module")
}

// sleepContext sleeps for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
