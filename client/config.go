package client

import (
	"time"

	"github.com/fmpdata/fmpdata-go/logger"
	"github.com/fmpdata/fmpdata-go/resilience"
	"github.com/fmpdata/fmpdata-go/util"
)

const (
	// DefaultBaseURL is the FMP API root.
	DefaultBaseURL = "https://financialmodelingprep.com/api"

	// DefaultTimeout bounds each network attempt.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxRetries is the attempt budget for transient failures.
	DefaultMaxRetries = 3
)

// Config configures a Client.
type Config struct {
	// APIKey authenticates every request; it travels as the apikey query
	// parameter.
	APIKey string `validate:"required"`

	// BaseURL is the API root. Defaults to DefaultBaseURL.
	BaseURL string `validate:"omitempty,url"`

	// Timeout bounds each network attempt. Defaults to DefaultTimeout.
	Timeout time.Duration

	// MaxRetries is the total number of tries per call, including the
	// first. Defaults to DefaultMaxRetries.
	MaxRetries int `validate:"omitempty,min=1,max=10"`

	// RateLimit configures the local quota windows. The zero value selects
	// the free-tier defaults; in a partially set config a zero field
	// leaves that window unbounded.
	RateLimit resilience.QuotaConfig

	// Retry tunes the backoff schedule between attempts. MaxAttempts is
	// always taken from MaxRetries.
	Retry resilience.RetryConfig

	// FailFast turns local quota exhaustion into an immediate rate-limit
	// error instead of waiting for a window to reset.
	FailFast bool

	// Logging configures the client logger.
	Logging logger.Config

	// EmbeddingProvider names the provider for the vector-search add-on,
	// which ships as a separate module. Setting it here only records the
	// choice; using it without the add-on is a dependency error.
	EmbeddingProvider string `validate:"omitempty,oneof=openai huggingface cohere"`
}

// ApplyDefaults fills in zero-value fields with the client defaults.
func (c *Config) ApplyDefaults() {
	c.BaseURL = util.Coalesce(c.BaseURL, DefaultBaseURL)
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}
	if c.RateLimit == (resilience.QuotaConfig{}) {
		c.RateLimit = resilience.DefaultQuotaConfig()
	}
	c.Retry.MaxAttempts = c.MaxRetries
	c.Logging.ApplyDefaults()
}

// Validate checks the configuration. A missing API key is reported before
// any request is made.
func (c *Config) Validate() error {
	return validateConfig(c)
}
