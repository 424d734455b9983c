package client

import (
	"strings"
	"testing"

	"github.com/fmpdata/fmpdata-go/errors"
	"github.com/fmpdata/fmpdata-go/resilience"
)

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{APIKey: "test-key"}
	cfg.ApplyDefaults()

	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, DefaultBaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Timeout = %v, want %v", cfg.Timeout, DefaultTimeout)
	}
	if cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", cfg.MaxRetries, DefaultMaxRetries)
	}
	if cfg.RateLimit != resilience.DefaultQuotaConfig() {
		t.Errorf("RateLimit = %+v, want free-tier defaults", cfg.RateLimit)
	}
	if cfg.Retry.MaxAttempts != DefaultMaxRetries {
		t.Errorf("Retry.MaxAttempts = %d, want %d", cfg.Retry.MaxAttempts, DefaultMaxRetries)
	}
}

func TestConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{
		APIKey:     "test-key",
		BaseURL:    "https://example.com/api",
		MaxRetries: 5,
		RateLimit:  resilience.QuotaConfig{DailyLimit: 100000},
	}
	cfg.ApplyDefaults()

	if cfg.BaseURL != "https://example.com/api" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", cfg.MaxRetries)
	}
	// A partially set quota keeps its zero fields unbounded.
	if cfg.RateLimit.RequestsPerSecond != 0 {
		t.Errorf("RequestsPerSecond = %d, want 0", cfg.RateLimit.RequestsPerSecond)
	}
}

func TestConfig_ValidateMissingAPIKey(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if !errors.IsConfig(err) {
		t.Fatalf("expected a config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "api_key is required") {
		t.Errorf("expected the api_key hint, got %q", err.Error())
	}
}

func TestConfig_ValidateBadBaseURL(t *testing.T) {
	cfg := Config{APIKey: "test-key", BaseURL: "not a url"}
	cfg.ApplyDefaults()

	err := cfg.Validate()
	if !errors.IsConfig(err) {
		t.Fatalf("expected a config error, got %v", err)
	}
	if !strings.Contains(err.Error(), "base_url") {
		t.Errorf("expected the field name in snake case, got %q", err.Error())
	}
}

func TestConfig_ValidateMaxRetriesRange(t *testing.T) {
	cfg := Config{APIKey: "test-key", MaxRetries: 11}
	cfg.ApplyDefaults()

	if err := cfg.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected a config error for out-of-range retries, got %v", err)
	}
}

func TestConfig_ValidateEmbeddingProvider(t *testing.T) {
	for _, provider := range []string{"openai", "huggingface", "cohere", ""} {
		cfg := Config{APIKey: "test-key", EmbeddingProvider: provider}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			t.Errorf("provider %q: %v", provider, err)
		}
	}

	cfg := Config{APIKey: "test-key", EmbeddingProvider: "acme"}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); !errors.IsConfig(err) {
		t.Errorf("expected a config error for an unknown provider, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"APIKey", "api_key"},
		{"BaseURL", "base_url"},
		{"MaxRetries", "max_retries"},
		{"Timeout", "timeout"},
		{"EmbeddingProvider", "embedding_provider"},
	}
	for _, tt := range tests {
		if got := toSnakeCase(tt.in); got != tt.want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
