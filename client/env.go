package client

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/fmpdata/fmpdata-go/logger"
	"github.com/fmpdata/fmpdata-go/resilience"
)

// Environment variables read by ConfigFromEnv. Timeout is in seconds.
const (
	EnvAPIKey            = "FMP_API_KEY"
	EnvBaseURL           = "FMP_BASE_URL"
	EnvTimeout           = "FMP_TIMEOUT"
	EnvMaxRetries        = "FMP_MAX_RETRIES"
	EnvDailyLimit        = "FMP_DAILY_LIMIT"
	EnvRequestsPerSecond = "FMP_REQUESTS_PER_SECOND"
	EnvRequestsPerMinute = "FMP_REQUESTS_PER_MINUTE"
	EnvFailFast          = "FMP_FAIL_FAST"
	EnvLogLevel          = "FMP_LOG_LEVEL"
	EnvLogFormat         = "FMP_LOG_FORMAT"
	EnvEmbeddingProvider = "FMP_EMBEDDING_PROVIDER"
)

// ConfigFromEnv builds a Config from FMP_* environment variables. A .env
// file in the working directory is loaded first when present; variables
// already set in the environment win over file values.
func ConfigFromEnv() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("FMP")
	v.AutomaticEnv()

	v.SetDefault("base_url", DefaultBaseURL)
	v.SetDefault("timeout", int(DefaultTimeout/time.Second))
	v.SetDefault("max_retries", DefaultMaxRetries)
	v.SetDefault("daily_limit", resilience.DefaultQuotaConfig().DailyLimit)
	v.SetDefault("requests_per_second", resilience.DefaultQuotaConfig().RequestsPerSecond)
	v.SetDefault("requests_per_minute", resilience.DefaultQuotaConfig().RequestsPerMinute)

	return Config{
		APIKey:     v.GetString("api_key"),
		BaseURL:    v.GetString("base_url"),
		Timeout:    time.Duration(v.GetInt("timeout")) * time.Second,
		MaxRetries: v.GetInt("max_retries"),
		RateLimit: resilience.QuotaConfig{
			DailyLimit:        v.GetInt("daily_limit"),
			RequestsPerSecond: v.GetInt("requests_per_second"),
			RequestsPerMinute: v.GetInt("requests_per_minute"),
		},
		FailFast: v.GetBool("fail_fast"),
		Logging: logger.Config{
			Level:  v.GetString("log_level"),
			Format: v.GetString("log_format"),
		},
		EmbeddingProvider: v.GetString("embedding_provider"),
	}
}
