package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	ListenAddr string
	LogLevel   string
	LogFormat  string

	StoreDriver      string
	DatabaseURL      string
	DatabaseMaxConns int
	SQLitePath       string

	RedisAddr      string
	ReportCacheTTL time.Duration
	ReportWorkers  int

	LLM LLMConfig

	ReportRateLimit float64
	ReportRateBurst int

	ChromeURL string
	S3        S3Config

	OTLPEndpoint string
}

type LLMConfig struct {
	Provider string
	BaseURL  string
	// Model is blank unless configured; the client picks the provider's
	// default.
	Model        string
	Temperature  float64
	MaxTokens    int
	Timeout      time.Duration
	GroqAPIKey   string
	OpenAIAPIKey string
	GeminiAPIKey string
}

// APIKey returns the key for the selected provider.
func (c LLMConfig) APIKey() string {
	switch c.Provider {
	case "openai":
		return c.OpenAIAPIKey
	case "gemini":
		return c.GeminiAPIKey
	default:
		return c.GroqAPIKey
	}
}

type S3Config struct {
	Endpoint  string
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "")
	v.SetDefault("log_format", "")
	v.SetDefault("store_driver", "memory")
	v.SetDefault("database_url", "")
	v.SetDefault("database_max_conns", 10)
	v.SetDefault("sqlite_path", "impactlens.db")
	v.SetDefault("redis_addr", "")
	v.SetDefault("report_cache_ttl", "1h")
	v.SetDefault("report_workers", 0)
	v.SetDefault("llm_provider", "groq")
	v.SetDefault("llm_base_url", "")
	v.SetDefault("llm_model", "")
	v.SetDefault("llm_temperature", 0.3)
	v.SetDefault("llm_max_tokens", 4096)
	v.SetDefault("llm_timeout", "60s")
	v.SetDefault("groq_api_key", "")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("report_rate_limit", 2.0)
	v.SetDefault("report_rate_burst", 5)
	v.SetDefault("chrome_url", "")
	v.SetDefault("s3_endpoint", "")
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_region", "us-east-1")
	v.SetDefault("s3_access_key", "")
	v.SetDefault("s3_secret_key", "")
	v.SetDefault("otel_exporter_otlp_endpoint", "")
}

// Load reads impactlens.yaml from the working directory when present, then
// environment variables. A non-nil error with a usable Config is a warning:
// the service can start but some feature will not work.
func Load() (Config, error) {
	return load(".")
}

func load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName("impactlens")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	v.AutomaticEnv()

	cfg := Config{
		Env:              v.GetString("app_env"),
		ListenAddr:       v.GetString("listen_addr"),
		LogLevel:         v.GetString("log_level"),
		LogFormat:        v.GetString("log_format"),
		StoreDriver:      strings.ToLower(v.GetString("store_driver")),
		DatabaseURL:      v.GetString("database_url"),
		DatabaseMaxConns: v.GetInt("database_max_conns"),
		SQLitePath:       v.GetString("sqlite_path"),
		RedisAddr:        v.GetString("redis_addr"),
		ReportCacheTTL:   v.GetDuration("report_cache_ttl"),
		ReportWorkers:    v.GetInt("report_workers"),
		LLM: LLMConfig{
			Provider:     strings.ToLower(v.GetString("llm_provider")),
			BaseURL:      v.GetString("llm_base_url"),
			Model:        v.GetString("llm_model"),
			Temperature:  v.GetFloat64("llm_temperature"),
			MaxTokens:    v.GetInt("llm_max_tokens"),
			Timeout:      v.GetDuration("llm_timeout"),
			GroqAPIKey:   v.GetString("groq_api_key"),
			OpenAIAPIKey: v.GetString("openai_api_key"),
			GeminiAPIKey: v.GetString("gemini_api_key"),
		},
		ReportRateLimit: v.GetFloat64("report_rate_limit"),
		ReportRateBurst: v.GetInt("report_rate_burst"),
		ChromeURL:       v.GetString("chrome_url"),
		S3: S3Config{
			Endpoint:  v.GetString("s3_endpoint"),
			Bucket:    v.GetString("s3_bucket"),
			Region:    v.GetString("s3_region"),
			AccessKey: v.GetString("s3_access_key"),
			SecretKey: v.GetString("s3_secret_key"),
		},
		OTLPEndpoint: v.GetString("otel_exporter_otlp_endpoint"),
	}

	switch cfg.StoreDriver {
	case "memory", "sqlite", "postgres":
	default:
		return cfg, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	switch cfg.LLM.Provider {
	case "groq", "openai", "gemini":
	default:
		return cfg, fmt.Errorf("unknown LLM_PROVIDER %q", cfg.LLM.Provider)
	}

	var warnings []error
	if cfg.StoreDriver == "postgres" && cfg.DatabaseURL == "" {
		warnings = append(warnings, errors.New("DATABASE_URL not set"))
	}
	if cfg.LLM.APIKey() == "" {
		warnings = append(warnings, fmt.Errorf("no API key for LLM provider %s", cfg.LLM.Provider))
	}
	return cfg, errors.Join(warnings...)
}
