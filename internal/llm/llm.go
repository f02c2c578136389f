// Package llm talks to hosted chat completion APIs.
package llm

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	DefaultModel       = "allam-2-7b"
	DefaultOpenAIModel = "gpt-4o-mini"
	DefaultGeminiModel = "gemini-2.0-flash"
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 4096
	GroqBaseURL        = "https://api.groq.com/openai/v1"
	OpenAIBaseURL      = "https://api.openai.com/v1"
)

var (
	ErrEmptyCompletion = errors.New("llm: completion has no choices")
	ErrNoAPIKey        = errors.New("llm: API key not configured")
)

// Request is one system + user exchange. Model, temperature and token limit
// are fixed per client.
type Request struct {
	System string
	User   string
}

// Client returns the text of the first completion choice, unmodified.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
	Model() string
}

type Config struct {
	Provider    string
	BaseURL     string
	APIKey      string
	Model       string
	// Temperature is left to DefaultTemperature when nil, so zero stays
	// expressible.
	Temperature *float64
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultModelFor names the model used when none is configured.
func DefaultModelFor(provider string) string {
	switch provider {
	case "openai":
		return DefaultOpenAIModel
	case "gemini":
		return DefaultGeminiModel
	default:
		return DefaultModel
	}
}

func (c *Config) applyDefaults() {
	if c.Model == "" {
		c.Model = DefaultModelFor(c.Provider)
	}
	if c.Temperature == nil {
		t := DefaultTemperature
		c.Temperature = &t
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = DefaultMaxTokens
	}
	if c.Timeout <= 0 {
		c.Timeout = 60 * time.Second
	}
}

// New builds the client for cfg.Provider (groq, openai or gemini) wrapped in a
// circuit breaker.
func New(ctx context.Context, cfg Config) (Client, error) {
	cfg.applyDefaults()
	var (
		c   Client
		err error
	)
	switch cfg.Provider {
	case "", "groq":
		if cfg.BaseURL == "" {
			cfg.BaseURL = GroqBaseURL
		}
		c = NewOpenAICompatible(cfg)
	case "openai":
		if cfg.BaseURL == "" {
			cfg.BaseURL = OpenAIBaseURL
		}
		c = NewOpenAICompatible(cfg)
	case "gemini":
		c, err = NewGemini(ctx, cfg)
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}
	return WithBreaker(c, "llm-"+cfg.Provider), nil
}
