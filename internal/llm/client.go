// Package llm provides chat completion clients for the supported
// language model services. Each client is a thin HTTP binding; all
// prompt construction lives in the calling packages.
package llm

import (
	"context"
	"fmt"
)

// Client is the minimal completion interface the rest of the
// application programs against.
type Client interface {
	// Complete sends a system and user prompt and returns the model's
	// text response.
	Complete(ctx context.Context, system, user string) (string, error)

	// Model returns the model identifier this client targets.
	Model() string
}

// Config holds common client configuration.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string // Override for testing; empty means the service default.
	Temperature float64
}

// New returns a client for the named service ("openai" or "google").
func New(service string, cfg Config) (Client, error) {
	switch service {
	case "openai", "":
		return NewOpenAIClient(cfg), nil
	case "google":
		return NewGeminiClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown LLM service: %s", service)
	}
}
