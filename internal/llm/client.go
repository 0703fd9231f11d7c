// Package llm provides a model-backed extraction strategy for SMS
// messages the deterministic templates cannot handle. It is a swappable
// alternative behind the same Extractor interface, never a dependency of
// the deterministic core.
package llm

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Client defines the interface for model providers.
type Client interface {
	ExtractTransaction(ctx context.Context, message string) (string, error)
}

// Config holds provider configuration.
type Config struct {
	Provider string
	Model    string
	APIKey   string
	Timeout  time.Duration
}

// NewClient creates a model client based on the provided configuration.
func NewClient(ctx context.Context, cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini", "":
		return newGeminiClient(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported model provider: %s", cfg.Provider)
	}
}
