package llm

import (
	"context"
	"time"

	"github.com/dirhamflow/dirhamflow/internal/common"
	"github.com/dirhamflow/dirhamflow/internal/model"
	"github.com/dirhamflow/dirhamflow/internal/service"
)

// DefaultTimeout bounds one model call including retries' individual
// attempts.
const DefaultTimeout = 30 * time.Second

// Extractor adapts a model Client to the service.Extractor interface.
// Unlike the deterministic strategies this one suspends on the network,
// so every call carries a timeout and retryable failures are retried.
type Extractor struct {
	client  Client
	timeout time.Duration
	retry   service.RetryOptions
}

// NewExtractor creates a model-backed extraction strategy.
func NewExtractor(client Client, timeout time.Duration) *Extractor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Extractor{
		client:  client,
		timeout: timeout,
		retry: service.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Name implements service.Extractor.
func (e *Extractor) Name() string {
	return "gemini"
}

// Extract implements service.Extractor.
func (e *Extractor) Extract(ctx context.Context, message string) (model.TransactionRecord, error) {
	var raw string

	err := common.WithRetry(ctx, func() error {
		callCtx, cancel := context.WithTimeout(ctx, e.timeout)
		defer cancel()

		var callErr error
		raw, callErr = e.client.ExtractTransaction(callCtx, message)
		return callErr
	}, e.retry)
	if err != nil {
		return model.TransactionRecord{}, err
	}

	return parseResponse(raw, message)
}
