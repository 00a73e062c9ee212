package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
)

// RetryPolicy governs attempts against a single model before the chain
// advances to the next one.
type RetryPolicy struct {
	MaxAttempts    int
	InitialBackoff time.Duration
	CallTimeout    time.Duration
}

// DefaultRetryPolicy: three attempts per model, exponential backoff
// starting at 750ms, 20s budget per outbound call.
var DefaultRetryPolicy = RetryPolicy{
	MaxAttempts:    3,
	InitialBackoff: 750 * time.Millisecond,
	CallTimeout:    20 * time.Second,
}

// ModelChain is the ordered-attempt policy: a list of model identifiers
// tried strictly one at a time (each attempt may consume billed quota, so
// models are never raced). Retryable failures (5xx and network/timeout
// errors) are retried with backoff; any other failure is terminal for
// that model and advances the chain. The first model to produce non-empty
// text wins.
type ModelChain struct {
	models    []string
	chatModel outbound.ChatModelPort
	policy    RetryPolicy
	logger    outbound.LoggerPort
}

func NewModelChain(models []string, chatModel outbound.ChatModelPort, policy RetryPolicy, logger outbound.LoggerPort) *ModelChain {
	return &ModelChain{
		models:    models,
		chatModel: chatModel,
		policy:    policy,
		logger:    logger,
	}
}

// TryInOrder runs the chain and returns the first non-empty completion.
func (c *ModelChain) TryInOrder(ctx context.Context, messages []domain.PromptMessage, temperature float64) (string, error) {
	var lastErr error

	for _, model := range c.models {
		text, err := c.tryModel(ctx, model, messages, temperature)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
		c.logger.WarnWithFields("Model exhausted, advancing chain", map[string]interface{}{
			"model": model,
		})
	}

	return "", fmt.Errorf("all models exhausted: %w", lastErr)
}

func (c *ModelChain) tryModel(ctx context.Context, model string, messages []domain.PromptMessage, temperature float64) (string, error) {
	backoff := c.policy.InitialBackoff
	var lastErr error

	for attempt := 1; attempt <= c.policy.MaxAttempts; attempt++ {
		callCtx, cancel := context.WithTimeout(ctx, c.policy.CallTimeout)
		text, err := c.chatModel.Complete(callCtx, model, messages, temperature)
		cancel()

		if err == nil {
			if trimmed := strings.TrimSpace(text); trimmed != "" {
				return trimmed, nil
			}
			// A 2xx with empty text is still a failure; treated like a
			// transient one since the next sample may differ.
			err = &outbound.ModelCallError{Model: model, Err: errors.New("model returned empty text")}
		}
		lastErr = err

		var callErr *outbound.ModelCallError
		if errors.As(err, &callErr) && !callErr.Retryable() {
			c.logger.WarnWithFields("Terminal model failure, not retrying", map[string]interface{}{
				"model":  model,
				"status": callErr.StatusCode,
			})
			return "", err
		}

		if attempt < c.policy.MaxAttempts {
			c.logger.DebugWithFields("Retryable model failure, backing off", map[string]interface{}{
				"model":   model,
				"attempt": attempt,
				"backoff": backoff.String(),
			})
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			backoff *= 2
		}
	}

	return "", lastErr
}
