package outbound

import (
	"context"
	"fmt"

	"github.com/irademos/ai-news-song/domain"
)

// ModelCallError is returned by ChatModelPort when a completion request
// fails. StatusCode carries the upstream HTTP status; it is 0 for network
// and timeout failures. The retry policy classifies on it.
type ModelCallError struct {
	Model      string
	StatusCode int
	Err        error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("model %s call failed (status %d): %v", e.Model, e.StatusCode, e.Err)
}

func (e *ModelCallError) Unwrap() error {
	return e.Err
}

// Retryable reports whether the failure is worth retrying against the same
// model: server-side errors and network/timeout failures only. Any other
// status is terminal for that model.
func (e *ModelCallError) Retryable() bool {
	return e.StatusCode == 0 || e.StatusCode >= 500
}

// ChatModelPort issues one completion request against a single model.
type ChatModelPort interface {
	Complete(ctx context.Context, model string, messages []domain.PromptMessage, temperature float64) (string, error)
}
