package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/config"
	"github.com/irademos/ai-news-song/domain"
)

type chatRequest struct {
	Model       string                 `json:"model"`
	Messages    []domain.PromptMessage `json:"messages"`
	Temperature float64                `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type modelClient struct {
	fetcher     ContentFetcher
	modelConfig *config.ModelConfig
	logger      outbound.LoggerPort
}

// NewModelClient talks to an OpenAI-compatible chat-completions endpoint
// with plain HTTP so callers can classify the raw status code.
func NewModelClient(fetcher ContentFetcher, modelConfig *config.ModelConfig, logger outbound.LoggerPort) outbound.ChatModelPort {
	return &modelClient{
		fetcher:     fetcher,
		modelConfig: modelConfig,
		logger:      logger,
	}
}

func (m *modelClient) Complete(ctx context.Context, model string, messages []domain.PromptMessage, temperature float64) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", &outbound.ModelCallError{Model: model, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.modelConfig.ApiUrl, bytes.NewBuffer(payload))
	if err != nil {
		return "", &outbound.ModelCallError{Model: model, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+m.modelConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	body, status, err := m.fetcher.FetchContent(req)
	if err != nil {
		return "", &outbound.ModelCallError{Model: model, StatusCode: status, Err: err}
	}
	if status < 200 || status > 299 {
		m.logger.WarnWithFields("Model call returned non-2xx status", map[string]interface{}{
			"model":  model,
			"status": status,
		})
		return "", &outbound.ModelCallError{
			Model:      model,
			StatusCode: status,
			Err:        fmt.Errorf("unexpected status %d: %s", status, truncateForLog(body)),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &outbound.ModelCallError{Model: model, StatusCode: status, Err: err}
	}
	if len(parsed.Choices) == 0 {
		return "", &outbound.ModelCallError{
			Model:      model,
			StatusCode: status,
			Err:        fmt.Errorf("response contained no choices"),
		}
	}

	return parsed.Choices[0].Message.Content, nil
}

func truncateForLog(body []byte) string {
	const max = 300
	if len(body) > max {
		return string(body[:max]) + "..."
	}
	return string(body)
}
