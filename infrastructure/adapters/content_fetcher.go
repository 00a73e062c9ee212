package adapters

import (
	"io"
	"net/http"
	"time"

	"github.com/irademos/ai-news-song/application/ports/outbound"
)

// ContentFetcher executes one HTTP request and returns the body together
// with the response status. Callers classify on the status themselves; a
// transport-level failure is reported with status 0.
type ContentFetcher interface {
	FetchContent(req *http.Request) ([]byte, int, error)
}

type contentFetcher struct {
	client *http.Client
	logger outbound.LoggerPort
}

func NewContentFetcher(timeout time.Duration, logger outbound.LoggerPort) ContentFetcher {
	return &contentFetcher{
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (c *contentFetcher) FetchContent(req *http.Request) ([]byte, int, error) {
	res, err := c.client.Do(req)
	if err != nil {
		c.logger.ErrorWithFields(err, "HTTP request failed", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
		})
		return nil, 0, err
	}

	defer func() {
		if err := res.Body.Close(); err != nil {
			c.logger.ErrorWithFields(err, "Failed to close response body", map[string]interface{}{
				"url": req.URL.String(),
			})
		}
	}()

	payload, err := io.ReadAll(res.Body)
	if err != nil {
		c.logger.ErrorWithFields(err, "Failed to read response body", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL.String(),
			"status": res.StatusCode,
		})
		return nil, res.StatusCode, err
	}

	return payload, res.StatusCode, nil
}
