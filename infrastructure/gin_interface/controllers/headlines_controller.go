package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
)

const (
	defaultHeadlineLimit = 5
	maxHeadlineLimit     = 20
)

type HeadlinesController interface {
	GetHeadlines(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type headlinesController struct {
	logger     outbound.LoggerPort
	aggregator inbound.HeadlineAggregatorPort
}

func NewHeadlinesController(logger outbound.LoggerPort, aggregator inbound.HeadlineAggregatorPort) HeadlinesController {
	return &headlinesController{
		logger:     logger,
		aggregator: aggregator,
	}
}

// GetHeadlines returns up to limit deduplicated stories across all
// configured sources. Every story carries a non-empty headline.
func (h *headlinesController) GetHeadlines(c *gin.Context) {
	limit := defaultHeadlineLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			abortWithError(c, http.StatusBadRequest, "invalid limit", err)
			return
		}
		limit = parsed
	}
	if limit > maxHeadlineLimit {
		limit = maxHeadlineLimit
	}

	stories := h.aggregator.Aggregate(c.Request.Context(), limit)

	seen := make(map[string]struct{}, len(stories))
	deduped := make([]domain.Story, 0, limit)
	for _, story := range stories {
		if len(deduped) == limit {
			break
		}
		key := story.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		deduped = append(deduped, story)
	}

	c.JSON(http.StatusOK, gin.H{"stories": deduped})
}

func (h *headlinesController) RegisterRoutes(g *gin.Engine) {
	g.GET("/news-headlines", h.GetHeadlines)
}
