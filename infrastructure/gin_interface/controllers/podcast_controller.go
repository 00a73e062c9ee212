package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
	"github.com/irademos/ai-news-song/infrastructure/gin_interface/dto"
)

const defaultPodcastLimitPerSource = 5

type PodcastController interface {
	PlanEpisode(c *gin.Context)
	FullEpisode(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type podcastController struct {
	logger     outbound.LoggerPort
	planner    inbound.PodcastPlannerPort
	aggregator inbound.HeadlineAggregatorPort
	configErr  error
}

func NewPodcastController(logger outbound.LoggerPort, planner inbound.PodcastPlannerPort,
	aggregator inbound.HeadlineAggregatorPort, configErr error) PodcastController {
	return &podcastController{
		logger:     logger,
		planner:    planner,
		aggregator: aggregator,
		configErr:  configErr,
	}
}

// PlanEpisode answers quickly with the episode plan only: overview plus
// three matched selections, no article fetches and no song submissions.
func (p *podcastController) PlanEpisode(c *gin.Context) {
	p.runPhase(c, func(ctx context.Context, candidates []domain.Story) (domain.PodcastPlan, error) {
		return p.planner.Plan(ctx, candidates)
	})
}

// FullEpisode runs the complete pipeline including deep-dive scripts and
// one song submission per selected story.
func (p *podcastController) FullEpisode(c *gin.Context) {
	p.runPhase(c, func(ctx context.Context, candidates []domain.Story) (domain.PodcastPlan, error) {
		return p.planner.FullEpisode(ctx, candidates)
	})
}

func (p *podcastController) runPhase(c *gin.Context, phase func(context.Context, []domain.Story) (domain.PodcastPlan, error)) {
	if p.planner == nil {
		abortWithError(c, http.StatusInternalServerError, "server not configured", p.configErr)
		return
	}

	var req dto.PodcastRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid request body", err)
			return
		}
	}

	candidates := req.Stories
	if len(candidates) == 0 {
		limit := req.LimitPerSource
		if limit < 1 {
			limit = defaultPodcastLimitPerSource
		}
		candidates = p.aggregator.Aggregate(c.Request.Context(), limit)
	}
	if len(candidates) == 0 {
		abortWithError(c, http.StatusServiceUnavailable, "no candidate stories available", nil)
		return
	}

	plan, err := phase(c.Request.Context(), candidates)
	if err != nil {
		p.logger.Error(err, "Podcast generation failed")
		abortWithError(c, http.StatusBadGateway, "podcast generation failed", err)
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (p *podcastController) RegisterRoutes(g *gin.Engine) {
	g.POST("/podcast-plan", p.PlanEpisode)
	g.POST("/podcast-episode", p.FullEpisode)
}
