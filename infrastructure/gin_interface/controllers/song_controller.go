package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/application/services"
	"github.com/irademos/ai-news-song/infrastructure/gin_interface/dto"
)

type SongController interface {
	GenerateSong(c *gin.Context)
	SongStatus(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type songController struct {
	logger        outbound.LoggerPort
	songGenerator inbound.SongGeneratorPort
	jobStatus     inbound.JobStatusPort
	configErr     error
}

// NewSongController serves submission and polling. When the upstream
// services could not be configured (missing API keys), configErr is
// non-nil and both endpoints answer 500 with the reason.
func NewSongController(logger outbound.LoggerPort, songGenerator inbound.SongGeneratorPort,
	jobStatus inbound.JobStatusPort, configErr error) SongController {
	return &songController{
		logger:        logger,
		songGenerator: songGenerator,
		jobStatus:     jobStatus,
		configErr:     configErr,
	}
}

func (s *songController) GenerateSong(c *gin.Context) {
	if s.songGenerator == nil {
		abortWithError(c, http.StatusInternalServerError, "server not configured", s.configErr)
		return
	}

	var req dto.GenerateSongRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "invalid request body", err)
			return
		}
	}

	result, lyrics, err := s.songGenerator.GenerateSong(c.Request.Context(), inbound.GenerateSongParams{
		SourceURL: req.SourceURL,
		Headline:  req.Headline,
		Source:    req.Source,
		Tags:      req.Tags,
	})
	if err != nil {
		s.logger.Error(err, "Song generation failed")

		var modelErr *outbound.ModelCallError
		switch {
		case errors.Is(err, services.ErrNoHeadlines):
			abortWithError(c, http.StatusServiceUnavailable, "no headlines available", err)
		case errors.As(err, &modelErr):
			abortWithError(c, http.StatusServiceUnavailable, "lyrics generation failed", err)
		case errors.Is(err, outbound.ErrSynthesisAuth):
			abortWithError(c, http.StatusBadGateway, "synthesis backend rejected credentials", err)
		default:
			abortWithError(c, http.StatusBadGateway, "failed to generate song", err)
		}
		return
	}

	c.JSON(http.StatusAccepted, dto.GenerateSongResponse{
		TaskIDs:     result.TaskIDs,
		ClipIDs:     result.ClipIDs,
		Lyrics:      lyrics,
		RawResponse: result.RawResponse,
	})
}

func (s *songController) SongStatus(c *gin.Context) {
	if s.jobStatus == nil {
		abortWithError(c, http.StatusInternalServerError, "server not configured", s.configErr)
		return
	}

	ids := splitIDs(c.Query("ids"))
	if len(ids) == 0 {
		abortWithError(c, http.StatusBadRequest, "no job identifiers given", nil)
		return
	}

	var taskIDs, clipIDs []string
	if c.Query("kind") == "clip" {
		clipIDs = ids
	} else {
		taskIDs = ids
	}

	playback := c.Query("playback") == "1" || c.Query("playback") == "true"

	jobs, err := s.jobStatus.CheckJobs(c.Request.Context(), taskIDs, clipIDs, playback)
	if err != nil {
		s.logger.Error(err, "Job status check failed")
		if errors.Is(err, outbound.ErrSynthesisAuth) {
			abortWithError(c, http.StatusBadGateway, "synthesis backend rejected credentials", err)
			return
		}
		abortWithError(c, http.StatusBadGateway, "failed to fetch job status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

func (s *songController) RegisterRoutes(g *gin.Engine) {
	g.POST("/generate-song", s.GenerateSong)
	g.GET("/song-status", s.SongStatus)
}

func splitIDs(raw string) []string {
	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
