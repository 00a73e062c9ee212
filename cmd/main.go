package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog/log"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/services"
	"github.com/irademos/ai-news-song/config"
	"github.com/irademos/ai-news-song/infrastructure/adapters"
	"github.com/irademos/ai-news-song/infrastructure/gin_interface/controllers"
	"github.com/irademos/ai-news-song/middleware"
)

func main() {
	_ = godotenv.Load()

	zeroLogger := adapters.NewZerologWrapper("ai-news-song")

	serverConfig := config.GetServerConfig()

	feedConfig, err := config.GetFeedConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get feed config")
	}

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(120, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	contentFetcher := adapters.NewContentFetcher(30*time.Second, zeroLogger)

	feedFetcher := adapters.NewFeedFetcher(feedConfig, zeroLogger)
	aggregator := services.NewHeadlineAggregator(feedFetcher, feedConfig.Sources, workerPool, zeroLogger)

	articleExtractor := adapters.NewArticleExtractor(contentFetcher, zeroLogger)

	// Missing upstream credentials must not keep the read-only endpoints
	// from serving: the affected endpoints answer 500 with the reason.
	var synthesizer inbound.LyricSynthesizerPort
	var chain *services.ModelChain

	modelConfig, modelErr := config.GetModelConfig()
	if modelErr != nil {
		zeroLogger.Warn("Model backend not configured: " + modelErr.Error())
	} else {
		modelClient := adapters.NewModelClient(contentFetcher, modelConfig, zeroLogger)
		chain = services.NewModelChain(modelConfig.Models, modelClient, services.DefaultRetryPolicy, zeroLogger)
		synthesizer = services.NewLyricSynthesizer(chain, zeroLogger)
	}

	sunoConfig, sunoErr := config.GetSunoConfig()
	var songService inbound.SongGeneratorPort
	var statusService inbound.JobStatusPort
	var planner inbound.PodcastPlannerPort

	if sunoErr != nil {
		zeroLogger.Warn("Synthesis backend not configured: " + sunoErr.Error())
	} else {
		sunoClient := adapters.NewSunoClient(contentFetcher, sunoConfig, zeroLogger)
		statusService = services.NewJobStatusService(sunoClient, workerPool, zeroLogger)

		if modelErr == nil {
			songService = services.NewSongGenerator(aggregator, articleExtractor, synthesizer, sunoClient, zeroLogger)
			planner = services.NewPodcastPlanner(chain, articleExtractor, synthesizer, sunoClient, zeroLogger)
		}
	}

	configErr := modelErr
	if configErr == nil {
		configErr = sunoErr
	}

	headlinesController := controllers.NewHeadlinesController(zeroLogger, aggregator)
	songController := controllers.NewSongController(zeroLogger, songService, statusService, configErr)
	podcastController := controllers.NewPodcastController(zeroLogger, planner, aggregator, configErr)
	relayController := controllers.NewAudioRelayController(zeroLogger, &http.Client{}, controllers.DefaultAudioRelayAllowlist)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	allowedOrigins := []string{"http://localhost:3000"}
	if serverConfig.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, serverConfig.FrontendURL)
	}

	router.Use(middleware.RecoveryMiddleware(zeroLogger))
	router.Use(middleware.RequestLoggerMiddleware(zeroLogger))
	router.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	headlinesController.RegisterRoutes(router)
	songController.RegisterRoutes(router)
	podcastController.RegisterRoutes(router)
	relayController.RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
