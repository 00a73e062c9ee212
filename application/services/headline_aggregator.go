package services

import (
	"context"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/channel_utils"
	"github.com/irademos/ai-news-song/config"
	"github.com/irademos/ai-news-song/domain"
)

type headlineAggregator struct {
	fetcher    outbound.FeedFetcherPort
	sources    []config.FeedSource
	workerPool outbound.TaskDispatcher
	logger     outbound.LoggerPort
}

// NewHeadlineAggregator fans out over the configured feed sources on the
// worker pool. A failing source contributes nothing and is only logged;
// the aggregate call itself never fails.
func NewHeadlineAggregator(fetcher outbound.FeedFetcherPort, sources []config.FeedSource,
	workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) inbound.HeadlineAggregatorPort {
	return &headlineAggregator{
		fetcher:    fetcher,
		sources:    sources,
		workerPool: workerPool,
		logger:     logger,
	}
}

func (a *headlineAggregator) Aggregate(ctx context.Context, limitPerSource int) []domain.Story {
	channels := make([]<-chan domain.Story, 0, len(a.sources))

	for _, source := range a.sources {
		source := source
		ch := make(chan domain.Story)

		err := a.workerPool.Submit(func() {
			defer close(ch)

			stories, err := a.fetcher.FetchStories(ctx, source, limitPerSource)
			if err != nil {
				a.logger.WarnWithFields("Feed fetch failed, skipping source", map[string]interface{}{
					"source": source.Name,
					"url":    source.URL,
					"error":  err.Error(),
				})
				return
			}

			for _, story := range stories {
				select {
				case ch <- story:
				case <-ctx.Done():
					return
				}
			}
		})
		if err != nil {
			close(ch)
			a.logger.Error(err, "Failed to submit feed fetch to worker pool")
			continue
		}

		channels = append(channels, ch)
	}

	merged, err := channel_utils.FanIn(a.workerPool, channels...)
	if err != nil {
		a.logger.Error(err, "Failed to merge feed channels")
		return nil
	}

	var stories []domain.Story
	for story := range merged {
		stories = append(stories, story)
	}

	a.logger.InfoWithFields("Aggregated headlines", map[string]interface{}{
		"sources": len(a.sources),
		"stories": len(stories),
	})

	return stories
}
