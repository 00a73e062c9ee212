package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irademos/ai-news-song/config"
	"github.com/irademos/ai-news-song/domain"
)

type feedFetcherStub struct {
	stories map[string][]domain.Story
	errs    map[string]error
}

func (f feedFetcherStub) FetchStories(_ context.Context, source config.FeedSource, limit int) ([]domain.Story, error) {
	if err, ok := f.errs[source.Name]; ok {
		return nil, err
	}
	stories := f.stories[source.Name]
	if len(stories) > limit {
		stories = stories[:limit]
	}
	return stories, nil
}

func TestHeadlineAggregator_MergesAllSources(t *testing.T) {
	fetcher := feedFetcherStub{stories: map[string][]domain.Story{
		"BBC": {
			{Headline: "Storm batters the coast", Source: "BBC"},
			{Headline: "Markets rally", Source: "BBC"},
		},
		"NPR": {
			{Headline: "New comet spotted", Source: "NPR"},
		},
	}}
	sources := []config.FeedSource{
		{Name: "BBC", URL: "https://example.com/bbc.xml"},
		{Name: "NPR", URL: "https://example.com/npr.xml"},
	}

	aggregator := NewHeadlineAggregator(fetcher, sources, newTestPool(t), nopLogger{})

	stories := aggregator.Aggregate(context.Background(), 5)

	require.Len(t, stories, 3)

	got := make(map[string]struct{}, len(stories))
	for _, story := range stories {
		got[story.Key()] = struct{}{}
	}
	require.Contains(t, got, "BBC|Storm batters the coast")
	require.Contains(t, got, "BBC|Markets rally")
	require.Contains(t, got, "NPR|New comet spotted")
}

func TestHeadlineAggregator_SkipsFailingSource(t *testing.T) {
	fetcher := feedFetcherStub{
		stories: map[string][]domain.Story{
			"NPR": {{Headline: "New comet spotted", Source: "NPR"}},
		},
		errs: map[string]error{
			"BBC": errors.New("feed unreachable"),
		},
	}
	sources := []config.FeedSource{
		{Name: "BBC", URL: "https://example.com/bbc.xml"},
		{Name: "NPR", URL: "https://example.com/npr.xml"},
	}

	aggregator := NewHeadlineAggregator(fetcher, sources, newTestPool(t), nopLogger{})

	stories := aggregator.Aggregate(context.Background(), 5)

	require.Len(t, stories, 1)
	require.Equal(t, "New comet spotted", stories[0].Headline)
}

func TestHeadlineAggregator_HonorsPerSourceLimit(t *testing.T) {
	fetcher := feedFetcherStub{stories: map[string][]domain.Story{
		"BBC": {
			{Headline: "One", Source: "BBC"},
			{Headline: "Two", Source: "BBC"},
			{Headline: "Three", Source: "BBC"},
		},
	}}
	sources := []config.FeedSource{{Name: "BBC", URL: "https://example.com/bbc.xml"}}

	aggregator := NewHeadlineAggregator(fetcher, sources, newTestPool(t), nopLogger{})

	stories := aggregator.Aggregate(context.Background(), 2)

	require.Len(t, stories, 2)
}
