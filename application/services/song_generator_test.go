package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/domain"
)

type aggregatorStub struct {
	stories []domain.Story
}

func (a aggregatorStub) Aggregate(context.Context, int) []domain.Story {
	return a.stories
}

func TestSongGenerator_FromHeadlines(t *testing.T) {
	backend := &backendStub{submitResult: domain.SubmissionResult{TaskIDs: []string{"task-1"}}}
	aggregator := aggregatorStub{stories: []domain.Story{
		{Headline: "Storm batters the coast", Source: "BBC"},
	}}
	generator := NewSongGenerator(aggregator, extractorStub{}, synthesizerStub{}, backend, nopLogger{})

	result, lyrics, err := generator.GenerateSong(context.Background(), inbound.GenerateSongParams{})

	require.NoError(t, err)
	require.Equal(t, []string{"task-1"}, result.TaskIDs)
	require.Equal(t, "headline lyrics for Storm batters the coast", lyrics)

	require.Len(t, backend.submitted, 1)
	require.Equal(t, "Today's Headlines", backend.submitted[0].Title)
	require.Equal(t, defaultSongTags, backend.submitted[0].Tags)
}

func TestSongGenerator_FromArticle(t *testing.T) {
	backend := &backendStub{submitResult: domain.SubmissionResult{ClipIDs: []string{"clip-1"}}}
	generator := NewSongGenerator(aggregatorStub{}, extractorStub{content: "article text"}, synthesizerStub{}, backend, nopLogger{})

	result, lyrics, err := generator.GenerateSong(context.Background(), inbound.GenerateSongParams{
		SourceURL: "https://example.com/storm",
		Headline:  "Storm batters the coast",
		Tags:      "folk ballad",
	})

	require.NoError(t, err)
	require.Equal(t, []string{"clip-1"}, result.ClipIDs)
	require.Equal(t, "article lyrics for Storm batters the coast", lyrics)

	require.Len(t, backend.submitted, 1)
	require.Equal(t, "Storm batters the coast", backend.submitted[0].Title)
	require.Equal(t, "folk ballad", backend.submitted[0].Tags)
}

func TestSongGenerator_ArticleTitleFallsBackToURL(t *testing.T) {
	backend := &backendStub{submitResult: domain.SubmissionResult{ClipIDs: []string{"clip-1"}}}
	generator := NewSongGenerator(aggregatorStub{}, extractorStub{content: "article text"}, synthesizerStub{}, backend, nopLogger{})

	_, _, err := generator.GenerateSong(context.Background(), inbound.GenerateSongParams{
		SourceURL: "https://example.com/storm",
	})

	require.NoError(t, err)
	require.Equal(t, "https://example.com/storm", backend.submitted[0].Title)
}

func TestSongGenerator_ExtractionFailureIsTerminal(t *testing.T) {
	generator := NewSongGenerator(aggregatorStub{}, extractorStub{err: errors.New("page gone")},
		synthesizerStub{}, &backendStub{}, nopLogger{})

	_, _, err := generator.GenerateSong(context.Background(), inbound.GenerateSongParams{
		SourceURL: "https://example.com/storm",
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "article extraction failed")
}

func TestSongGenerator_NoHeadlines(t *testing.T) {
	generator := NewSongGenerator(aggregatorStub{}, extractorStub{}, synthesizerStub{}, &backendStub{}, nopLogger{})

	_, _, err := generator.GenerateSong(context.Background(), inbound.GenerateSongParams{})

	require.ErrorIs(t, err, ErrNoHeadlines)
}
