package services

import (
	"context"
	"fmt"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
)

const (
	// defaultSongTags styles the track when the caller supplies none.
	defaultSongTags = "upbeat pop, catchy, radio"

	// headlineSongLimit bounds how many stories per source feed one song.
	headlineSongLimit = 5
)

// ErrNoHeadlines means the aggregator produced nothing to sing about.
var ErrNoHeadlines = fmt.Errorf("no headlines available")

type songGenerator struct {
	aggregator  inbound.HeadlineAggregatorPort
	extractor   outbound.ArticleExtractorPort
	synthesizer inbound.LyricSynthesizerPort
	backend     outbound.SynthesisBackendPort
	logger      outbound.LoggerPort
}

// NewSongGenerator wires the lyrics-then-submit pipeline: an article or
// the current headlines become lyrics, and the lyrics become one
// synthesis job.
func NewSongGenerator(aggregator inbound.HeadlineAggregatorPort, extractor outbound.ArticleExtractorPort,
	synthesizer inbound.LyricSynthesizerPort, backend outbound.SynthesisBackendPort,
	logger outbound.LoggerPort) inbound.SongGeneratorPort {
	return &songGenerator{
		aggregator:  aggregator,
		extractor:   extractor,
		synthesizer: synthesizer,
		backend:     backend,
		logger:      logger,
	}
}

func (g *songGenerator) GenerateSong(ctx context.Context, params inbound.GenerateSongParams) (domain.SubmissionResult, string, error) {
	lyrics, title, err := g.buildLyrics(ctx, params)
	if err != nil {
		return domain.SubmissionResult{}, "", err
	}

	tags := params.Tags
	if tags == "" {
		tags = defaultSongTags
	}

	result, err := g.backend.SubmitSong(ctx, outbound.SubmitSongRequest{
		Prompt: lyrics,
		Tags:   tags,
		Title:  title,
	})
	if err != nil {
		return domain.SubmissionResult{}, "", err
	}

	g.logger.InfoWithFields("Submitted song generation job", map[string]interface{}{
		"task_ids": len(result.TaskIDs),
		"clip_ids": len(result.ClipIDs),
		"title":    title,
	})

	return result, lyrics, nil
}

func (g *songGenerator) buildLyrics(ctx context.Context, params inbound.GenerateSongParams) (string, string, error) {
	if params.SourceURL != "" {
		content, err := g.extractor.ExtractArticleContent(ctx, params.SourceURL)
		if err != nil {
			return "", "", fmt.Errorf("article extraction failed: %w", err)
		}

		headline := params.Headline
		if headline == "" {
			headline = params.SourceURL
		}

		lyrics, err := g.synthesizer.SongLyricsFromArticle(ctx, headline, content)
		if err != nil {
			return "", "", err
		}
		return lyrics, headline, nil
	}

	stories := g.aggregator.Aggregate(ctx, headlineSongLimit)
	if len(stories) == 0 {
		return "", "", ErrNoHeadlines
	}

	lyrics, err := g.synthesizer.SongLyricsFromHeadlines(ctx, stories)
	if err != nil {
		return "", "", err
	}
	return lyrics, "Today's Headlines", nil
}
