package adapters

import (
	"context"
	"html"
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/config"
	"github.com/irademos/ai-news-song/domain"
)

var (
	tagRegexp        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegexp = regexp.MustCompile(`\s+`)
)

type feedFetcher struct {
	parser    *gofeed.Parser
	userAgent string
	logger    outbound.LoggerPort
}

// NewFeedFetcher builds the gofeed-backed fetcher. gofeed handles RSS and
// Atom dialects, CDATA-wrapped values and entity decoding.
func NewFeedFetcher(feedConfig *config.FeedConfig, logger outbound.LoggerPort) outbound.FeedFetcherPort {
	parser := gofeed.NewParser()
	parser.UserAgent = feedConfig.UserAgent

	return &feedFetcher{
		parser:    parser,
		userAgent: feedConfig.UserAgent,
		logger:    logger,
	}
}

func (f *feedFetcher) FetchStories(ctx context.Context, source config.FeedSource, limit int) ([]domain.Story, error) {
	feed, err := f.parser.ParseURLWithContext(source.URL, ctx)
	if err != nil {
		return nil, err
	}

	stories := make([]domain.Story, 0, limit)
	for _, item := range feed.Items {
		if len(stories) >= limit {
			break
		}
		headline := CleanFeedText(item.Title)
		if headline == "" {
			continue
		}
		stories = append(stories, domain.Story{
			Headline: headline,
			Summary:  CleanFeedText(item.Description),
			Source:   source.Name,
			Link:     strings.TrimSpace(item.Link),
		})
	}

	f.logger.DebugWithFields("Fetched feed", map[string]interface{}{
		"source":  source.Name,
		"items":   len(feed.Items),
		"stories": len(stories),
	})

	return stories, nil
}

// CleanFeedText strips markup from a feed value, decodes HTML entities and
// collapses runs of whitespace into single spaces.
func CleanFeedText(raw string) string {
	text := tagRegexp.ReplaceAllString(raw, " ")
	text = html.UnescapeString(text)
	text = whitespaceRegexp.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
