package outbound

import (
	"context"

	"github.com/irademos/ai-news-song/config"
	"github.com/irademos/ai-news-song/domain"
)

// FeedFetcherPort fetches one syndication feed and returns up to limit
// stories with non-empty headlines, in document order.
type FeedFetcherPort interface {
	FetchStories(ctx context.Context, source config.FeedSource, limit int) ([]domain.Story, error)
}
