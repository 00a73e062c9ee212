package inbound

import (
	"context"

	"github.com/irademos/ai-news-song/domain"
)

// HeadlineAggregatorPort collects current headlines across all configured
// feed sources. Per-source failures are swallowed: a source that cannot be
// fetched contributes zero stories, it never fails the aggregate call.
type HeadlineAggregatorPort interface {
	Aggregate(ctx context.Context, limitPerSource int) []domain.Story
}
