package inbound

import (
	"context"

	"github.com/irademos/ai-news-song/domain"
)

// JobStatusPort reconciles upstream job state into the stable polling
// contract. Task IDs are polled individually; clip IDs are resolved by
// listing recent jobs upstream and filtering locally.
type JobStatusPort interface {
	CheckJobs(ctx context.Context, taskIDs, clipIDs []string, playback bool) ([]domain.GenerationJob, error)
}
