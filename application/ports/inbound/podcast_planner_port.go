package inbound

import (
	"context"

	"github.com/irademos/ai-news-song/domain"
)

// PodcastPlannerPort builds a three-story episode from candidate stories.
// Plan returns only model-authored metadata and scripts; FullEpisode
// additionally fetches articles, writes deep-dive narration, and submits
// one song job per story.
type PodcastPlannerPort interface {
	Plan(ctx context.Context, candidates []domain.Story) (domain.PodcastPlan, error)
	FullEpisode(ctx context.Context, candidates []domain.Story) (domain.PodcastPlan, error)
}
