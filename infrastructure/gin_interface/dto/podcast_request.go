package dto

import "github.com/irademos/ai-news-song/domain"

// PodcastRequest is the optional body of the podcast endpoints. When
// Stories is empty the planner works from freshly aggregated headlines,
// taking up to LimitPerSource stories from each feed.
type PodcastRequest struct {
	Stories        []domain.Story `json:"stories"`
	LimitPerSource int            `json:"limit_per_source"`
}
