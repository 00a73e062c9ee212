package inbound

import (
	"context"

	"github.com/irademos/ai-news-song/domain"
)

// GenerateSongParams describes one song request. When SourceURL is set the
// lyrics are derived from that article; otherwise from current headlines.
type GenerateSongParams struct {
	SourceURL string
	Headline  string
	Source    string
	Tags      string
}

// SongGeneratorPort runs the lyrics-then-submit pipeline for one song.
type SongGeneratorPort interface {
	GenerateSong(ctx context.Context, params GenerateSongParams) (domain.SubmissionResult, string, error)
}
