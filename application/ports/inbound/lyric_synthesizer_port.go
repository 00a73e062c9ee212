package inbound

import (
	"context"

	"github.com/irademos/ai-news-song/domain"
)

// LyricSynthesizerPort produces bounded-length generated text by driving
// the model fallback chain.
type LyricSynthesizerPort interface {
	// SongLyricsFromHeadlines turns current headlines into song lyrics.
	// When every model is exhausted it degrades to a deterministic
	// headline digest instead of failing, so submission can proceed.
	SongLyricsFromHeadlines(ctx context.Context, stories []domain.Story) (string, error)

	// SongLyricsFromArticle summarizes article text into song lyrics.
	// Fails when every model is exhausted.
	SongLyricsFromArticle(ctx context.Context, headline, content string) (string, error)

	// DeepDiveScript writes a narration segment for one podcast story.
	DeepDiveScript(ctx context.Context, headline, source, content string) (string, error)
}
