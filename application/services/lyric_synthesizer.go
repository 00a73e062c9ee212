package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
)

const (
	// SongLyricsMaxChars caps lyrics sent to the synthesis backend.
	SongLyricsMaxChars = 3000

	ellipsis = "…"

	lyricsSystemPrompt = "You are a songwriter who turns news into catchy, radio-friendly song lyrics. " +
		"Write verses and a chorus. Keep it punchy, factual in spirit, and under 3000 characters. " +
		"Return lyrics only, no commentary."

	deepDiveSystemPrompt = "You are a podcast host writing a deep-dive segment on one news story. " +
		"Write a conversational narration of roughly 130 to 230 words. " +
		"Return the narration only, no headings or stage directions."
)

type lyricSynthesizer struct {
	chain  *ModelChain
	logger outbound.LoggerPort
}

func NewLyricSynthesizer(chain *ModelChain, logger outbound.LoggerPort) inbound.LyricSynthesizerPort {
	return &lyricSynthesizer{
		chain:  chain,
		logger: logger,
	}
}

func (l *lyricSynthesizer) SongLyricsFromHeadlines(ctx context.Context, stories []domain.Story) (string, error) {
	if len(stories) == 0 {
		return "", fmt.Errorf("no stories to write lyrics from")
	}

	messages := []domain.PromptMessage{
		{Role: "system", Content: lyricsSystemPrompt},
		{Role: "user", Content: "Write one song covering today's headlines:\n\n" + headlineDigest(stories)},
	}

	text, err := l.chain.TryInOrder(ctx, messages, 0.8)
	if err != nil {
		// Degrade to a deterministic digest so the synthesis backend can
		// still be given something to sing.
		l.logger.Error(err, "Lyric generation exhausted all models, falling back to headline digest")
		text = headlineDigest(stories)
	}

	return EnforceLimit(text, SongLyricsMaxChars), nil
}

func (l *lyricSynthesizer) SongLyricsFromArticle(ctx context.Context, headline, content string) (string, error) {
	messages := []domain.PromptMessage{
		{Role: "system", Content: lyricsSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Write one song about this article.\n\nHeadline: %s\n\nArticle:\n%s", headline, content)},
	}

	text, err := l.chain.TryInOrder(ctx, messages, 0.8)
	if err != nil {
		return "", err
	}

	return EnforceLimit(text, SongLyricsMaxChars), nil
}

func (l *lyricSynthesizer) DeepDiveScript(ctx context.Context, headline, source, content string) (string, error) {
	messages := []domain.PromptMessage{
		{Role: "system", Content: deepDiveSystemPrompt},
		{Role: "user", Content: fmt.Sprintf("Story from %s: %s\n\nFull article:\n%s", source, headline, content)},
	}

	text, err := l.chain.TryInOrder(ctx, messages, 0.7)
	if err != nil {
		return "", err
	}

	return EnforceLimit(text, SongLyricsMaxChars), nil
}

// headlineDigest is the non-LLM fallback: formatted headlines joined into
// one block of text. Deterministic for a given story list.
func headlineDigest(stories []domain.Story) string {
	var builder strings.Builder
	for _, story := range stories {
		builder.WriteString(fmt.Sprintf("%s (%s)\n", story.Headline, story.Source))
	}
	return strings.TrimSpace(builder.String())
}

// EnforceLimit trims trailing whitespace and caps the text at limit
// characters. Truncated text is cut to limit-1 characters, re-trimmed, and
// finished with a single ellipsis so readers can tell it was cut.
func EnforceLimit(text string, limit int) string {
	trimmed := strings.TrimRight(text, " \t\r\n")
	if limit <= 0 || utf8.RuneCountInString(trimmed) <= limit {
		return trimmed
	}

	runes := []rune(trimmed)
	cut := strings.TrimRight(string(runes[:limit-1]), " \t\r\n")
	return cut + ellipsis
}
