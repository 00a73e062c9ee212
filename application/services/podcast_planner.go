package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
)

const (
	podcastSelectionCount = 3

	podcastSongTags = "news pop, storytelling, radio"

	podcastSystemPrompt = `You are the producer of a daily news podcast. From the numbered story digest, pick the 3 stories that make the best episode and script it.

Respond with pure JSON only, no prose, matching exactly:
{
  "overview_script": "spoken intro covering the whole episode",
  "selections": [
    {
      "headline": "the chosen story's headline, copied from the digest",
      "source": "the story's source",
      "reason": "why this story made the cut",
      "host_script": "what the host says to introduce this story"
    }
  ]
}
The selections array must contain exactly 3 entries.`
)

// planResponse is the JSON shape the model is asked to produce in the
// planning call.
type planResponse struct {
	OverviewScript string `json:"overview_script"`
	Selections     []struct {
		Headline   string `json:"headline"`
		Source     string `json:"source"`
		Reason     string `json:"reason"`
		HostScript string `json:"host_script"`
	} `json:"selections"`
}

type podcastPlanner struct {
	chain       *ModelChain
	extractor   outbound.ArticleExtractorPort
	synthesizer inbound.LyricSynthesizerPort
	backend     outbound.SynthesisBackendPort
	logger      outbound.LoggerPort
}

func NewPodcastPlanner(chain *ModelChain, extractor outbound.ArticleExtractorPort,
	synthesizer inbound.LyricSynthesizerPort, backend outbound.SynthesisBackendPort,
	logger outbound.LoggerPort) inbound.PodcastPlannerPort {
	return &podcastPlanner{
		chain:       chain,
		extractor:   extractor,
		synthesizer: synthesizer,
		backend:     backend,
		logger:      logger,
	}
}

func (p *podcastPlanner) Plan(ctx context.Context, candidates []domain.Story) (domain.PodcastPlan, error) {
	plan, _, err := p.buildPlan(ctx, candidates)
	return plan, err
}

// FullEpisode runs the plan phase and then, per selected story, fetches
// the article, writes the deep-dive narration, and submits a song job.
// Per-story failures degrade or drop that story; they never fail the
// whole episode.
func (p *podcastPlanner) FullEpisode(ctx context.Context, candidates []domain.Story) (domain.PodcastPlan, error) {
	plan, matched, err := p.buildPlan(ctx, candidates)
	if err != nil {
		return domain.PodcastPlan{}, err
	}

	final := make([]domain.PodcastSelection, 0, len(plan.Selections))
	for i, selection := range plan.Selections {
		story := matched[i]

		content := p.fetchArticle(ctx, story)
		selection.ArticleContent = content
		selection.DeepDiveScript = p.deepDive(ctx, selection, content)

		lyrics := p.songLyrics(ctx, story, selection.Headline, content)
		selection.SongPrompt = lyrics
		selection.Tags = podcastSongTags

		result, err := p.backend.SubmitSong(ctx, outbound.SubmitSongRequest{
			Prompt: lyrics,
			Tags:   podcastSongTags,
			Title:  selection.Headline,
		})
		if err != nil || !result.HasIDs() {
			p.logger.WarnWithFields("Dropping story, song submission failed", map[string]interface{}{
				"headline": selection.Headline,
				"error":    errString(err),
			})
			continue
		}

		selection.SongTaskIDs = result.TaskIDs
		selection.SongClipIDs = result.ClipIDs
		final = append(final, selection)
	}

	plan.Selections = final
	return plan, nil
}

// buildPlan runs the planning model call and validates its output into a
// PodcastPlan, returning the matched candidate story per selection.
func (p *podcastPlanner) buildPlan(ctx context.Context, candidates []domain.Story) (domain.PodcastPlan, []domain.Story, error) {
	if len(candidates) == 0 {
		return domain.PodcastPlan{}, nil, fmt.Errorf("no candidate stories to plan from")
	}

	messages := []domain.PromptMessage{
		{Role: "system", Content: podcastSystemPrompt},
		{Role: "user", Content: "Today's candidate stories:\n\n" + storyDigest(candidates)},
	}

	raw, err := p.chain.TryInOrder(ctx, messages, 0.6)
	if err != nil {
		return domain.PodcastPlan{}, nil, fmt.Errorf("podcast planning failed: %w", err)
	}

	var parsed planResponse
	if err := DecodeModelJSON(raw, &parsed); err != nil {
		return domain.PodcastPlan{}, nil, fmt.Errorf("model returned no usable JSON: %w", err)
	}

	overview := strings.TrimSpace(parsed.OverviewScript)
	if overview == "" {
		return domain.PodcastPlan{}, nil, fmt.Errorf("model returned an empty overview script")
	}

	var selections []domain.PodcastSelection
	var matched []domain.Story
	for _, raw := range parsed.Selections {
		if len(selections) == podcastSelectionCount {
			break
		}

		index, score := BestHeadlineMatch(raw.Headline, candidates)
		if index < 0 || score < headlineMatchThreshold {
			p.logger.WarnWithFields("Dropping selection, headline matched no candidate", map[string]interface{}{
				"headline": raw.Headline,
				"score":    score,
			})
			continue
		}

		story := candidates[index]
		selections = append(selections, domain.PodcastSelection{
			Headline:   story.Headline,
			Source:     story.Source,
			Reason:     strings.TrimSpace(raw.Reason),
			HostScript: strings.TrimSpace(raw.HostScript),
		})
		matched = append(matched, story)
	}

	if len(selections) != podcastSelectionCount {
		return domain.PodcastPlan{}, nil, fmt.Errorf("expected %d validated selections, got %d", podcastSelectionCount, len(selections))
	}

	return domain.PodcastPlan{
		OverviewScript: overview,
		Selections:     selections,
	}, matched, nil
}

// fetchArticle pulls the full article for a story. Any failure degrades
// to empty content; the episode goes on without it.
func (p *podcastPlanner) fetchArticle(ctx context.Context, story domain.Story) string {
	if story.Link == "" {
		return ""
	}

	content, err := p.extractor.ExtractArticleContent(ctx, story.Link)
	if err != nil {
		p.logger.WarnWithFields("Article fetch failed, continuing without it", map[string]interface{}{
			"headline": story.Headline,
			"link":     story.Link,
			"error":    err.Error(),
		})
		return ""
	}
	return content
}

// deepDive writes the narration segment, reusing the host script whenever
// the article or the model is unavailable.
func (p *podcastPlanner) deepDive(ctx context.Context, selection domain.PodcastSelection, content string) string {
	if content == "" {
		return selection.HostScript
	}

	script, err := p.synthesizer.DeepDiveScript(ctx, selection.Headline, selection.Source, content)
	if err != nil {
		p.logger.WarnWithFields("Deep-dive generation failed, reusing host script", map[string]interface{}{
			"headline": selection.Headline,
			"error":    err.Error(),
		})
		return selection.HostScript
	}
	return script
}

// songLyrics derives the song prompt for one story: summarized from the
// article when available, otherwise from the headline digest fallback.
func (p *podcastPlanner) songLyrics(ctx context.Context, story domain.Story, headline, content string) string {
	if content != "" {
		lyrics, err := p.synthesizer.SongLyricsFromArticle(ctx, headline, content)
		if err == nil {
			return lyrics
		}
		p.logger.WarnWithFields("Article lyrics failed, falling back to headline", map[string]interface{}{
			"headline": headline,
			"error":    err.Error(),
		})
	}

	lyrics, err := p.synthesizer.SongLyricsFromHeadlines(ctx, []domain.Story{story})
	if err != nil {
		return headline
	}
	return lyrics
}

// storyDigest formats the candidate list the way the planning prompt
// expects: numbered, with the source in brackets and an optional summary
// line.
func storyDigest(stories []domain.Story) string {
	var builder strings.Builder
	for i, story := range stories {
		builder.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, story.Source, story.Headline))
		if story.Summary != "" {
			builder.WriteString(fmt.Sprintf("   Summary: %s\n", story.Summary))
		}
	}
	return strings.TrimSpace(builder.String())
}

func errString(err error) string {
	if err == nil {
		return "no job IDs in response"
	}
	return err.Error()
}
