package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/irademos/ai-news-song/domain"
)

type extractorStub struct {
	content string
	err     error
}

func (e extractorStub) ExtractArticleContent(context.Context, string) (string, error) {
	return e.content, e.err
}

type synthesizerStub struct {
	articleErr  error
	deepDiveErr error
}

func (s synthesizerStub) SongLyricsFromHeadlines(_ context.Context, stories []domain.Story) (string, error) {
	return "headline lyrics for " + stories[0].Headline, nil
}

func (s synthesizerStub) SongLyricsFromArticle(_ context.Context, headline, _ string) (string, error) {
	if s.articleErr != nil {
		return "", s.articleErr
	}
	return "article lyrics for " + headline, nil
}

func (s synthesizerStub) DeepDiveScript(_ context.Context, headline, _, _ string) (string, error) {
	if s.deepDiveErr != nil {
		return "", s.deepDiveErr
	}
	return "deep dive on " + headline, nil
}

var planCandidates = []domain.Story{
	{Headline: "Storm batters the coast", Source: "BBC", Link: "https://example.com/storm"},
	{Headline: "Markets rally on surprise rate cut", Source: "NPR", Link: "https://example.com/markets"},
	{Headline: "New comet spotted by amateurs", Source: "The Guardian", Link: "https://example.com/comet"},
	{Headline: "City opens new bridge", Source: "Al Jazeera", Link: "https://example.com/bridge"},
}

func planJSON(headlines ...string) string {
	out := `{"overview_script": "Welcome to the show.", "selections": [`
	for i, h := range headlines {
		if i > 0 {
			out += ","
		}
		out += fmt.Sprintf(`{"headline": %q, "source": "whatever", "reason": " it matters ", "host_script": "up next: %s"}`, h, h)
	}
	return out + "]}"
}

func newPlannerChain(reply string) *ModelChain {
	stub := &chatModelStub{replies: []chatReply{{text: reply}}}
	return NewModelChain([]string{"model-a"}, stub, fastRetryPolicy, nopLogger{})
}

func TestPodcastPlanner_Plan(t *testing.T) {
	chain := newPlannerChain(planJSON(
		"Storm batters the coast",
		"Markets rally after the surprise rate cut",
		"New comet spotted by amateurs",
	))
	planner := NewPodcastPlanner(chain, extractorStub{}, synthesizerStub{}, &backendStub{}, nopLogger{})

	plan, err := planner.Plan(context.Background(), planCandidates)

	require.NoError(t, err)
	require.Equal(t, "Welcome to the show.", plan.OverviewScript)
	require.Len(t, plan.Selections, 3)

	// Selections carry the candidate's exact headline and source, not the
	// model's paraphrase.
	require.Equal(t, "Markets rally on surprise rate cut", plan.Selections[1].Headline)
	require.Equal(t, "NPR", plan.Selections[1].Source)
	require.Equal(t, "it matters", plan.Selections[1].Reason)
	require.NotEmpty(t, plan.Selections[1].HostScript)
}

func TestPodcastPlanner_PlanRejectsUnmatchedHeadlines(t *testing.T) {
	chain := newPlannerChain(planJSON(
		"Storm batters the coast",
		"Completely invented nonsense story",
		"New comet spotted by amateurs",
	))
	planner := NewPodcastPlanner(chain, extractorStub{}, synthesizerStub{}, &backendStub{}, nopLogger{})

	_, err := planner.Plan(context.Background(), planCandidates)

	require.Error(t, err)
	require.Contains(t, err.Error(), "expected 3 validated selections")
}

func TestPodcastPlanner_PlanRejectsEmptyOverview(t *testing.T) {
	chain := newPlannerChain(`{"overview_script": "  ", "selections": []}`)
	planner := NewPodcastPlanner(chain, extractorStub{}, synthesizerStub{}, &backendStub{}, nopLogger{})

	_, err := planner.Plan(context.Background(), planCandidates)

	require.Error(t, err)
}

func TestPodcastPlanner_PlanNeedsCandidates(t *testing.T) {
	planner := NewPodcastPlanner(newPlannerChain("{}"), extractorStub{}, synthesizerStub{}, &backendStub{}, nopLogger{})

	_, err := planner.Plan(context.Background(), nil)

	require.Error(t, err)
}

func TestPodcastPlanner_FullEpisode(t *testing.T) {
	chain := newPlannerChain(planJSON(
		"Storm batters the coast",
		"Markets rally on surprise rate cut",
		"New comet spotted by amateurs",
	))
	backend := &backendStub{submitResult: domain.SubmissionResult{TaskIDs: []string{"task-1"}}}
	planner := NewPodcastPlanner(chain, extractorStub{content: "full article text"}, synthesizerStub{}, backend, nopLogger{})

	plan, err := planner.FullEpisode(context.Background(), planCandidates)

	require.NoError(t, err)
	require.Len(t, plan.Selections, 3)
	require.Len(t, backend.submitted, 3)

	first := plan.Selections[0]
	require.Equal(t, "full article text", first.ArticleContent)
	require.Equal(t, "deep dive on Storm batters the coast", first.DeepDiveScript)
	require.Equal(t, "article lyrics for Storm batters the coast", first.SongPrompt)
	require.Equal(t, []string{"task-1"}, first.SongTaskIDs)
	require.NotEmpty(t, first.Tags)
}

func TestPodcastPlanner_FullEpisodeDropsFailedSubmissions(t *testing.T) {
	chain := newPlannerChain(planJSON(
		"Storm batters the coast",
		"Markets rally on surprise rate cut",
		"New comet spotted by amateurs",
	))
	backend := &backendStub{
		submitResult: domain.SubmissionResult{TaskIDs: []string{"task-1"}},
		submitErrs:   []error{nil, errors.New("upstream down"), nil},
	}
	planner := NewPodcastPlanner(chain, extractorStub{content: "full article text"}, synthesizerStub{}, backend, nopLogger{})

	plan, err := planner.FullEpisode(context.Background(), planCandidates)

	require.NoError(t, err)
	require.Len(t, plan.Selections, 2)
	require.Equal(t, "Storm batters the coast", plan.Selections[0].Headline)
	require.Equal(t, "New comet spotted by amateurs", plan.Selections[1].Headline)
}

func TestPodcastPlanner_FullEpisodeDegradesWithoutArticle(t *testing.T) {
	chain := newPlannerChain(planJSON(
		"Storm batters the coast",
		"Markets rally on surprise rate cut",
		"New comet spotted by amateurs",
	))
	backend := &backendStub{submitResult: domain.SubmissionResult{ClipIDs: []string{"clip-1"}}}
	planner := NewPodcastPlanner(chain, extractorStub{err: errors.New("fetch failed")}, synthesizerStub{}, backend, nopLogger{})

	plan, err := planner.FullEpisode(context.Background(), planCandidates)

	require.NoError(t, err)
	require.Len(t, plan.Selections, 3)

	// With no article the deep dive reuses the host script and the song
	// prompt falls back to headline lyrics.
	first := plan.Selections[0]
	require.Empty(t, first.ArticleContent)
	require.Equal(t, first.HostScript, first.DeepDiveScript)
	require.Equal(t, "headline lyrics for Storm batters the coast", first.SongPrompt)
}
