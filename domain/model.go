package domain

// JobState is the reconciled lifecycle state of a synthesis job. Every job
// surfaced to a client carries exactly one of these values.
type JobState string

const (
	JobPending   JobState = "pending"
	JobSucceeded JobState = "succeeded"
	JobFailed    JobState = "failed"
	JobAuthError JobState = "auth_error"
)

// Story is one news item as produced by the feed aggregator. Downstream
// components treat it as read-only.
type Story struct {
	Headline string `json:"headline"`
	Summary  string `json:"summary,omitempty"`
	Source   string `json:"source"`
	Link     string `json:"link,omitempty"`
}

// Key returns the deduplication key for a story: the link when present,
// otherwise (source, headline).
func (s Story) Key() string {
	if s.Link != "" {
		return s.Link
	}
	return s.Source + "|" + s.Headline
}

// PromptMessage is one role-tagged message sent to a chat model.
type PromptMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerationJob is the canonical record for one synthesis job. It is never
// mutated locally; each poll re-derives it from the upstream response.
type GenerationJob struct {
	ID        string   `json:"id"`
	State     JobState `json:"state"`
	Title     string   `json:"title,omitempty"`
	Tags      string   `json:"tags,omitempty"`
	Lyrics    string   `json:"lyrics,omitempty"`
	ImageURL  string   `json:"image_url,omitempty"`
	VideoURL  string   `json:"video_url,omitempty"`
	AudioURL  string   `json:"audio_url,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
	Duration  float64  `json:"duration,omitempty"`
}

// SubmissionResult is the normalized outcome of submitting a generation job.
// The upstream service is inconsistent about which ID namespace it returns,
// so both sets are kept. RawResponse is populated only when neither kind of
// ID could be found, for caller-side diagnostics.
type SubmissionResult struct {
	TaskIDs     []string `json:"task_ids"`
	ClipIDs     []string `json:"clip_ids"`
	RawResponse string   `json:"raw_response,omitempty"`
}

// HasIDs reports whether the submission yielded at least one usable job ID.
func (r SubmissionResult) HasIDs() bool {
	return len(r.TaskIDs) > 0 || len(r.ClipIDs) > 0
}

// PodcastSelection is one story chosen for an episode. Plan-phase responses
// fill only the fields up to HostScript; the full phase fills the rest.
type PodcastSelection struct {
	Headline       string   `json:"headline"`
	Source         string   `json:"source"`
	Reason         string   `json:"reason"`
	HostScript     string   `json:"host_script"`
	DeepDiveScript string   `json:"deep_dive_script,omitempty"`
	ArticleContent string   `json:"article_content,omitempty"`
	SongPrompt     string   `json:"song_prompt,omitempty"`
	SongTaskIDs    []string `json:"song_task_ids,omitempty"`
	SongClipIDs    []string `json:"song_clip_ids,omitempty"`
	Tags           string   `json:"tags,omitempty"`
}

// PodcastPlan is a validated episode plan: an overview script plus exactly
// three selections.
type PodcastPlan struct {
	OverviewScript string             `json:"overview_script"`
	Selections     []PodcastSelection `json:"selections"`
}
