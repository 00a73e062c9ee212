package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/config"
	"github.com/irademos/ai-news-song/domain"
)

// sunoClip is the canonical decoded form of one job descriptor, whichever
// shape the upstream wrapped it in.
type sunoClip struct {
	TaskID    string  `json:"task_id"`
	ID        string  `json:"id"`
	ClipID    string  `json:"clip_id"`
	SongID    string  `json:"song_id"`
	Status    string  `json:"status"`
	Title     string  `json:"title"`
	Tags      string  `json:"tags"`
	Lyric     string  `json:"lyric"`
	AudioURL  string  `json:"audio_url"`
	ImageURL  string  `json:"image_url"`
	VideoURL  string  `json:"video_url"`
	CreatedAt string  `json:"created_at"`
	Duration  float64 `json:"duration"`
	Metadata  struct {
		Tags   string `json:"tags"`
		Prompt string `json:"prompt"`
	} `json:"metadata"`
}

type generatePayload struct {
	Prompt           string `json:"prompt"`
	Tags             string `json:"tags,omitempty"`
	Title            string `json:"title,omitempty"`
	MakeInstrumental bool   `json:"make_instrumental"`
	Mv               string `json:"mv"`
	WaitAudio        bool   `json:"wait_audio"`
}

type sunoClient struct {
	fetcher    ContentFetcher
	sunoConfig *config.SunoConfig
	logger     outbound.LoggerPort
}

func NewSunoClient(fetcher ContentFetcher, sunoConfig *config.SunoConfig, logger outbound.LoggerPort) outbound.SynthesisBackendPort {
	return &sunoClient{
		fetcher:    fetcher,
		sunoConfig: sunoConfig,
		logger:     logger,
	}
}

func (s *sunoClient) SubmitSong(ctx context.Context, req outbound.SubmitSongRequest) (domain.SubmissionResult, error) {
	payload, err := json.Marshal(generatePayload{
		Prompt:           req.Prompt,
		Tags:             req.Tags,
		Title:            req.Title,
		MakeInstrumental: req.Instrumental,
		Mv:               s.sunoConfig.ModelVersion,
	})
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	body, err := s.call(ctx, http.MethodPost, s.sunoConfig.ApiUrl+"/api/custom_generate", payload, "")
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	clips, err := decodeClipPayload(body)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to decode submission response", map[string]interface{}{
			"body": truncateForLog(body),
		})
		return domain.SubmissionResult{}, err
	}

	result := collectIDs(clips)
	if !result.HasIDs() {
		// No recognizable identifiers anywhere in the payload. Hand the
		// raw body to the caller instead of guessing.
		result.RawResponse = string(body)
		s.logger.WarnWithFields("Submission response contained no job IDs", map[string]interface{}{
			"body": truncateForLog(body),
		})
	}

	return result, nil
}

func (s *sunoClient) FetchTask(ctx context.Context, taskID string) ([]domain.GenerationJob, error) {
	body, err := s.call(ctx, http.MethodGet, s.sunoConfig.ApiUrl+"/api/get?ids="+url.QueryEscape(taskID), nil, taskID)
	if err != nil {
		return nil, err
	}

	clips, err := decodeClipPayload(body)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.GenerationJob, 0, len(clips))
	for _, clip := range clips {
		jobs = append(jobs, clip.toJob())
	}
	return jobs, nil
}

func (s *sunoClient) ListRecentJobs(ctx context.Context) ([]domain.GenerationJob, error) {
	body, err := s.call(ctx, http.MethodGet, s.sunoConfig.ApiUrl+"/api/get", nil, "")
	if err != nil {
		return nil, err
	}

	clips, err := decodeClipPayload(body)
	if err != nil {
		return nil, err
	}

	jobs := make([]domain.GenerationJob, 0, len(clips))
	for _, clip := range clips {
		jobs = append(jobs, clip.toJob())
	}
	return jobs, nil
}

// call executes one backend request and classifies the status: 401/403 is
// an auth failure, 400/404/422 on a per-job query means the job has not
// materialized yet, anything else non-2xx is a plain upstream error.
func (s *sunoClient) call(ctx context.Context, method, callURL string, payload []byte, jobID string) ([]byte, error) {
	var reqBody *bytes.Buffer
	if payload != nil {
		reqBody = bytes.NewBuffer(payload)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, callURL, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+s.sunoConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	body, status, err := s.fetcher.FetchContent(req)
	if err != nil {
		return nil, err
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return nil, fmt.Errorf("%w (status %d)", outbound.ErrSynthesisAuth, status)
	case jobID != "" && (status == http.StatusBadRequest || status == http.StatusNotFound || status == http.StatusUnprocessableEntity):
		return nil, &outbound.JobNotReadyError{ID: jobID, StatusCode: status}
	case status < 200 || status > 299:
		return nil, fmt.Errorf("synthesis backend returned status %d: %s", status, truncateForLog(body))
	}

	return body, nil
}

// decodeClipPayload normalizes the three response shapes the backend is
// known to produce: a top-level array, an object with the payload under
// "data", or a single bare object.
func decodeClipPayload(body []byte) ([]sunoClip, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var clips []sunoClip
		if err := json.Unmarshal(trimmed, &clips); err != nil {
			return nil, err
		}
		return clips, nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return nil, err
	}
	if len(envelope.Data) > 0 && !bytes.Equal(bytes.TrimSpace(envelope.Data), []byte("null")) {
		return decodeClipPayload(envelope.Data)
	}

	var clip sunoClip
	if err := json.Unmarshal(trimmed, &clip); err != nil {
		return nil, err
	}
	return []sunoClip{clip}, nil
}

// collectIDs splits every identifier found in the payload into the two ID
// namespaces, deduplicated in first-seen order. A bare "id" counts as a
// clip ID only when the item carries neither clip_id nor song_id.
func collectIDs(clips []sunoClip) domain.SubmissionResult {
	var result domain.SubmissionResult
	seenTasks := make(map[string]struct{})
	seenClips := make(map[string]struct{})

	appendClip := func(id string) {
		if id == "" {
			return
		}
		if _, ok := seenClips[id]; ok {
			return
		}
		seenClips[id] = struct{}{}
		result.ClipIDs = append(result.ClipIDs, id)
	}

	for _, clip := range clips {
		if clip.TaskID != "" {
			if _, ok := seenTasks[clip.TaskID]; !ok {
				seenTasks[clip.TaskID] = struct{}{}
				result.TaskIDs = append(result.TaskIDs, clip.TaskID)
			}
		}
		appendClip(clip.ClipID)
		appendClip(clip.SongID)
		if clip.ClipID == "" && clip.SongID == "" {
			appendClip(clip.ID)
		}
	}

	return result
}

func (c sunoClip) toJob() domain.GenerationJob {
	id := c.ClipID
	if id == "" {
		id = c.SongID
	}
	if id == "" {
		id = c.ID
	}
	if id == "" {
		id = c.TaskID
	}

	tags := c.Tags
	if tags == "" {
		tags = c.Metadata.Tags
	}
	lyrics := c.Lyric
	if lyrics == "" {
		lyrics = c.Metadata.Prompt
	}

	return domain.GenerationJob{
		ID:        id,
		State:     mapClipState(c.Status),
		Title:     c.Title,
		Tags:      tags,
		Lyrics:    lyrics,
		ImageURL:  c.ImageURL,
		VideoURL:  c.VideoURL,
		AudioURL:  domain.NormalizeSunoAudioUrl(c.AudioURL, false),
		CreatedAt: c.CreatedAt,
		Duration:  c.Duration,
	}
}

func mapClipState(status string) domain.JobState {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "complete", "completed", "succeeded", "success":
		return domain.JobSucceeded
	case "error", "failed":
		return domain.JobFailed
	default:
		return domain.JobPending
	}
}
