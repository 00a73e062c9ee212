package outbound

import (
	"context"
	"errors"
	"fmt"

	"github.com/irademos/ai-news-song/domain"
)

// ErrSynthesisAuth marks a 401/403 from the synthesis backend. It is
// terminal: callers must not mistake it for a job that has not
// materialized yet.
var ErrSynthesisAuth = errors.New("synthesis backend rejected credentials")

// JobNotReadyError marks a 400/404/422 when polling a single job: the
// upstream most likely has not materialized the job yet, so the caller
// should report it as pending rather than failed.
type JobNotReadyError struct {
	ID         string
	StatusCode int
}

func (e *JobNotReadyError) Error() string {
	return fmt.Sprintf("job %s not ready yet (status %d)", e.ID, e.StatusCode)
}

// SubmitSongRequest is the create-job payload for the synthesis backend.
type SubmitSongRequest struct {
	Prompt       string
	Tags         string
	Title        string
	Instrumental bool
}

// SynthesisBackendPort talks to the external audio-synthesis service.
type SynthesisBackendPort interface {
	// SubmitSong creates a generation job and normalizes the variably
	// shaped response into deduplicated task and clip ID sets.
	SubmitSong(ctx context.Context, req SubmitSongRequest) (domain.SubmissionResult, error)

	// FetchTask queries one task ID. Returns ErrSynthesisAuth on 401/403
	// and *JobNotReadyError on 400/404/422.
	FetchTask(ctx context.Context, taskID string) ([]domain.GenerationJob, error)

	// ListRecentJobs lists the most recent jobs known upstream, used to
	// resolve clip IDs when no task IDs are available.
	ListRecentJobs(ctx context.Context) ([]domain.GenerationJob, error)
}
