package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
)

type jobStatusService struct {
	backend    outbound.SynthesisBackendPort
	workerPool outbound.TaskDispatcher
	logger     outbound.LoggerPort
}

// NewJobStatusService reconciles upstream job state into the stable
// polling contract described by JobStatusPort.
func NewJobStatusService(backend outbound.SynthesisBackendPort, workerPool outbound.TaskDispatcher,
	logger outbound.LoggerPort) inbound.JobStatusPort {
	return &jobStatusService{
		backend:    backend,
		workerPool: workerPool,
		logger:     logger,
	}
}

func (s *jobStatusService) CheckJobs(ctx context.Context, taskIDs, clipIDs []string, playback bool) ([]domain.GenerationJob, error) {
	var jobs []domain.GenerationJob
	var err error

	switch {
	case len(taskIDs) > 0:
		jobs, err = s.checkTasks(ctx, taskIDs)
	case len(clipIDs) > 0:
		jobs, err = s.checkClips(ctx, clipIDs)
	default:
		return nil, fmt.Errorf("no job identifiers supplied")
	}
	if err != nil {
		return nil, err
	}

	if playback {
		for i := range jobs {
			jobs[i].AudioURL = domain.NormalizeSunoAudioUrl(jobs[i].AudioURL, true)
		}
	}

	return jobs, nil
}

type taskResult struct {
	taskID string
	jobs   []domain.GenerationJob
	err    error
}

// checkTasks queries each task concurrently. An auth failure outranks any
// completed result and fails the whole call; a not-ready task surfaces as
// a pending record; any other per-task error is dropped from the batch.
func (s *jobStatusService) checkTasks(ctx context.Context, taskIDs []string) ([]domain.GenerationJob, error) {
	results := make([]taskResult, len(taskIDs))

	var wg sync.WaitGroup
	wg.Add(len(taskIDs))
	for i, taskID := range taskIDs {
		i, taskID := i, taskID
		if err := s.workerPool.Submit(func() {
			defer wg.Done()
			jobs, err := s.backend.FetchTask(ctx, taskID)
			results[i] = taskResult{taskID: taskID, jobs: jobs, err: err}
		}); err != nil {
			results[i] = taskResult{taskID: taskID, err: err}
			wg.Done()
		}
	}
	wg.Wait()

	// Auth errors take priority over everything else: no partial results.
	for _, result := range results {
		if result.err != nil && errors.Is(result.err, outbound.ErrSynthesisAuth) {
			return nil, result.err
		}
	}

	var jobs []domain.GenerationJob
	for _, result := range results {
		if result.err != nil {
			var notReady *outbound.JobNotReadyError
			if errors.As(result.err, &notReady) {
				jobs = append(jobs, domain.GenerationJob{
					ID:    result.taskID,
					State: domain.JobPending,
				})
				continue
			}
			s.logger.WarnWithFields("Dropping task from status batch", map[string]interface{}{
				"task_id": result.taskID,
				"error":   result.err.Error(),
			})
			continue
		}
		jobs = append(jobs, result.jobs...)
	}

	return jobs, nil
}

// checkClips has no per-clip endpoint to lean on: it lists the most recent
// jobs upstream and filters locally by clip ID membership.
func (s *jobStatusService) checkClips(ctx context.Context, clipIDs []string) ([]domain.GenerationJob, error) {
	recent, err := s.backend.ListRecentJobs(ctx)
	if err != nil {
		return nil, err
	}

	wanted := make(map[string]struct{}, len(clipIDs))
	for _, id := range clipIDs {
		wanted[id] = struct{}{}
	}

	var jobs []domain.GenerationJob
	for _, job := range recent {
		if _, ok := wanted[job.ID]; ok {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}
