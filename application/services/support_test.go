package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/irademos/ai-news-song/application/ports/outbound"
	"github.com/irademos/ai-news-song/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

// fastRetryPolicy keeps backoff out of test runtime.
var fastRetryPolicy = RetryPolicy{
	MaxAttempts:    3,
	InitialBackoff: time.Millisecond,
	CallTimeout:    time.Second,
}

type chatReply struct {
	text string
	err  error
}

// chatModelStub plays back scripted replies in order and records which
// model each call went to.
type chatModelStub struct {
	mu      sync.Mutex
	replies []chatReply
	calls   []string
}

func (s *chatModelStub) Complete(_ context.Context, model string, _ []domain.PromptMessage, _ float64) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, model)
	if len(s.replies) == 0 {
		return "", &outbound.ModelCallError{Model: model, StatusCode: 500, Err: errors.New("no scripted reply left")}
	}
	reply := s.replies[0]
	s.replies = s.replies[1:]
	return reply.text, reply.err
}

func (s *chatModelStub) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

type backendStub struct {
	mu           sync.Mutex
	submitResult domain.SubmissionResult
	submitErrs   []error
	submitted    []outbound.SubmitSongRequest
	taskJobs     map[string][]domain.GenerationJob
	taskErrs     map[string]error
	recent       []domain.GenerationJob
	recentErr    error
}

func (b *backendStub) SubmitSong(_ context.Context, req outbound.SubmitSongRequest) (domain.SubmissionResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	call := len(b.submitted)
	b.submitted = append(b.submitted, req)
	if call < len(b.submitErrs) && b.submitErrs[call] != nil {
		return domain.SubmissionResult{}, b.submitErrs[call]
	}
	return b.submitResult, nil
}

func (b *backendStub) FetchTask(_ context.Context, taskID string) ([]domain.GenerationJob, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err, ok := b.taskErrs[taskID]; ok {
		return nil, err
	}
	return b.taskJobs[taskID], nil
}

func (b *backendStub) ListRecentJobs(context.Context) ([]domain.GenerationJob, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.recent, b.recentErr
}
