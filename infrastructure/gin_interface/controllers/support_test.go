package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/irademos/ai-news-song/application/ports/inbound"
	"github.com/irademos/ai-news-song/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

type aggregatorStub struct {
	stories []domain.Story
}

func (a aggregatorStub) Aggregate(context.Context, int) []domain.Story {
	return a.stories
}

type songGeneratorStub struct {
	result domain.SubmissionResult
	lyrics string
	err    error
	params inbound.GenerateSongParams
}

func (s *songGeneratorStub) GenerateSong(_ context.Context, params inbound.GenerateSongParams) (domain.SubmissionResult, string, error) {
	s.params = params
	if s.err != nil {
		return domain.SubmissionResult{}, "", s.err
	}
	return s.result, s.lyrics, nil
}

type jobStatusStub struct {
	jobs     []domain.GenerationJob
	err      error
	taskIDs  []string
	clipIDs  []string
	playback bool
}

func (j *jobStatusStub) CheckJobs(_ context.Context, taskIDs, clipIDs []string, playback bool) ([]domain.GenerationJob, error) {
	j.taskIDs = taskIDs
	j.clipIDs = clipIDs
	j.playback = playback
	return j.jobs, j.err
}

type plannerStub struct {
	plan       domain.PodcastPlan
	err        error
	candidates []domain.Story
	full       bool
}

func (p *plannerStub) Plan(_ context.Context, candidates []domain.Story) (domain.PodcastPlan, error) {
	p.candidates = candidates
	return p.plan, p.err
}

func (p *plannerStub) FullEpisode(_ context.Context, candidates []domain.Story) (domain.PodcastPlan, error) {
	p.candidates = candidates
	p.full = true
	return p.plan, p.err
}
