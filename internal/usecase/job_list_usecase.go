package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Czerw0/JobFinder/internal/domain/job"
	"github.com/Czerw0/JobFinder/internal/repository"

	"go.uber.org/zap"
)

const (
	jobListCacheTTL    = 2 * time.Minute
	jobListCachePrefix = "jobs:list"
	maxListLimit       = 100
)

type JobListParams struct {
	Limit  int
	Offset int
}

type JobListUsecase interface {
	ListJobs(ctx context.Context, p JobListParams) ([]job.Job, error)
	InvalidateCache(ctx context.Context)
}

type JobList struct {
	jobs  repository.JobRepository
	cache ListCache
	log   *zap.Logger
}

func NewJobListUsecase(jobs repository.JobRepository, cache ListCache, log *zap.Logger) *JobList {
	if log == nil {
		log = zap.NewNop()
	}
	return &JobList{jobs: jobs, cache: cache, log: log}
}

// ListJobs returns active jobs newest first. Results are cached briefly; a
// cache outage falls through to the repository.
func (u *JobList) ListJobs(ctx context.Context, p JobListParams) ([]job.Job, error) {
	if p.Limit < 0 || p.Offset < 0 {
		return nil, ErrInvalidInput
	}
	if p.Limit == 0 {
		p.Limit = 20
	}
	if p.Limit > maxListLimit {
		p.Limit = maxListLimit
	}

	key := fmt.Sprintf("%s:%d:%d", jobListCachePrefix, p.Limit, p.Offset)
	if u.cache != nil {
		var cached []job.Job
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	jobs, err := u.jobs.ListRecent(ctx, p.Limit, p.Offset)
	if err != nil {
		return nil, ErrInternal
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, jobs, jobListCacheTTL); err != nil {
			u.log.Debug("job list cache write skipped", zap.Error(err))
		}
	}
	return jobs, nil
}

// InvalidateCache drops the first listing pages after the corpus changes.
// Deeper pages age out on TTL.
func (u *JobList) InvalidateCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	for _, limit := range []int{20, 50, maxListLimit} {
		key := fmt.Sprintf("%s:%d:%d", jobListCachePrefix, limit, 0)
		_ = u.cache.Delete(ctx, key)
	}
}
