package usecase

import (
	"context"
	"time"

	"github.com/Czerw0/JobFinder/internal/repository"

	"go.uber.org/zap"
)

// Lifecycle retires listings the scraper has stopped seeing: first to
// archived (out of the matchable corpus, match_score untouched), later
// deleted for good.
type Lifecycle struct {
	jobs         repository.JobRepository
	archiveAfter time.Duration
	purgeAfter   time.Duration
	log          *zap.Logger
	now          func() time.Time
}

func NewLifecycle(jobs repository.JobRepository, archiveAfter, purgeAfter time.Duration, log *zap.Logger) *Lifecycle {
	if log == nil {
		log = zap.NewNop()
	}
	if archiveAfter <= 0 {
		archiveAfter = 30 * 24 * time.Hour
	}
	if purgeAfter <= 0 {
		purgeAfter = 35 * 24 * time.Hour
	}
	return &Lifecycle{
		jobs:         jobs,
		archiveAfter: archiveAfter,
		purgeAfter:   purgeAfter,
		log:          log,
		now:          time.Now,
	}
}

// ArchiveStale marks active jobs unseen past the archive window as archived.
func (l *Lifecycle) ArchiveStale(ctx context.Context) (int64, error) {
	threshold := l.now().UTC().Add(-l.archiveAfter)
	n, err := l.jobs.ArchiveStale(ctx, threshold)
	if err != nil {
		return 0, ErrInternal
	}
	if n > 0 {
		l.log.Info("archived stale jobs",
			zap.Int64("count", n),
			zap.Time("threshold", threshold),
		)
	}
	return n, nil
}

// PurgeArchived deletes archived jobs unseen past the purge window.
func (l *Lifecycle) PurgeArchived(ctx context.Context) (int64, error) {
	threshold := l.now().UTC().Add(-l.purgeAfter)
	n, err := l.jobs.PurgeArchived(ctx, threshold)
	if err != nil {
		return 0, ErrInternal
	}
	if n > 0 {
		l.log.Info("purged archived jobs",
			zap.Int64("count", n),
			zap.Time("threshold", threshold),
		)
	}
	return n, nil
}
