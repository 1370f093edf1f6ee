package usecase

import (
	"context"
	"errors"
	"math"

	"github.com/Czerw0/JobFinder/internal/domain/cv"
	"github.com/Czerw0/JobFinder/internal/domain/job"
	"github.com/Czerw0/JobFinder/internal/matching"
	"github.com/Czerw0/JobFinder/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultTopN is how many matches a caller gets when it does not say.
const DefaultTopN = 5

// RankedJob is one entry of a ranking result. SeniorityMatch and the
// candidate's allowed-seniority bucket ride along so views never recompute
// them.
type RankedJob struct {
	Job              job.Job
	Score            float64
	SeniorityMatch   bool
	ExperienceBucket []string
}

type MatchUsecase interface {
	RankJobsForCV(ctx context.Context, cvID uuid.UUID, topN int) ([]RankedJob, error)
}

// Matcher is the sole matching entry point other subsystems depend on.
// It is a pure pipeline per call (load, normalize, vectorize, score, rank,
// persist) and holds no state across calls, so concurrent rankings for
// independent CVs are safe. Two overlapping rankings that both surface the
// same job race on its match_score with last-writer-wins; the field is a
// derived display value, not a source of truth, so that race is accepted.
type Matcher struct {
	cvs    repository.CVRepository
	jobs   repository.JobRepository
	engine *matching.Engine
	log    *zap.Logger
}

func NewMatcher(cvs repository.CVRepository, jobs repository.JobRepository, engine *matching.Engine, log *zap.Logger) *Matcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Matcher{cvs: cvs, jobs: jobs, engine: engine, log: log}
}

// RankJobsForCV scores every active job against the CV and returns the top
// topN, best first. A missing CV and an empty corpus both yield an empty
// result, not an error; only the returned jobs get their match_score
// persisted, and a failed write on one job never blocks the rest.
func (m *Matcher) RankJobsForCV(ctx context.Context, cvID uuid.UUID, topN int) ([]RankedJob, error) {
	profile, err := m.cvs.GetByID(ctx, cvID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			m.log.Error("cv does not exist", zap.String("cv_id", cvID.String()))
			return []RankedJob{}, nil
		}
		return nil, ErrInternal
	}

	active, err := m.jobs.ListActive(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	if len(active) == 0 {
		m.log.Info("no active jobs to match", zap.String("cv_id", cvID.String()))
		return []RankedJob{}, nil
	}

	corpus := make([]matching.Job, len(active))
	for i, j := range active {
		corpus[i] = matching.Job{
			Title:       j.Title,
			Tags:        j.TagTexts(),
			Location:    deref(j.Location),
			Description: deref(j.Description),
		}
	}

	matches := m.engine.Rank(profileOf(profile), corpus, topN)

	out := make([]RankedJob, 0, len(matches))
	for _, mt := range matches {
		j := active[mt.Index]
		score := math.Round(mt.Score*1000) / 1000

		if err := m.jobs.UpdateMatchScore(ctx, j.ID, score); err != nil {
			m.log.Warn("persisting match score failed",
				zap.String("job_id", j.ID.String()),
				zap.Error(err),
			)
		} else {
			j.MatchScore = &score
		}

		out = append(out, RankedJob{
			Job:              j,
			Score:            score,
			SeniorityMatch:   mt.SeniorityMatch,
			ExperienceBucket: mt.ExperienceBucket.Labels(),
		})
	}
	return out, nil
}

func profileOf(c cv.CV) matching.Profile {
	return matching.Profile{
		Skills:             c.Skills,
		Technologies:       c.Technologies,
		PreferredRoles:     c.PreferredRoles,
		PreferredLocations: c.PreferredLocations,
		Experience:         c.Experience,
		Education:          c.Education,
		ExperienceYears:    c.ExperienceYears,
		PrefersRemote:      c.JobTypePreference == cv.JobTypeRemote,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
