package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Czerw0/JobFinder/internal/domain/cv"
	"github.com/Czerw0/JobFinder/internal/domain/job"
	"github.com/Czerw0/JobFinder/internal/matching"
	"github.com/Czerw0/JobFinder/internal/repository"

	"github.com/google/uuid"
)

type mockCVRepo struct {
	byID map[uuid.UUID]cv.CV
	err  error
}

func (m mockCVRepo) GetByID(_ context.Context, id uuid.UUID) (cv.CV, error) {
	if m.err != nil {
		return cv.CV{}, m.err
	}
	c, ok := m.byID[id]
	if !ok {
		return cv.CV{}, repository.ErrNotFound
	}
	return c, nil
}

func (m mockCVRepo) GetByUserID(context.Context, uuid.UUID) (cv.CV, error) {
	return cv.CV{}, repository.ErrNotFound
}

func (m mockCVRepo) Upsert(_ context.Context, c cv.CV) (cv.CV, error) { return c, nil }

type mockJobRepo struct {
	active []job.Job

	scored      map[uuid.UUID]float64
	failScoreOn map[uuid.UUID]bool
	listErr     error
}

func (m *mockJobRepo) ListActive(context.Context) ([]job.Job, error) {
	return m.active, m.listErr
}

func (m *mockJobRepo) ListRecent(context.Context, int, int) ([]job.Job, error) {
	return m.active, m.listErr
}

func (m *mockJobRepo) Upsert(context.Context, repository.JobUpsert) (bool, error) {
	return false, nil
}

func (m *mockJobRepo) UpdateMatchScore(_ context.Context, id uuid.UUID, score float64) error {
	if m.failScoreOn[id] {
		return errors.New("write failed")
	}
	if m.scored == nil {
		m.scored = map[uuid.UUID]float64{}
	}
	m.scored[id] = score
	return nil
}

func (m *mockJobRepo) ArchiveStale(context.Context, time.Time) (int64, error)  { return 0, nil }
func (m *mockJobRepo) PurgeArchived(context.Context, time.Time) (int64, error) { return 0, nil }

func strPtr(s string) *string { return &s }
func intPtr(v int) *int       { return &v }

func activeJob(title, location string, tags ...string) job.Job {
	jts := make([]job.Tag, 0, len(tags))
	for _, t := range tags {
		jts = append(jts, job.Tag{Name: t})
	}
	return job.Job{
		ID:       uuid.New(),
		Title:    title,
		Company:  "Acme",
		Location: strPtr(location),
		Tags:     jts,
		JobURL:   "https://example.com/" + uuid.NewString(),
		Status:   job.StatusActive,
	}
}

func pythonCV() cv.CV {
	return cv.CV{
		ID:                uuid.New(),
		Skills:            "python,django",
		Technologies:      "postgresql",
		PreferredRoles:    "developer",
		JobTypePreference: cv.JobTypeRemote,
		ExperienceYears:   intPtr(4),
	}
}

func newTestMatcher(cvs repository.CVRepository, jobs repository.JobRepository) *Matcher {
	engine := matching.NewEngine(matching.DefaultWeights(), nil)
	return NewMatcher(cvs, jobs, engine, nil)
}

func TestMatcher_CVNotFound(t *testing.T) {
	m := newTestMatcher(
		mockCVRepo{},
		&mockJobRepo{active: []job.Job{activeJob("Python Developer", "Remote", "python")}},
	)
	got, err := m.RankJobsForCV(context.Background(), uuid.New(), 5)
	if err != nil {
		t.Fatalf("missing cv must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestMatcher_EmptyCorpus(t *testing.T) {
	c := pythonCV()
	m := newTestMatcher(mockCVRepo{byID: map[uuid.UUID]cv.CV{c.ID: c}}, &mockJobRepo{})
	got, err := m.RankJobsForCV(context.Background(), c.ID, 5)
	if err != nil {
		t.Fatalf("empty corpus must not be an error, got %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}
}

func TestMatcher_PersistsOnlyTopN(t *testing.T) {
	c := pythonCV()
	jobs := &mockJobRepo{active: []job.Job{
		activeJob("Senior Python Developer", "Remote", "python", "django"),
		activeJob("Python Engineer", "Remote", "python"),
		activeJob("Graphic Designer", "Berlin", "photoshop"),
	}}
	m := newTestMatcher(mockCVRepo{byID: map[uuid.UUID]cv.CV{c.ID: c}}, jobs)

	got, err := m.RankJobsForCV(context.Background(), c.ID, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if len(jobs.scored) != 2 {
		t.Fatalf("expected exactly 2 persisted scores, got %d", len(jobs.scored))
	}
	for _, rj := range got {
		persisted, ok := jobs.scored[rj.Job.ID]
		if !ok {
			t.Fatalf("returned job %s has no persisted score", rj.Job.ID)
		}
		if persisted != rj.Score {
			t.Fatalf("persisted %f != returned %f", persisted, rj.Score)
		}
		if rj.Job.MatchScore == nil || *rj.Job.MatchScore != rj.Score {
			t.Fatalf("returned job must carry the stored score")
		}
	}
	if _, ok := jobs.scored[jobs.active[2].ID]; ok {
		t.Fatalf("job outside top-N must keep its prior match_score")
	}
}

func TestMatcher_ScoresOrderedAndRelevant(t *testing.T) {
	c := pythonCV()
	jobs := &mockJobRepo{active: []job.Job{
		activeJob("Graphic Designer", "Berlin", "photoshop"),
		activeJob("Senior Python Developer", "Remote", "python", "django"),
	}}
	m := newTestMatcher(mockCVRepo{byID: map[uuid.UUID]cv.CV{c.ID: c}}, jobs)

	got, err := m.RankJobsForCV(context.Background(), c.ID, 2)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].Job.Title != "Senior Python Developer" {
		t.Fatalf("expected python job first, got %q", got[0].Job.Title)
	}
	if got[0].Score <= got[1].Score {
		t.Fatalf("expected strictly better score: %f vs %f", got[0].Score, got[1].Score)
	}
	if len(got[0].ExperienceBucket) == 0 {
		t.Fatalf("experience bucket must be populated")
	}
}

func TestMatcher_PersistenceFailureDoesNotAbort(t *testing.T) {
	c := pythonCV()
	a := activeJob("Senior Python Developer", "Remote", "python", "django")
	b := activeJob("Python Engineer", "Remote", "python")
	jobs := &mockJobRepo{
		active:      []job.Job{a, b},
		failScoreOn: map[uuid.UUID]bool{a.ID: true},
	}
	m := newTestMatcher(mockCVRepo{byID: map[uuid.UUID]cv.CV{c.ID: c}}, jobs)

	got, err := m.RankJobsForCV(context.Background(), c.ID, 2)
	if err != nil {
		t.Fatalf("one failed write must not fail the call: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected both matches back, got %d", len(got))
	}
	if _, ok := jobs.scored[b.ID]; !ok {
		t.Fatalf("remaining job must still be persisted")
	}
}

func TestMatcher_TopNZeroYieldsEmpty(t *testing.T) {
	c := pythonCV()
	jobs := &mockJobRepo{active: []job.Job{activeJob("Python Developer", "Remote", "python")}}
	m := newTestMatcher(mockCVRepo{byID: map[uuid.UUID]cv.CV{c.ID: c}}, jobs)

	got, err := m.RankJobsForCV(context.Background(), c.ID, 0)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("top_n <= 0 must yield empty, got %d", len(got))
	}
	if len(jobs.scored) != 0 {
		t.Fatalf("nothing may be persisted for an empty ranking")
	}
}
