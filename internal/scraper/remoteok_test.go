package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Czerw0/JobFinder/internal/domain/job"
	"github.com/Czerw0/JobFinder/internal/repository"

	"github.com/google/uuid"
)

const feedFixture = `[
	{"legal": "API terms of use apply."},
	{
		"position": "Senior Python Developer",
		"company": "Acme",
		"location": "",
		"url": "https://remoteok.com/jobs/1",
		"tags": ["python", {"slug": "django", "name": "Django"}],
		"description": "<p>Build <b>backends</b>.</p><ul><li>5+ years required</li></ul>",
		"date": "2025-06-01T10:00:00+00:00",
		"salary_min": 60000,
		"salary_max": 90000
	},
	{
		"position": "Sponsored Post",
		"company": "Ads Inc",
		"url": ""
	},
	{
		"position": "Go Engineer",
		"company": "Widgets",
		"location": "Berlin",
		"url": "https://remoteok.com/jobs/2",
		"tags": ["go"],
		"description": "",
		"date": "not-a-date"
	}
]`

type recordingJobRepo struct {
	upserts []repository.JobUpsert
}

func (r *recordingJobRepo) Upsert(_ context.Context, in repository.JobUpsert) (bool, error) {
	r.upserts = append(r.upserts, in)
	return len(r.upserts) == 1, nil
}

func (r *recordingJobRepo) ListActive(context.Context) ([]job.Job, error) { return nil, nil }
func (r *recordingJobRepo) ListRecent(context.Context, int, int) ([]job.Job, error) {
	return nil, nil
}
func (r *recordingJobRepo) UpdateMatchScore(context.Context, uuid.UUID, float64) error { return nil }
func (r *recordingJobRepo) ArchiveStale(context.Context, time.Time) (int64, error)     { return 0, nil }
func (r *recordingJobRepo) PurgeArchived(context.Context, time.Time) (int64, error)    { return 0, nil }

func TestRemoteOK_Scrape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedFixture))
	}))
	defer srv.Close()

	repo := &recordingJobRepo{}
	s := NewRemoteOK(srv.URL, "JobFinderApp/1.0 (test)", repo, nil)

	sum, err := s.Scrape(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Fetched != 2 || sum.Created != 1 || sum.Updated != 1 || sum.Skipped != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if len(repo.upserts) != 2 {
		t.Fatalf("expected 2 upserts, got %d", len(repo.upserts))
	}

	first := repo.upserts[0]
	if first.Title != "Senior Python Developer" {
		t.Fatalf("unexpected title %q", first.Title)
	}
	if first.Location == nil || *first.Location != "Remote" {
		t.Fatalf("empty location must default to Remote, got %v", first.Location)
	}
	if got := []string{first.Tags[0].Text(), first.Tags[1].Text()}; got[0] != "python" || got[1] != "Django" {
		t.Fatalf("tag union mishandled: %v", got)
	}
	if first.Description == nil || *first.Description != "Build backends.5+ years required" {
		t.Fatalf("markup not stripped: %v", first.Description)
	}
	if first.Salary == nil || *first.Salary != "$60,000 - $90,000" {
		t.Fatalf("unexpected salary: %v", first.Salary)
	}
	if first.DatePosted == nil || !first.DatePosted.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected posted date: %v", first.DatePosted)
	}

	second := repo.upserts[1]
	if second.DatePosted != nil {
		t.Fatalf("malformed date must yield nil, got %v", second.DatePosted)
	}
	if second.Salary == nil || *second.Salary != "N/A" {
		t.Fatalf("missing salary must yield N/A, got %v", second.Salary)
	}
}

func TestRemoteOK_EmptyFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"legal": "notice only"}]`))
	}))
	defer srv.Close()

	sum, err := NewRemoteOK(srv.URL, "test", &recordingJobRepo{}, nil).Scrape(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if sum.Fetched != 0 {
		t.Fatalf("expected no offers, got %d", sum.Fetched)
	}
}

func TestGroupThousands(t *testing.T) {
	cases := map[int]string{
		900:     "900",
		60000:   "60,000",
		1234567: "1,234,567",
	}
	for in, want := range cases {
		if got := groupThousands(in); got != want {
			t.Fatalf("groupThousands(%d) = %q, want %q", in, got, want)
		}
	}
}
