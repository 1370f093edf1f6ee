package matching

import (
	"math"
	"testing"
)

func testProfile() Profile {
	return Profile{
		Skills:          "python,django",
		Technologies:    "postgresql,docker",
		PreferredRoles:  "developer",
		Experience:      "built web backends with python and django",
		ExperienceYears: intPtr(4),
		PrefersRemote:   true,
	}
}

func testCorpus() []Job {
	return []Job{
		{
			Title:       "Senior Python Developer",
			Tags:        []string{"python", "django"},
			Location:    "Remote",
			Description: "We build web platforms with Python and Django.",
		},
		{
			Title:       "Graphic Designer",
			Tags:        []string{"photoshop"},
			Location:    "Berlin",
			Description: "Design marketing visuals.",
		},
	}
}

func TestEngine_RelevantJobRanksFirst(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil)
	matches := e.Rank(testProfile(), testCorpus(), 2)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].Index != 0 {
		t.Fatalf("expected python job first, got index %d", matches[0].Index)
	}
	if matches[0].Score <= matches[1].Score {
		t.Fatalf("expected strict ordering: %f vs %f", matches[0].Score, matches[1].Score)
	}
}

func TestEngine_TopNEdgeCases(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil)
	p := testProfile()
	jobs := testCorpus()

	if got := e.Rank(p, jobs, 0); got != nil {
		t.Fatalf("n=0 must yield no matches, got %d", len(got))
	}
	if got := e.Rank(p, jobs, -3); got != nil {
		t.Fatalf("negative n must yield no matches, got %d", len(got))
	}

	got := e.Rank(p, jobs, 100)
	if len(got) != len(jobs) {
		t.Fatalf("n beyond corpus must yield whole corpus, got %d", len(got))
	}
	seen := make(map[int]bool, len(got))
	for i, m := range got {
		if seen[m.Index] {
			t.Fatalf("job %d returned twice", m.Index)
		}
		seen[m.Index] = true
		if m.Score < 0 || m.Score > 1 {
			t.Fatalf("score out of [0,1]: %f", m.Score)
		}
		if i > 0 && got[i-1].Score < m.Score {
			t.Fatalf("scores must be non-increasing: %f then %f", got[i-1].Score, m.Score)
		}
	}
}

func TestEngine_Idempotent(t *testing.T) {
	e := NewEngine(DefaultWeights(), nil)
	p := testProfile()
	jobs := testCorpus()

	first := e.Rank(p, jobs, len(jobs))
	second := e.Rank(p, jobs, len(jobs))
	if len(first) != len(second) {
		t.Fatalf("rank size changed between calls")
	}
	for i := range first {
		if first[i].Index != second[i].Index {
			t.Fatalf("ordering changed between calls at %d", i)
		}
		if math.Abs(first[i].Score-second[i].Score) > 1e-12 {
			t.Fatalf("score drifted between calls: %f vs %f", first[i].Score, second[i].Score)
		}
	}
}

func TestEngine_SeniorityAndExperiencePenaltiesCompound(t *testing.T) {
	p := Profile{
		Skills:          "python",
		ExperienceYears: intPtr(1),
		PrefersRemote:   true,
	}
	jobs := []Job{
		{
			Title:       "Senior Python Engineer",
			Tags:        []string{"python"},
			Location:    "Remote",
			Description: "5+ years required building services.",
		},
		{
			Title:       "Python Engineer",
			Tags:        []string{"python"},
			Location:    "Remote",
			Description: "Building services.",
		},
	}

	e := NewEngine(DefaultWeights(), nil)
	matches := e.Rank(p, jobs, 2)
	byIndex := map[int]Match{}
	for _, m := range matches {
		byIndex[m.Index] = m
	}

	penalized, plain := byIndex[0], byIndex[1]
	if penalized.Score >= plain.Score {
		t.Fatalf("penalized job must score below unmarked job: %f vs %f", penalized.Score, plain.Score)
	}
	if penalized.SeniorityMatch {
		t.Fatalf("one year of experience must not match a senior listing")
	}
	if !penalized.ExperienceBucket.Contains(SeniorityJunior) {
		t.Fatalf("experience bucket should include junior, got %v", penalized.ExperienceBucket.Labels())
	}
}

func TestEngine_NeutralWhenNoMarkers(t *testing.T) {
	p := Profile{Skills: "go", ExperienceYears: intPtr(1)}
	jobs := []Job{
		{Title: "Go Engineer", Tags: []string{"go"}, Location: "Oslo"},
	}
	m := NewEngine(DefaultWeights(), nil).Rank(p, jobs, 1)
	if len(m) != 1 {
		t.Fatalf("expected 1 match")
	}
	if m[0].SeniorityMatch {
		t.Fatalf("agnostic listing must not report a seniority match")
	}
	if m[0].Score < 0 || m[0].Score > 1 {
		t.Fatalf("score out of bounds: %f", m[0].Score)
	}
}

func TestEngine_EmptyCorpus(t *testing.T) {
	if got := NewEngine(DefaultWeights(), nil).Rank(testProfile(), nil, 5); got != nil {
		t.Fatalf("empty corpus must yield no matches")
	}
}
