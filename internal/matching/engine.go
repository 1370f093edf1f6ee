package matching

import (
	"sort"
	"strings"

	"go.uber.org/zap"
)

// Profile is the query side of a matching run. Free-text fields are raw; the
// engine normalizes them itself. All optional data is resolved to explicit
// values before the engine sees it.
type Profile struct {
	Skills             string
	Technologies       string
	PreferredRoles     string
	PreferredLocations string
	Experience         string
	Education          string
	ExperienceYears    *int
	PrefersRemote      bool
}

// Job is one matchable listing. Tags are already flattened to plain strings
// at the ingestion boundary.
type Job struct {
	Title       string
	Tags        []string
	Location    string
	Description string
}

// Match is the scored outcome for a single job. Index refers to the position
// of the job in the corpus passed to Rank, so callers can attach their own
// job records without the engine knowing about persistence types.
type Match struct {
	Index            int
	Score            float64
	Similarity       float64
	SeniorityMatch   bool
	ExperienceBucket SenioritySet
}

// Weights is the scoring policy: one baseline factor, additive bonuses and
// multiplicative penalties. Penalties compound on the already-boosted value.
type Weights struct {
	Similarity float64

	SkillBonus float64
	TechBonus  float64
	RoleBonus  float64

	RemoteBonus     float64
	RemotePenalty   float64
	LocationBonus   float64
	LocationPenalty float64

	SeniorityBonus   float64
	SeniorityPenalty float64

	ExperienceBonus   float64
	ExperiencePenalty float64
}

// DefaultWeights is the canonical policy. Similarity alone tops out at 0.5,
// so semantic closeness can never reach a top score without corroborating
// exact-match signals. Seniority mismatch penalizes harder than location.
func DefaultWeights() Weights {
	return Weights{
		Similarity:        0.50,
		SkillBonus:        0.20,
		TechBonus:         0.15,
		RoleBonus:         0.10,
		RemoteBonus:       0.10,
		RemotePenalty:     0.85,
		LocationBonus:     0.05,
		LocationPenalty:   0.90,
		SeniorityBonus:    0.05,
		SeniorityPenalty:  0.75,
		ExperienceBonus:   0.05,
		ExperiencePenalty: 0.80,
	}
}

// Engine ranks a job corpus against a profile. It holds no state across
// calls; the TF-IDF space is rebuilt from the corpus on every Rank.
type Engine struct {
	weights Weights
	log     *zap.Logger
}

func NewEngine(w Weights, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{weights: w, log: log}
}

// Rank scores every job against the profile and returns the top n matches,
// sorted by score descending. Ties keep corpus order. n <= 0 yields nil;
// n beyond the corpus size yields the whole corpus.
func (e *Engine) Rank(p Profile, jobs []Job, n int) []Match {
	if n <= 0 || len(jobs) == 0 {
		return nil
	}

	matches := e.scoreAll(p, jobs)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if n < len(matches) {
		matches = matches[:n]
	}
	return matches
}

func (e *Engine) scoreAll(p Profile, jobs []Job) []Match {
	w := e.weights

	skillSet := TokenSet(p.Skills)
	techSet := TokenSet(p.Technologies)
	roleSet := TokenSet(p.PreferredRoles)
	locationPrefs := TokenSet(p.PreferredLocations)
	allowed := InferAllowedSeniority(p.ExperienceYears)

	profileText := joinNormalized(
		p.Skills, p.Technologies, p.PreferredRoles, p.Experience, p.Education,
	)

	type jobDoc struct {
		combined   string
		titleSet   map[string]struct{}
		exactSet   map[string]struct{}
		location   string
		seniority  SenioritySet
		requiredYr *int
	}

	docs := make([]jobDoc, len(jobs))
	corpus := make([]string, len(jobs))
	for i, job := range jobs {
		combined := joinNormalized(job.Title, strings.Join(job.Tags, " "), job.Description)
		titleSet := TokenSet(job.Title)
		exactSet := TokenSet(job.Title + " " + strings.Join(job.Tags, " "))
		docs[i] = jobDoc{
			combined:   combined,
			titleSet:   titleSet,
			exactSet:   exactSet,
			location:   Normalize(job.Location),
			seniority:  DetectJobSeniority(combined),
			requiredYr: DetectRequiredExperience(combined),
		}
		corpus[i] = combined
	}

	sims := NewVectorizer(corpus).Similarities(profileText)

	matches := make([]Match, len(jobs))
	for i := range jobs {
		doc := docs[i]

		score := sims[i] * w.Similarity
		penalty := 1.0

		score += w.SkillBonus * overlapFraction(skillSet, doc.exactSet)
		score += w.TechBonus * overlapFraction(techSet, doc.exactSet)

		if anyMember(roleSet, doc.titleSet) {
			score += w.RoleBonus
		}

		if p.PrefersRemote {
			if strings.Contains(doc.location, "remote") {
				score += w.RemoteBonus
			} else {
				penalty *= w.RemotePenalty
			}
		} else if len(locationPrefs) > 0 {
			if anySubstring(locationPrefs, doc.location) {
				score += w.LocationBonus
			} else {
				penalty *= w.LocationPenalty
			}
		}

		seniorityMatch := false
		if len(doc.seniority) > 0 {
			if doc.seniority.Intersects(allowed) {
				seniorityMatch = true
				score += w.SeniorityBonus
			} else {
				penalty *= w.SeniorityPenalty
			}
		}

		if doc.requiredYr != nil && p.ExperienceYears != nil {
			if *p.ExperienceYears >= *doc.requiredYr {
				score += w.ExperienceBonus
			} else {
				penalty *= w.ExperiencePenalty
			}
		}

		score = clamp01(score * penalty)

		e.log.Debug("job scored",
			zap.Int("index", i),
			zap.Float64("score", score),
			zap.Float64("similarity", sims[i]),
			zap.Bool("seniority_match", seniorityMatch),
		)

		matches[i] = Match{
			Index:            i,
			Score:            score,
			Similarity:       sims[i],
			SeniorityMatch:   seniorityMatch,
			ExperienceBucket: allowed,
		}
	}
	return matches
}

func joinNormalized(parts ...string) string {
	normed := make([]string, 0, len(parts))
	for _, part := range parts {
		if n := Normalize(part); n != "" {
			normed = append(normed, n)
		}
	}
	return strings.Join(normed, " ")
}

// overlapFraction reports which share of want is present in have.
// An empty want contributes nothing rather than a full bonus.
func overlapFraction(want, have map[string]struct{}) float64 {
	if len(want) == 0 {
		return 0
	}
	matched := 0
	for tok := range want {
		if _, ok := have[tok]; ok {
			matched++
		}
	}
	return float64(matched) / float64(len(want))
}

func anyMember(want, have map[string]struct{}) bool {
	for tok := range want {
		if _, ok := have[tok]; ok {
			return true
		}
	}
	return false
}

func anySubstring(want map[string]struct{}, s string) bool {
	if s == "" {
		return false
	}
	for tok := range want {
		if strings.Contains(s, tok) {
			return true
		}
	}
	return false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
