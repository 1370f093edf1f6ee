package matching

import "sort"

// Seniority is one of the four job levels the matcher reasons about.
type Seniority string

const (
	SeniorityIntern Seniority = "intern"
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
)

// SenioritySet is a set of seniority levels.
type SenioritySet map[Seniority]struct{}

var seniorityMarkers = map[Seniority][]string{
	SeniorityIntern: {"intern", "internship", "trainee"},
	SeniorityJunior: {"junior", "jr", "associate", "entry", "graduate"},
	SeniorityMid:    {"mid", "intermediate", "regular"},
	SenioritySenior: {"senior", "sr", "lead", "principal", "staff"},
}

// DetectJobSeniority scans text for whole-word seniority markers and returns
// the set of matched levels. The set may be empty: a listing without markers
// is seniority-agnostic, which is not the same as a mismatch.
func DetectJobSeniority(text string) SenioritySet {
	tokens := TokenSet(text)
	found := make(SenioritySet)
	for level, markers := range seniorityMarkers {
		for _, m := range markers {
			if _, ok := tokens[m]; ok {
				found[level] = struct{}{}
				break
			}
		}
	}
	return found
}

// InferAllowedSeniority buckets years of experience into the seniority levels
// a candidate can reasonably apply for. Hard boundaries at 2, 3 and 5 years;
// unknown experience defaults to the junior/mid band.
func InferAllowedSeniority(years *int) SenioritySet {
	switch {
	case years == nil:
		return SenioritySet{SeniorityJunior: {}, SeniorityMid: {}}
	case *years < 2:
		return SenioritySet{SeniorityIntern: {}, SeniorityJunior: {}}
	case *years < 3:
		return SenioritySet{SeniorityJunior: {}}
	case *years < 5:
		return SenioritySet{SeniorityMid: {}}
	default:
		return SenioritySet{SenioritySenior: {}}
	}
}

// Intersects reports whether the two sets share at least one level.
func (s SenioritySet) Intersects(other SenioritySet) bool {
	for level := range s {
		if _, ok := other[level]; ok {
			return true
		}
	}
	return false
}

// Contains reports membership of a single level.
func (s SenioritySet) Contains(level Seniority) bool {
	_, ok := s[level]
	return ok
}

// Labels returns the levels as sorted strings, for stable presentation.
func (s SenioritySet) Labels() []string {
	out := make([]string, 0, len(s))
	for level := range s {
		out = append(out, string(level))
	}
	sort.Strings(out)
	return out
}
