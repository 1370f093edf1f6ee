package matching

import (
	"regexp"
	"strconv"
)

// Matches "5 years", "5+ years", "minimum 4 years", "3 yrs" over normalized
// text. Best effort: phrasings it does not cover are treated as no requirement.
var requiredExperiencePattern = regexp.MustCompile(`(\d{1,2})\s*\+?\s*(?:years?|yrs?)`)

// DetectRequiredExperience extracts the first years-of-experience figure
// mentioned in text, or nil when no recognizable mention exists.
func DetectRequiredExperience(text string) *int {
	m := requiredExperiencePattern.FindStringSubmatch(Normalize(text))
	if m == nil {
		return nil
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	return &n
}
