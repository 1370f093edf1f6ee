package dto

import "github.com/Czerw0/JobFinder/internal/usecase"

type MatchResponse struct {
	Job              JobResponse `json:"job"`
	Score            float64     `json:"score"`
	SeniorityMatch   bool        `json:"seniority_match"`
	ExperienceBucket []string    `json:"experience_bucket"`
}

func FromRankedJobs(items []usecase.RankedJob) []MatchResponse {
	out := make([]MatchResponse, 0, len(items))
	for _, it := range items {
		bucket := it.ExperienceBucket
		if bucket == nil {
			bucket = []string{}
		}
		out = append(out, MatchResponse{
			Job:              FromJob(it.Job),
			Score:            it.Score,
			SeniorityMatch:   it.SeniorityMatch,
			ExperienceBucket: bucket,
		})
	}
	return out
}
