package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Czerw0/JobFinder/internal/domain/job"
)

type JobResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Location    *string   `json:"location"`
	Salary      *string   `json:"salary"`
	Tags        []job.Tag `json:"tags"`
	JobURL      string    `json:"job_url"`
	DatePosted  *string   `json:"date_posted"`
	Description *string   `json:"description"`
	Status      string    `json:"status"`
	MatchScore  *float64  `json:"match_score"`
}

func FromJob(j job.Job) JobResponse {
	var posted *string
	if j.DatePosted != nil {
		s := j.DatePosted.UTC().Format(time.RFC3339)
		posted = &s
	}
	return JobResponse{
		ID:          j.ID,
		Title:       j.Title,
		Company:     j.Company,
		Location:    j.Location,
		Salary:      j.Salary,
		Tags:        j.Tags,
		JobURL:      j.JobURL,
		DatePosted:  posted,
		Description: j.Description,
		Status:      string(j.Status),
		MatchScore:  j.MatchScore,
	}
}

func FromJobs(items []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromJob(it))
	}
	return out
}
