package dto

import (
	"github.com/google/uuid"

	"github.com/Czerw0/JobFinder/internal/domain/cv"
)

type CVResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`

	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	GithubProfile   string `json:"github_profile,omitempty"`
	LinkedinProfile string `json:"linkedin_profile,omitempty"`

	Skills             string `json:"skills"`
	Technologies       string `json:"technologies"`
	PreferredRoles     string `json:"preferred_roles"`
	PreferredLocations string `json:"preferred_locations"`
	JobTypePreference  string `json:"job_type_preference"`
	IndustryPreference string `json:"industry_preference,omitempty"`

	ExperienceYears *int   `json:"experience_years"`
	Experience      string `json:"experience,omitempty"`
	Education       string `json:"education,omitempty"`
	Languages       string `json:"languages,omitempty"`
}

func FromCV(c cv.CV) CVResponse {
	return CVResponse{
		ID:                 c.ID,
		UserID:             c.UserID,
		FullName:           c.FullName,
		Email:              c.Email,
		PhoneNumber:        c.PhoneNumber,
		GithubProfile:      c.GithubProfile,
		LinkedinProfile:    c.LinkedinProfile,
		Skills:             c.Skills,
		Technologies:       c.Technologies,
		PreferredRoles:     c.PreferredRoles,
		PreferredLocations: c.PreferredLocations,
		JobTypePreference:  string(c.JobTypePreference),
		IndustryPreference: c.IndustryPreference,
		ExperienceYears:    c.ExperienceYears,
		Experience:         c.Experience,
		Education:          c.Education,
		Languages:          c.Languages,
	}
}
