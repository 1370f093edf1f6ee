package cv

import (
	"time"

	"github.com/google/uuid"
)

type JobType string

const (
	JobTypeRemote JobType = "remote"
	JobTypeHybrid JobType = "hybrid"
	JobTypeOffice JobType = "office"
)

// CV is a user's structured self-description: the query side of matching.
// Free-text list fields (skills, technologies, roles, locations) are
// comma-separated, matching what the profile forms collect.
type CV struct {
	ID     uuid.UUID
	UserID uuid.UUID

	FullName        string
	Email           string
	PhoneNumber     string
	GithubProfile   string
	LinkedinProfile string

	Skills             string
	Technologies       string
	PreferredRoles     string
	PreferredLocations string
	JobTypePreference  JobType
	IndustryPreference string

	ExperienceYears *int
	Experience      string
	Education       string
	Languages       string

	CreatedAt time.Time
	UpdatedAt time.Time
}
