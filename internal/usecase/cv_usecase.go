package usecase

import (
	"context"
	"errors"

	"github.com/Czerw0/JobFinder/internal/domain/cv"
	"github.com/Czerw0/JobFinder/internal/repository"

	"github.com/google/uuid"
)

type UpdateCVInput struct {
	FullName        string
	Email           string
	PhoneNumber     string
	GithubProfile   string
	LinkedinProfile string

	Skills             string
	Technologies       string
	PreferredRoles     string
	PreferredLocations string
	JobTypePreference  string
	IndustryPreference string

	ExperienceYears *int
	Experience      string
	Education       string
	Languages       string
}

type CVUsecase interface {
	GetForUser(ctx context.Context, userID uuid.UUID) (cv.CV, error)
	UpdateForUser(ctx context.Context, userID uuid.UUID, in UpdateCVInput) (cv.CV, error)
}

type CVService struct {
	cvs repository.CVRepository
}

func NewCVUsecase(cvs repository.CVRepository) *CVService {
	return &CVService{cvs: cvs}
}

func (s *CVService) GetForUser(ctx context.Context, userID uuid.UUID) (cv.CV, error) {
	c, err := s.cvs.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return cv.CV{}, ErrCVNotFound
		}
		return cv.CV{}, ErrInternal
	}
	return c, nil
}

func (s *CVService) UpdateForUser(ctx context.Context, userID uuid.UUID, in UpdateCVInput) (cv.CV, error) {
	if userID == uuid.Nil {
		return cv.CV{}, ErrUnauthorized
	}

	jobType := cv.JobType(in.JobTypePreference)
	switch jobType {
	case cv.JobTypeRemote, cv.JobTypeHybrid, cv.JobTypeOffice:
	case "":
		jobType = cv.JobTypeRemote
	default:
		return cv.CV{}, ErrInvalidInput
	}

	if in.ExperienceYears != nil && *in.ExperienceYears < 0 {
		return cv.CV{}, ErrInvalidInput
	}

	updated, err := s.cvs.Upsert(ctx, cv.CV{
		UserID:             userID,
		FullName:           in.FullName,
		Email:              in.Email,
		PhoneNumber:        in.PhoneNumber,
		GithubProfile:      in.GithubProfile,
		LinkedinProfile:    in.LinkedinProfile,
		Skills:             in.Skills,
		Technologies:       in.Technologies,
		PreferredRoles:     in.PreferredRoles,
		PreferredLocations: in.PreferredLocations,
		JobTypePreference:  jobType,
		IndustryPreference: in.IndustryPreference,
		ExperienceYears:    in.ExperienceYears,
		Experience:         in.Experience,
		Education:          in.Education,
		Languages:          in.Languages,
	})
	if err != nil {
		return cv.CV{}, ErrInternal
	}
	return updated, nil
}
