package handler

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/Czerw0/JobFinder/internal/delivery/http/dto"
	"github.com/Czerw0/JobFinder/internal/delivery/http/middleware"
	"github.com/Czerw0/JobFinder/internal/pkg/response"
	"github.com/Czerw0/JobFinder/internal/usecase"
)

type CVHandler struct {
	uc usecase.CVUsecase
}

type updateCVRequest struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	PhoneNumber     string `json:"phone_number"`
	GithubProfile   string `json:"github_profile"`
	LinkedinProfile string `json:"linkedin_profile"`

	Skills             string `json:"skills"`
	Technologies       string `json:"technologies"`
	PreferredRoles     string `json:"preferred_roles"`
	PreferredLocations string `json:"preferred_locations"`
	JobTypePreference  string `json:"job_type_preference"`
	IndustryPreference string `json:"industry_preference"`

	ExperienceYears *int   `json:"experience_years"`
	Experience      string `json:"experience"`
	Education       string `json:"education"`
	Languages       string `json:"languages"`
}

func NewCVHandler(uc usecase.CVUsecase) *CVHandler {
	return &CVHandler{uc: uc}
}

func (h *CVHandler) Get(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	profile, err := h.uc.GetForUser(c.Context(), userID)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCV(profile))
}

func (h *CVHandler) Update(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	var req updateCVRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	profile, err := h.uc.UpdateForUser(c.Context(), userID, usecase.UpdateCVInput{
		FullName:           req.FullName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		GithubProfile:      req.GithubProfile,
		LinkedinProfile:    req.LinkedinProfile,
		Skills:             req.Skills,
		Technologies:       req.Technologies,
		PreferredRoles:     req.PreferredRoles,
		PreferredLocations: req.PreferredLocations,
		JobTypePreference:  req.JobTypePreference,
		IndustryPreference: req.IndustryPreference,
		ExperienceYears:    req.ExperienceYears,
		Experience:         req.Experience,
		Education:          req.Education,
		Languages:          req.Languages,
	})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromCV(profile))
}

func authenticatedUserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
