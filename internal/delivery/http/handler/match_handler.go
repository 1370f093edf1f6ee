package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Czerw0/JobFinder/internal/delivery/http/dto"
	"github.com/Czerw0/JobFinder/internal/delivery/http/middleware"
	"github.com/Czerw0/JobFinder/internal/pkg/response"
	"github.com/Czerw0/JobFinder/internal/usecase"
	"github.com/Czerw0/JobFinder/internal/ws"
)

type MatchHandler struct {
	cvs      usecase.CVUsecase
	matcher  usecase.MatchUsecase
	notifier *ws.Notifier
}

func NewMatchHandler(cvs usecase.CVUsecase, matcher usecase.MatchUsecase, notifier *ws.Notifier) *MatchHandler {
	return &MatchHandler{cvs: cvs, matcher: matcher, notifier: notifier}
}

// List ranks the active corpus against the caller's CV. top_n defaults
// to the matcher's standard cut and zero yields an empty list.
func (h *MatchHandler) List(c fiber.Ctx) error {
	userID, ok := authenticatedUserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, response.MessageUnauthorized, nil, nil)
	}

	topN, err := queryInt(c, "top_n", usecase.DefaultTopN)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	profile, err := h.cvs.GetForUser(c.Context(), userID)
	if err != nil {
		return err
	}

	ranked, err := h.matcher.RankJobsForCV(c.Context(), profile.ID, topN)
	if err != nil {
		return err
	}

	if len(ranked) > 0 {
		h.notifier.MatchesUpdated(profile.ID, len(ranked))
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRankedJobs(ranked))
}
