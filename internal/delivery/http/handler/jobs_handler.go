package handler

import (
	"context"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"github.com/Czerw0/JobFinder/internal/delivery/http/dto"
	"github.com/Czerw0/JobFinder/internal/delivery/http/middleware"
	"github.com/Czerw0/JobFinder/internal/pkg/response"
	"github.com/Czerw0/JobFinder/internal/scraper"
	"github.com/Czerw0/JobFinder/internal/usecase"
	"github.com/Czerw0/JobFinder/internal/ws"
)

// JobFetcher pulls the remote feed and upserts it into storage.
type JobFetcher interface {
	Scrape(ctx context.Context) (scraper.Summary, error)
}

type JobsHandler struct {
	uc       usecase.JobListUsecase
	fetcher  JobFetcher
	notifier *ws.Notifier
	log      *zap.Logger
}

func NewJobsHandler(uc usecase.JobListUsecase, fetcher JobFetcher, notifier *ws.Notifier, log *zap.Logger) *JobsHandler {
	return &JobsHandler{uc: uc, fetcher: fetcher, notifier: notifier, log: log}
}

func (h *JobsHandler) List(c fiber.Ctx) error {
	limit, err := queryInt(c, "limit", 20)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	items, err := h.uc.ListJobs(c.Context(), usecase.JobListParams{Limit: limit, Offset: offset})
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(items))
}

// Refresh runs a synchronous feed pull. Listing caches are invalidated
// and connected websocket clients are notified when anything changed.
func (h *JobsHandler) Refresh(c fiber.Ctx) error {
	sum, err := h.fetcher.Scrape(c.Context())
	if err != nil {
		h.log.Error("feed refresh failed", zap.Error(err))
		return middleware.NewAppError(fiber.StatusBadGateway, "feed unavailable", nil, err)
	}

	if sum.Created > 0 || sum.Updated > 0 {
		h.uc.InvalidateCache(c.Context())
		h.notifier.JobsUpdated("remoteok", sum.Created, sum.Updated)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromScrapeSummary(sum))
}

func queryInt(c fiber.Ctx, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
