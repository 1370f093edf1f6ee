package handler

import (
	"context"

	"github.com/gofiber/fiber/v3"

	"github.com/Czerw0/JobFinder/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	status := map[string]string{
		"database": "up",
		"cache":    "up",
	}

	httpStatus := fiber.StatusOK
	if h.db == nil || h.db.Ping(c.Context()) != nil {
		status["database"] = "down"
		httpStatus = fiber.StatusServiceUnavailable
	}
	// cache being down is a degraded state, not a failed one
	if h.cache == nil || h.cache.Ping(c.Context()) != nil {
		status["cache"] = "down"
	}

	return response.Success(c, httpStatus, response.MessageOK, status)
}
