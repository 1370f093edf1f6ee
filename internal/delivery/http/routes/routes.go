package routes

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Czerw0/JobFinder/internal/delivery/http/handler"
	"github.com/Czerw0/JobFinder/internal/delivery/http/middleware"
	"github.com/Czerw0/JobFinder/internal/ws"
)

type Registry struct {
	Health *handler.HealthHandler
	Auth   *handler.AuthHandler
	CV     *handler.CVHandler
	Jobs   *handler.JobsHandler
	Match  *handler.MatchHandler
	WS     *ws.Handler

	AuthGuard *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.Health.Health)

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/register", r.Auth.Register)
	auth.Post("/login", r.Auth.Login)

	api.Get("/jobs", r.Jobs.List)

	guard := r.AuthGuard.Middleware()

	api.Post("/jobs/refresh", r.Jobs.Refresh, guard)

	cv := api.Group("/cv", guard)
	cv.Get("/", r.CV.Get)
	cv.Put("/", r.CV.Update)

	api.Get("/matches", r.Match.List, guard)

	app.Get("/ws/jobs", r.WS.HandleJobsWS)
}
