package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Czerw0/JobFinder/internal/delivery/http/handler"
	"github.com/Czerw0/JobFinder/internal/delivery/http/middleware"
	"github.com/Czerw0/JobFinder/internal/delivery/http/routes"
	"github.com/Czerw0/JobFinder/internal/ws"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// New assembles the HTTP surface on top of an already-built container
// and starts the websocket hub.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{
		AppName: c.Config.App.AppName,
	})

	f.Use(middleware.NewErrorMiddleware(c.Log.Named("http")).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(c.Log.Named("access")).Middleware())

	reg := &routes.Registry{
		Health:    handler.NewHealthHandler(c.DB, c.Cache),
		Auth:      handler.NewAuthHandler(c.Auth),
		CV:        handler.NewCVHandler(c.CV),
		Jobs:      handler.NewJobsHandler(c.JobList, c.Scraper, c.Notifier, c.Log.Named("jobs")),
		Match:     handler.NewMatchHandler(c.CV, c.Matcher, c.Notifier),
		WS:        ws.NewHandler(c.Hub, c.Log.Named("ws")),
		AuthGuard: middleware.NewAuthMiddleware(c.JWT),
	}
	reg.Register(f)

	go c.Hub.Run()

	return &App{Fiber: f, Container: c}
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
