package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Czerw0/JobFinder/internal/config"
	"github.com/Czerw0/JobFinder/internal/database"
	"github.com/Czerw0/JobFinder/internal/database/migration"
	dbpostgres "github.com/Czerw0/JobFinder/internal/database/postgres"
	"github.com/Czerw0/JobFinder/internal/infrastructure/cache"
	"github.com/Czerw0/JobFinder/internal/matching"
	"github.com/Czerw0/JobFinder/internal/pkg/jwt"
	"github.com/Czerw0/JobFinder/internal/repository"
	"github.com/Czerw0/JobFinder/internal/scraper"
	"github.com/Czerw0/JobFinder/internal/usecase"
	"github.com/Czerw0/JobFinder/internal/ws"
)

// Container owns every long-lived dependency. Handlers and CLI
// commands borrow from it and never construct their own.
type Container struct {
	Config config.Config
	Log    *zap.Logger
	DB     database.DB
	Cache  *cache.Redis

	Users repository.UserRepository
	CVs   repository.CVRepository
	Jobs  repository.JobRepository

	JWT jwt.Service

	Auth      usecase.AuthUsecase
	CV        usecase.CVUsecase
	JobList   usecase.JobListUsecase
	Matcher   usecase.MatchUsecase
	Lifecycle *usecase.Lifecycle

	Scraper  *scraper.RemoteOK
	Hub      *ws.Hub
	Notifier *ws.Notifier
}

func NewContainer(cfg config.Config, log *zap.Logger) (*Container, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	if err := (migration.Runner{}).Run(ctx, db.SQLDB()); err != nil {
		_ = db.Close()
		return nil, err
	}

	c := &Container{
		Config: cfg,
		Log:    log,
		DB:     db,
		Cache:  cache.NewRedis(cfg.Redis, log.Named("cache")),
	}

	c.Users = repository.NewPostgresUserRepository(db)
	c.CVs = repository.NewPostgresCVRepository(db)
	c.Jobs = repository.NewPostgresJobRepository(db)

	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)

	engine := matching.NewEngine(matching.DefaultWeights(), log.Named("matching"))

	c.Auth = usecase.NewAuthUsecase(c.Users, c.JWT)
	c.CV = usecase.NewCVUsecase(c.CVs)
	c.JobList = usecase.NewJobListUsecase(c.Jobs, c.Cache, log.Named("jobs"))
	c.Matcher = usecase.NewMatcher(c.CVs, c.Jobs, engine, log.Named("matcher"))
	c.Lifecycle = usecase.NewLifecycle(c.Jobs, cfg.Lifecycle.ArchiveAfter, cfg.Lifecycle.PurgeAfter, log.Named("lifecycle"))

	c.Scraper = scraper.NewRemoteOK(cfg.Scraper.APIURL, cfg.Scraper.UserAgent, c.Jobs, log.Named("scraper"))

	c.Hub = ws.NewHub(log.Named("ws"))
	c.Notifier = ws.NewNotifier(c.Hub)

	return c, nil
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
