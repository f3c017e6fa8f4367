package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"paper-analyzer/internal/domain"
	"paper-analyzer/internal/repository"
	"paper-analyzer/internal/service"
	"paper-analyzer/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config            domain.Config
	Logger            domain.Logger
	RedisClient       *redis.Client
	SummaryRepository domain.SummaryRepository
	AnalysisService   *service.AnalysisService
}

// NewContainer wires the analysis pipeline. No connection is opened here;
// the store is dialed on the first write.
func NewContainer(config domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(config.GetLogLevel())

	extractor, err := service.NewTextExtractor(domain.PDFEngine(config.GetPDFEngine()), appLogger)
	if err != nil {
		return nil, err
	}

	redisClient := repository.NewRedisClient(config.GetRedisAddr(), config.GetRedisPassword(), config.GetRedisDB())
	summaryRepo := repository.NewRedisSummaryRepository(redisClient, appLogger)

	return &Container{
		Config:            config,
		Logger:            appLogger,
		RedisClient:       redisClient,
		SummaryRepository: summaryRepo,
		AnalysisService:   service.NewAnalysisService(extractor, summaryRepo, appLogger),
	}, nil
}

// NewLauncher returns the launcher selected by WORKER_MODE
func (c *Container) NewLauncher() (domain.AnalysisLauncher, error) {
	switch c.Config.GetWorkerMode() {
	case WorkerModeInProcess, "":
		return service.NewInProcessLauncher(c.AnalysisService, c.Logger), nil
	case WorkerModeDocker:
		launcher, err := service.NewDockerLauncher(c.Config.GetWorkerImage(), c.Logger)
		if err != nil {
			return nil, err
		}
		return launcher, nil
	default:
		return nil, fmt.Errorf("unknown worker mode %q", c.Config.GetWorkerMode())
	}
}

// NewArchive returns the Supabase archive, or nil when Supabase is not configured
func (c *Container) NewArchive() (domain.DocumentArchive, error) {
	if c.Config.GetSupabaseURL() == "" {
		return nil, nil
	}
	archive, err := repository.NewSupabaseArchive(c.Config, c.Logger)
	if err != nil {
		return nil, err
	}
	return archive, nil
}

// NewSessionService wires the server-side session operations
func (c *Container) NewSessionService(launcher domain.AnalysisLauncher) (*service.SessionService, error) {
	archive, err := c.NewArchive()
	if err != nil {
		return nil, err
	}

	fetcher := service.NewUnpaywallFetcher(c.Config.GetUnpaywallEmail(), c.Logger)
	svc := service.NewSessionService(
		c.Config.GetSessionsDir(),
		launcher,
		fetcher,
		archive,
		c.SummaryRepository,
		c.Logger,
	)
	return svc, nil
}

// Close releases the store connection
func (c *Container) Close() error {
	return c.RedisClient.Close()
}
