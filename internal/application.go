package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rocketscienceinc/tictactoe-solver/internal/config"
	"github.com/rocketscienceinc/tictactoe-solver/internal/metrics"
	"github.com/rocketscienceinc/tictactoe-solver/internal/minimax"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository"
	"github.com/rocketscienceinc/tictactoe-solver/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-solver/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-solver/transport/cli"
	"github.com/rocketscienceinc/tictactoe-solver/transport/rest"
)

var (
	ErrAddrNotFound        = errors.New("redis address string is empty")
	ErrUnknownCacheBackend = errors.New("unknown cache backend")
)

// New wires the solver, the solution cache and the HTTP API according to conf.
func New(ctx context.Context, logger *slog.Logger, conf *config.Config) (*cli.Runtime, error) {
	log := logger.With("component", "app")

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.New(registry)

	solutionRepo, closeRepo, err := newSolutionRepository(ctx, conf)
	if err != nil {
		return nil, err
	}

	log.Debug("solution cache ready", "backend", conf.Cache.Backend)

	solver := minimax.New(logger,
		minimax.WithTranspositionTable(conf.Search.TranspositionSize),
		minimax.WithParallelRoot(conf.Search.ParallelRoot),
		minimax.WithObserver(collector),
	)
	solveManager := usecase.NewSolveManager(logger, solutionRepo, solver, collector)
	server := rest.New(logger, solveManager, registry)

	return &cli.Runtime{
		Logger:  logger,
		Service: solveManager,
		Serve: func(ctx context.Context) error {
			if err := server.Start(ctx, conf.HTTPPort); err != nil {
				return fmt.Errorf("HTTP server error: %w", err)
			}

			log.Info("Application context canceled, shutting down")

			return nil
		},
		Close: closeRepo,
	}, nil
}

// newSolutionRepository returns a nil repository for the "none" backend.
func newSolutionRepository(ctx context.Context, conf *config.Config) (repository.SolutionRepository, func() error, error) {
	noClose := func() error { return nil }

	switch conf.Cache.Backend {
	case config.CacheBackendNone:
		return nil, noClose, nil
	case config.CacheBackendMemory:
		solutionRepo, err := repository.NewMemorySolutionRepository(conf.Cache.Size)
		if err != nil {
			return nil, nil, fmt.Errorf("could not create memory cache: %w", err)
		}

		return solutionRepo, noClose, nil
	case config.CacheBackendRedis:
		redisAddrString := conf.Redis.GetRedisAddr()
		if redisAddrString == "" {
			return nil, nil, ErrAddrNotFound
		}

		redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		return repository.NewSolutionRepository(redisStorage.Connection, conf.Cache.TTL), redisStorage.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownCacheBackend, conf.Cache.Backend)
	}
}
