package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/baharkarakas/points-backend/internal/api"
	"github.com/baharkarakas/points-backend/internal/config"
	"github.com/baharkarakas/points-backend/internal/db"
	"github.com/baharkarakas/points-backend/internal/logger"
	"github.com/baharkarakas/points-backend/internal/metrics"
	repo "github.com/baharkarakas/points-backend/internal/repository"
	"github.com/baharkarakas/points-backend/internal/repository/dynamodb"
	"github.com/baharkarakas/points-backend/internal/repository/memory"
	"github.com/baharkarakas/points-backend/internal/repository/postgres"
	"github.com/baharkarakas/points-backend/internal/services"
	"github.com/baharkarakas/points-backend/internal/worker"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeRepos, err := openRepositories(ctx, cfg, log)
	if err != nil {
		log.Error("storage", "backend", cfg.StoreBackend, "err", err)
		os.Exit(1)
	}
	defer closeRepos()

	wp := worker.NewPool(cfg.WorkerCount)
	defer wp.Stop()

	pointSvc := services.NewPointService(repos.UserPoints, repos.PointHistories,
		services.WithMaxBalance(cfg.MaxBalance),
		services.WithConsistentReads(cfg.ConsistentReads),
		services.WithLogger(log),
		services.WithAudit(repos.AuditLogs, wp),
	)

	metrics.Init()
	r := api.NewRouter(cfg, log, pointSvc)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting",
			"port", cfg.HTTPPort,
			"backend", cfg.StoreBackend,
			"max_balance", cfg.MaxBalance,
			"consistent_reads", cfg.ConsistentReads,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown", "err", err)
	}
}

func openRepositories(ctx context.Context, cfg config.Config, log *slog.Logger) (repo.Repositories, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendMemory:
		log.Warn("using in-memory storage; data is lost on restart")
		return memory.NewRepositories(), func() {}, nil

	case config.BackendPostgres:
		pool, err := db.NewPool(ctx, cfg.DatabaseURL, cfg.DBMaxConns)
		if err != nil {
			return repo.Repositories{}, nil, fmt.Errorf("db connect: %w", err)
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return repo.Repositories{}, nil, fmt.Errorf("migrations: %w", err)
			}
		}
		return postgres.NewRepositories(pool), pool.Close, nil

	case config.BackendDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return repo.Repositories{}, nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		client := awsdynamodb.NewFromConfig(awsCfg, func(o *awsdynamodb.Options) {
			if cfg.DynamoEndpoint != "" {
				o.BaseEndpoint = aws.String(cfg.DynamoEndpoint)
			}
		})
		return dynamodb.NewRepositories(client, cfg.DynamoPointsTable, cfg.DynamoHistoriesTable, cfg.DynamoAuditTable), func() {}, nil
	}
	return repo.Repositories{}, nil, fmt.Errorf("unknown STORE_BACKEND %q", cfg.StoreBackend)
}
