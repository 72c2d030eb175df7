package components

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"streetwise/internal/api"
	"streetwise/internal/config"
	"streetwise/internal/redis"
	"streetwise/internal/service"
	"streetwise/internal/storage/postgres"
	"streetwise/pkg/logger"
)

type Components struct {
	logger      *slog.Logger
	HttpServer  *api.Server
	Postgres    *postgres.Postgres
	Redis       *redis.Redis
	AlertSender *service.AlertSender
}

func InitComponents(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Components, error) {
	logger.Info("Initializing Postgres")
	storage, err := postgres.NewPostgres(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to init postgres", slog.Any("error", err))
		return nil, fmt.Errorf("failed to init postgres: %w", err)
	}

	logger.Info("Initializing Redis")
	redisClient, err := redis.NewRedis(ctx, cfg, logger)
	if err != nil {
		storage.Pool.Close()
		return nil, fmt.Errorf("failed to init redis: %w", err)
	}

	sessions := redis.NewSessionStore(redisClient, cfg.Session.TTL)
	overviewCache := redis.NewOverviewCache(redisClient)
	alertQueue := redis.NewAlertQueue(redisClient.Client, "alerts:queue")

	reportSvc := service.NewReportService(storage.Reports(), alertQueue, logger, nil)
	escortSvc := service.NewEscortService(storage.Escorts(), logger, nil)
	chatSvc := service.NewChatService(storage.Reports(), storage.Chats(), logger, nil)
	authSvc := service.NewAuthService(storage.Users(), sessions, logger)
	statsSvc := service.NewStatsService(storage.Stats(), storage.Reports(), storage.Escorts(), overviewCache, logger, nil)
	activitySvc := service.NewActivityService(storage.Reports(), storage.Escorts())

	svc := service.NewService(reportSvc, escortSvc, chatSvc, authSvc, statsSvc, activitySvc)

	var alertSender *service.AlertSender
	if cfg.Alert.Disabled || cfg.Alert.WebhookURL == "" {
		logger.Info("Alert webhook disabled")
	} else {
		alertSender = service.NewAlertSender(logger, cfg.Alert, alertQueue)
	}

	httpServer := api.NewServer(cfg, logger, svc, sessions)
	logger.Info("Initialized server")

	return &Components{
		logger:      logger,
		HttpServer:  httpServer,
		Postgres:    storage,
		Redis:       redisClient,
		AlertSender: alertSender,
	}, nil
}

func SetupLogger(env string) *slog.Logger {
	switch env {
	case "local":
		return logger.SetupPrettySlog()
	case "dev":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default:
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
}

func (c *Components) ShutdownAll() {
	start := time.Now()
	c.logger.Info("Shutting down components")

	c.Postgres.Pool.Close()
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.logger.Error("Redis close failed", slog.String("err", err.Error()))
		}
	}

	c.logger.Info("All components shut down",
		slog.Duration("latency", time.Since(start)))
}
