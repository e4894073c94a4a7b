package main

import (
	"context"
	"fmt"

	"monitor-srv/config"
	"monitor-srv/config/postgre"
	configRedis "monitor-srv/config/redis"
	"monitor-srv/internal/alert"
	alertUC "monitor-srv/internal/alert/usecase"
	"monitor-srv/internal/classifier"
	"monitor-srv/internal/httpserver"
	"monitor-srv/internal/monitor"
	monitorRepo "monitor-srv/internal/monitor/repository/postgre"
	monitorUC "monitor-srv/internal/monitor/usecase"
	"monitor-srv/internal/notification"
	"monitor-srv/internal/notification/transport"
	notificationUC "monitor-srv/internal/notification/usecase"
	shipmentRepo "monitor-srv/internal/shipment/repository/postgre"
	telemetryRepo "monitor-srv/internal/shipment/repository/redis"
	shipmentUC "monitor-srv/internal/shipment/usecase"
	"monitor-srv/pkg/a2a"
	"monitor-srv/pkg/discord"
	"monitor-srv/pkg/log"
	"monitor-srv/pkg/scope"
)

// @title       CW Logistics Exception Monitor
// @description Exception monitoring and notification dispatch for in-flight shipments.
// @version     1.0
// @host        localhost:8080
// @schemes     http
// @BasePath    /
//
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config:", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

	// Initialize the exception-handling agent client
	agent, err := a2a.New(logger, a2a.Config{
		BaseURL:    cfg.A2A.BaseURL,
		Timeout:    cfg.A2A.Timeout,
		RetryCount: cfg.A2A.RetryCount,
		RetryDelay: cfg.A2A.RetryDelay,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize A2A client: ", err)
		return
	}
	defer agent.Close()

	// Initialize ops alerting. Runs without Discord when no webhook is set.
	var alerts alert.UseCase
	if cfg.Discord.WebhookURL != "" {
		discordClient, err := discord.New(logger, cfg.Discord.WebhookURL)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
		alerts = alertUC.New(logger, discordClient)
	} else {
		logger.Warn(ctx, "DISCORD_WEBHOOK_URL not set, ops alerts disabled")
		alerts = alertUC.NewNoop(logger)
	}

	// Wire repositories and usecases
	monitorCfg := monitor.Config{
		Interval:               cfg.Monitor.Interval,
		DelayThreshold:         cfg.Monitor.DelayThreshold,
		ConfidenceThreshold:    cfg.Monitor.ConfidenceThreshold,
		TempDeviationThreshold: cfg.Monitor.TempDeviationThreshold,
		MilestoneThreshold:     cfg.Monitor.MilestoneThreshold,
		CycleTimeout:           cfg.Monitor.CycleTimeout,
		ShutdownTimeout:        cfg.Monitor.ShutdownTimeout,
		Workers:                cfg.Monitor.Workers,
	}

	shipments := shipmentUC.New(logger,
		shipmentRepo.New(logger, postgresDB),
		telemetryRepo.New(logger, redisClient),
	)

	notifier := notificationUC.New(logger,
		notification.Config{
			ConfidenceThreshold: cfg.Monitor.ConfidenceThreshold,
			TrackingBaseURL:     cfg.Notification.TrackingBaseURL,
		},
		agent,
		transport.NewLog(logger),
		shipments,
		classifier.NewHeuristic(logger),
	)

	monitorUseCase := monitorUC.New(logger, monitorCfg, shipments, notifier, alerts, monitorRepo.New(logger, postgresDB))
	scheduler := monitorUC.NewScheduler(logger, monitorUseCase, monitorCfg)

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Port:        cfg.HTTPServer.Port,
		Environment: cfg.HTTPServer.Mode,

		// Monitoring core
		MonitorUC:       monitorUseCase,
		Scheduler:       scheduler,
		NotificationUC:  notifier,
		ShutdownTimeout: cfg.Monitor.ShutdownTimeout,

		// Authentication & Security Configuration
		JWTManager: scope.New(cfg.JWT.SecretKey),

		// External services
		DB:    postgresDB,
		Redis: redisClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
