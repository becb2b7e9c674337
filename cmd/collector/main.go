package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"clip_collector/internal/config"
	"clip_collector/internal/filter"
	"clip_collector/internal/publisher"
	"clip_collector/internal/quota"
	"clip_collector/internal/scheduler"
	"clip_collector/internal/server"
	"clip_collector/internal/service"
	"clip_collector/internal/signature"
	"clip_collector/internal/source/youtube"
	"clip_collector/internal/storage/postgres"
	"clip_collector/internal/worker"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Publishing is optional; deployments without a broker leave the URL empty.
	var pub service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		pub = rabbitMQ
	}

	channelStore := postgres.NewChannelStore(db)
	videoStore := postgres.NewVideoStore(db)
	txManager := postgres.NewTransactionManager(db)

	governor := quota.NewGovernor(cfg.YouTube.DailyQuotaLimit)
	client := youtube.NewClient(youtube.Config{
		BaseURL: cfg.YouTube.BaseURL,
		APIKey:  cfg.YouTube.APIKey,
		Timeout: cfg.YouTube.Timeout,
	}, governor, logger)

	filterEngine := filter.New()

	discoveryService := service.NewDiscoveryService(
		client,
		channelStore,
		filterEngine,
		txManager,
		governor,
		logger,
		cfg.Discovery,
	)
	syncService := service.NewSyncService(
		client,
		channelStore,
		videoStore,
		filterEngine,
		pub,
		logger,
		cfg.Sync,
	)
	notificationService := service.NewNotificationService(
		client,
		channelStore,
		videoStore,
		pub,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := worker.NewPool(notificationService, cfg.Webhook.QueueSize, logger)
	pool.Start(ctx)
	defer pool.Stop()

	if cfg.Sync.Interval > 0 {
		sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("scheduler error", "error", err)
			}
		}()
	}

	verifier := signature.NewVerifier(
		cfg.Webhook.HubSecret,
		cfg.Webhook.BrokerCurrentKey,
		cfg.Webhook.BrokerNextKey,
	)
	srv := server.New(verifier, pool, discoveryService, syncService, cfg.CronSecret, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           srv.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown error", "error", err)
		}
		cancel()
	}()

	logger.Info("starting clip collector",
		"addr", cfg.Server.Addr,
		"sync_interval", cfg.Sync.Interval,
		"daily_quota_limit", cfg.YouTube.DailyQuotaLimit,
	)

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
