package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"feedsync/internal/config"
	"feedsync/internal/domain"
	"feedsync/internal/provider/fever"
	"feedsync/internal/provider/greader"
	"feedsync/internal/provider/local"
	"feedsync/internal/publisher"
	"feedsync/internal/scheduler"
	"feedsync/internal/service"
	"feedsync/internal/storage/postgres"
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

	stores := service.Stores{
		Accounts: postgres.NewAccountStore(db),
		Groups:   postgres.NewGroupStore(db),
		Feeds:    postgres.NewFeedStore(db),
		Articles: postgres.NewArticleStore(db),
		Archive:  postgres.NewArchiveStore(db),
	}
	txManager := postgres.NewTransactionManager(db)
	sweeper := service.NewSweeper(stores.Articles, stores.Archive, txManager, logger)

	fetcher := local.New(local.Config{
		Timeout:        cfg.Provider.Timeout,
		UserAgent:      cfg.Provider.UserAgent,
		MaxAttempts:    cfg.Provider.Retry.MaxAttempts,
		InitialBackoff: cfg.Provider.Retry.InitialBackoff,
		MaxBackoff:     cfg.Provider.Retry.MaxBackoff,
	}, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	accounts, err := stores.Accounts.List(ctx)
	if err != nil {
		logger.Error("failed to list accounts", "error", err)
		os.Exit(1)
	}

	sched := scheduler.NewScheduler(cfg.Sync.Interval, logger)
	for i := range accounts {
		account := &accounts[i]

		deps := service.Deps{
			Stores:    stores,
			Fetcher:   fetcher,
			Notifier:  rabbitMQ,
			Sweeper:   sweeper,
			Logger:    logger,
			Sync:      cfg.Sync,
			ReadSince: time.Duration(cfg.Provider.ReadSinceDays) * 24 * time.Hour,
		}
		switch account.Provider {
		case domain.ProviderFever:
			deps.Fever = fever.NewClient(fever.Config{
				ServerURL: account.Credentials.ServerURL,
				Username:  account.Credentials.Username,
				Password:  account.Credentials.Password,
				Timeout:   cfg.Provider.Timeout,
				UserAgent: cfg.Provider.UserAgent,
			}, logger)
		case domain.ProviderGReader:
			deps.GReader = greader.NewClient(greader.Config{
				ServerURL: account.Credentials.ServerURL,
				Username:  account.Credentials.Username,
				Password:  account.Credentials.Password,
				Timeout:   cfg.Provider.Timeout,
				UserAgent: cfg.Provider.UserAgent,
			}, logger)
		}

		syncer, err := service.ForAccount(account, deps)
		if err != nil {
			logger.Error("skipping account", "account", account.ID, "error", err)
			continue
		}
		sched.Add(account, syncer)
	}

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting feed syncer",
		"accounts", len(accounts),
		"interval", cfg.Sync.Interval,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
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
