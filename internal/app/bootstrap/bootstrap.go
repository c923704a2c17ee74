package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	progressservice "brandcast/contexts/marketplace/progress-service"
	progresspostgres "brandcast/contexts/marketplace/progress-service/adapters/postgres"
	progressworkers "brandcast/contexts/marketplace/progress-service/application/workers"
	workflowservice "brandcast/contexts/marketplace/workflow-service"
	workflowpostgres "brandcast/contexts/marketplace/workflow-service/adapters/postgres"
	workflowworkers "brandcast/contexts/marketplace/workflow-service/application/workers"
	"brandcast/internal/platform/config"
	"brandcast/internal/platform/db"
	"brandcast/internal/platform/httpserver"
	"brandcast/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres         *db.Postgres
	outboxRelay      workflowworkers.OutboxRelay
	changeConsumer   progressworkers.ChangeConsumer
	backfill         progressworkers.BackfillJob
	pollInterval     time.Duration
	backfillInterval time.Duration
	logger           *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	workflowRepo := workflowpostgres.NewRepository(pg.DB, logger)
	workflowModule := workflowservice.NewModule(workflowservice.Dependencies{
		Campaigns:    workflowRepo,
		Applications: workflowRepo,
		Deliveries:   workflowRepo,
		Disputes:     workflowRepo,
		Profiles:     workflowRepo,
		Audit:        workflowRepo,
		Clock:        workflowpostgres.SystemClock{},
		IDGen:        workflowpostgres.UUIDGenerator{},
		Logger:       logger,
	})

	progressRepo := progresspostgres.NewRepository(pg.DB)
	progressModule := progressservice.NewModule(progressservice.Dependencies{
		Missions: progressRepo,
		Profiles: progressRepo,
		Counter:  progressRepo,
		Clock:    progresspostgres.SystemClock{},
		Logger:   logger,
	})

	server := httpserver.New(workflowModule, progressModule, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	bus := messaging.NewBus(logger)
	workflowRepo := workflowpostgres.NewRepository(pg.DB, logger)
	progressRepo := progresspostgres.NewRepository(pg.DB)

	tracker := progressservice.NewModule(progressservice.Dependencies{
		Missions: progressRepo,
		Profiles: progressRepo,
		Counter:  progressRepo,
		Clock:    progresspostgres.SystemClock{},
		Logger:   logger,
	}).Tracker

	return &WorkerApp{
		postgres: pg,
		outboxRelay: workflowworkers.OutboxRelay{
			Outbox:    workflowRepo,
			Publisher: bus,
			Clock:     workflowpostgres.SystemClock{},
			BatchSize: 100,
			Disabled:  !cfg.EnableOutboxRelay,
			Logger:    logger,
		},
		changeConsumer: progressworkers.ChangeConsumer{
			Subscriber: bus,
			Tracker:    tracker,
			Disabled:   !cfg.EnableMissionConsumer,
			Logger:     logger,
		},
		backfill: progressworkers.BackfillJob{
			Missions: progressRepo,
			Counter:  progressRepo,
			Clock:    progresspostgres.SystemClock{},
			BatchMax: cfg.MissionReconcileBatchMax,
			Disabled: !cfg.EnableMissionBackfill,
			Logger:   logger,
		},
		pollInterval:     cfg.OutboxPollInterval,
		backfillInterval: cfg.BackfillInterval,
		logger:           logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if err := w.changeConsumer.Start(ctx); err != nil {
		return err
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()
	backfillTicker := time.NewTicker(w.backfillInterval)
	defer backfillTicker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
		"backfill_interval", w.backfillInterval.String(),
	)

	for {
		if err := w.outboxRelay.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-backfillTicker.C:
			if err := w.backfill.RunOnce(ctx); err != nil {
				return err
			}
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
