package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/mukeshvesalapu/MediShield-DR/internal/config"
	"github.com/mukeshvesalapu/MediShield-DR/internal/repository/mongodb"
	"github.com/mukeshvesalapu/MediShield-DR/internal/scheduler"
	"github.com/mukeshvesalapu/MediShield-DR/internal/server/handlers"
	"github.com/mukeshvesalapu/MediShield-DR/internal/server/router"
	authsvc "github.com/mukeshvesalapu/MediShield-DR/internal/service/auth"
	backupsvc "github.com/mukeshvesalapu/MediShield-DR/internal/service/backup"
	floorsvc "github.com/mukeshvesalapu/MediShield-DR/internal/service/floors"
	insightsvc "github.com/mukeshvesalapu/MediShield-DR/internal/service/insight"
	restoresvc "github.com/mukeshvesalapu/MediShield-DR/internal/service/restore"
	statussvc "github.com/mukeshvesalapu/MediShield-DR/internal/service/status"
	"github.com/mukeshvesalapu/MediShield-DR/pkg/clients/gemini"
	"github.com/mukeshvesalapu/MediShield-DR/pkg/logger"
	"github.com/mukeshvesalapu/MediShield-DR/pkg/notify"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New())
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	mongoClient, err := mongodb.NewClient(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
	if err != nil {
		baseLogger.Fatal("failed to init mongodb client", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			baseLogger.Error("failed to close mongodb connection", zap.Error(err))
		}
	}()

	floorRepo := mongodb.NewFloorRepository(mongoClient)
	snapshotRepo := mongodb.NewSnapshotRepository(mongoClient)

	// Initialize alert notifier
	var notifier backupsvc.Notifier
	mailCfg := notify.Config{
		Host:     cfg.Mail.Host,
		Port:     cfg.Mail.Port,
		Username: cfg.Mail.Username,
		Password: cfg.Mail.Password,
		From:     cfg.Mail.From,
		To:       cfg.Mail.To,
	}
	if mailCfg.Enabled() {
		mailNotifier, err := notify.NewMailNotifier(mailCfg, baseLogger.Named("notify"))
		if err != nil {
			baseLogger.Fatal("failed to init mail notifier", zap.Error(err))
		}
		notifier = mailNotifier
		baseLogger.Info("email alerts enabled")
	} else {
		baseLogger.Warn("smtp settings missing, email alerts disabled")
	}

	// Initialize AI client
	var aiClient gemini.Client
	if cfg.AI.GeminiKey != "" {
		aiClient = gemini.NewClient(cfg.AI.GeminiKey)
		baseLogger.Info("gemini ai client enabled")
	} else {
		baseLogger.Warn("gemini api key missing, analysis will use calculated fallback")
	}

	authSvc, err := authsvc.NewService(cfg.Auth.JWTSecret, baseLogger.Named("svc.auth"))
	if err != nil {
		baseLogger.Fatal("failed to init auth service", zap.Error(err))
	}

	floorSvc := floorsvc.NewService(floorRepo, baseLogger.Named("svc.floors"))
	backupSvc := backupsvc.NewService(snapshotRepo, floorSvc, notifier, baseLogger.Named("svc.backup"))
	restoreSvc := restoresvc.NewService(snapshotRepo, baseLogger.Named("svc.restore"))
	statusSvc := statussvc.NewService(floorRepo, snapshotRepo, baseLogger.Named("svc.status"))
	insightSvc := insightsvc.NewService(floorSvc, snapshotRepo, aiClient, baseLogger.Named("svc.insight"))

	engine := router.New(router.Handlers{
		Auth:    handlers.NewAuthHandler(authSvc, baseLogger.Named("handlers.auth")),
		Floors:  handlers.NewFloorHandler(floorSvc, baseLogger.Named("handlers.floors")),
		Backup:  handlers.NewBackupHandler(backupSvc, baseLogger.Named("handlers.backup")),
		Restore: handlers.NewRestoreHandler(restoreSvc, baseLogger.Named("handlers.restore")),
		Status:  handlers.NewStatusHandler(statusSvc, baseLogger.Named("handlers.status")),
		Insight: handlers.NewInsightHandler(insightSvc, baseLogger.Named("handlers.insight")),
	}, authSvc, baseLogger.Named("router"))

	// Initialize Scheduler
	sched := scheduler.NewScheduler(cfg.Backup.Interval, backupSvc, baseLogger.Named("scheduler"))
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
