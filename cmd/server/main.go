package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/app"
	"github.com/escolakit/scheduler/internal/config"
	"github.com/escolakit/scheduler/internal/controller/httpapi"
	"github.com/escolakit/scheduler/internal/repository"
	"github.com/escolakit/scheduler/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	migrator, err := app.NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	migrator.Close()

	lessonRepo := repository.NewLessonRepository(pool, logger)
	dayRepo := repository.NewNonTeachingDayRepository(pool, logger)
	refRepo := repository.NewReferenceRepository(pool)

	conflicts := service.NewConflictChecker(lessonRepo, logger)
	schedulerService := service.NewSchedulerService(lessonRepo, refRepo, conflicts, logger)
	holidayService := service.NewHolidayService(dayRepo, lessonRepo, logger)
	removalService := service.NewRemovalService(lessonRepo, refRepo, logger)

	sweeper := app.NewSweeper(holidayService, 24*time.Hour, logger)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	handler := httpapi.NewHandler(schedulerService, holidayService, removalService, logger)
	srv := app.NewServer(handler, logger)

	go func() {
		logger.Info("Starting HTTP server",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("environment", cfg.Environment))
		if err := srv.Listen(cfg.HTTPAddr); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	logger.Info("Shutting down")
	if err := srv.Shutdown(); err != nil {
		logger.Error("Shutdown failed", zap.Error(err))
	}
}
