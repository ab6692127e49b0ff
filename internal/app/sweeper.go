package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/escolakit/scheduler/internal/service"
)

// Sweeper периодически повторяет отмену занятий на неучебные дни.
// Подбирает занятия, проскочившие мимо каскада при гонке с объявлением дня
type Sweeper struct {
	holidays *service.HolidayService
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewSweeper создаёт новый фоновый свипер
func NewSweeper(holidays *service.HolidayService, interval time.Duration, logger *zap.Logger) *Sweeper {
	return &Sweeper{
		holidays: holidays,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновую задачу
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Starting non-teaching day sweeper", zap.Duration("interval", s.interval))
	go s.run(ctx)
}

// Stop останавливает фоновую задачу
func (s *Sweeper) Stop() {
	s.logger.Info("Stopping non-teaching day sweeper")
	close(s.stopChan)
}

func (s *Sweeper) run(ctx context.Context) {
	// Первый прогон сразу при старте
	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stopChan:
			s.logger.Info("Sweeper stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Sweeper cancelled")
			return
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	if err := s.holidays.Sweep(ctx); err != nil {
		s.logger.Error("Sweep failed", zap.Error(err))
	}
}
