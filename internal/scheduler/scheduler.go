package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type paymentRepairer interface {
	RepairRecent(ctx context.Context, window time.Duration) (int, error)
}

// Scheduler periodically re-applies grant writes for recent ledger entries,
// closing the ledger-without-grant gap left by a crash between the ledger
// insert and the grant insert.
type Scheduler struct {
	payments paymentRepairer
	interval time.Duration
	window   time.Duration
	logger   logger.Logger
}

func New(
	payments paymentRepairer,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		payments: payments,
		interval: interval,
		window:   window,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("repair scheduler started",
		logger.Duration("interval", s.interval),
		logger.Duration("window", s.window),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("repair scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	repaired, err := s.payments.RepairRecent(ctx, s.window)
	if err != nil {
		s.logger.Error("repair sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if repaired > 0 {
		s.logger.Info("repair sweep applied missing grants",
			logger.Int("count", repaired),
		)
	}
}
