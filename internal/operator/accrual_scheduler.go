package operator

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/operator/actions"
)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// AccrualScheduler queues one bank-wide AccrueInterest action per interval.
type AccrualScheduler struct {
	processor actionProcessor
	interval  time.Duration
	logger    *logrus.Logger
}

func NewAccrualScheduler(processor actionProcessor, interval time.Duration, logger *logrus.Logger) *AccrualScheduler {
	return &AccrualScheduler{
		processor: processor,
		interval:  interval,
		logger:    logger,
	}
}

// Run blocks until ctx is cancelled.
func (s *AccrualScheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.WithField("interval", s.interval.String()).Info("AccrualScheduler.Run.started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("AccrualScheduler.Run.stopped")
			return
		case <-ticker.C:
			s.accrue(ctx)
		}
	}
}

func (s *AccrualScheduler) accrue(ctx context.Context) {
	start := time.Now()
	action := &actions.AccrueInterest{}
	if err := s.processor.Process(ctx, action); err != nil {
		s.logger.WithError(err).Error("AccrualScheduler.accrue.failed")
		return
	}

	entry := s.logger.WithFields(logrus.Fields{
		"accounts": humanize.Comma(int64(action.Result.Accounts)),
		"duration": time.Since(start).Milliseconds(),
	})
	for symbol, amount := range action.Result.Accrued {
		entry = entry.WithField("accrued_"+symbol, amount.String())
	}
	entry.Info("AccrualScheduler.accrue.complete")
}
