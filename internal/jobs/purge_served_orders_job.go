package jobs

import (
	"context"
	"log/slog"
	"time"

	"orderboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PurgeServedOrdersJob manages the scheduled cleanup of served orders.
// Runs hourly to remove served orders that have aged past the retention
// window, keeping the orders table bounded.
type PurgeServedOrdersJob struct {
	handler   commands.PurgeServedOrdersCommandHandler
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewPurgeServedOrdersJob creates a new job for purging aged served orders.
// Uses PurgeServedOrdersCommandHandler with the given retention window.
func NewPurgeServedOrdersJob(
	handler commands.PurgeServedOrdersCommandHandler,
	retention time.Duration,
	logger *slog.Logger,
) *PurgeServedOrdersJob {
	return &PurgeServedOrdersJob{
		handler:   handler,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "purge_served_orders_job"),
	}
}

// Start begins the purge job to run at the top of every hour.
func (j *PurgeServedOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeServedOrdersCommand(j.retention)
		if err != nil {
			j.logger.ErrorContext(ctx, "Purge served orders job misconfigured", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Purge served orders job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged aged served orders", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Purge served orders job started (running hourly)")
	return nil
}

// Stop stops the purge job.
func (j *PurgeServedOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Purge served orders job stopped")
}
