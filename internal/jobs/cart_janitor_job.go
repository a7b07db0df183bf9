package jobs

import (
	"context"
	"log/slog"
	"time"

	"restaurant/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// CartJanitorJob purges cart lines that have been idle longer than the
// configured duration. Runs at the top of every hour.
type CartJanitorJob struct {
	handler commands.PurgeAbandonedCartsCommandHandler
	idleFor time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewCartJanitorJob creates a job that purges abandoned cart lines.
// Uses PurgeAbandonedCartsCommandHandler with the configured idle window.
func NewCartJanitorJob(
	handler commands.PurgeAbandonedCartsCommandHandler,
	idleFor time.Duration,
	logger *slog.Logger,
) *CartJanitorJob {
	return &CartJanitorJob{
		handler: handler,
		idleFor: idleFor,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "cart_janitor_job"),
	}
}

// Start begins the janitor job, running at the start of every hour.
func (j *CartJanitorJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeAbandonedCartsCommand(j.idleFor)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart janitor job misconfigured", "error", err)
			return
		}

		purged, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Cart janitor job failed", "error", err)
			return
		}

		if purged > 0 {
			j.logger.InfoContext(ctx, "Purged abandoned cart lines", "count", purged)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Cart janitor job started (running hourly)")
	return nil
}

// Stop stops the janitor job.
func (j *CartJanitorJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Cart janitor job stopped")
}
