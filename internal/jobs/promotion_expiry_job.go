package jobs

import (
	"context"
	"log/slog"
	"time"

	"laundry/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// PromotionExpiryJob manages the scheduled deactivation of promotions whose
// validity window has passed. Runs at the top of every minute.
type PromotionExpiryJob struct {
	handler commands.ExpirePromotionsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewPromotionExpiryJob creates a new job for expiring promotions.
// Uses ExpirePromotionsCommandHandler to sweep expired promotions every minute.
func NewPromotionExpiryJob(handler commands.ExpirePromotionsCommandHandler, logger *slog.Logger) *PromotionExpiryJob {
	return &PromotionExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "promotion_expiry_job"),
	}
}

// Start begins the promotion expiry job to run every minute.
func (j *PromotionExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpirePromotionsCommand(time.Now())
		if err != nil {
			j.logger.ErrorContext(ctx, "Promotion expiry command construction failed", "error", err)
			return
		}

		if err = j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Promotion expiry job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Promotion expiry job started (running every minute)")
	return nil
}

// Stop stops the promotion expiry job.
func (j *PromotionExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Promotion expiry job stopped")
}
