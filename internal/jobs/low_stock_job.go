package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultLowStockSchedule runs at the start of every minute.
const DefaultLowStockSchedule = "0 * * * * *"

type lowStockHandler interface {
	Handle(ctx context.Context, command commands.RefreshLowStockCommand) (int, error)
}

// LowStockJob reports low ingredients and keeps the stock cache warm.
type LowStockJob struct {
	handler  lowStockHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewLowStockJob(handler lowStockHandler, schedule string, logger *slog.Logger) *LowStockJob {
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	return &LowStockJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_job"),
	}
}

func (j *LowStockJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		count, err := j.handler.Handle(ctx, commands.NewRefreshLowStockCommand())
		if err != nil {
			j.logger.ErrorContext(ctx, "Low stock check failed", "error", err)
			return
		}
		if count > 0 {
			j.logger.InfoContext(ctx, "Low stock check finished", "low", count)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock job started", "schedule", j.schedule)
	return nil
}

func (j *LowStockJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock job stopped")
}
