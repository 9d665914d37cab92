package jobs

import (
	"context"
	"log/slog"

	"fulfillment/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultResyncSchedule runs the resync every five seconds.
const DefaultResyncSchedule = "*/5 * * * * *"

type resyncHandler interface {
	Handle(ctx context.Context, command commands.ResyncOrdersCommand) error
}

// ResyncJob periodically reloads orders whose commit failed.
type ResyncJob struct {
	handler  resyncHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewResyncJob creates the job. An empty schedule selects DefaultResyncSchedule.
// Schedules use the six-field cron format with seconds.
func NewResyncJob(handler resyncHandler, schedule string, logger *slog.Logger) *ResyncJob {
	if schedule == "" {
		schedule = DefaultResyncSchedule
	}
	return &ResyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "resync_job"),
	}
}

func (j *ResyncJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		if err := j.handler.Handle(ctx, commands.NewResyncOrdersCommand()); err != nil {
			j.logger.ErrorContext(ctx, "Order resync failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Resync job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running resync to finish.
func (j *ResyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Resync job stopped")
}
