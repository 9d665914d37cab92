package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingResync struct{ calls atomic.Int32 }

func (c *countingResync) Handle(context.Context, commands.ResyncOrdersCommand) error {
	c.calls.Add(1)
	return nil
}

type countingLowStock struct{ calls atomic.Int32 }

func (c *countingLowStock) Handle(context.Context, commands.RefreshLowStockCommand) (int, error) {
	c.calls.Add(1)
	return 0, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestJobManager_RunsJobsOnSchedule(t *testing.T) {
	defer goleak.VerifyNone(t)

	resync := &countingResync{}
	lowStock := &countingLowStock{}
	manager := jobs.NewJobManager(resync, lowStock, jobs.Schedules{
		Resync:   "* * * * * *",
		LowStock: "* * * * * *",
	}, discardLogger())

	require.NoError(t, manager.StartAll())
	assert.Eventually(t, func() bool {
		return resync.calls.Load() > 0 && lowStock.calls.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
	manager.StopAll()
}

func TestJobManager_InvalidScheduleStopsStartedJobs(t *testing.T) {
	defer goleak.VerifyNone(t)

	manager := jobs.NewJobManager(&countingResync{}, &countingLowStock{}, jobs.Schedules{
		LowStock: "not a schedule",
	}, discardLogger())

	err := manager.StartAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "low stock job")
}

func TestResyncJob_InvalidSchedule(t *testing.T) {
	job := jobs.NewResyncJob(&countingResync{}, "61 * * * * *", discardLogger())
	require.Error(t, job.Start())
}
