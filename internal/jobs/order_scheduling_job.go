package jobs

import (
	"context"
	"errors"
	"log/slog"

	"deliverytime/internal/core/application/usecases/commands"
	"deliverytime/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

type scheduleOrderDeliveriesHandler interface {
	Handle(ctx context.Context, cmd commands.ScheduleOrderDeliveriesCommand) (int, error)
}

// OrderSchedulingJob periodically stamps orders in Created status with their rule estimate.
type OrderSchedulingJob struct {
	handler scheduleOrderDeliveriesHandler
	spec    string
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOrderSchedulingJob creates the job. spec is a six-field cron expression
// (seconds first), e.g. "*/5 * * * * *". A run still in progress makes the next tick skip.
func NewOrderSchedulingJob(handler scheduleOrderDeliveriesHandler, spec string, logger *slog.Logger) *OrderSchedulingJob {
	return &OrderSchedulingJob{
		handler: handler,
		spec:    spec,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger.With("component", "order_scheduling_job"),
	}
}

// Start registers the schedule and starts the cron loop.
func (j *OrderSchedulingJob) Start() error {
	if _, err := j.cron.AddFunc(j.spec, func() { j.RunOnce(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order scheduling job started", "schedule", j.spec)
	return nil
}

// RunOnce performs one scheduling pass.
func (j *OrderSchedulingJob) RunOnce(ctx context.Context) {
	scheduled, err := j.handler.Handle(ctx, commands.NewScheduleOrderDeliveriesCommand())
	if err != nil {
		// Nothing to schedule, or orders wait for the first rule
		if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, services.ErrNoRulesConfigured) {
			j.logger.ErrorContext(ctx, "Order scheduling job failed", "error", err)
		}
		return
	}

	if scheduled > 0 {
		j.logger.InfoContext(ctx, "Orders scheduled", "count", scheduled)
	}
}

// Stop stops the cron loop and waits for a running pass to finish.
func (j *OrderSchedulingJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order scheduling job stopped")
}
