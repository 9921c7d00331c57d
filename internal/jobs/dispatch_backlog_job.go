package jobs

import (
	"context"
	"log/slog"

	"dispatch/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DispatchBacklogJob periodically reports how many orders are still waiting
// for a partner. It only observes; claiming is always driven by partners.
type DispatchBacklogJob struct {
	handler queries.GetPendingOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchBacklogJob creates a job that samples the pending backlog every
// 30 seconds.
func NewDispatchBacklogJob(handler queries.GetPendingOrdersQueryHandler, logger *slog.Logger) *DispatchBacklogJob {
	return &DispatchBacklogJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_backlog_job"),
	}
}

// Start begins the backlog sampling schedule.
func (j *DispatchBacklogJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		query := queries.NewGetPendingOrdersQuery()

		pending, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Dispatch backlog check failed", "error", err)
			return
		}

		if len(pending) > 0 {
			j.logger.InfoContext(ctx, "Orders awaiting a partner", "count", len(pending))
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch backlog job started (sampling every 30 seconds)")
	return nil
}

// Stop stops the backlog sampling schedule.
func (j *DispatchBacklogJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch backlog job stopped")
}
