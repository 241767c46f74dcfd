package jobs

import (
	"context"
	"log/slog"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

type statusCounter interface {
	Handle(ctx context.Context, query queries.CountOrdersByStatusQuery) (map[order.Status]int64, error)
}

type statusGauge interface {
	SetOrdersByStatus(counts map[order.Status]int64)
}

// OrderStatusMetricsJob refreshes the per-status order gauge on a schedule.
type OrderStatusMetricsJob struct {
	counter  statusCounter
	gauge    statusGauge
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderStatusMetricsJob takes a six-field cron expression (seconds first).
func NewOrderStatusMetricsJob(
	counter statusCounter,
	gauge statusGauge,
	schedule string,
	logger *slog.Logger,
) *OrderStatusMetricsJob {
	return &OrderStatusMetricsJob{
		counter:  counter,
		gauge:    gauge,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "order_status_metrics_job"),
	}
}

func (j *OrderStatusMetricsJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order status metrics job started", "schedule", j.schedule)
	return nil
}

// Run performs one refresh. Failures are logged and the gauge keeps its last values.
func (j *OrderStatusMetricsJob) Run(ctx context.Context) {
	counts, err := j.counter.Handle(ctx, queries.NewCountOrdersByStatusQuery())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order status metrics job failed", "error", err)
		return
	}

	j.gauge.SetOrdersByStatus(counts)
}

func (j *OrderStatusMetricsJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order status metrics job stopped")
}
