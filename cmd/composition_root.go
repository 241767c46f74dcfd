package cmd

import (
	"log/slog"
	"time"

	httpadapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/services"
	"tracking/internal/jobs"
	"tracking/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	metrics    *metrics.Metrics
	clock      commands.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, reg prometheus.Registerer, logger *slog.Logger) (CompositionRoot, error) {
	location, err := time.LoadLocation(config.Timezone)
	if err != nil {
		return CompositionRoot{}, err
	}

	m := metrics.New(reg)
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, m),
		metrics:    m,
		clock:      func() time.Time { return time.Now().In(location) },
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) CreateCreateLegacyOrderCommandHandler() commands.CreateLegacyOrderCommandHandler {
	return commands.NewCreateLegacyOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateDirectOrderCommandHandler() commands.CreateDirectOrderCommandHandler {
	return commands.NewCreateDirectOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() commands.AdvanceOrderCommandHandler {
	return commands.NewAdvanceOrderCommandHandler(c.fullUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRegisterDeliveryCommandHandler() commands.RegisterDeliveryCommandHandler {
	return commands.NewRegisterDeliveryCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAdvanceOrderByFlowCommandHandler() commands.AdvanceOrderByFlowCommandHandler {
	return commands.NewAdvanceOrderByFlowCommandHandler(c.fullUoWFactory(), c.clock, services.DefaultSlugFlowTable())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderEventsQueryHandler() queries.GetOrderEventsQueryHandler {
	return queries.NewGetOrderEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCountOrdersByStatusQueryHandler() queries.CountOrdersByStatusQueryHandler {
	return queries.NewCountOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		CreateLegacyOrder:  c.CreateCreateLegacyOrderCommandHandler(),
		CreateDirectOrder:  c.CreateCreateDirectOrderCommandHandler(),
		AdvanceOrder:       c.CreateAdvanceOrderCommandHandler(),
		RegisterDelivery:   c.CreateRegisterDeliveryCommandHandler(),
		AdvanceOrderByFlow: c.CreateAdvanceOrderByFlowCommandHandler(),
		ListOrders:         c.CreateListOrdersQueryHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetOrderEvents:     c.CreateGetOrderEventsQueryHandler(),
	}, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewOrderStatusMetricsJob(c.CreateCountOrdersByStatusQueryHandler(), c.metrics, c.config.MetricsCron, c.logger),
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
