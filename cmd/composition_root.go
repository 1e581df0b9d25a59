package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"pos/internal/adapters/out/partnerclient"
	"pos/internal/adapters/out/postgres"
	"pos/internal/core/application/usecases/commands"
	"pos/internal/core/application/usecases/queries"
	"pos/internal/core/domain/services"
	"pos/internal/jobs"
	"pos/internal/workers/dispatch"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	dispatchPool *dispatch.Pool
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	policy, err := services.NewAttemptPolicy(
		config.DispatchMaxAttempts,
		time.Duration(config.DispatchAttemptSeconds)*time.Second,
	)
	if err != nil {
		return nil, fmt.Errorf("attempt policy: %w", err)
	}

	confirmer := partnerclient.NewStubDeliveryConfirmer(
		config.DeliverySuccessProbability,
		config.DeliverySimulationSeed,
	)
	root.dispatchPool = dispatch.NewPool(
		policy,
		confirmer,
		root.CreateMarkOrderDispatchedCommandHandler(),
		root.CreateCancelOrderCommandHandler(),
		logger,
	)
	return root, nil
}

func (c *CompositionRoot) DispatchPool() *dispatch.Pool {
	return c.dispatchPool
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.orderUoWFactory(),
		c.dispatchPool,
		c.config.DispatchSweepSeconds,
		c.logger,
	)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.dispatchPool)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() commands.UpdateOrderStatusCommandHandler {
	return commands.NewUpdateOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMarkOrderDispatchedCommandHandler() commands.MarkOrderDispatchedCommandHandler {
	return commands.NewMarkOrderDispatchedCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateIngestPartnerEventsCommandHandler() commands.IngestPartnerEventsCommandHandler {
	return commands.NewIngestPartnerEventsCommandHandler(c.partnerUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateSavePartnerConfigCommandHandler() commands.SavePartnerConfigCommandHandler {
	return commands.NewSavePartnerConfigCommandHandler(c.configUoWFactory())
}

func (c *CompositionRoot) CreateRefreshPartnerTokenCommandHandler() commands.RefreshPartnerTokenCommandHandler {
	return commands.NewRefreshPartnerTokenCommandHandler(
		c.configUoWFactory(),
		partnerclient.NewHTTPTokenClient(c.config.PartnerBaseURL),
	)
}

func (c *CompositionRoot) CreateSimulatePartnerOrdersCommandHandler() commands.SimulatePartnerOrdersCommandHandler {
	return commands.NewSimulatePartnerOrdersCommandHandler(c.CreateIngestPartnerEventsCommandHandler())
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDispatchQueueQueryHandler() queries.GetDispatchQueueQueryHandler {
	return queries.NewGetDispatchQueueQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPartnerConfigQueryHandler() queries.GetPartnerConfigQueryHandler {
	return queries.NewGetPartnerConfigQueryHandler(c.gormDB)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) partnerUoWFactory() commands.PartnerUoWFactory {
	return FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) configUoWFactory() commands.ConfigUoWFactory {
	return FuncConfigUoWFactory(func() commands.ConfigUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}

type FuncConfigUoWFactory func() commands.ConfigUoW

func (f FuncConfigUoWFactory) Create() commands.ConfigUoW {
	return f()
}
