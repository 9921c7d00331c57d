package cmd

import (
	"log/slog"

	httpadapter "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/inmemory"
	"dispatch/internal/adapters/out/notifier"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	uowFactory   ports.UnitOfWorkFactory
	orderReader  queries.OrderReader
	ledgerReader queries.LedgerReader
	hub          *notifier.Hub
	logger       *slog.Logger
}

// NewCompositionRoot wires the application over the configured storage.
// A nil gormDB selects the in-memory backend.
func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	root := CompositionRoot{
		hub:    notifier.NewHub(logger),
		logger: logger,
	}

	if gormDB != nil {
		factory := postgres.NewGormUnitOfWorkFactory(gormDB)
		root.uowFactory = factory

		// Outside an active transaction the unit of work reads straight
		// from the base connection, which is what the query side needs.
		reader := factory.Create()
		root.orderReader = reader.OrderRepository()
		root.ledgerReader = reader.LedgerStore()
		return root
	}

	storage := inmemory.NewStorage()
	root.uowFactory = inmemory.NewMemoryUnitOfWorkFactory(storage)
	root.orderReader = inmemory.NewMemoryOrderRepository(storage)
	root.ledgerReader = inmemory.NewMemoryLedgerStore(storage)
	return root
}

func (c *CompositionRoot) Hub() *notifier.Hub {
	return c.hub
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateAcceptOrderCommandHandler() commands.AcceptOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOrderCommandHandler(f, c.hub)
}

func (c *CompositionRoot) CreateCloseOrderCommandHandler() commands.CloseOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCloseOrderCommandHandler(f, services.NewPayoutCalculator(), c.hub)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orderReader)
}

func (c *CompositionRoot) CreateGetLedgerQueryHandler() queries.GetLedgerQueryHandler {
	return queries.NewGetLedgerQueryHandler(c.ledgerReader)
}

func (c *CompositionRoot) CreateGetNearbyItemsQueryHandler() queries.GetNearbyItemsQueryHandler {
	return queries.NewGetNearbyItemsQueryHandler()
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateAcceptOrderCommandHandler(),
		c.CreateCloseOrderCommandHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateGetLedgerQueryHandler(),
		c.CreateGetNearbyItemsQueryHandler(),
		c.hub,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPendingOrdersQueryHandler(), c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
