package cmd

import (
	"context"
	"log/slog"
	"time"

	httpin "bakery/internal/adapters/in/http"
	"bakery/internal/adapters/out/exportfile"
	"bakery/internal/adapters/out/notification"
	"bakery/internal/adapters/out/postgres"
	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/ports"
	"bakery/internal/jobs"
	"bakery/internal/pkg/clock"
	"bakery/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	clock      clock.ShopClock
	notifier   ports.Notifier
	writer     ports.BatchWriter
	registry   *prometheus.Registry
	export     *metrics.ExportMetrics
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	shopClock, err := clock.Load(config.ShopTimezone)
	if err != nil {
		return nil, err
	}

	writer, err := exportfile.NewBatchWriter(config.ExportDir)
	if err != nil {
		return nil, err
	}

	var sender ports.Notifier = notification.NewLogNotifier(logger)
	if config.NotifyRelayURL != "" {
		if sender, err = notification.NewHTTPRelay(config.NotifyRelayURL, config.NotifyRelayToken, config.NotifyFrom); err != nil {
			return nil, err
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      shopClock,
		notifier:   sender,
		writer:     writer,
		registry:   registry,
		export: metrics.NewExportMetrics(registry, func() float64 {
			return float64(time.Now().Unix())
		}),
		logger: logger,
	}, nil
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) changeRequestUoWFactory() commands.ChangeRequestUoWFactory {
	return FuncChangeRequestUoWFactory(func() commands.ChangeRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) exportUoWFactory() commands.ExportUoWFactory {
	return FuncExportUoWFactory(func() commands.ExportUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRunExportCommandHandler() commands.RunExportCommandHandler {
	return commands.NewRunExportCommandHandler(c.exportUoWFactory(), c.writer, c.clock, c.export, c.logger)
}

// CreateHTTPHandlers wires every use case served by the API.
func (c *CompositionRoot) CreateHTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		AddToCart:            commands.NewAddToCartCommandHandler(c.cartUoWFactory(), c.clock),
		UpdateCartItem:       commands.NewUpdateCartItemCommandHandler(c.cartUoWFactory()),
		RemoveCartItem:       commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory()),
		PlaceOrder:           commands.NewPlaceOrderCommandHandler(c.cartUoWFactory(), c.clock, c.notifier, c.logger),
		CancelOrder:          commands.NewCancelOrderCommandHandler(c.cartUoWFactory(), c.clock, c.notifier, c.logger),
		Reorder:              commands.NewReorderCommandHandler(c.cartUoWFactory(), c.clock),
		FileChangeRequest:    commands.NewFileChangeRequestCommandHandler(c.changeRequestUoWFactory(), c.clock, c.notifier, c.logger),
		ResolveChangeRequest: commands.NewResolveChangeRequestCommandHandler(c.changeRequestUoWFactory(), c.clock, c.notifier, c.logger),
		CreateProduct:        commands.NewCreateProductCommandHandler(c.catalogUoWFactory()),
		UpdateProduct:        commands.NewUpdateProductCommandHandler(c.catalogUoWFactory()),
		DeleteProduct:        commands.NewDeleteProductCommandHandler(c.catalogUoWFactory()),
		CreateCustomer:       commands.NewCreateCustomerCommandHandler(c.customerUoWFactory()),
		UpdateDefaultAddress: commands.NewUpdateDefaultAddressCommandHandler(c.customerUoWFactory()),
		RunExport:            c.CreateRunExportCommandHandler(),

		ListProducts:              queries.NewListProductsQueryHandler(c.gormDB),
		GetCart:                   queries.NewGetCartQueryHandler(c.gormDB),
		GetOrder:                  queries.NewGetOrderQueryHandler(c.gormDB, c.clock),
		ListCustomerOrders:        queries.NewListCustomerOrdersQueryHandler(c.gormDB),
		GetCosts:                  queries.NewGetCostsQueryHandler(c.gormDB),
		ListExportLogs:            queries.NewListExportLogsQueryHandler(c.gormDB),
		ListPendingChangeRequests: queries.NewListPendingChangeRequestsQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(c.CreateHTTPHandlers(), c.clock)
}

func (c *CompositionRoot) CreateRouterConfig() httpin.RouterConfig {
	return httpin.RouterConfig{
		Logger:   c.logger,
		Metrics:  metrics.NewServerMetrics(c.registry),
		Gatherer: c.registry,
		Ping: func(ctx context.Context) error {
			sqlDB, err := c.gormDB.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		jobs.NewExportJob(c.CreateRunExportCommandHandler(), c.config.ExportSchedule, c.clock.Location(), c.logger),
	)
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncChangeRequestUoWFactory func() commands.ChangeRequestUoW

func (f FuncChangeRequestUoWFactory) Create() commands.ChangeRequestUoW {
	return f()
}

type FuncExportUoWFactory func() commands.ExportUoW

func (f FuncExportUoWFactory) Create() commands.ExportUoW {
	return f()
}
