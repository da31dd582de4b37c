package commands_test

import (
	"context"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/export"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetDraftByCustomer(ctx context.Context, customerID int64) (*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllExportable(ctx context.Context, since *time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) MarkExported(ctx context.Context, orders []*order.Order) (int64, error) {
	args := m.Called(ctx, orders)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) GetBySKU(ctx context.Context, sku string) (*catalog.Product, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) NextID(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customer.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetMany(ctx context.Context, ids []int64) (map[int64]*customer.Customer, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]*customer.Customer), args.Error(1)
}

type MockChangeRequestRepository struct{ mock.Mock }

func (m *MockChangeRequestRepository) Add(ctx context.Context, r *changerequest.ChangeRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockChangeRequestRepository) Update(ctx context.Context, r *changerequest.ChangeRequest) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockChangeRequestRepository) Get(ctx context.Context, id kernel.UUID) (*changerequest.ChangeRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*changerequest.ChangeRequest), args.Error(1)
}

func (m *MockChangeRequestRepository) HasPending(ctx context.Context, orderID int64) (bool, error) {
	args := m.Called(ctx, orderID)
	return args.Bool(0), args.Error(1)
}

type MockExportLogRepository struct{ mock.Mock }

func (m *MockExportLogRepository) Add(ctx context.Context, entry *export.Log) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}

func (m *MockUoW) ChangeRequestRepository() ports.ChangeRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.ChangeRequestRepository)
}

func (m *MockUoW) ExportLogRepository() ports.ExportLogRepository {
	args := m.Called()
	return args.Get(0).(ports.ExportLogRepository)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockCatalogUoWFactory struct{ mock.Mock }

func (m *MockCatalogUoWFactory) Create() commands.CatalogUoW {
	args := m.Called()
	return args.Get(0).(commands.CatalogUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	args := m.Called()
	return args.Get(0).(commands.CustomerUoW)
}

type MockChangeRequestUoWFactory struct{ mock.Mock }

func (m *MockChangeRequestUoWFactory) Create() commands.ChangeRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.ChangeRequestUoW)
}

type MockExportUoWFactory struct{ mock.Mock }

func (m *MockExportUoWFactory) Create() commands.ExportUoW {
	args := m.Called()
	return args.Get(0).(commands.ExportUoW)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	args := m.Called(ctx, recipient, subject, body)
	return args.Error(0)
}

type MockBatchWriter struct{ mock.Mock }

func (m *MockBatchWriter) Write(ctx context.Context, name string, records []export.Record) (string, error) {
	args := m.Called(ctx, name, records)
	return args.String(0), args.Error(1)
}

func (m *MockBatchWriter) Discard(ctx context.Context, location string) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

type MockExportObserver struct{ mock.Mock }

func (m *MockExportObserver) ObserveExport(outcome string, orders int) {
	m.Called(outcome, orders)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// cartFixture holds the repositories behind one mocked CartUoW.
type cartFixture struct {
	uow      *MockUoW
	factory  *MockCartUoWFactory
	orders   *MockOrderRepository
	products *MockProductRepository
	people   *MockCustomerRepository
}

func newCartFixture() cartFixture {
	f := cartFixture{
		uow:      new(MockUoW),
		factory:  new(MockCartUoWFactory),
		orders:   new(MockOrderRepository),
		products: new(MockProductRepository),
		people:   new(MockCustomerRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.orders).Maybe()
	f.uow.On("ProductRepository").Return(f.products).Maybe()
	f.uow.On("CustomerRepository").Return(f.people).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return f
}

func (f cartFixture) assert(t mock.TestingT) {
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.orders.AssertExpectations(t)
	f.products.AssertExpectations(t)
	f.people.AssertExpectations(t)
}

func mustProduct(id int64, sku string, cents int64, maxPerOrder int) *catalog.Product {
	p, err := catalog.NewProduct(id, sku, "Product "+sku, "", kernel.MustMoney(cents), maxPerOrder)
	if err != nil {
		panic(err)
	}
	return p
}

func mustCustomer(id int64, feeCents int64) *customer.Customer {
	c, err := customer.NewCustomer(id, "anna@example.com", "Anna", "Schmidt")
	if err != nil {
		panic(err)
	}
	if err = c.ChangeDeliveryFee(kernel.MustMoney(feeCents)); err != nil {
		panic(err)
	}
	c.UpdateDefaultAddress(kernel.NewAddress("Hauptstr. 1", "Berlin", "10115", "", ""))
	return c
}

func mustCart(id, customerID int64, lines ...*catalog.Product) *order.Order {
	o, err := order.NewOrder(id, customerID, time.Now())
	if err != nil {
		panic(err)
	}
	for _, p := range lines {
		if err = o.AddOrUpdateLine(p, 1, order.RejectOverCapacity); err != nil {
			panic(err)
		}
	}
	return o
}

func mustPlaced(id int64, owner *customer.Customer, placedAt time.Time, lines ...*catalog.Product) *order.Order {
	o := mustCart(id, owner.ID(), lines...)
	if err := o.Place(owner, placedAt); err != nil {
		panic(err)
	}
	return o
}
