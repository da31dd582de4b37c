package commands_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewPlaceOrderCommand(t *testing.T) {
	_, err := commands.NewPlaceOrderCommand(7, order.UnknownDeliveryType, nil, kernel.Address{})
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewPlaceOrderCommand(7, order.Pickup, nil, kernel.Address{})
	require.NoError(t, err)
	assert.Equal(t, order.Pickup, cmd.DeliveryType())
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	f := newCartFixture()
	owner := mustCustomer(7, 150)
	cart := mustCart(55, 7, mustProduct(10, "TEST-001", 250, 10))
	notifier := new(MockNotifier)

	mock.InOrder(
		f.uow.On("Begin", ctx).Return(nil).Once(),
		f.people.On("Get", ctx, int64(7)).Return(owner, nil).Once(),
		f.orders.On("GetDraftByCustomer", ctx, int64(7)).Return(cart, nil).Once(),
		f.orders.On("Update", ctx, cart).Return(nil).Once(),
		f.uow.On("Commit", ctx).Return(nil).Once(),
		notifier.On("Send", ctx, "anna@example.com", "Bestellbestätigung #55",
			mock.MatchedBy(func(body string) bool {
				return strings.Contains(body, "Gesamt: 4,00 €") && strings.Contains(body, "Hauptstr. 1")
			})).Return(nil).Once(),
	)

	cmd, _ := commands.NewPlaceOrderCommand(7, order.Delivery, nil, kernel.Address{})
	orderID, err := commands.NewPlaceOrderCommandHandler(f.factory, clock, notifier, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(55), orderID)
	assert.Equal(t, order.Placed, cart.Status())
	assert.Equal(t, int64(250), cart.Total().Cents())
	assert.Equal(t, int64(150), cart.DeliveryFee().Cents())
	assert.Equal(t, "Hauptstr. 1", cart.DeliveryAddress().Street())
	f.assert(t)
	notifier.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_NotificationFailureIsIgnored(t *testing.T) {
	ctx := t.Context()
	f := newCartFixture()
	cart := mustCart(55, 7, mustProduct(10, "TEST-001", 250, 10))
	notifier := new(MockNotifier)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.people.On("Get", ctx, int64(7)).Return(mustCustomer(7, 0), nil).Once()
	f.orders.On("GetDraftByCustomer", ctx, int64(7)).Return(cart, nil).Once()
	f.orders.On("Update", ctx, cart).Return(nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	notifier.On("Send", ctx, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("relay down")).Once()

	cmd, _ := commands.NewPlaceOrderCommand(7, order.Pickup, nil, kernel.Address{})
	_, err := commands.NewPlaceOrderCommandHandler(f.factory, clock, notifier, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(0), cart.DeliveryFee().Cents())
	notifier.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	f := newCartFixture()
	cart := mustCart(55, 7)
	notifier := new(MockNotifier)

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.people.On("Get", ctx, int64(7)).Return(mustCustomer(7, 0), nil).Once()
	f.orders.On("GetDraftByCustomer", ctx, int64(7)).Return(cart, nil).Once()

	cmd, _ := commands.NewPlaceOrderCommand(7, order.Pickup, nil, kernel.Address{})
	_, err := commands.NewPlaceOrderCommandHandler(f.factory, clock, notifier, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrEmptyOrder)
	assert.Equal(t, order.Draft, cart.Status())
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_DeliveryNeedsAddress(t *testing.T) {
	ctx := t.Context()
	f := newCartFixture()
	owner := mustCustomer(7, 0)
	owner.UpdateDefaultAddress(kernel.Address{})
	cart := mustCart(55, 7, mustProduct(10, "TEST-001", 250, 10))

	f.uow.On("Begin", ctx).Return(nil).Once()
	f.people.On("Get", ctx, int64(7)).Return(owner, nil).Once()
	f.orders.On("GetDraftByCustomer", ctx, int64(7)).Return(cart, nil).Once()

	cmd, _ := commands.NewPlaceOrderCommand(7, order.Delivery, nil, kernel.Address{})
	_, err := commands.NewPlaceOrderCommandHandler(f.factory, clock, nil, nil).Handle(ctx, cmd)

	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCancelOrderCommandHandler_Handle(t *testing.T) {
	owner := mustCustomer(7, 0)
	product := mustProduct(10, "TEST-001", 250, 10)

	t.Run("before cutoff", func(t *testing.T) {
		ctx := t.Context()
		f := newCartFixture()
		o := mustPlaced(60, owner, clock.now.Add(-time.Hour), product)
		notifier := new(MockNotifier)

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.people.On("Get", ctx, int64(7)).Return(owner, nil).Once()
		f.orders.On("GetForUpdate", ctx, int64(60)).Return(o, nil).Once()
		f.orders.On("Update", ctx, o).Return(nil).Once()
		f.uow.On("Commit", ctx).Return(nil).Once()
		notifier.On("Send", ctx, "anna@example.com", "Stornierung #60", mock.Anything).Return(nil).Once()

		cmd, _ := commands.NewCancelOrderCommand(7, 60)
		err := commands.NewCancelOrderCommandHandler(f.factory, clock, notifier, nil).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		f.assert(t)
		notifier.AssertExpectations(t)
	})

	t.Run("after cutoff", func(t *testing.T) {
		ctx := t.Context()
		f := newCartFixture()
		o := mustPlaced(60, owner, clock.now.Add(-24*time.Hour), product)

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.people.On("Get", ctx, int64(7)).Return(owner, nil).Once()
		f.orders.On("GetForUpdate", ctx, int64(60)).Return(o, nil).Once()

		cmd, _ := commands.NewCancelOrderCommand(7, 60)
		err := commands.NewCancelOrderCommandHandler(f.factory, clock, nil, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, order.ErrCutoffPassed)
		assert.Equal(t, order.Placed, o.Status())
		f.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("exported order", func(t *testing.T) {
		ctx := t.Context()
		f := newCartFixture()
		o := mustPlaced(60, owner, clock.now.Add(-time.Hour), product)
		require.NoError(t, o.MarkExported(clock.now, "batch"))

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.people.On("Get", ctx, int64(7)).Return(owner, nil).Once()
		f.orders.On("GetForUpdate", ctx, int64(60)).Return(o, nil).Once()

		cmd, _ := commands.NewCancelOrderCommand(7, 60)
		err := commands.NewCancelOrderCommandHandler(f.factory, clock, nil, nil).Handle(ctx, cmd)

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("exported while waiting", func(t *testing.T) {
		ctx := t.Context()
		f := newCartFixture()
		o := mustPlaced(60, owner, clock.now.Add(-time.Hour), product)
		notifier := new(MockNotifier)

		f.uow.On("Begin", ctx).Return(nil).Once()
		f.people.On("Get", ctx, int64(7)).Return(owner, nil).Once()
		f.orders.On("GetForUpdate", ctx, int64(60)).Return(o, nil).Once()
		f.orders.On("Update", ctx, o).Return(ports.ErrConcurrentModification).Once()

		cmd, _ := commands.NewCancelOrderCommand(7, 60)
		err := commands.NewCancelOrderCommandHandler(f.factory, clock, notifier, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, ports.ErrConcurrentModification)
		f.orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
