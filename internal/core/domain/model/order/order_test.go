package order_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerID int64 = 7

func newProduct(t *testing.T, id int64, sku string, cents int64, maxPerOrder int) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(id, sku, "Product "+sku, "", kernel.MustMoney(cents), maxPerOrder)
	require.NoError(t, err)
	return p
}

func newCustomer(t *testing.T, feeCents int64) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(customerID, "anna@example.com", "Anna", "Schmidt")
	require.NoError(t, err)
	require.NoError(t, c.ChangeDeliveryFee(kernel.MustMoney(feeCents)))
	return c
}

func newCart(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(1, customerID, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create empty draft", func(t *testing.T) {
		o, err := order.NewOrder(1, customerID, time.Now())

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, order.Draft, o.Status())
		assert.Equal(t, order.Delivery, o.DeliveryType())
		assert.True(t, o.IsEmpty())
		assert.Equal(t, int64(0), o.Total().Cents())
		assert.Nil(t, o.PlacedAt())
		assert.Nil(t, o.ExportedAt())
	})

	t.Run("should reject invalid ids", func(t *testing.T) {
		o, err := order.NewOrder(0, -1, time.Now())

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "id is invalid")
		assert.Contains(t, err.Error(), "customer id is invalid")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_AddOrUpdateLine(t *testing.T) {
	t.Run("new line snapshots the current price", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 99)

		require.NoError(t, o.AddOrUpdateLine(p, 2, order.RejectOverCapacity))
		require.NoError(t, o.RecomputeTotal(newCustomer(t, 0)))

		item, ok := o.Item(p.ID())
		require.True(t, ok)
		assert.Equal(t, 2, item.Quantity())
		assert.Equal(t, int64(250), item.UnitPrice().Cents())
		assert.Equal(t, "TEST-001", item.SKU())
		assert.Equal(t, int64(500), o.Total().Cents())
	})

	t.Run("price change does not affect existing line", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 99)
		require.NoError(t, o.AddOrUpdateLine(p, 1, order.RejectOverCapacity))

		require.NoError(t, p.ChangePrice(kernel.MustMoney(400)))
		require.NoError(t, o.AddOrUpdateLine(p, 1, order.RejectOverCapacity))
		require.NoError(t, o.RecomputeTotal(newCustomer(t, 0)))

		item, _ := o.Item(p.ID())
		assert.Equal(t, int64(250), item.UnitPrice().Cents())
		assert.Equal(t, int64(500), o.Total().Cents())
	})

	t.Run("existing line merges instead of adding a second line", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 99)

		require.NoError(t, o.AddOrUpdateLine(p, 1, order.RejectOverCapacity))
		require.NoError(t, o.AddOrUpdateLine(p, 3, order.RejectOverCapacity))

		assert.Len(t, o.Items(), 1)
		assert.Equal(t, 4, o.ItemCount())
	})

	t.Run("unavailable product cannot start a line", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 99)
		p.SetAvailable(false)

		err := o.AddOrUpdateLine(p, 1, order.RejectOverCapacity)

		assert.ErrorIs(t, err, order.ErrProductUnavailable)
		assert.True(t, o.IsEmpty())
	})

	t.Run("unavailable product keeps its existing line growing", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 99)
		require.NoError(t, o.AddOrUpdateLine(p, 1, order.RejectOverCapacity))
		p.SetAvailable(false)

		require.NoError(t, o.AddOrUpdateLine(p, 1, order.RejectOverCapacity))

		item, _ := o.Item(p.ID())
		assert.Equal(t, 2, item.Quantity())
	})

	t.Run("reject policy leaves line untouched", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 5)
		require.NoError(t, o.AddOrUpdateLine(p, 4, order.RejectOverCapacity))

		err := o.AddOrUpdateLine(p, 2, order.RejectOverCapacity)

		require.ErrorIs(t, err, order.ErrCapacityExceeded)
		var capErr *order.CapacityExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, 6, capErr.Requested)
		assert.Equal(t, 5, capErr.Max)
		item, _ := o.Item(p.ID())
		assert.Equal(t, 4, item.Quantity())
	})

	t.Run("clamp policy caps at max per order", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 5)

		require.NoError(t, o.AddOrUpdateLine(p, 8, order.ClampToCapacity))

		item, _ := o.Item(p.ID())
		assert.Equal(t, 5, item.Quantity())
	})

	t.Run("delta must be positive", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 5)

		err := o.AddOrUpdateLine(p, 0, order.RejectOverCapacity)

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("placed order rejects new lines", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 5)
		require.NoError(t, o.AddOrUpdateLine(p, 1, order.RejectOverCapacity))
		require.NoError(t, o.Place(newCustomer(t, 0), time.Now()))

		err := o.AddOrUpdateLine(p, 1, order.RejectOverCapacity)

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})
}

func TestOrder_SetLineQuantity(t *testing.T) {
	t.Run("zero removes the line", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 5)
		require.NoError(t, o.AddOrUpdateLine(p, 2, order.RejectOverCapacity))

		require.NoError(t, o.SetLineQuantity(p, 0, order.ClampToCapacity))

		assert.True(t, o.IsEmpty())
	})

	t.Run("clamps above max", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 5)
		require.NoError(t, o.AddOrUpdateLine(p, 2, order.RejectOverCapacity))

		require.NoError(t, o.SetLineQuantity(p, 50, order.ClampToCapacity))

		item, _ := o.Item(p.ID())
		assert.Equal(t, 5, item.Quantity())
	})

	t.Run("missing line is not found", func(t *testing.T) {
		o := newCart(t)
		p := newProduct(t, 10, "TEST-001", 250, 5)

		err := o.SetLineQuantity(p, 2, order.ClampToCapacity)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestOrder_RemoveLine(t *testing.T) {
	o := newCart(t)
	bread := newProduct(t, 10, "BREAD", 300, 5)
	roll := newProduct(t, 11, "ROLL", 50, 20)
	require.NoError(t, o.AddOrUpdateLine(bread, 1, order.RejectOverCapacity))
	require.NoError(t, o.AddOrUpdateLine(roll, 6, order.RejectOverCapacity))

	require.NoError(t, o.RemoveLine(bread.ID()))
	require.NoError(t, o.RemoveLine(999))

	items := o.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "ROLL", items[0].SKU())
}

func TestOrder_RecomputeTotal(t *testing.T) {
	t.Run("delivery adds the customer fee", func(t *testing.T) {
		o := newCart(t)
		require.NoError(t, o.AddOrUpdateLine(newProduct(t, 10, "BREAD", 300, 5), 2, order.RejectOverCapacity))

		require.NoError(t, o.RecomputeTotal(newCustomer(t, 150)))

		assert.Equal(t, int64(600), o.Total().Cents())
		assert.Equal(t, int64(150), o.DeliveryFee().Cents())
		assert.Equal(t, int64(750), o.GrandTotal().Cents())
	})

	t.Run("pickup has no fee", func(t *testing.T) {
		o := newCart(t)
		require.NoError(t, o.AddOrUpdateLine(newProduct(t, 10, "BREAD", 300, 5), 2, order.RejectOverCapacity))
		require.NoError(t, o.SetDeliveryDetails(order.Pickup, nil, kernel.NewAddress("Main St 1", "Berlin", "10115", "", "")))

		require.NoError(t, o.RecomputeTotal(newCustomer(t, 150)))

		assert.Equal(t, int64(0), o.DeliveryFee().Cents())
		assert.True(t, o.DeliveryAddress().IsEmpty())
	})

	t.Run("is idempotent", func(t *testing.T) {
		o := newCart(t)
		owner := newCustomer(t, 150)
		require.NoError(t, o.AddOrUpdateLine(newProduct(t, 10, "BREAD", 300, 5), 2, order.RejectOverCapacity))

		require.NoError(t, o.RecomputeTotal(owner))
		first := o.GrandTotal()
		require.NoError(t, o.RecomputeTotal(owner))

		assert.True(t, first.IsEqual(o.GrandTotal()))
	})

	t.Run("rejects foreign customer", func(t *testing.T) {
		o := newCart(t)
		stranger, err := customer.NewCustomer(99, "x@example.com", "", "")
		require.NoError(t, err)

		assert.ErrorIs(t, o.RecomputeTotal(stranger), errs.ErrValueIsInvalid)
	})
}

func TestOrder_Place(t *testing.T) {
	now := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)

	t.Run("places a filled cart", func(t *testing.T) {
		o := newCart(t)
		require.NoError(t, o.AddOrUpdateLine(newProduct(t, 10, "TEST-001", 250, 99), 2, order.RejectOverCapacity))

		require.NoError(t, o.Place(newCustomer(t, 0), now))

		assert.Equal(t, order.Placed, o.Status())
		require.NotNil(t, o.PlacedAt())
		assert.True(t, now.Equal(*o.PlacedAt()))
		assert.Equal(t, int64(500), o.Total().Cents())
	})

	t.Run("empty cart cannot be placed", func(t *testing.T) {
		o := newCart(t)

		assert.ErrorIs(t, o.Place(newCustomer(t, 0), now), order.ErrEmptyOrder)
		assert.Equal(t, order.Draft, o.Status())
	})

	t.Run("second place fails", func(t *testing.T) {
		o := newCart(t)
		require.NoError(t, o.AddOrUpdateLine(newProduct(t, 10, "TEST-001", 250, 99), 1, order.RejectOverCapacity))
		require.NoError(t, o.Place(newCustomer(t, 0), now))

		assert.ErrorIs(t, o.Place(newCustomer(t, 0), now), order.ErrInvalidTransition)
	})

	t.Run("placed total is frozen", func(t *testing.T) {
		o := newCart(t)
		owner := newCustomer(t, 150)
		require.NoError(t, o.AddOrUpdateLine(newProduct(t, 10, "TEST-001", 250, 99), 1, order.RejectOverCapacity))
		require.NoError(t, o.Place(owner, now))

		require.NoError(t, owner.ChangeDeliveryFee(kernel.MustMoney(500)))

		assert.ErrorIs(t, o.RecomputeTotal(owner), order.ErrInvalidTransition)
		assert.Equal(t, int64(150), o.DeliveryFee().Cents())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("draft and placed orders cancel", func(t *testing.T) {
		draft := newCart(t)
		require.NoError(t, draft.Cancel())
		assert.Equal(t, order.Cancelled, draft.Status())

		placed := placedOrder(t, time.Now())
		require.NoError(t, placed.Cancel())
		assert.Equal(t, order.Cancelled, placed.Status())
	})

	t.Run("exported order cannot be cancelled", func(t *testing.T) {
		o := placedOrder(t, time.Now())
		require.NoError(t, o.MarkExported(time.Now(), "export_orders_20240305_040000_000000.csv"))

		assert.ErrorIs(t, o.Cancel(), order.ErrInvalidTransition)
		assert.Equal(t, order.Exported, o.Status())
	})
}

func TestOrder_IsEditable(t *testing.T) {
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	t.Run("placed at 21:59 closes at 22:00 the same day", func(t *testing.T) {
		o := placedOrder(t, time.Date(2024, 3, 5, 21, 59, 0, 0, berlin))

		assert.True(t, o.IsEditable(time.Date(2024, 3, 5, 21, 59, 59, 0, berlin)))
		assert.False(t, o.IsEditable(time.Date(2024, 3, 5, 22, 0, 0, 0, berlin)))
		assert.False(t, o.IsCancellable(time.Date(2024, 3, 5, 22, 0, 1, 0, berlin)))
	})

	t.Run("placed at 22:01 stays open until 22:00 next day", func(t *testing.T) {
		o := placedOrder(t, time.Date(2024, 3, 5, 22, 1, 0, 0, berlin))

		assert.True(t, o.IsEditable(time.Date(2024, 3, 6, 21, 59, 0, 0, berlin)))
		assert.False(t, o.IsEditable(time.Date(2024, 3, 6, 22, 0, 0, 0, berlin)))
	})

	t.Run("drafts are not editable placed orders", func(t *testing.T) {
		assert.False(t, newCart(t).IsEditable(time.Now()))
	})
}

func TestOrder_MarkExported(t *testing.T) {
	now := time.Date(2024, 3, 6, 4, 0, 0, 0, time.UTC)

	t.Run("placed order becomes exported", func(t *testing.T) {
		o := placedOrder(t, now.Add(-time.Hour))

		require.NoError(t, o.MarkExported(now, "batch-1"))

		assert.Equal(t, order.Exported, o.Status())
		require.NotNil(t, o.ExportedAt())
		assert.True(t, now.Equal(*o.ExportedAt()))
		assert.Equal(t, "batch-1", o.ExternalExportID())
	})

	t.Run("second export fails", func(t *testing.T) {
		o := placedOrder(t, now.Add(-time.Hour))
		require.NoError(t, o.MarkExported(now, "batch-1"))

		err := o.MarkExported(now, "batch-2")

		assert.ErrorIs(t, err, order.ErrAlreadyExported)
		assert.Equal(t, "batch-1", o.ExternalExportID())
	})

	t.Run("draft cannot be exported", func(t *testing.T) {
		assert.ErrorIs(t, newCart(t).MarkExported(now, "batch-1"), order.ErrInvalidTransition)
	})

	t.Run("reference is required", func(t *testing.T) {
		o := placedOrder(t, now.Add(-time.Hour))

		assert.ErrorIs(t, o.MarkExported(now, " "), errs.ErrValueIsRequired)
		assert.Equal(t, order.Placed, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	placedAt := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	item, err := order.RestoreItem(10, "TEST-001", "Test", 2, kernel.MustMoney(250))
	require.NoError(t, err)

	t.Run("keeps stored amounts", func(t *testing.T) {
		o, err := order.RestoreOrder(order.State{
			ID:           3,
			CustomerID:   customerID,
			Status:       order.Placed,
			Items:        []*order.Item{item},
			Total:        kernel.MustMoney(500),
			DeliveryFee:  kernel.MustMoney(150),
			DeliveryType: order.Delivery,
			CreatedAt:    placedAt,
			PlacedAt:     &placedAt,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(650), o.GrandTotal().Cents())
		assert.Len(t, o.Items(), 1)
	})

	t.Run("rejects duplicate lines", func(t *testing.T) {
		_, err := order.RestoreOrder(order.State{
			ID:           3,
			CustomerID:   customerID,
			Status:       order.Draft,
			Items:        []*order.Item{item, item},
			Total:        kernel.Zero(),
			DeliveryFee:  kernel.Zero(),
			DeliveryType: order.Delivery,
		})

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("exported order needs exportedAt", func(t *testing.T) {
		_, err := order.RestoreOrder(order.State{
			ID:           3,
			CustomerID:   customerID,
			Status:       order.Exported,
			Total:        kernel.Zero(),
			DeliveryFee:  kernel.Zero(),
			DeliveryType: order.Delivery,
			PlacedAt:     &placedAt,
		})

		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreItem(t *testing.T) {
	_, err := order.RestoreItem(0, "X", "X", 0, kernel.Money{})

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func placedOrder(t *testing.T, placedAt time.Time) *order.Order {
	t.Helper()
	o := newCart(t)
	require.NoError(t, o.AddOrUpdateLine(newProduct(t, 10, "TEST-001", 250, 99), 1, order.RejectOverCapacity))
	require.NoError(t, o.Place(newCustomer(t, 0), placedAt))
	return o
}
