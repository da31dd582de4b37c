package services_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var placedAt = time.Date(2024, 3, 5, 9, 30, 0, 0, time.UTC)

func fixtures(t *testing.T) (*customer.Customer, []*order.Order) {
	t.Helper()
	anna, err := customer.NewCustomer(7, "anna@example.com", "Anna", "Schmidt")
	require.NoError(t, err)
	bread, err := catalog.NewProduct(1, "BREAD", "Sourdough", "", kernel.MustMoney(450), 10)
	require.NoError(t, err)
	roll, err := catalog.NewProduct(2, "ROLL", "Roll", "", kernel.MustMoney(60), 30)
	require.NoError(t, err)

	first, err := order.NewOrder(100, anna.ID(), placedAt)
	require.NoError(t, err)
	require.NoError(t, first.AddOrUpdateLine(bread, 1, order.RejectOverCapacity))
	require.NoError(t, first.AddOrUpdateLine(roll, 4, order.RejectOverCapacity))
	require.NoError(t, first.Place(anna, placedAt))

	second, err := order.NewOrder(101, anna.ID(), placedAt)
	require.NoError(t, err)
	require.NoError(t, second.AddOrUpdateLine(roll, 2, order.RejectOverCapacity))
	require.NoError(t, second.Place(anna, placedAt.Add(time.Hour)))

	return anna, []*order.Order{first, second}
}

func TestExportBatcher_Records(t *testing.T) {
	t.Run("one record per line with repeated order fields", func(t *testing.T) {
		anna, orders := fixtures(t)

		records, err := services.NewExportBatcher().Records(orders, map[int64]*customer.Customer{anna.ID(): anna})

		require.NoError(t, err)
		require.Len(t, records, 3)

		assert.Equal(t, int64(100), records[0].OrderID)
		assert.Equal(t, "BREAD", records[0].SKU)
		assert.Equal(t, int64(450), records[0].UnitPriceCents)
		assert.Equal(t, int64(690), records[0].OrderTotal)
		assert.Equal(t, "ROLL", records[1].SKU)
		assert.Equal(t, 4, records[1].Quantity)
		assert.Equal(t, int64(690), records[1].OrderTotal)
		assert.Equal(t, "anna@example.com", records[1].CustomerEmail)

		assert.Equal(t, int64(101), records[2].OrderID)
		assert.Equal(t, int64(120), records[2].OrderTotal)
		assert.True(t, placedAt.Add(time.Hour).Equal(records[2].PlacedAt))
	})

	t.Run("missing customer", func(t *testing.T) {
		_, orders := fixtures(t)

		_, err := services.NewExportBatcher().Records(orders, nil)

		assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("draft is not exportable", func(t *testing.T) {
		anna, _ := fixtures(t)
		draft, err := order.NewOrder(200, anna.ID(), placedAt)
		require.NoError(t, err)

		_, err = services.NewExportBatcher().Records([]*order.Order{draft}, map[int64]*customer.Customer{anna.ID(): anna})

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("no orders yields no records", func(t *testing.T) {
		records, err := services.NewExportBatcher().Records(nil, nil)

		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestExportBatcher_MarkExported(t *testing.T) {
	now := placedAt.Add(24 * time.Hour)

	t.Run("marks every order", func(t *testing.T) {
		_, orders := fixtures(t)

		require.NoError(t, services.NewExportBatcher().MarkExported(orders, now, "batch.csv"))

		for _, o := range orders {
			assert.Equal(t, order.Exported, o.Status())
			assert.Equal(t, "batch.csv", o.ExternalExportID())
		}
	})

	t.Run("one bad order leaves all untouched", func(t *testing.T) {
		_, orders := fixtures(t)
		require.NoError(t, orders[1].Cancel())

		err := services.NewExportBatcher().MarkExported(orders, now, "batch.csv")

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, order.Placed, orders[0].Status())
		assert.Nil(t, orders[0].ExportedAt())
	})
}
