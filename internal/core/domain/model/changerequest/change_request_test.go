package changerequest_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/catalog"
	"bakery/internal/core/domain/model/changerequest"
	"bakery/internal/core/domain/model/customer"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(5, 7, now)
	require.NoError(t, err)
	p, err := catalog.NewProduct(1, "BREAD", "Bread", "", kernel.MustMoney(300), 10)
	require.NoError(t, err)
	c, err := customer.NewCustomer(7, "anna@example.com", "Anna", "")
	require.NoError(t, err)

	require.NoError(t, o.AddOrUpdateLine(p, 1, order.RejectOverCapacity))
	require.NoError(t, o.Place(c, now.Add(-24*time.Hour)))
	return o
}

func TestFile(t *testing.T) {
	t.Run("placed order accepts a request", func(t *testing.T) {
		o := placedOrder(t)

		cr, err := changerequest.File(kernel.NewUUID(), o, changerequest.Cancel, "  wrong day  ", now)

		require.NoError(t, err)
		require.NoError(t, cr.Validate())
		assert.Equal(t, changerequest.Pending, cr.Status())
		assert.Equal(t, o.ID(), cr.OrderID())
		assert.Equal(t, o.CustomerID(), cr.CustomerID())
		assert.Equal(t, "wrong day", cr.Reason())
	})

	t.Run("exported order accepts a request", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.MarkExported(now, "batch"))

		_, err := changerequest.File(kernel.NewUUID(), o, changerequest.Modify, "two more rolls", now)

		require.NoError(t, err)
	})

	t.Run("draft order is rejected", func(t *testing.T) {
		o, err := order.NewOrder(5, 7, now)
		require.NoError(t, err)

		_, err = changerequest.File(kernel.NewUUID(), o, changerequest.Cancel, "reason", now)

		assert.ErrorIs(t, err, changerequest.ErrInvalidState)
	})

	t.Run("cancelled order is rejected", func(t *testing.T) {
		o := placedOrder(t)
		require.NoError(t, o.Cancel())

		_, err := changerequest.File(kernel.NewUUID(), o, changerequest.Cancel, "reason", now)

		assert.ErrorIs(t, err, changerequest.ErrInvalidState)
	})

	t.Run("reason and type are required", func(t *testing.T) {
		_, err := changerequest.File(kernel.NewUUID(), placedOrder(t), changerequest.UnknownType, " ", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestChangeRequest_Resolve(t *testing.T) {
	later := now.Add(time.Hour)

	t.Run("approve", func(t *testing.T) {
		cr, err := changerequest.File(kernel.NewUUID(), placedOrder(t), changerequest.Cancel, "reason", now)
		require.NoError(t, err)

		require.NoError(t, cr.Resolve(true, "done by phone", later))

		assert.Equal(t, changerequest.Approved, cr.Status())
		assert.Equal(t, "done by phone", cr.StaffNotes())
		assert.Equal(t, later, cr.UpdatedAt())
	})

	t.Run("resolved request cannot be resolved again", func(t *testing.T) {
		cr, err := changerequest.File(kernel.NewUUID(), placedOrder(t), changerequest.Cancel, "reason", now)
		require.NoError(t, err)
		require.NoError(t, cr.Resolve(false, "too late", later))

		err = cr.Resolve(true, "", later)

		assert.ErrorIs(t, err, order.ErrInvalidTransition)
		assert.Equal(t, changerequest.Rejected, cr.Status())
	})
}

func TestParse(t *testing.T) {
	typ, err := changerequest.ParseType("MODIFY")
	require.NoError(t, err)
	assert.Equal(t, changerequest.Modify, typ)

	s, err := changerequest.ParseStatus("REJECTED")
	require.NoError(t, err)
	assert.Equal(t, changerequest.Rejected, s)

	_, err = changerequest.ParseStatus("OPEN")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
