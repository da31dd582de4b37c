package export_test

import (
	"errors"
	"testing"
	"time"

	"bakery/internal/core/domain/model/export"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchName(t *testing.T) {
	now := time.Date(2024, 3, 6, 4, 0, 5, 123456789, time.UTC)

	assert.Equal(t, "export_orders_20240306_040005_123456.csv", export.BatchName(now))
}

func TestNewOKLog(t *testing.T) {
	runAt := time.Now()

	l, err := export.NewOKLog(kernel.NewUUID(), runAt, 3, "export_orders_x.csv")

	require.NoError(t, err)
	require.NoError(t, l.Validate())
	assert.Equal(t, export.LogOK, l.Status())
	assert.Equal(t, 3, l.OrdersExported())
	assert.Equal(t, "Successfully exported 3 orders to export_orders_x.csv", l.Details())
}

func TestNewErrorLog(t *testing.T) {
	l, err := export.NewErrorLog(kernel.NewUUID(), time.Now(), errors.New("disk full"))

	require.NoError(t, err)
	assert.Equal(t, export.LogError, l.Status())
	assert.Equal(t, 0, l.OrdersExported())
	assert.Equal(t, "disk full", l.Details())
}

func TestRestoreLog(t *testing.T) {
	_, err := export.RestoreLog(kernel.NewUUID(), time.Now(), 1, export.UnknownLogStatus, "")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = export.RestoreLog(kernel.UUID{}, time.Now(), 1, export.LogOK, "")
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = export.RestoreLog(kernel.NewUUID(), time.Now(), -1, export.LogOK, "")
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	s, err := export.ParseLogStatus("ERROR")
	require.NoError(t, err)
	assert.Equal(t, export.LogError, s)
}
