package exportfile_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"bakery/internal/adapters/out/exportfile"
	"bakery/internal/core/domain/model/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func records() []export.Record {
	placedAt := time.Date(2024, 3, 5, 9, 30, 15, 123456789, time.UTC)
	return []export.Record{
		{
			OrderID: 60, CustomerID: 7, CustomerEmail: "anna@example.com", FirstName: "Anna", LastName: "Schmidt",
			SKU: "BREAD", ProductName: "Brot, dunkel", Quantity: 2, UnitPriceCents: 300, PlacedAt: placedAt, OrderTotal: 650,
		},
		{
			OrderID: 60, CustomerID: 7, CustomerEmail: "anna@example.com", FirstName: "Anna", LastName: "Schmidt",
			SKU: "ROLL", ProductName: "Brötchen", Quantity: 1, UnitPriceCents: 50, PlacedAt: placedAt, OrderTotal: 650,
		},
	}
}

func TestBatchWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	w, err := exportfile.NewBatchWriter(dir)
	require.NoError(t, err)

	location, err := w.Write(t.Context(), "export_orders_20240305_100000_000000.csv", records())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "export_orders_20240305_100000_000000.csv"), location)

	f, err := os.Open(location)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, exportfile.Header, rows[0])
	assert.Equal(t, []string{
		"60", "7", "anna@example.com", "Anna", "Schmidt", "BREAD", "Brot, dunkel", "2", "300",
		"2024-03-05T09:30:15Z", "650",
	}, rows[1])
	assert.Equal(t, "Brötchen", rows[2][6])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestBatchWriter_Write_EmptyBatchHasHeader(t *testing.T) {
	w, _ := exportfile.NewBatchWriter(t.TempDir())

	location, err := w.Write(t.Context(), "empty.csv", nil)
	require.NoError(t, err)

	content, err := os.ReadFile(location)
	require.NoError(t, err)
	assert.Equal(t,
		"order_id,user_id,user_email,user_first_name,user_last_name,sku,product_name,quantity,unit_price,placed_at,order_total\n",
		string(content),
	)
}

func TestBatchWriter_Write_RefusesExistingBatch(t *testing.T) {
	dir := t.TempDir()
	w, _ := exportfile.NewBatchWriter(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "taken.csv"), []byte("x"), 0o600))

	_, err := w.Write(t.Context(), "taken.csv", records())

	require.Error(t, err)
	content, _ := os.ReadFile(filepath.Join(dir, "taken.csv"))
	assert.Equal(t, "x", string(content))
}

func TestBatchWriter_Write_RejectsPathInName(t *testing.T) {
	w, _ := exportfile.NewBatchWriter(t.TempDir())

	_, err := w.Write(t.Context(), "../escape.csv", records())

	assert.Error(t, err)
}

func TestBatchWriter_Write_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	w, _ := exportfile.NewBatchWriter(dir)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := w.Write(ctx, "batch.csv", records())

	require.ErrorIs(t, err, context.Canceled)
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestBatchWriter_Discard(t *testing.T) {
	w, _ := exportfile.NewBatchWriter(t.TempDir())
	location, err := w.Write(t.Context(), "batch.csv", records())
	require.NoError(t, err)

	require.NoError(t, w.Discard(t.Context(), location))
	_, err = os.Stat(location)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, w.Discard(t.Context(), location), "discarding twice is fine")
}

func TestNewBatchWriter_RequiresDir(t *testing.T) {
	_, err := exportfile.NewBatchWriter("")
	assert.Error(t, err)
}
