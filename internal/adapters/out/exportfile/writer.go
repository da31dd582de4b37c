// Package exportfile writes export batches as CSV files into a directory.
package exportfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"bakery/internal/core/domain/model/export"
	"bakery/internal/pkg/errs"
)

// Header is the first row of every batch file.
var Header = []string{
	"order_id",
	"user_id",
	"user_email",
	"user_first_name",
	"user_last_name",
	"sku",
	"product_name",
	"quantity",
	"unit_price",
	"placed_at",
	"order_total",
}

// BatchWriter stores each batch under its name in dir. A file becomes visible
// under its final name only once it is complete and synced.
type BatchWriter struct {
	dir string
}

func NewBatchWriter(dir string) (*BatchWriter, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("dir")
	}
	return &BatchWriter{dir: dir}, nil
}

func (w *BatchWriter) Dir() string {
	return w.dir
}

func (w *BatchWriter) Write(ctx context.Context, name string, records []export.Record) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if name == "" || filepath.Base(name) != name {
		return "", errs.NewValueIsInvalidError("batch name")
	}

	if err := os.MkdirAll(w.dir, 0o750); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	target := filepath.Join(w.dir, name)
	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("batch %s already exists", name)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	tmp, err := os.CreateTemp(w.dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	if err = writeRecords(tmp, records); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", err
	}
	if err = os.Rename(tmp.Name(), target); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("publish batch: %w", err)
	}

	return target, nil
}

// Discard removes a written batch. A batch that is already gone is not an error.
func (w *BatchWriter) Discard(_ context.Context, location string) error {
	if err := os.Remove(location); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func writeRecords(f *os.File, records []export.Record) error {
	cw := csv.NewWriter(f)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return f.Sync()
}

func row(r export.Record) []string {
	return []string{
		strconv.FormatInt(r.OrderID, 10),
		strconv.FormatInt(r.CustomerID, 10),
		r.CustomerEmail,
		r.FirstName,
		r.LastName,
		r.SKU,
		r.ProductName,
		strconv.Itoa(r.Quantity),
		strconv.FormatInt(r.UnitPriceCents, 10),
		r.PlacedAt.Truncate(time.Second).Format(time.RFC3339),
		strconv.FormatInt(r.OrderTotal, 10),
	}
}
