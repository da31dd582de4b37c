// Package export holds the value types of an export run: the per-line record
// handed to the batch writer and the audit log entry written for every
// non-dry run.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	// ErrExportWriteFailure wraps any error raised while writing the batch.
	ErrExportWriteFailure = errors.New("export batch could not be written")

	// ErrExportConflict is returned when a selected order changed before the run committed.
	ErrExportConflict = errors.New("export selection changed before commit")

	ErrLogIsNotConstructed = errors.New("Log must be created via NewOKLog or NewErrorLog")
)

// BatchPrefix and BatchExt frame every batch name.
const (
	BatchPrefix = "export_orders_"
	BatchExt    = ".csv"
)

// BatchName returns the name of a batch started at now, unique to the microsecond
// and sortable by creation time.
func BatchName(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf("%s%s_%06d%s", BatchPrefix, now.Format("20060102_150405"), now.Nanosecond()/1000, BatchExt)
}

// Record is one exported order line. Order-level fields repeat on every line
// of the same order.
type Record struct {
	OrderID        int64
	CustomerID     int64
	CustomerEmail  string
	FirstName      string
	LastName       string
	SKU            string
	ProductName    string
	Quantity       int
	UnitPriceCents int64
	PlacedAt       time.Time
	OrderTotal     int64
}

type LogStatus int

const (
	UnknownLogStatus LogStatus = iota
	LogOK
	LogError
)

func (s LogStatus) String() string {
	switch s {
	case LogOK:
		return "OK"
	case LogError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func ParseLogStatus(s string) (LogStatus, error) {
	switch s {
	case "OK":
		return LogOK, nil
	case "ERROR":
		return LogError, nil
	default:
		return UnknownLogStatus, errs.NewValueIsInvalidErrorWithCause("log status is invalid", fmt.Errorf("%q is not a valid log status", s))
	}
}

// Log is the persistent audit entry of one export run.
type Log struct {
	id             kernel.UUID
	runAt          time.Time
	ordersExported int
	status         LogStatus
	details        string

	isConstructed bool
}

// NewOKLog records a committed run.
func NewOKLog(id kernel.UUID, runAt time.Time, count int, batch string) (*Log, error) {
	return newLog(id, runAt, count, LogOK, fmt.Sprintf("Successfully exported %d orders to %s", count, batch))
}

// NewErrorLog records a failed run; nothing was exported.
func NewErrorLog(id kernel.UUID, runAt time.Time, cause error) (*Log, error) {
	details := "unknown error"
	if cause != nil {
		details = cause.Error()
	}
	return newLog(id, runAt, 0, LogError, details)
}

// RestoreLog rebuilds a persisted log entry.
func RestoreLog(id kernel.UUID, runAt time.Time, count int, status LogStatus, details string) (*Log, error) {
	if status != LogOK && status != LogError {
		return nil, errs.NewValueIsInvalidErrorWithCause("log status is invalid", fmt.Errorf("%d is not a valid log status", status))
	}
	return newLog(id, runAt, count, status, details)
}

func newLog(id kernel.UUID, runAt time.Time, count int, status LogStatus, details string) (*Log, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if count < 0 {
		return nil, errs.NewValueIsOutOfRangeError("orders exported", count, 0, "unbounded")
	}
	return &Log{
		id:             id,
		runAt:          runAt,
		ordersExported: count,
		status:         status,
		details:        strings.TrimSpace(details),
		isConstructed:  true,
	}, nil
}

func (l *Log) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLogIsNotConstructed
	}
	return nil
}

func (l *Log) ID() kernel.UUID { return l.id }
func (l *Log) RunAt() time.Time { return l.runAt }
func (l *Log) OrdersExported() int { return l.ordersExported }
func (l *Log) Status() LogStatus { return l.status }
func (l *Log) Details() string { return l.details }
