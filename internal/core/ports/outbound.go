package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/export"
)

// BatchWriter stores one export batch durably.
type BatchWriter interface {
	// Write stores records under name and returns where the batch was written.
	// Nothing is left behind when Write fails.
	Write(ctx context.Context, name string, records []export.Record) (string, error)

	// Discard removes a batch written by Write whose run did not commit.
	Discard(ctx context.Context, location string) error
}

// Notifier sends an email. Callers treat delivery as fire-and-forget.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Clock returns the current time in the shop's time zone.
type Clock interface {
	Now() time.Time
}
