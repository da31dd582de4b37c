// Package pgerr classifies PostgreSQL errors raised through lib/pq.
package pgerr

import (
	"errors"
	"fmt"

	"bakery/internal/core/ports"

	"github.com/lib/pq"
)

const (
	uniqueViolation      pq.ErrorCode = "23505"
	foreignKeyViolation  pq.ErrorCode = "23503"
	serializationFailure pq.ErrorCode = "40001"
	deadlockDetected     pq.ErrorCode = "40P01"
)

func code(err error) (pq.ErrorCode, string, bool) {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return "", "", false
	}
	return pqErr.Code, pqErr.Constraint, true
}

// IsUniqueViolation reports a unique constraint violation. When constraint is not
// empty the violated constraint or index must carry that name.
func IsUniqueViolation(err error, constraint string) bool {
	c, name, ok := code(err)
	return ok && c == uniqueViolation && (constraint == "" || name == constraint)
}

// IsForeignKeyViolation reports a foreign key violation.
func IsForeignKeyViolation(err error) bool {
	c, _, ok := code(err)
	return ok && c == foreignKeyViolation
}

// IsSerializationFailure reports errors after which the transaction may be retried.
func IsSerializationFailure(err error) bool {
	c, _, ok := code(err)
	return ok && (c == serializationFailure || c == deadlockDetected)
}

// Wrap maps retryable failures to ports.ErrConcurrentModification and returns
// every other error unchanged.
func Wrap(err error) error {
	if err != nil && IsSerializationFailure(err) {
		return fmt.Errorf("%w: %w", ports.ErrConcurrentModification, err)
	}
	return err
}
