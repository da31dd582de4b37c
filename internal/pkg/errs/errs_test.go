package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("sku", "TEST-001")

		assert.Equal(t, "sku", err.ParamName)
		assert.Equal(t, "TEST-001", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: TEST-001", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("order", int64(42), cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: order, ID is: 42 (cause: connection reset)",
			err.Error())
	})

	t.Run("numeric ids are printed plainly", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customer", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	err := errs.NewValueIsInvalidError("email")
	assert.Equal(t, "value is invalid: email", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	withCause := errs.NewValueIsInvalidErrorWithCause("delivery type", errors.New("unknown value TRUCK"))
	assert.Equal(t, "value is invalid: delivery type (cause: unknown value TRUCK)", withCause.Error())
	require.ErrorIs(t, withCause, errs.ErrValueIsInvalid)
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 150, 1, 99)

		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 99, err.Max)
		assert.Equal(t, "value is invalid: 150 is quantity, min value is 1, max value is 99", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeErrorWithCause("price", -5, 0, 100000, errors.New("negative"))
		assert.Equal(t,
			"value is invalid: -5 is price, min value is 0, max value is 100000 (cause: negative)",
			err.Error())
	})

	t.Run("newlines are flattened", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("reason")
	assert.Equal(t, "value is required: reason", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("reason", errors.New("blank"))
	assert.Equal(t, "value is required: reason (cause: blank)", withCause.Error())
	require.ErrorIs(t, withCause, errs.ErrValueIsRequired)
}

func TestErrorsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("load cart: %w", errs.NewObjectNotFoundError("customer", 7))
	require.ErrorIs(t, wrapped, errs.ErrObjectNotFound)

	var notFound *errs.ObjectNotFoundError
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, "customer", notFound.ParamName)
}
