package queries

import (
	"errors"
	"time"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"
)

var ErrGetCostsQueryIsNotConstructed = errors.New("GetCostsQuery must be created via NewGetCostsQuery constructor")

const (
	CostsShortWindow = 7 * 24 * time.Hour
	CostsLongWindow  = 30 * 24 * time.Hour
)

// GetCostsQuery sums what a customer spent on placed and exported orders over
// the last 7 and 30 days, delivery fees included.
type GetCostsQuery struct {
	customerID int64
	now        time.Time

	guard guard.ConstructorGuard
}

func NewGetCostsQuery(customerID int64, now time.Time) (GetCostsQuery, error) {
	var validationErrors []error
	if customerID <= 0 {
		validationErrors = append(validationErrors, errs.NewValueIsInvalidError("customerID"))
	}
	if now.IsZero() {
		validationErrors = append(validationErrors, errs.NewValueIsRequiredError("now"))
	}
	if len(validationErrors) > 0 {
		return GetCostsQuery{}, errors.Join(validationErrors...)
	}

	return GetCostsQuery{customerID: customerID, now: now, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCostsQuery) Validate() error {
	return q.guard.Validate(ErrGetCostsQueryIsNotConstructed)
}

func (q GetCostsQuery) CustomerID() int64 { return q.customerID }
func (q GetCostsQuery) Now() time.Time    { return q.now }

type CostsResponse struct {
	LastWeekCents   int64
	LastWeekOrders  int
	LastMonthCents  int64
	LastMonthOrders int
}
