package kernel

import (
	"fmt"

	"bakery/internal/pkg/errs"
	"bakery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed is returned by Validate for a zero-value Money.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is an amount in minor currency units (cents). All prices, totals and
// fees in the system are Money; amounts are never negative.
type Money struct {
	cents int64
	guard guard.ConstructorGuard
}

// NewMoney creates an amount of cents. Negative amounts are rejected.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money is invalid",
			fmt.Errorf("%d is negative", cents),
		)
	}
	return Money{cents: cents, guard: guard.NewConstructorGuard()}, nil
}

// Zero returns a constructed amount of 0 cents.
func Zero() Money {
	return Money{guard: guard.NewConstructorGuard()}
}

// MustMoney is NewMoney for literals known to be valid.
func MustMoney(cents int64) Money {
	m, err := NewMoney(cents)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

func (m Money) Cents() int64 {
	return m.cents
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents, guard: guard.NewConstructorGuard()}
}

// Times returns m multiplied by a non-negative quantity.
func (m Money) Times(quantity int) Money {
	if quantity < 0 {
		quantity = 0
	}
	return Money{cents: m.cents * int64(quantity), guard: guard.NewConstructorGuard()}
}

func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// Euro returns the amount as a decimal number of euros.
func (m Money) Euro() decimal.Decimal {
	return decimal.New(m.cents, -2)
}

// String formats the amount the way customers see it, e.g. "2,50 €".
func (m Money) String() string {
	s := m.Euro().StringFixed(2)
	return fmt.Sprintf("%s €", replaceDecimalPoint(s))
}

func replaceDecimalPoint(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] == '.' {
			b[i] = ','
		}
	}
	return string(b)
}
