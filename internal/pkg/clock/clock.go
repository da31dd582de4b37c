// Package clock provides the shop's wall clock.
package clock

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// ShopClock returns the current time in the shop's time zone, so that edit
// cutoffs and emails follow local time.
type ShopClock struct {
	loc *time.Location
}

func New(loc *time.Location) ShopClock {
	if loc == nil {
		loc = time.UTC
	}
	return ShopClock{loc: loc}
}

// Load builds a ShopClock for an IANA zone name such as "Europe/Berlin".
func Load(name string) (ShopClock, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return ShopClock{}, fmt.Errorf("shop time zone %q: %w", name, err)
	}
	return New(loc), nil
}

func (c ShopClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c ShopClock) Location() *time.Location {
	return c.loc
}
