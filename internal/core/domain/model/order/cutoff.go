package order

import (
	"errors"
	"time"
)

// CutoffHour is the local hour after which a placed order is handed to the bakery.
const CutoffHour = 22

// ErrCutoffPassed is returned when a customer tries to change or cancel an order
// whose edit window has closed.
var ErrCutoffPassed = errors.New("order can no longer be changed, file a change request instead")

// EditCutoff returns the end of the edit window for an order placed at placedAt,
// evaluated in loc: 22:00 on the same day, or 22:00 on the next day when the
// order was placed at or after 22:00.
func EditCutoff(placedAt time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = placedAt.Location()
	}
	local := placedAt.In(loc)
	day := local
	if local.Hour() >= CutoffHour {
		day = local.AddDate(0, 0, 1)
	}
	y, m, d := day.Date()
	return time.Date(y, m, d, CutoffHour, 0, 0, 0, loc)
}
